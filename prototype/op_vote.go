package prototype

import "github.com/pkg/errors"

type VoteOperation struct {
	Voter     Address       `json:"voter"`
	Post      Address       `json:"post"`
	Direction VoteDirection `json:"direction"`
}

func (m *VoteOperation) GetSigner() Address {
	if m == nil {
		return ZeroAddress
	}
	return m.Voter
}

func (m *VoteOperation) Validate() error {
	if m == nil {
		return ErrInvalidOperation
	}
	if err := requireAddress(m.Voter, "voter"); err != nil {
		return err
	}
	if err := requireAddress(m.Post, "post"); err != nil {
		return err
	}
	if !m.Direction.Valid() {
		return errors.WithMessage(ErrInvalidOperation, "unknown vote direction")
	}
	return nil
}
