package prototype

type TipOperation struct {
	Tipper      Address `json:"tipper"`
	Amount      uint64  `json:"amount"`
	From        Address `json:"from"`
	To          Address `json:"to"`
	CreatorPost Address `json:"creator_post"`
}

func (m *TipOperation) GetSigner() Address {
	if m == nil {
		return ZeroAddress
	}
	return m.Tipper
}

func (m *TipOperation) Validate() error {
	if m == nil {
		return ErrInvalidOperation
	}
	if err := requireAddress(m.Tipper, "tipper"); err != nil {
		return err
	}
	// zero tips would only produce an empty receipt
	if m.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
