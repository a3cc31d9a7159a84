package prototype

import "github.com/pkg/errors"

// BaseOperation is a single mutation request.
type BaseOperation interface {
	// GetSigner returns the actor the request acts for.
	GetSigner() Address
	// Validate runs the checks that need no state.
	Validate() error
}

func requireAddress(a Address, field string) error {
	if a.IsZero() {
		return errors.WithMessage(ErrInvalidOperation, field+" is required")
	}
	return nil
}
