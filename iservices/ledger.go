package iservices

import "github.com/coschain/creatorfund-go/prototype"

//
// Token ledger.
//
// The ledger owns token balances. Engines that move funds depend on this
// capability only, so the balance bookkeeping can be replaced without touching
// them. A transfer is a Debit followed by a Credit within the caller's transaction.
//
type ITokenLedger interface {
	// open an empty account owned by owner, prototype.ErrAccountExists if present
	Open(account prototype.Address, owner prototype.Address) error

	// owner of account, prototype.ErrAccountNotFound if absent
	Owner(account prototype.Address) (prototype.Address, error)

	// balance of account, prototype.ErrAccountNotFound if absent
	Balance(account prototype.Address) (uint64, error)

	// take amount out of account, prototype.ErrInsufficientFunds if the balance is lower
	Debit(account prototype.Address, amount uint64) error

	// put amount into account, prototype.ErrBalanceOverflow if it would wrap
	Credit(account prototype.Address, amount uint64) error
}
