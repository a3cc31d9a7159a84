package app

import (
	"math"

	"github.com/coschain/creatorfund-go/app/table"
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/pkg/errors"
)

// KvLedger keeps token accounts as records next to posts and votes.
// It writes through whatever transaction is open on its database, so balances
// commit or roll back together with the operation that moved them.
type KvLedger struct {
	db iservices.IDatabaseRW
}

func NewKvLedger(db iservices.IDatabaseRW) *KvLedger {
	return &KvLedger{db: db}
}

func (l *KvLedger) Open(account prototype.Address, owner prototype.Address) error {
	wrap := table.NewSoTokenAccountWrap(l.db, &account)
	err := wrap.Create(func(t *table.SoTokenAccount) {
		t.Account = account.Bytes()
		t.Owner = owner.Bytes()
	})
	if table.IsMainKeyExist(err) {
		return prototype.ErrAccountExists
	}
	return errors.Wrapf(err, "open token account %s", account)
}

func (l *KvLedger) Owner(account prototype.Address) (prototype.Address, error) {
	wrap := table.NewSoTokenAccountWrap(l.db, &account)
	if !wrap.CheckExist() {
		return prototype.ZeroAddress, prototype.ErrAccountNotFound
	}
	return wrap.GetOwner(), nil
}

func (l *KvLedger) Balance(account prototype.Address) (uint64, error) {
	wrap := table.NewSoTokenAccountWrap(l.db, &account)
	if !wrap.CheckExist() {
		return 0, prototype.ErrAccountNotFound
	}
	return wrap.GetBalance(), nil
}

func (l *KvLedger) Debit(account prototype.Address, amount uint64) error {
	wrap := table.NewSoTokenAccountWrap(l.db, &account)
	if !wrap.CheckExist() {
		return prototype.ErrAccountNotFound
	}
	balance := wrap.GetBalance()
	if balance < amount {
		return prototype.ErrInsufficientFunds
	}
	if !wrap.MdBalance(balance - amount) {
		return errors.WithMessage(prototype.ErrDatabase, "debit "+account.String())
	}
	return nil
}

func (l *KvLedger) Credit(account prototype.Address, amount uint64) error {
	wrap := table.NewSoTokenAccountWrap(l.db, &account)
	if !wrap.CheckExist() {
		return prototype.ErrAccountNotFound
	}
	balance := wrap.GetBalance()
	if balance > math.MaxUint64-amount {
		return prototype.ErrBalanceOverflow
	}
	if !wrap.MdBalance(balance + amount) {
		return errors.WithMessage(prototype.ErrDatabase, "credit "+account.String())
	}
	return nil
}
