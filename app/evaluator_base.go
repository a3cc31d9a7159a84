package app

import (
	"fmt"

	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/pkg/errors"
)

// mustSuccess aborts the running operation with err unless b holds.
func mustSuccess(b bool, err error) {
	if !b {
		panic(err)
	}
}

// mustNoError aborts the running operation if err is set.
// Operation errors pass through, anything else is reported as a database failure.
func mustNoError(err error, val string) {
	if err == nil {
		return
	}
	var opErr *prototype.OpError
	if errors.As(err, &opErr) {
		panic(err)
	}
	panic(errors.WithMessage(prototype.ErrDatabase, fmt.Sprintf("%s : %v", val, err)))
}

// recoveredError turns a value caught by recover() into the error of the operation.
func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.WithMessage(prototype.ErrDatabase, fmt.Sprint(r))
}

type ApplyContext struct {
	db     iservices.IDatabaseRW
	ledger iservices.ITokenLedger
	now    int64
	fund   prototype.Address
	reward uint64
}

type BaseEvaluator interface {
	Apply()
}

func GetBaseEvaluator(ctx *ApplyContext, op prototype.BaseOperation) BaseEvaluator {
	switch o := op.(type) {
	case *prototype.CreatePostOperation:
		return &PostEvaluator{ctx: ctx, op: o}
	case *prototype.VoteOperation:
		return &VoteEvaluator{ctx: ctx, op: o}
	case *prototype.ClaimRewardOperation:
		return &ClaimRewardEvaluator{ctx: ctx, op: o}
	case *prototype.TipOperation:
		return &TipEvaluator{ctx: ctx, op: o}
	case *prototype.ProvisionWalletOperation:
		return &ProvisionWalletEvaluator{ctx: ctx, op: o}
	default:
		panic(errors.WithMessage(prototype.ErrInvalidOperation, "no matchable evaluator"))
	}
}
