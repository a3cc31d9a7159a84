package app

import (
	"context"
	"testing"

	"github.com/coschain/creatorfund-go/prototype"
	"github.com/stretchr/testify/assert"
)

type TipTester struct {
	e                 *testEnv
	alice, bob, carol prototype.Address
	aliceAcc, bobAcc  prototype.Address
	alicePost         prototype.Address
}

func (tester *TipTester) Test(t *testing.T) {
	tester.e = newTestEnv(t, testFundBalance)
	tester.alice = prototype.NamedAddress("alice")
	tester.bob = prototype.NamedAddress("bob")
	tester.carol = prototype.NamedAddress("carol")
	tester.aliceAcc = tester.e.account(t, tester.alice, 0)
	tester.bobAcc = tester.e.account(t, tester.bob, 500)
	tester.alicePost = tester.e.post(t, tester.alice, "tip me")

	t.Run("normal", tester.normal)
	t.Run("zero amount", tester.zeroAmount)
	t.Run("no posts", tester.noPosts)
	t.Run("unauthorized", tester.unauthorized)
	t.Run("insufficient funds", tester.insufficientFunds)
	t.Run("votes untouched", tester.votesUntouched)
}

func (tester *TipTester) tip(tipper prototype.Address, amount uint64, from, to, post prototype.Address) (prototype.TransferReceipt, error) {
	return tester.e.ctrl.Tip(context.Background(), &prototype.TipOperation{
		Tipper:      tipper,
		Amount:      amount,
		From:        from,
		To:          to,
		CreatorPost: post,
	})
}

func (tester *TipTester) normal(t *testing.T) {
	a := assert.New(t)
	before := tester.e.balance(t, tester.bobAcc)

	receipt, err := tester.tip(tester.bob, 120, tester.bobAcc, tester.aliceAcc, tester.alicePost)
	a.NoError(err)
	a.EqualValues(120, receipt.Amount)
	a.EqualValues(before-120, receipt.FromBalance)
	a.EqualValues(before-120, tester.e.balance(t, tester.bobAcc))
	a.EqualValues(receipt.ToBalance, tester.e.balance(t, tester.aliceAcc))
}

func (tester *TipTester) zeroAmount(t *testing.T) {
	a := assert.New(t)
	_, err := tester.tip(tester.bob, 0, tester.bobAcc, tester.aliceAcc, tester.alicePost)
	a.ErrorIs(err, prototype.ErrInvalidAmount)
}

func (tester *TipTester) noPosts(t *testing.T) {
	a := assert.New(t)
	carolAcc := tester.e.account(t, tester.carol, 0)
	before := tester.e.balance(t, tester.bobAcc)

	// carol never posted
	_, err := tester.tip(tester.bob, 10, tester.bobAcc, carolAcc, prototype.PostAddress(tester.carol, "anything"))
	a.ErrorIs(err, prototype.ErrCreatorHasNoPosts)

	// a post by somebody else does not qualify carol's account
	_, err = tester.tip(tester.bob, 10, tester.bobAcc, carolAcc, tester.alicePost)
	a.ErrorIs(err, prototype.ErrCreatorHasNoPosts)

	a.EqualValues(before, tester.e.balance(t, tester.bobAcc))
	a.EqualValues(0, tester.e.balance(t, carolAcc))
}

func (tester *TipTester) unauthorized(t *testing.T) {
	a := assert.New(t)
	before := tester.e.balance(t, tester.bobAcc)

	_, err := tester.tip(tester.carol, 10, tester.bobAcc, tester.aliceAcc, tester.alicePost)
	a.ErrorIs(err, prototype.ErrUnauthorized)
	a.EqualValues(before, tester.e.balance(t, tester.bobAcc))
}

func (tester *TipTester) insufficientFunds(t *testing.T) {
	a := assert.New(t)
	from := tester.e.balance(t, tester.bobAcc)
	to := tester.e.balance(t, tester.aliceAcc)

	_, err := tester.tip(tester.bob, from+1, tester.bobAcc, tester.aliceAcc, tester.alicePost)
	a.ErrorIs(err, prototype.ErrInsufficientFunds)
	a.EqualValues(from, tester.e.balance(t, tester.bobAcc))
	a.EqualValues(to, tester.e.balance(t, tester.aliceAcc))

	// the whole balance may go
	_, err = tester.tip(tester.bob, from, tester.bobAcc, tester.aliceAcc, tester.alicePost)
	a.NoError(err)
	a.EqualValues(0, tester.e.balance(t, tester.bobAcc))
	a.EqualValues(to+from, tester.e.balance(t, tester.aliceAcc))
}

func (tester *TipTester) votesUntouched(t *testing.T) {
	a := assert.New(t)
	rec, err := tester.e.ctrl.GetPost(tester.alicePost)
	a.NoError(err)
	a.EqualValues(0, rec.UpVotes)
	a.EqualValues(0, rec.DownVotes)
	a.False(rec.Rewarded)
}

func TestTip(t *testing.T) {
	(&TipTester{}).Test(t)
}
