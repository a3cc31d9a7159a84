package app

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/db/storage"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testFundBalance = 10 * constants.DefaultCreatorFundReward

type testEnv struct {
	db   *storage.DatabaseService
	ctrl *Controller
	fund prototype.Address
}

func newTestEnv(t *testing.T, fundBalance uint64) *testEnv {
	db := storage.NewMemoryDatabaseService()
	t.Cleanup(db.Close)

	log := logrus.New()
	log.Out = io.Discard

	fundOwner := prototype.NamedAddress(constants.CreatorFundName)
	fund := prototype.TokenAccountAddress(fundOwner)
	c := NewController(db, Options{FundAccount: fund}, log)
	require.NoError(t, c.Open(Genesis{Owner: fundOwner, Balance: fundBalance}))
	return &testEnv{db: db, ctrl: c, fund: fund}
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time {
		return time.Unix(unix, 0)
	}
}

func (e *testEnv) post(t *testing.T, author prototype.Address, title string) prototype.Address {
	post, err := e.ctrl.CreatePost(context.Background(), &prototype.CreatePostOperation{
		Author:  author,
		Title:   title,
		Content: "content of " + title,
	})
	require.NoError(t, err)
	return post
}

// votes casts n votes of direction on post from voters named prefix0, prefix1, ...
func (e *testEnv) votes(t *testing.T, post prototype.Address, prefix string, n int, direction prototype.VoteDirection) prototype.Tally {
	var tally prototype.Tally
	for i := 0; i < n; i++ {
		var err error
		tally, err = e.ctrl.Vote(context.Background(), &prototype.VoteOperation{
			Voter:     prototype.NamedAddress(fmt.Sprintf("%s%d", prefix, i)),
			Post:      post,
			Direction: direction,
		})
		require.NoError(t, err)
	}
	return tally
}

func (e *testEnv) provision(t *testing.T, owner prototype.Address) prototype.WalletReceipt {
	receipt, err := e.ctrl.ProvisionWallet(context.Background(), &prototype.ProvisionWalletOperation{Owner: owner})
	require.NoError(t, err)
	return receipt
}

// account opens the default token account of owner holding balance.
func (e *testEnv) account(t *testing.T, owner prototype.Address, balance uint64) prototype.Address {
	account := prototype.TokenAccountAddress(owner)
	ledger := NewKvLedger(e.db)
	require.NoError(t, ledger.Open(account, owner))
	require.NoError(t, ledger.Credit(account, balance))
	return account
}

func (e *testEnv) balance(t *testing.T, account prototype.Address) uint64 {
	_, balance, err := e.ctrl.Account(account)
	require.NoError(t, err)
	return balance
}

func (e *testEnv) claimOp(claimant prototype.Address, post prototype.Address) *prototype.ClaimRewardOperation {
	wallet := prototype.CreatorWalletAddress(claimant)
	return &prototype.ClaimRewardOperation{
		Claimant:      claimant,
		Post:          post,
		CreatorWallet: wallet,
		FundAccount:   e.fund,
		VaultAccount:  prototype.TokenAccountAddress(prototype.VaultAuthorityAddress(wallet)),
	}
}

func TestController(t *testing.T) {
	t.Run("genesis", testGenesis)
	t.Run("canceled context", testCanceledContext)
	t.Run("notifications", testNotifications)
	t.Run("nil operation", testNilOperation)
}

func testGenesis(t *testing.T) {
	e := newTestEnv(t, testFundBalance)
	owner, balance, err := e.ctrl.Account(e.fund)
	require.NoError(t, err)
	require.Equal(t, prototype.NamedAddress(constants.CreatorFundName), owner)
	require.EqualValues(t, testFundBalance, balance)

	// reopening keeps the existing fund
	require.NoError(t, e.ctrl.Open(Genesis{Owner: owner, Balance: 1}))
	require.EqualValues(t, testFundBalance, e.balance(t, e.fund))
	require.EqualValues(t, 0, e.db.TransactionHeight())
}

func testCanceledContext(t *testing.T) {
	e := newTestEnv(t, testFundBalance)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ctrl.CreatePost(ctx, &prototype.CreatePostOperation{
		Author:  prototype.NamedAddress("alice"),
		Title:   "t",
		Content: "c",
	})
	require.ErrorIs(t, err, context.Canceled)
	_, err = e.ctrl.GetPost(prototype.PostAddress(prototype.NamedAddress("alice"), "t"))
	require.ErrorIs(t, err, prototype.ErrPostNotFound)
}

func testNotifications(t *testing.T) {
	e := newTestEnv(t, testFundBalance)
	alice := prototype.NamedAddress("alice")

	var created []prototype.Address
	var tallies []prototype.Tally
	var applied []string
	require.NoError(t, e.ctrl.Bus().Subscribe(constants.NoticePostCreated, func(post prototype.Address) {
		created = append(created, post)
	}))
	require.NoError(t, e.ctrl.Bus().Subscribe(constants.NoticeVoteCast, func(tally prototype.Tally) {
		tallies = append(tallies, tally)
	}))
	require.NoError(t, e.ctrl.Bus().Subscribe(constants.NoticeOpApplied, func(n *prototype.OperationNotification) {
		applied = append(applied, n.Name)
	}))

	post := e.post(t, alice, "hello")
	e.votes(t, post, "bob", 2, prototype.VoteUp)

	// rejected operations publish nothing
	_, err := e.ctrl.CreatePost(context.Background(), &prototype.CreatePostOperation{Author: alice, Title: "hello", Content: "again"})
	require.ErrorIs(t, err, prototype.ErrDuplicatePost)

	require.Equal(t, []prototype.Address{post}, created)
	require.Len(t, tallies, 2)
	require.EqualValues(t, 2, tallies[1].UpVotes)
	require.Equal(t, []string{"create_post", "cast_vote", "cast_vote"}, applied)
}

func testNilOperation(t *testing.T) {
	e := newTestEnv(t, testFundBalance)
	_, err := e.ctrl.Vote(context.Background(), nil)
	require.ErrorIs(t, err, prototype.ErrInvalidOperation)
	_, err = e.ctrl.Tip(context.Background(), nil)
	require.ErrorIs(t, err, prototype.ErrInvalidOperation)
}
