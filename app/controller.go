package app

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/creatorfund-go/app/table"
	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Options are the engine settings taken from configuration.
type Options struct {
	// the token account rewards are paid from
	FundAccount prototype.Address
	// CREATOR_FUND_REWARD, the amount paid per rewarded post
	Reward uint64
}

// Genesis describes the fund account created on first start.
type Genesis struct {
	Owner   prototype.Address
	Balance uint64
}

// Controller applies operations one at a time, each inside its own
// transaction. An operation either commits all of its writes, ledger
// movements included, or none of them.
type Controller struct {
	db      iservices.IDatabaseService
	ledger  iservices.ITokenLedger
	noticer EventBus.Bus
	log     *logrus.Logger
	metrics *Metrics
	clock   func() time.Time
	opts    Options

	// held for writing while an operation runs, reads see committed state only
	lock deadlock.RWMutex
}

func NewController(db iservices.IDatabaseService, opts Options, log *logrus.Logger) *Controller {
	if opts.Reward == 0 {
		opts.Reward = constants.DefaultCreatorFundReward
	}
	if log == nil {
		log = logrus.New()
	}
	return &Controller{
		db:      db,
		ledger:  NewKvLedger(db),
		noticer: EventBus.New(),
		log:     log,
		metrics: NewMetrics(nil),
		clock:   time.Now,
		opts:    opts,
	}
}

// for easy test
func (c *Controller) SetLedger(ledger iservices.ITokenLedger) {
	c.ledger = ledger
}

func (c *Controller) SetBus(bus EventBus.Bus) {
	c.noticer = bus
}

func (c *Controller) SetMetrics(m *Metrics) {
	c.metrics = m
}

func (c *Controller) SetClock(clock func() time.Time) {
	c.clock = clock
}

func (c *Controller) Bus() EventBus.Bus {
	return c.noticer
}

func (c *Controller) FundAccount() prototype.Address {
	return c.opts.FundAccount
}

// Open creates the fund account described by genesis unless it already exists.
func (c *Controller) Open(genesis Genesis) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, err := c.ledger.Owner(c.opts.FundAccount); err == nil {
		return nil
	}

	c.log.WithFields(logrus.Fields{
		"fund":    c.opts.FundAccount.String(),
		"owner":   genesis.Owner.String(),
		"balance": genesis.Balance,
	}).Info("start initGenesis")

	c.db.BeginTransaction()
	err := c.ledger.Open(c.opts.FundAccount, genesis.Owner)
	if err == nil {
		err = c.ledger.Credit(c.opts.FundAccount, genesis.Balance)
	}
	if err != nil {
		_ = c.db.EndTransaction(false)
		return errors.WithMessage(err, "init genesis")
	}
	return errors.Wrap(c.db.EndTransaction(true), "commit genesis")
}

func (c *Controller) CreatePost(ctx context.Context, op *prototype.CreatePostOperation) (prototype.Address, error) {
	ev, err := c.apply(ctx, "create_post", op)
	if err != nil {
		return prototype.ZeroAddress, err
	}
	post := ev.(*PostEvaluator).post
	c.noticer.Publish(constants.NoticePostCreated, post)
	c.notifyApplied("create_post", op)
	return post, nil
}

func (c *Controller) Vote(ctx context.Context, op *prototype.VoteOperation) (prototype.Tally, error) {
	ev, err := c.apply(ctx, "cast_vote", op)
	if err != nil {
		return prototype.Tally{}, err
	}
	tally := ev.(*VoteEvaluator).tally
	c.noticer.Publish(constants.NoticeVoteCast, tally)
	c.notifyApplied("cast_vote", op)
	return tally, nil
}

func (c *Controller) ClaimReward(ctx context.Context, op *prototype.ClaimRewardOperation) (prototype.TransferReceipt, error) {
	ev, err := c.apply(ctx, "claim_creator_reward", op)
	if err != nil {
		return prototype.TransferReceipt{}, err
	}
	receipt := ev.(*ClaimRewardEvaluator).receipt
	c.metrics.moved("claim_creator_reward", receipt.Amount)
	c.noticer.Publish(constants.NoticeRewardPaid, op.Post, receipt)
	c.notifyApplied("claim_creator_reward", op)
	return receipt, nil
}

func (c *Controller) Tip(ctx context.Context, op *prototype.TipOperation) (prototype.TransferReceipt, error) {
	ev, err := c.apply(ctx, "tip_creator", op)
	if err != nil {
		return prototype.TransferReceipt{}, err
	}
	receipt := ev.(*TipEvaluator).receipt
	c.metrics.moved("tip_creator", receipt.Amount)
	c.noticer.Publish(constants.NoticeTipped, receipt)
	c.notifyApplied("tip_creator", op)
	return receipt, nil
}

func (c *Controller) ProvisionWallet(ctx context.Context, op *prototype.ProvisionWalletOperation) (prototype.WalletReceipt, error) {
	ev, err := c.apply(ctx, "provision_wallet", op)
	if err != nil {
		return prototype.WalletReceipt{}, err
	}
	c.notifyApplied("provision_wallet", op)
	return ev.(*ProvisionWalletEvaluator).receipt, nil
}

// GetPost returns the committed record of post.
func (c *Controller) GetPost(post prototype.Address) (*table.SoPost, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	wrap := table.NewSoPostWrap(c.db, &post)
	if !wrap.CheckExist() {
		return nil, prototype.ErrPostNotFound
	}
	rec, err := wrap.Get()
	if err != nil {
		return nil, errors.WithMessage(prototype.ErrDatabase, err.Error())
	}
	return rec, nil
}

// HasVoted reports whether voter already voted on post.
func (c *Controller) HasVoted(voter prototype.Address, post prototype.Address) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	voteId := prototype.VoteAddress(voter, post)
	return table.NewSoVoteWrap(c.db, &voteId).CheckExist()
}

// Account returns the owner and balance of a token account.
func (c *Controller) Account(account prototype.Address) (prototype.Address, uint64, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	owner, err := c.ledger.Owner(account)
	if err != nil {
		return prototype.ZeroAddress, 0, err
	}
	balance, err := c.ledger.Balance(account)
	if err != nil {
		return prototype.ZeroAddress, 0, err
	}
	return owner, balance, nil
}

func (c *Controller) apply(ctx context.Context, name string, op prototype.BaseOperation) (ev BaseEvaluator, err error) {
	defer func() {
		c.observe(name, op, err)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = op.Validate(); err != nil {
		return nil, err
	}
	c.noticer.Publish(constants.NoticeOpPre, op)

	c.lock.Lock()
	defer c.lock.Unlock()

	c.db.BeginTransaction()
	if ev, err = c.applyOnDb(op); err != nil {
		if endErr := c.db.EndTransaction(false); endErr != nil {
			c.log.WithError(endErr).Error("discard transaction failed")
		}
		return nil, err
	}
	if endErr := c.db.EndTransaction(true); endErr != nil {
		return nil, errors.WithMessage(prototype.ErrDatabase, endErr.Error())
	}
	return ev, nil
}

func (c *Controller) applyOnDb(op prototype.BaseOperation) (ev BaseEvaluator, err error) {
	defer func() {
		if r := recover(); r != nil {
			ev, err = nil, recoveredError(r)
		}
	}()

	ctx := &ApplyContext{
		db:     c.db,
		ledger: c.ledger,
		now:    c.clock().Unix(),
		fund:   c.opts.FundAccount,
		reward: c.opts.Reward,
	}
	ev = GetBaseEvaluator(ctx, op)
	ev.Apply()
	return ev, nil
}

func (c *Controller) notifyApplied(name string, op prototype.BaseOperation) {
	c.noticer.Publish(constants.NoticeOpApplied, &prototype.OperationNotification{
		Name:    name,
		Signer:  op.GetSigner(),
		Op:      op,
		Status:  prototype.StatusSuccess,
		Applied: c.clock().Unix(),
	})
}

func (c *Controller) observe(name string, op prototype.BaseOperation, err error) {
	fields := logrus.Fields{
		"op":     name,
		"signer": op.GetSigner().String(),
	}
	if err == nil {
		c.metrics.observe(name, "Success")
		c.log.WithFields(fields).Debug("operation applied")
		return
	}
	code := "Error"
	var opErr *prototype.OpError
	if errors.As(err, &opErr) {
		code = opErr.Code
	}
	c.metrics.observe(name, code)
	c.log.WithFields(fields).WithError(err).Info("operation rejected")
}
