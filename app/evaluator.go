package app

import (
	"math"

	"github.com/coschain/creatorfund-go/app/table"
	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/prototype"
)

type PostEvaluator struct {
	BaseEvaluator
	ctx  *ApplyContext
	op   *prototype.CreatePostOperation
	post prototype.Address
}

type VoteEvaluator struct {
	BaseEvaluator
	ctx   *ApplyContext
	op    *prototype.VoteOperation
	tally prototype.Tally
}

type ClaimRewardEvaluator struct {
	BaseEvaluator
	ctx     *ApplyContext
	op      *prototype.ClaimRewardOperation
	receipt prototype.TransferReceipt
}

type TipEvaluator struct {
	BaseEvaluator
	ctx     *ApplyContext
	op      *prototype.TipOperation
	receipt prototype.TransferReceipt
}

type ProvisionWalletEvaluator struct {
	BaseEvaluator
	ctx     *ApplyContext
	op      *prototype.ProvisionWalletOperation
	receipt prototype.WalletReceipt
}

func (ev *PostEvaluator) Apply() {
	op := ev.op
	mustNoError(prototype.ValidPostTitle(op.Title), "title")
	mustNoError(prototype.ValidPostContent(op.Content), "content")

	postId := prototype.PostAddress(op.Author, op.Title)
	postWrap := table.NewSoPostWrap(ev.ctx.db, &postId)
	mustSuccess(!postWrap.CheckExist(), prototype.ErrDuplicatePost)

	mustNoError(postWrap.Create(func(t *table.SoPost) {
		t.PostId = postId.Bytes()
		t.Author = op.Author.Bytes()
		t.Title = op.Title
		t.Content = op.Content
		t.Created = ev.ctx.now
	}), "create post error")

	ev.post = postId
}

func (ev *VoteEvaluator) Apply() {
	op := ev.op
	postWrap := table.NewSoPostWrap(ev.ctx.db, &op.Post)
	mustSuccess(postWrap.CheckExist(), prototype.ErrPostNotFound)

	// one record per (voter, post), whatever the direction
	voteId := prototype.VoteAddress(op.Voter, op.Post)
	voteWrap := table.NewSoVoteWrap(ev.ctx.db, &voteId)
	mustSuccess(!voteWrap.CheckExist(), prototype.ErrDuplicateVote)

	mustNoError(voteWrap.Create(func(t *table.SoVote) {
		t.VoteId = voteId.Bytes()
		t.Voter = op.Voter.Bytes()
		t.PostId = op.Post.Bytes()
		t.Direction = int32(op.Direction)
		t.Created = ev.ctx.now
	}), "create vote error")

	ev.tally = incrementTally(postWrap, op.Direction)
}

// incrementTally adds one vote of direction to the post behind postWrap.
// It is the only writer of the vote counters.
func incrementTally(postWrap *table.SoPostWrap, direction prototype.VoteDirection) prototype.Tally {
	post, err := postWrap.Get()
	mustNoError(err, "load post error")

	switch direction {
	case prototype.VoteUp:
		mustSuccess(post.UpVotes < math.MaxUint64, prototype.ErrVoteOverflow)
		post.UpVotes++
		mustSuccess(postWrap.MdUpVotes(post.UpVotes), prototype.ErrDatabase)
	case prototype.VoteDown:
		mustSuccess(post.DownVotes < math.MaxUint64, prototype.ErrVoteOverflow)
		post.DownVotes++
		mustSuccess(postWrap.MdDownVotes(post.DownVotes), prototype.ErrDatabase)
	default:
		panic(prototype.ErrInvalidOperation)
	}

	return prototype.Tally{
		Post:      prototype.BytesToAddress(post.PostId),
		UpVotes:   post.UpVotes,
		DownVotes: post.DownVotes,
	}
}

func (ev *ClaimRewardEvaluator) Apply() {
	op := ev.op
	postWrap := table.NewSoPostWrap(ev.ctx.db, &op.Post)
	post, err := postWrap.Get()
	mustSuccess(err == nil, prototype.ErrPostNotFound)

	mustSuccess(post.UpVotes >= constants.RewardThreshold, prototype.ErrThresholdNotMet)
	mustSuccess(!post.Rewarded, prototype.ErrAlreadyRewarded)
	mustSuccess(prototype.BytesToAddress(post.Author).Equal(op.Claimant), prototype.ErrInvalidCreator)

	walletId := prototype.CreatorWalletAddress(op.Claimant)
	mustSuccess(op.CreatorWallet.Equal(walletId), prototype.ErrWalletNotProvisioned)
	walletWrap := table.NewSoCreatorWalletWrap(ev.ctx.db, &walletId)
	mustSuccess(walletWrap.CheckExist(), prototype.ErrWalletNotProvisioned)
	vault := walletWrap.GetVault()
	mustSuccess(op.VaultAccount.Equal(vault), prototype.ErrWalletNotProvisioned)

	mustSuccess(op.FundAccount.Equal(ev.ctx.fund), prototype.ErrInvalidFundAccount)

	// the flag flips before any funds move, a failed transfer rolls both back
	mustSuccess(postWrap.MdRewarded(true), prototype.ErrDatabase)
	ev.receipt = transfer(ev.ctx, ev.ctx.fund, vault, ev.ctx.reward)
}

func (ev *TipEvaluator) Apply() {
	op := ev.op
	mustSuccess(op.Amount > 0, prototype.ErrInvalidAmount)

	postWrap := table.NewSoPostWrap(ev.ctx.db, &op.CreatorPost)
	mustSuccess(postWrap.CheckExist(), prototype.ErrCreatorHasNoPosts)

	toOwner, err := ev.ctx.ledger.Owner(op.To)
	mustNoError(err, "recipient account")
	mustSuccess(toOwner.Equal(postWrap.GetAuthor()), prototype.ErrCreatorHasNoPosts)

	fromOwner, err := ev.ctx.ledger.Owner(op.From)
	mustNoError(err, "source account")
	mustSuccess(fromOwner.Equal(op.Tipper), prototype.ErrUnauthorized)

	ev.receipt = transfer(ev.ctx, op.From, op.To, op.Amount)
}

func (ev *ProvisionWalletEvaluator) Apply() {
	op := ev.op
	walletId := prototype.CreatorWalletAddress(op.Owner)
	walletWrap := table.NewSoCreatorWalletWrap(ev.ctx.db, &walletId)
	mustSuccess(!walletWrap.CheckExist(), prototype.ErrWalletExists)

	authority := prototype.VaultAuthorityAddress(walletId)
	vault := prototype.TokenAccountAddress(authority)
	mustNoError(walletWrap.Create(func(t *table.SoCreatorWallet) {
		t.WalletId = walletId.Bytes()
		t.Owner = op.Owner.Bytes()
		t.VaultAuthority = authority.Bytes()
		t.Vault = vault.Bytes()
		t.Created = ev.ctx.now
	}), "create wallet error")
	mustNoError(ev.ctx.ledger.Open(vault, authority), "open vault")

	ev.receipt = prototype.WalletReceipt{Wallet: walletId, VaultAuthority: authority, Vault: vault}
}

// transfer moves amount from one ledger account to another.
func transfer(ctx *ApplyContext, from, to prototype.Address, amount uint64) prototype.TransferReceipt {
	mustNoError(ctx.ledger.Debit(from, amount), "debit")
	mustNoError(ctx.ledger.Credit(to, amount), "credit")

	fromBalance, err := ctx.ledger.Balance(from)
	mustNoError(err, "source balance")
	toBalance, err := ctx.ledger.Balance(to)
	mustNoError(err, "target balance")

	return prototype.TransferReceipt{
		From:        from,
		To:          to,
		Amount:      amount,
		FromBalance: fromBalance,
		ToBalance:   toBalance,
	}
}
