package api

import (
	"net/http"

	"github.com/coschain/creatorfund-go/prototype"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const codeInvalidRequest = "InvalidRequest"

func writeError(c *gin.Context, err error) {
	var opErr *prototype.OpError
	if errors.As(err, &opErr) {
		c.JSON(int(opErr.Status), gin.H{"code": opErr.Code, "error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"code": "Internal", "error": err.Error()})
}

func bindError(c *gin.Context, err error) {
	if errors.Is(err, prototype.ErrAddressFormat) {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"code": codeInvalidRequest, "error": err.Error()})
}

func pathAddress(c *gin.Context) (prototype.Address, bool) {
	addr, err := prototype.ParseAddress(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return prototype.ZeroAddress, false
	}
	return addr, true
}

func (s *Server) CreatePost(c *gin.Context) {
	var op prototype.CreatePostOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		bindError(c, err)
		return
	}
	post, err := s.ctrl.CreatePost(c.Request.Context(), &op)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": post})
}

func (s *Server) GetPost(c *gin.Context) {
	post, ok := pathAddress(c)
	if !ok {
		return
	}
	view, err := s.reader.Post(post)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) CastVote(c *gin.Context) {
	post, ok := pathAddress(c)
	if !ok {
		return
	}
	var op prototype.VoteOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		bindError(c, err)
		return
	}
	op.Post = post
	tally, err := s.ctrl.Vote(c.Request.Context(), &op)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tally)
}

// ClaimReward fills the wallet, vault and fund of the request from the
// claimant when they are omitted.
func (s *Server) ClaimReward(c *gin.Context) {
	post, ok := pathAddress(c)
	if !ok {
		return
	}
	var op prototype.ClaimRewardOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		bindError(c, err)
		return
	}
	op.Post = post
	if op.CreatorWallet.IsZero() {
		op.CreatorWallet = prototype.CreatorWalletAddress(op.Claimant)
	}
	if op.VaultAccount.IsZero() {
		op.VaultAccount = prototype.TokenAccountAddress(prototype.VaultAuthorityAddress(op.CreatorWallet))
	}
	if op.FundAccount.IsZero() {
		op.FundAccount = s.ctrl.FundAccount()
	}
	receipt, err := s.ctrl.ClaimReward(c.Request.Context(), &op)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (s *Server) Tip(c *gin.Context) {
	var op prototype.TipOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		bindError(c, err)
		return
	}
	receipt, err := s.ctrl.Tip(c.Request.Context(), &op)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (s *Server) ProvisionWallet(c *gin.Context) {
	var op prototype.ProvisionWalletOperation
	if err := c.ShouldBindJSON(&op); err != nil {
		bindError(c, err)
		return
	}
	receipt, err := s.ctrl.ProvisionWallet(c.Request.Context(), &op)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

func (s *Server) GetAccount(c *gin.Context) {
	account, ok := pathAddress(c)
	if !ok {
		return
	}
	owner, balance, err := s.ctrl.Account(account)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": account, "owner": owner, "balance": balance})
}
