package prototype

import "fmt"

// OpError is a failure kind reported by an operation.
// Status follows HTTP semantics so that outer surfaces can forward it as is.
type OpError struct {
	Code   string
	Status uint32
	Msg    string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func newOpError(code string, status uint32, msg string) *OpError {
	return &OpError{Code: code, Status: status, Msg: msg}
}

const (
	StatusSuccess           uint32 = 200
	StatusErrorValidation   uint32 = 400
	StatusErrorPayment      uint32 = 402
	StatusErrorForbidden    uint32 = 403
	StatusErrorNotFound     uint32 = 404
	StatusErrorConflict     uint32 = 409
	StatusErrorPrecondition uint32 = 412
	StatusErrorDb           uint32 = 500
)

var (
	// post ledger
	ErrTitleRequired   = newOpError("TitleRequired", StatusErrorValidation, "post title is required")
	ErrTitleTooLong    = newOpError("TitleTooLong", StatusErrorValidation, "post title is too long")
	ErrContentRequired = newOpError("ContentRequired", StatusErrorValidation, "post content is required")
	ErrContentTooLong  = newOpError("ContentTooLong", StatusErrorValidation, "post content is too long")
	ErrDuplicatePost   = newOpError("DuplicatePost", StatusErrorConflict, "post already exists")
	ErrPostNotFound    = newOpError("PostNotFound", StatusErrorNotFound, "post not found")

	// votes
	ErrDuplicateVote = newOpError("DuplicateVote", StatusErrorConflict, "already voted on this post")
	ErrVoteOverflow  = newOpError("VoteOverflow", StatusErrorConflict, "vote count overflow")

	// rewards
	ErrThresholdNotMet      = newOpError("ThresholdNotMet", StatusErrorPrecondition, "post has not reached the reward threshold")
	ErrAlreadyRewarded      = newOpError("AlreadyRewarded", StatusErrorConflict, "post reward already claimed")
	ErrInvalidCreator       = newOpError("InvalidCreator", StatusErrorForbidden, "claimant is not the post author")
	ErrWalletNotProvisioned = newOpError("WalletNotProvisioned", StatusErrorPrecondition, "creator wallet is not provisioned")
	ErrInvalidFundAccount   = newOpError("InvalidFundAccount", StatusErrorValidation, "fund account is not the creator fund")
	ErrWalletExists         = newOpError("WalletExists", StatusErrorConflict, "creator wallet already exists")

	// tips
	ErrInvalidAmount     = newOpError("InvalidAmount", StatusErrorValidation, "amount must be positive")
	ErrCreatorHasNoPosts = newOpError("CreatorHasNoPosts", StatusErrorNotFound, "recipient has no posts")
	ErrUnauthorized      = newOpError("Unauthorized", StatusErrorForbidden, "signer does not own the source account")

	// token ledger
	ErrInsufficientFunds = newOpError("InsufficientFunds", StatusErrorPayment, "insufficient funds")
	ErrAccountNotFound   = newOpError("AccountNotFound", StatusErrorNotFound, "token account not found")
	ErrAccountExists     = newOpError("AccountExists", StatusErrorConflict, "token account already exists")
	ErrBalanceOverflow   = newOpError("BalanceOverflow", StatusErrorConflict, "balance overflow")

	ErrInvalidOperation = newOpError("InvalidOperation", StatusErrorValidation, "invalid operation")
	ErrDatabase         = newOpError("Database", StatusErrorDb, "database failure")

	ErrAddressFormat = newOpError("AddressFormat", StatusErrorValidation, "malformed address")
)
