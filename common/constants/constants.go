package constants

const (
	CreatorFundName = "creatorfund"

	// post content limits, counted in characters
	PostTitleMaxLen   = 100
	PostContentMaxLen = 280

	// up votes required before a post's author may claim the creator reward
	RewardThreshold = 10

	// default CREATOR_FUND_REWARD, overridden by [reward] Amount
	DefaultCreatorFundReward = 100000000

	// seeds of derived addresses
	PostSeed    = "post"
	VoteSeed    = "vote"
	StateSeed   = "state"
	VaultSeed   = "vault"
	AccountSeed = "account"
	NamedSeed   = "named"

	NoticeOpPre       = "oppre"
	NoticeOpApplied   = "opapplied"
	NoticePostCreated = "postcreated"
	NoticeVoteCast    = "votecast"
	NoticeRewardPaid  = "rewardpaid"
	NoticeTipped      = "tipped"

	PostCacheSize = 1024
)
