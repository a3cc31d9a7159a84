package prototype

type ClaimRewardOperation struct {
	Claimant      Address `json:"claimant"`
	Post          Address `json:"post"`
	CreatorWallet Address `json:"creator_wallet"`
	FundAccount   Address `json:"fund_account"`
	VaultAccount  Address `json:"vault_account"`
}

func (m *ClaimRewardOperation) GetSigner() Address {
	if m == nil {
		return ZeroAddress
	}
	return m.Claimant
}

func (m *ClaimRewardOperation) Validate() error {
	if m == nil {
		return ErrInvalidOperation
	}
	if err := requireAddress(m.Claimant, "claimant"); err != nil {
		return err
	}
	return requireAddress(m.Post, "post")
}
