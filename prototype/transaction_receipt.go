package prototype

// Tally is the vote count of a post after a vote was applied.
type Tally struct {
	Post      Address `json:"post"`
	UpVotes   uint64  `json:"up_votes"`
	DownVotes uint64  `json:"down_votes"`
}

// TransferReceipt confirms a committed funds movement.
type TransferReceipt struct {
	From        Address `json:"from"`
	To          Address `json:"to"`
	Amount      uint64  `json:"amount"`
	FromBalance uint64  `json:"from_balance"`
	ToBalance   uint64  `json:"to_balance"`
}

type WalletReceipt struct {
	Wallet         Address `json:"wallet"`
	VaultAuthority Address `json:"vault_authority"`
	Vault          Address `json:"vault"`
}
