package prototype

type ProvisionWalletOperation struct {
	Owner Address `json:"owner"`
}

func (m *ProvisionWalletOperation) GetSigner() Address {
	if m == nil {
		return ZeroAddress
	}
	return m.Owner
}

func (m *ProvisionWalletOperation) Validate() error {
	if m == nil {
		return ErrInvalidOperation
	}
	return requireAddress(m.Owner, "owner")
}
