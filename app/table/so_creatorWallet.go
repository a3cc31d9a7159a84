package table

import (
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
)

////////////// SECTION Prefix Mark ///////////////
var (
	CreatorWalletTable = []byte("CreatorWalletTable")
)

////////////// SECTION Wrap Define ///////////////
type SoCreatorWalletWrap struct {
	dba     iservices.IDatabaseRW
	mainKey *prototype.Address
}

func NewSoCreatorWalletWrap(dba iservices.IDatabaseRW, key *prototype.Address) *SoCreatorWalletWrap {
	result := &SoCreatorWalletWrap{dba, key}
	return result
}

func (s *SoCreatorWalletWrap) CheckExist() bool {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return checkExist(s.dba, keyBuf)
}

func (s *SoCreatorWalletWrap) Create(f func(tInfo *SoCreatorWallet)) error {
	val := &SoCreatorWallet{}
	f(val)
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return err
	}
	return createRecord(s.dba, keyBuf, val)
}

////////////// SECTION Members Get/Modify ///////////////

func (s *SoCreatorWalletWrap) GetOwner() prototype.Address {
	res := s.getCreatorWallet()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.Owner)
}

func (s *SoCreatorWalletWrap) GetVaultAuthority() prototype.Address {
	res := s.getCreatorWallet()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.VaultAuthority)
}

func (s *SoCreatorWalletWrap) GetVault() prototype.Address {
	res := s.getCreatorWallet()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.Vault)
}

/////////////// SECTION Private function ////////////////

func (s *SoCreatorWalletWrap) getCreatorWallet() *SoCreatorWallet {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return nil
	}
	res := &SoCreatorWallet{}
	if getRecord(s.dba, keyBuf, res) != nil {
		return nil
	}
	return res
}

func (s *SoCreatorWalletWrap) encodeMainKey() ([]byte, error) {
	return encodeMainKey(CreatorWalletTable, s.mainKey)
}
