package table

import (
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
)

////////////// SECTION Prefix Mark ///////////////
var (
	TokenAccountTable = []byte("TokenAccountTable")
)

////////////// SECTION Wrap Define ///////////////
type SoTokenAccountWrap struct {
	dba     iservices.IDatabaseRW
	mainKey *prototype.Address
}

func NewSoTokenAccountWrap(dba iservices.IDatabaseRW, key *prototype.Address) *SoTokenAccountWrap {
	result := &SoTokenAccountWrap{dba, key}
	return result
}

func (s *SoTokenAccountWrap) CheckExist() bool {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return checkExist(s.dba, keyBuf)
}

func (s *SoTokenAccountWrap) Create(f func(tInfo *SoTokenAccount)) error {
	val := &SoTokenAccount{}
	f(val)
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return err
	}
	return createRecord(s.dba, keyBuf, val)
}

////////////// SECTION Members Get/Modify ///////////////

func (s *SoTokenAccountWrap) GetOwner() prototype.Address {
	res := s.getTokenAccount()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.Owner)
}

func (s *SoTokenAccountWrap) GetBalance() uint64 {
	res := s.getTokenAccount()
	if res == nil {
		return 0
	}
	return res.Balance
}

func (s *SoTokenAccountWrap) MdBalance(p uint64) bool {
	sa := s.getTokenAccount()
	if sa == nil {
		return false
	}
	sa.Balance = p
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return putRecord(s.dba, keyBuf, sa) == nil
}

/////////////// SECTION Private function ////////////////

func (s *SoTokenAccountWrap) getTokenAccount() *SoTokenAccount {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return nil
	}
	res := &SoTokenAccount{}
	if getRecord(s.dba, keyBuf, res) != nil {
		return nil
	}
	return res
}

func (s *SoTokenAccountWrap) encodeMainKey() ([]byte, error) {
	return encodeMainKey(TokenAccountTable, s.mainKey)
}
