package table

import (
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
)

////////////// SECTION Prefix Mark ///////////////
var (
	VoteTable = []byte("VoteTable")
)

////////////// SECTION Wrap Define ///////////////
type SoVoteWrap struct {
	dba     iservices.IDatabaseRW
	mainKey *prototype.Address
}

func NewSoVoteWrap(dba iservices.IDatabaseRW, key *prototype.Address) *SoVoteWrap {
	result := &SoVoteWrap{dba, key}
	return result
}

func (s *SoVoteWrap) CheckExist() bool {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return checkExist(s.dba, keyBuf)
}

func (s *SoVoteWrap) Create(f func(tInfo *SoVote)) error {
	val := &SoVote{}
	f(val)
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return err
	}
	return createRecord(s.dba, keyBuf, val)
}

////////////// SECTION Members Get/Modify ///////////////

func (s *SoVoteWrap) GetVoter() prototype.Address {
	res := s.getVote()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.Voter)
}

func (s *SoVoteWrap) GetPostId() prototype.Address {
	res := s.getVote()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.PostId)
}

func (s *SoVoteWrap) GetDirection() prototype.VoteDirection {
	res := s.getVote()
	if res == nil {
		return 0
	}
	return prototype.VoteDirection(res.Direction)
}

/////////////// SECTION Private function ////////////////

func (s *SoVoteWrap) getVote() *SoVote {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return nil
	}
	res := &SoVote{}
	if getRecord(s.dba, keyBuf, res) != nil {
		return nil
	}
	return res
}

func (s *SoVoteWrap) encodeMainKey() ([]byte, error) {
	return encodeMainKey(VoteTable, s.mainKey)
}
