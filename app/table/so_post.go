package table

import (
	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
)

////////////// SECTION Prefix Mark ///////////////
var (
	PostTable = []byte("PostTable")
)

////////////// SECTION Wrap Define ///////////////
type SoPostWrap struct {
	dba     iservices.IDatabaseRW
	mainKey *prototype.Address
}

func NewSoPostWrap(dba iservices.IDatabaseRW, key *prototype.Address) *SoPostWrap {
	result := &SoPostWrap{dba, key}
	return result
}

func (s *SoPostWrap) CheckExist() bool {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return checkExist(s.dba, keyBuf)
}

func (s *SoPostWrap) Create(f func(tInfo *SoPost)) error {
	val := &SoPost{}
	f(val)
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return err
	}
	return createRecord(s.dba, keyBuf, val)
}

////////////// SECTION Members Get/Modify ///////////////

func (s *SoPostWrap) GetPostId() prototype.Address {
	res := s.getPost()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.PostId)
}

func (s *SoPostWrap) GetAuthor() prototype.Address {
	res := s.getPost()
	if res == nil {
		return prototype.ZeroAddress
	}
	return prototype.BytesToAddress(res.Author)
}

func (s *SoPostWrap) GetTitle() string {
	res := s.getPost()
	if res == nil {
		var tmpValue string
		return tmpValue
	}
	return res.Title
}

func (s *SoPostWrap) GetContent() string {
	res := s.getPost()
	if res == nil {
		var tmpValue string
		return tmpValue
	}
	return res.Content
}

func (s *SoPostWrap) GetUpVotes() uint64 {
	res := s.getPost()
	if res == nil {
		return 0
	}
	return res.UpVotes
}

func (s *SoPostWrap) MdUpVotes(p uint64) bool {
	sa := s.getPost()
	if sa == nil {
		return false
	}
	sa.UpVotes = p
	return s.update(sa)
}

func (s *SoPostWrap) GetDownVotes() uint64 {
	res := s.getPost()
	if res == nil {
		return 0
	}
	return res.DownVotes
}

func (s *SoPostWrap) MdDownVotes(p uint64) bool {
	sa := s.getPost()
	if sa == nil {
		return false
	}
	sa.DownVotes = p
	return s.update(sa)
}

func (s *SoPostWrap) GetRewarded() bool {
	res := s.getPost()
	if res == nil {
		return false
	}
	return res.Rewarded
}

func (s *SoPostWrap) MdRewarded(p bool) bool {
	sa := s.getPost()
	if sa == nil {
		return false
	}
	sa.Rewarded = p
	return s.update(sa)
}

func (s *SoPostWrap) GetCreated() int64 {
	res := s.getPost()
	if res == nil {
		return 0
	}
	return res.Created
}

// Get loads the whole record.
func (s *SoPostWrap) Get() (*SoPost, error) {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return nil, err
	}
	res := &SoPost{}
	if err = getRecord(s.dba, keyBuf, res); err != nil {
		return nil, err
	}
	return res, nil
}

/////////////// SECTION Private function ////////////////

func (s *SoPostWrap) update(sa *SoPost) bool {
	keyBuf, err := s.encodeMainKey()
	if err != nil {
		return false
	}
	return putRecord(s.dba, keyBuf, sa) == nil
}

func (s *SoPostWrap) getPost() *SoPost {
	res, err := s.Get()
	if err != nil {
		return nil
	}
	return res
}

func (s *SoPostWrap) encodeMainKey() ([]byte, error) {
	return encodeMainKey(PostTable, s.mainKey)
}
