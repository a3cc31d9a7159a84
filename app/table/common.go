package table

import (
	"errors"

	"github.com/coschain/creatorfund-go/iservices"
	"github.com/coschain/creatorfund-go/prototype"
	proto "github.com/gogo/protobuf/proto"
)

var (
	errNoDatabase   = errors.New("the database is nil")
	errMainKeyExist = errors.New("the mainkey is already exist")
	errMainKeyNil   = errors.New("the mainKey is nil")
)

func encodeMainKey(prefix []byte, key *prototype.Address) ([]byte, error) {
	if key == nil {
		return nil, errMainKeyNil
	}
	buf := make([]byte, 0, len(prefix)+prototype.AddressLength)
	buf = append(buf, prefix...)
	return append(buf, key[:]...), nil
}

func checkExist(dba iservices.IDatabaseRW, keyBuf []byte) bool {
	if dba == nil {
		return false
	}
	res, err := dba.Has(keyBuf)
	if err != nil {
		return false
	}
	return res
}

func getRecord(dba iservices.IDatabaseRW, keyBuf []byte, val proto.Message) error {
	if dba == nil {
		return errNoDatabase
	}
	resBuf, err := dba.Get(keyBuf)
	if err != nil {
		return err
	}
	return proto.Unmarshal(resBuf, val)
}

func putRecord(dba iservices.IDatabaseRW, keyBuf []byte, val proto.Message) error {
	if dba == nil {
		return errNoDatabase
	}
	resBuf, err := proto.Marshal(val)
	if err != nil {
		return err
	}
	return dba.Put(keyBuf, resBuf)
}

// createRecord inserts val at keyBuf unless a record is already there.
// Callers run inside a serialized transaction, which makes the existence check
// and the insertion one step.
func createRecord(dba iservices.IDatabaseRW, keyBuf []byte, val proto.Message) error {
	if dba == nil {
		return errNoDatabase
	}
	if checkExist(dba, keyBuf) {
		return errMainKeyExist
	}
	return putRecord(dba, keyBuf, val)
}

// IsMainKeyExist reports whether err came from creating a record that already exists.
func IsMainKeyExist(err error) bool {
	return err == errMainKeyExist
}
