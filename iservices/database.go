package iservices

//
// This file defines interfaces of Database service.
//

//
// Read & write access to records.
// Implementations used by evaluators must be transactional, see IDatabaseService.
//
type IDatabaseRW interface {
	// check existence of the given key
	Has(key []byte) (bool, error)

	// query the value of the given key
	Get(key []byte) ([]byte, error)

	// insert a new key-value pair, or update the value if the given key already exists
	Put(key []byte, value []byte) error

	// delete the given key and its value
	// if the given key does not exist, just return nil, indicating a successful deletion without doing anything.
	Delete(key []byte) error
}

//
// Database Service
//
type IDatabaseService interface {
	IDatabaseRW

	// visit keys in [start, limit), stop when callback returns false
	Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool)

	// start a transaction session. sessions can be nested.
	BeginTransaction()

	// end the top-most session, commit or discard its changes
	EndTransaction(commit bool) error

	// number of sessions in progress
	TransactionHeight() uint

	Close()
}
