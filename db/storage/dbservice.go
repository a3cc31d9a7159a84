package storage

//
// This file implements the database service.
//
// the service uses levelDB (or a memory map) as the underlying kv-store with
// additional support for nested transactions.
//
// NewDatabaseService() creates a service instance, Open() must be called before use.
//

import (
	"github.com/pkg/errors"
)

const (
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

// the service type
type DatabaseService struct {
	backend string
	path    string
	options LevelOptions
	db      Database
	tdb     *TransactionalDatabase
}

// service constructor
func NewDatabaseService(backend string, path string, options LevelOptions) (*DatabaseService, error) {
	switch backend {
	case BackendLevelDB:
		if len(path) == 0 {
			return nil, errors.New("leveldb backend requires a path")
		}
	case BackendMemory:
	default:
		return nil, errors.Errorf("unknown database backend %q", backend)
	}
	return &DatabaseService{backend: backend, path: path, options: options}, nil
}

// NewMemoryDatabaseService returns an opened service backed by memory.
func NewMemoryDatabaseService() *DatabaseService {
	db := NewMemoryDatabase()
	return &DatabaseService{backend: BackendMemory, db: db, tdb: NewTransactionalDatabase(db)}
}

func (s *DatabaseService) Open() error {
	if s.tdb != nil {
		return nil
	}
	var db Database
	switch s.backend {
	case BackendLevelDB:
		ldb, err := NewLevelDatabase(s.path, s.options)
		if err != nil {
			return errors.Wrapf(err, "failed to open or create leveldb at %s", s.path)
		}
		db = ldb
	default:
		db = NewMemoryDatabase()
	}
	s.db, s.tdb = db, NewTransactionalDatabase(db)
	return nil
}

func (s *DatabaseService) Backend() string {
	return s.backend
}

//
// implementation of Transactional interface
//

func (s *DatabaseService) BeginTransaction() {
	s.tdb.BeginTransaction()
}

func (s *DatabaseService) EndTransaction(commit bool) error {
	return s.tdb.EndTransaction(commit)
}

func (s *DatabaseService) TransactionHeight() uint {
	return s.tdb.TransactionHeight()
}

//
// implementation of Database interface
//

func (s *DatabaseService) Has(key []byte) (bool, error) {
	return s.tdb.Has(key)
}

func (s *DatabaseService) Get(key []byte) ([]byte, error) {
	return s.tdb.Get(key)
}

func (s *DatabaseService) Put(key []byte, value []byte) error {
	return s.tdb.Put(key, value)
}

func (s *DatabaseService) Delete(key []byte) error {
	return s.tdb.Delete(key)
}

func (s *DatabaseService) Iterate(start, limit []byte, reverse bool, callback func(key, value []byte) bool) {
	s.tdb.Iterate(start, limit, reverse, callback)
}

func (s *DatabaseService) NewBatch() Batch {
	return s.tdb.NewBatch()
}

func (s *DatabaseService) DeleteBatch(b Batch) {
	s.tdb.DeleteBatch(b)
}

func (s *DatabaseService) Close() {
	if s.tdb != nil {
		s.tdb.Close()
	}
	s.db, s.tdb = nil, nil
}
