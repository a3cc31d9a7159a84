package storage

import (
	"bytes"
	"testing"
)

func requireSuccessGet(t *testing.T, db DatabaseGetter, key []byte, correctValue []byte) {
	value, err := db.Get(key)
	if err != nil {
		t.Fatalf("Failed Get key=%v, err: %v", string(key), err)
	}
	if !bytes.Equal(value, correctValue) {
		t.Fatalf("Error value for key=%v. got %v, expecting %v", string(key), string(value), string(correctValue))
	}
}

func requireErrorGet(t *testing.T, db DatabaseGetter, key []byte) {
	_, err := db.Get(key)
	if err != ErrNotFound {
		t.Fatalf("Get non-existent key=%v, err: %v", string(key), err)
	}
}

func requireSuccessPut(t *testing.T, db DatabasePutter, key []byte, value []byte) {
	if err := db.Put(key, value); err != nil {
		t.Fatalf("Failed Put key=%v, value=%v, err %v", string(key), string(value), err)
	}
}

func requireSuccessDel(t *testing.T, db DatabaseDeleter, key []byte) {
	if err := db.Delete(key); err != nil {
		t.Fatalf("Failed Delete key=%v, err %v", string(key), err)
	}
}

func collectKeys(db DatabaseScanner, start, limit []byte, reverse bool) []string {
	var keys []string
	db.Iterate(start, limit, reverse, func(key, value []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	return keys
}

func requireKeys(t *testing.T, got []string, expected ...string) {
	if len(got) != len(expected) {
		t.Fatalf("Incorrect key count, got %v, expecting %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("Incorrect key at %d, got %v, expecting %v", i, got, expected)
		}
	}
}

func dbTest(t *testing.T, db Database) {

	// fail to get non-existent keys
	requireErrorGet(t, db, []byte("post_one"))
	requireErrorGet(t, db, []byte("post_two"))
	requireErrorGet(t, db, []byte("vote_one"))

	// normal puts
	requireSuccessPut(t, db, []byte("post_one"), []byte("title_one"))
	requireSuccessPut(t, db, []byte("post_two"), []byte("title_two"))
	requireSuccessPut(t, db, []byte("vote_one"), []byte("up"))

	// fetched values must be the same as put values
	requireSuccessGet(t, db, []byte("post_one"), []byte("title_one"))
	requireSuccessGet(t, db, []byte("post_two"), []byte("title_two"))
	requireSuccessGet(t, db, []byte("vote_one"), []byte("up"))

	if found, err := db.Has([]byte("post_two")); err != nil || !found {
		t.Fatalf("Has post_two: %v, %v", found, err)
	}

	// delete existent keys
	requireSuccessDel(t, db, []byte("post_two"))

	// it's ok to return nil error when deleting non-existent keys
	requireSuccessDel(t, db, []byte("post_ten"))

	// post_two was deleted, cannot get it
	requireErrorGet(t, db, []byte("post_two"))

	// range scan. vote_one is filtered by limit "post_z"
	requireSuccessPut(t, db, []byte("post_three"), []byte("title_three"))
	requireKeys(t, collectKeys(db, []byte("post_"), []byte("post_z"), false), "post_one", "post_three")
	requireKeys(t, collectKeys(db, nil, nil, true), "vote_one", "post_three", "post_one")

	// early stop
	count := 0
	db.Iterate(nil, nil, false, func(key, value []byte) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Iterate did not stop, visited %d keys", count)
	}

	// batch of deletions and puts
	b := db.NewBatch()
	_ = b.Delete([]byte("post_one"))
	_ = b.Delete([]byte("post_three"))
	_ = b.Put([]byte("vote_one"), []byte("down"))
	if err := b.Write(); err != nil {
		t.Fatal(err)
	}
	db.DeleteBatch(b)

	// test what's left by the batch
	requireSuccessGet(t, db, []byte("vote_one"), []byte("down"))
	requireErrorGet(t, db, []byte("post_one"))
	requireErrorGet(t, db, []byte("post_three"))
}

func TestMemoryDatabase(t *testing.T) {
	db := NewMemoryDatabase()
	defer db.Close()

	dbTest(t, db)
}

func TestLevelDatabase(t *testing.T) {
	db, err := NewLevelDatabase(t.TempDir(), LevelOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	dbTest(t, db)
}

func TestLevelDatabaseReopen(t *testing.T) {
	dir := t.TempDir()
	db, err := NewLevelDatabase(dir, LevelOptions{Sync: true})
	if err != nil {
		t.Fatal(err)
	}
	requireSuccessPut(t, db, []byte("post_one"), []byte("title_one"))
	db.Close()

	db, err = NewLevelDatabase(dir, LevelOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	requireSuccessGet(t, db, []byte("post_one"), []byte("title_one"))
}

func TestDatabaseServiceBackends(t *testing.T) {
	if _, err := NewDatabaseService("rocksdb", "", LevelOptions{}); err == nil {
		t.Fatal("unknown backend accepted")
	}
	if _, err := NewDatabaseService(BackendLevelDB, "", LevelOptions{}); err == nil {
		t.Fatal("leveldb backend without path accepted")
	}

	s, err := NewDatabaseService(BackendLevelDB, t.TempDir(), LevelOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if err = s.Open(); err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	dbTest(t, s)
}
