package storage

// defines a database writing operation (put or delete)
type writeOp struct {
	Key, Value []byte
	Del        bool
}

func inRange(key string, start, limit []byte) bool {
	if start != nil && key < string(start) {
		return false
	}
	if limit != nil && key >= string(limit) {
		return false
	}
	return true
}
