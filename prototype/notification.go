package prototype

// OperationNotification is published once an operation has committed.
type OperationNotification struct {
	Name    string
	Signer  Address
	Op      BaseOperation
	Status  uint32
	Applied int64
}
