package libdiff

// A diff is an Object with a single member whose key names the operation.
const (
	DeleteOp  = "!delete"
	InsertOp  = "!insert"
	ReplaceOp = "!replace"
	ObjectOp  = "!object"
	ArrayOp   = "!array"
	StringOp  = "!string"
)
