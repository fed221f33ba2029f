package batch

// OpKind is the kind of write operation. Operations of different kinds are
// never mixed in one batch.
type OpKind uint8

const (
	// OpInsert inserts Document.
	OpInsert OpKind = iota
	// OpUpdate applies Document as an update.
	OpUpdate
	// OpDelete deletes documents matching Document.
	OpDelete
)

// opKinds lists every kind in the order unordered requests are grouped.
var opKinds = [...]OpKind{OpInsert, OpUpdate, OpDelete}

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ParseOpKind converts "insert", "update" or "delete" to an OpKind.
func ParseOpKind(s string) (OpKind, bool) {
	for _, k := range opKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Op is a single write in a bulk request.
type Op struct {
	Kind OpKind

	// Document is the payload handed to the Encoder.
	Document any
}

// Request is a logical bulk write as built by the caller.
type Request struct {
	// Ops is the caller's ordered list of operations. Original indices in
	// results refer to positions in this slice.
	Ops []Op

	// Ordered requests stop at the first failing batch and keep request order.
	Ordered bool

	// WriteConcern is carried through unchanged; nil means the server default.
	WriteConcern *WriteConcern
}

// NewRequest creates an empty request.
func NewRequest(ordered bool) *Request {
	return &Request{
		Ops:     make([]Op, 0),
		Ordered: ordered,
	}
}

// AddInsert appends an insert operation.
func (r *Request) AddInsert(doc any) {
	r.Ops = append(r.Ops, Op{Kind: OpInsert, Document: doc})
}

// AddUpdate appends an update operation.
func (r *Request) AddUpdate(doc any) {
	r.Ops = append(r.Ops, Op{Kind: OpUpdate, Document: doc})
}

// AddDelete appends a delete operation.
func (r *Request) AddDelete(doc any) {
	r.Ops = append(r.Ops, Op{Kind: OpDelete, Document: doc})
}

// Size returns the number of operations in the request.
func (r *Request) Size() int {
	return len(r.Ops)
}
