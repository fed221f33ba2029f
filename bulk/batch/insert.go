package batch

// Insert holds one or more documents to insert with an optional write concern.
type Insert struct {
	documents    []any
	writeConcern *WriteConcern
}

// NewInsert creates an Insert of at least one document.
func NewInsert(doc any, more ...any) *Insert {
	docs := make([]any, 0, 1+len(more))
	docs = append(docs, doc)
	docs = append(docs, more...)
	return &Insert{documents: docs}
}

// NewInsertMany creates an Insert of docs.
func NewInsertMany(docs []any) *Insert {
	return &Insert{documents: docs}
}

// Documents returns the documents to insert.
func (in *Insert) Documents() []any {
	return in.documents
}

// WriteConcern returns the write concern, or nil if none was set.
func (in *Insert) WriteConcern() *WriteConcern {
	return in.writeConcern
}

// WithWriteConcern sets the write concern and returns in.
func (in *Insert) WithWriteConcern(wc *WriteConcern) *Insert {
	in.writeConcern = wc
	return in
}

// WithWriteConcernIfAbsent sets the write concern only if none is set yet.
func (in *Insert) WithWriteConcernIfAbsent(wc *WriteConcern) *Insert {
	if in.writeConcern == nil {
		in.writeConcern = wc
	}
	return in
}

// Request converts the insert into an ordered bulk request.
func (in *Insert) Request() *Request {
	req := &Request{
		Ops:          make([]Op, 0, len(in.documents)),
		Ordered:      true,
		WriteConcern: in.writeConcern,
	}
	for _, doc := range in.documents {
		req.AddInsert(doc)
	}
	return req
}
