package batch

import (
	"encoding/json"
	"fmt"
)

// Encoder turns a document into the bytes that will be sent. Only the length
// of the result matters to the planner, but the bytes are kept on the Batch so
// a sender does not have to encode twice.
type Encoder interface {
	Encode(doc any) ([]byte, error)
}

// RawEncoder passes []byte and string documents through unchanged.
type RawEncoder struct{}

// Encode implements Encoder.
func (RawEncoder) Encode(doc any) ([]byte, error) {
	switch d := doc.(type) {
	case []byte:
		return d, nil
	case string:
		return []byte(d), nil
	case json.RawMessage:
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDocument, doc)
	}
}

// JSONEncoder encodes documents with encoding/json.
type JSONEncoder struct{}

// Encode implements Encoder.
func (JSONEncoder) Encode(doc any) ([]byte, error) {
	if raw, ok := doc.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(doc)
}
