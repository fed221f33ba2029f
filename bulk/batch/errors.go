package batch

import "errors"

var (
	// ErrEmptyRequest indicates a request with no operations.
	ErrEmptyRequest = errors.New("batch: request has no operations")

	// ErrInvalidLimits indicates a non-positive MaxCount or MaxBytes.
	ErrInvalidLimits = errors.New("batch: limits must be positive")

	// ErrDocumentTooLarge indicates a single encoded document exceeds MaxBytes.
	ErrDocumentTooLarge = errors.New("batch: document exceeds max batch bytes")

	// ErrUnknownOp indicates an operation with an OpKind outside the known set.
	ErrUnknownOp = errors.New("batch: unknown operation kind")

	// ErrUnsupportedDocument indicates the encoder cannot handle a document type.
	ErrUnsupportedDocument = errors.New("batch: unsupported document type")
)
