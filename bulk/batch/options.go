package batch

import (
	"io"
	"log/slog"
)

const (
	// defaultMaxCount matches the server's maxWriteBatchSize.
	defaultMaxCount = 1000

	// defaultMaxBytes matches the server's maxMessageSizeBytes.
	defaultMaxBytes = 48_000_000
)

// Limits bounds the size of a single batch.
type Limits struct {
	// MaxCount is the maximum number of operations per batch.
	// Default: 1000
	MaxCount int

	// MaxBytes is the maximum sum of encoded document sizes per batch.
	// Default: 48000000
	MaxBytes int
}

// Validate reports ErrInvalidLimits if either limit is not positive.
func (l Limits) Validate() error {
	if l.MaxCount <= 0 || l.MaxBytes <= 0 {
		return ErrInvalidLimits
	}
	return nil
}

// Options configures planning.
//
// Use DefaultOptions() for server defaults.
type Options struct {
	// Limits bounds each batch.
	Limits Limits

	// Encoder measures documents.
	// Default: RawEncoder
	Encoder Encoder

	// Logger receives one debug record per planned batch.
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns the server's default batch limits with a RawEncoder
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{
			MaxCount: defaultMaxCount,
			MaxBytes: defaultMaxBytes,
		},
		Encoder: RawEncoder{},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Limits.MaxCount == 0 {
		o.Limits.MaxCount = def.Limits.MaxCount
	}
	if o.Limits.MaxBytes == 0 {
		o.Limits.MaxBytes = def.Limits.MaxBytes
	}
	if o.Encoder == nil {
		o.Encoder = def.Encoder
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}
