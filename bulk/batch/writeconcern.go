package batch

import "time"

// WriteConcern is the durability setting attached to a write. It is carried
// through planning untouched.
type WriteConcern struct {
	// W is the number of acknowledging members; 0 means unacknowledged.
	W int

	// Journal requests an on-disk journal commit before acknowledging.
	Journal bool

	// WTimeout bounds how long the server waits for W acknowledgements.
	WTimeout time.Duration
}

var (
	// Acknowledged waits for the primary only.
	Acknowledged = &WriteConcern{W: 1}

	// Unacknowledged does not wait for any acknowledgement.
	Unacknowledged = &WriteConcern{W: 0}
)

// IsAcknowledged reports whether the server replies to writes.
func (wc *WriteConcern) IsAcknowledged() bool {
	return wc == nil || wc.W > 0 || wc.Journal
}
