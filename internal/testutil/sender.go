package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/joshuapare/bulkwrite/bulk/batch"
	"github.com/joshuapare/bulkwrite/bulk/result"
)

// Reply is a scripted answer for one batch.
type Reply struct {
	// WriteErrors use batch-local indices, as a server would report them.
	WriteErrors []result.WriteError

	WriteConcernError *result.WriteConcernError

	// Err simulates a transport failure.
	Err error
}

// ScriptedSender answers batches by sequence number. Batches without a script
// succeed with N equal to the batch length minus its write errors.
// It is safe for concurrent use.
type ScriptedSender struct {
	mu      sync.Mutex
	replies map[int]Reply
	sent    []int
	docs    map[int][][]byte
}

// NewScriptedSender creates a sender with the given replies keyed by batch Seq.
func NewScriptedSender(replies map[int]Reply) *ScriptedSender {
	if replies == nil {
		replies = make(map[int]Reply)
	}
	return &ScriptedSender{
		replies: replies,
		docs:    make(map[int][][]byte),
	}
}

// Send implements bulk.Sender.
func (s *ScriptedSender) Send(ctx context.Context, b *batch.Batch) (result.BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return result.BatchResult{}, err
	}

	s.mu.Lock()
	s.sent = append(s.sent, b.Seq)
	s.docs[b.Seq] = b.Docs
	reply := s.replies[b.Seq]
	s.mu.Unlock()

	if reply.Err != nil {
		return result.BatchResult{}, reply.Err
	}
	return result.BatchResult{
		N:                 b.Len() - len(reply.WriteErrors),
		WriteErrors:       reply.WriteErrors,
		WriteConcernError: reply.WriteConcernError,
	}, nil
}

// Sent returns the sequence numbers of every batch sent, in send order.
func (s *ScriptedSender) Sent() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.sent...)
}

// SentSorted returns the sequence numbers of every batch sent, ascending.
func (s *ScriptedSender) SentSorted() []int {
	out := s.Sent()
	sort.Ints(out)
	return out
}

// Docs returns the encoded documents delivered for batch seq.
func (s *ScriptedSender) Docs(seq int) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[seq]
}
