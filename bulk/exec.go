package bulk

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/bulkwrite/bulk/batch"
	"github.com/joshuapare/bulkwrite/bulk/result"
)

// Sender delivers one batch and returns its reply with batch-local indices.
type Sender interface {
	Send(ctx context.Context, b *batch.Batch) (result.BatchResult, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, b *batch.Batch) (result.BatchResult, error)

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, b *batch.Batch) (result.BatchResult, error) {
	return f(ctx, b)
}

const defaultConcurrency = 4

// ExecOptions configures Execute.
type ExecOptions struct {
	// Options configures planning.
	Options batch.Options

	// Concurrency bounds in-flight batches for unordered requests.
	// Values below 1 are treated as 1.
	// Default: 4
	Concurrency int
}

// DefaultExecOptions returns default planning options and concurrency.
func DefaultExecOptions() ExecOptions {
	return ExecOptions{
		Options:     batch.DefaultOptions(),
		Concurrency: defaultConcurrency,
	}
}

// Execute plans req, sends every batch and merges the replies.
//
// A transport error from the Sender aborts execution and is returned wrapped
// with the batch sequence; the partial result is still returned. If any batch
// reported write or write concern errors the error is a *result.BulkWriteError.
func Execute(ctx context.Context, req *batch.Request, s Sender, opts ExecOptions) (result.BulkResult, error) {
	batches, err := batch.Plan(ctx, req, opts.Options)
	if err != nil {
		return result.BulkResult{}, err
	}

	c := result.NewCollector(req.Ordered)
	if req.Ordered {
		err = sendOrdered(ctx, batches, s, c)
	} else {
		err = sendUnordered(ctx, batches, s, c, opts.Concurrency)
	}
	if err != nil {
		return c.Result(), err
	}
	return c.Result(), c.Err()
}

func sendOrdered(ctx context.Context, batches []*batch.Batch, s Sender, c *result.Collector) error {
	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return err
		}
		reply, err := s.Send(ctx, b)
		if err != nil {
			return fmt.Errorf("bulk: send batch %d: %w", b.Seq, err)
		}
		if err := c.Add(b, reply); err != nil {
			return err
		}
		if !c.Continue() {
			return nil
		}
	}
	return nil
}

func sendUnordered(ctx context.Context, batches []*batch.Batch, s Sender, c *result.Collector, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	for _, b := range batches {
		g.Go(func() error {
			reply, err := s.Send(gctx, b)
			if err != nil {
				return fmt.Errorf("bulk: send batch %d: %w", b.Seq, err)
			}
			mu.Lock()
			defer mu.Unlock()
			return c.Add(b, reply)
		})
	}
	return g.Wait()
}
