// Package bulk executes a bulk write request by planning it into batches,
// sending each batch through a Sender and merging the replies.
//
// Transport is not part of this module. Callers supply a Sender that delivers
// one batch and returns the server's reply in batch-local positions:
//
//	res, err := bulk.Execute(ctx, req, sender, bulk.DefaultExecOptions())
//	var bwe *result.BulkWriteError
//	if errors.As(err, &bwe) {
//	    for _, we := range bwe.Result.WriteErrors {
//	        fmt.Printf("op %d failed: %s\n", we.Index, we.Message)
//	    }
//	}
//
// Ordered requests are sent one batch at a time and stop after the first batch
// that reports a write error. Unordered requests are sent concurrently, bounded
// by ExecOptions.Concurrency. Every index map is complete before the first send,
// so replies may be translated while other batches are in flight.
package bulk
