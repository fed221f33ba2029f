// Package result merges per-batch replies into one result expressed in the
// caller's original positions.
//
// A Collector is fed each Batch together with the reply it received. Write
// errors in the reply carry local indices; the Collector translates them
// through the batch's index map before recording them. A translation failure
// means the planner and the reply disagree about what was sent, and is
// returned as an error rather than recorded.
//
// Example:
//
//	c := result.NewCollector(req.Ordered)
//	for _, b := range batches {
//	    reply, err := send(ctx, b)
//	    if err != nil {
//	        return err
//	    }
//	    if err := c.Add(b, reply); err != nil {
//	        return err
//	    }
//	    if !c.Continue() {
//	        break
//	    }
//	}
//	return c.Result(), c.Err()
package result
