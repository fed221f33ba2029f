package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bulkwrite/bulk/batch"
	"github.com/joshuapare/bulkwrite/bulk/result"
	"github.com/joshuapare/bulkwrite/cmd/bulkctl/logger"
)

func init() {
	cmd := newMapCmd()
	addLimitFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <request.json> <errors.json>",
		Short: "Map batch-local write errors to original positions",
		Long: `The map command plans a request with the given limits, then replays a
list of write errors reported against batch-local positions and prints each
error at its position in the original request.

The errors file is a JSON array:
  [{"batch": 1, "index": 0, "code": 11000, "message": "duplicate key"}]

For ordered requests, batches after the first failing batch are reported as
not sent.

Example:
  bulkctl map request.json errors.json
  bulkctl map request.json errors.json --max-count 2 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(args)
		},
	}
	return cmd
}

// mapReport is the JSON form of a correlated result.
type mapReport struct {
	Result   result.BulkResult `json:"result"`
	Kinds    []string          `json:"kinds"` // op kind per write error
	Sent     int               `json:"sent"`
	Batches  int               `json:"batches"`
	Complete bool              `json:"complete"`
}

func runMap(args []string) error {
	batches, req, err := planFile(args[0])
	if err != nil {
		return err
	}
	reported, err := loadErrors(args[1])
	if err != nil {
		return err
	}

	replies := make(map[int]*result.BatchResult, len(batches))
	for _, b := range batches {
		replies[b.Seq] = &result.BatchResult{N: b.Len()}
	}
	for i, e := range reported {
		r, ok := replies[e.Batch]
		if !ok {
			return fmt.Errorf("error %d: batch %d not in plan (%d batches)", i, e.Batch, len(batches))
		}
		r.WriteErrors = append(r.WriteErrors, result.WriteError{Index: e.Index, Code: e.Code, Message: e.Message})
		r.N--
	}

	c := result.NewCollector(req.Ordered)
	sent := 0
	for _, b := range batches {
		if err := c.Add(b, *replies[b.Seq]); err != nil {
			return err
		}
		sent++
		logger.Debug("merged batch", "seq", b.Seq, "errors", len(replies[b.Seq].WriteErrors))
		if !c.Continue() {
			break
		}
	}

	res := c.Result()
	kinds := make([]string, len(res.WriteErrors))
	for i, we := range res.WriteErrors {
		kinds[i] = kindAt(req, we.Index)
	}

	if jsonOut {
		return printJSON(mapReport{
			Result:   res,
			Kinds:    kinds,
			Sent:     sent,
			Batches:  len(batches),
			Complete: sent == len(batches),
		})
	}

	printInfo("inserted=%d updated=%d deleted=%d batches=%d/%d\n",
		res.Inserted, res.Updated, res.Deleted, sent, len(batches))
	for i, we := range res.WriteErrors {
		printInfo("  op %d (%s): code %d: %s\n", we.Index, kinds[i], we.Code, we.Message)
	}
	if sent < len(batches) {
		printInfo("stopped after batch %d; %d batch(es) not sent\n", sent-1, len(batches)-sent)
	}
	return nil
}

func kindAt(req *batch.Request, i int) string {
	if i < 0 || i >= len(req.Ops) {
		return "unknown"
	}
	return req.Ops[i].Kind.String()
}
