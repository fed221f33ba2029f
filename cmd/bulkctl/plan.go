package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bulkwrite/bulk/batch"
	"github.com/joshuapare/bulkwrite/cmd/bulkctl/logger"
)

var (
	planMaxCount int
	planMaxBytes int
)

func init() {
	cmd := newPlanCmd()
	addLimitFlags(cmd)
	rootCmd.AddCommand(cmd)
}

func addLimitFlags(cmd *cobra.Command) {
	def := batch.DefaultOptions().Limits
	cmd.Flags().IntVar(&planMaxCount, "max-count", def.MaxCount, "Maximum operations per batch")
	cmd.Flags().IntVar(&planMaxBytes, "max-bytes", def.MaxBytes, "Maximum document bytes per batch")
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <request.json>",
		Short: "Split a bulk request into batches",
		Long: `The plan command splits a bulk write request into batches that fit the
given limits and shows which original operations each batch carries.

Example:
  bulkctl plan request.json
  bulkctl plan request.json --max-count 100
  bulkctl plan request.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(args)
		},
	}
	return cmd
}

// batchSummary is the JSON form of a planned batch.
type batchSummary struct {
	Seq       int    `json:"seq"`
	Kind      string `json:"kind"`
	Ops       int    `json:"ops"`
	Bytes     int    `json:"bytes"`
	Map       string `json:"map"`
	Originals []int  `json:"originals"`
}

func planOptions() batch.Options {
	opts := batch.DefaultOptions()
	opts.Limits = batch.Limits{MaxCount: planMaxCount, MaxBytes: planMaxBytes}
	opts.Encoder = batch.JSONEncoder{}
	opts.Logger = logger.L
	return opts
}

func planFile(path string) ([]*batch.Batch, *batch.Request, error) {
	printVerbose("Reading request: %s\n", path)
	req, err := loadRequest(path)
	if err != nil {
		return nil, nil, err
	}
	batches, err := batch.Plan(context.Background(), req, planOptions())
	if err != nil {
		return nil, nil, err
	}
	logger.Info("planned request", "path", path, "ops", req.Size(), "batches", len(batches))
	return batches, req, nil
}

func runPlan(args []string) error {
	batches, req, err := planFile(args[0])
	if err != nil {
		return err
	}

	summaries := make([]batchSummary, 0, len(batches))
	for _, b := range batches {
		orig, err := b.OriginalIndexes()
		if err != nil {
			return err
		}
		summaries = append(summaries, batchSummary{
			Seq:       b.Seq,
			Kind:      b.Kind.String(),
			Ops:       b.Len(),
			Bytes:     b.Bytes,
			Map:       b.Indexes.Kind().String(),
			Originals: orig,
		})
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"ordered": req.Ordered,
			"ops":     req.Size(),
			"batches": summaries,
		})
	}

	mode := "unordered"
	if req.Ordered {
		mode = "ordered"
	}
	printInfo("%s operations (%s) in %d batches\n", formatCount(req.Size()), mode, len(summaries))
	for _, s := range summaries {
		printInfo("  #%d %-6s ops=%d bytes=%s map=%s originals=%s\n",
			s.Seq, s.Kind, s.Ops, formatCount(s.Bytes), s.Map, formatIndexes(s.Originals))
	}
	return nil
}

// formatIndexes renders indexes with contiguous runs collapsed: 0-3,7,9-10.
func formatIndexes(idx []int) string {
	var parts []string
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && idx[j+1] == idx[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, fmt.Sprint(idx[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", idx[i], idx[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
