package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joshuapare/bulkwrite/bulk/batch"
)

// requestFile is the on-disk form of a bulk request.
//
//	{"ordered": true, "writeConcern": {"w": 1}, "ops": [{"op": "insert", "doc": {...}}]}
type requestFile struct {
	Ordered      *bool             `json:"ordered,omitempty"` // default true
	WriteConcern *writeConcernFile `json:"writeConcern,omitempty"`
	Ops          []opFile          `json:"ops"`
}

type writeConcernFile struct {
	W          int  `json:"w"`
	Journal    bool `json:"j,omitempty"`
	WTimeoutMS int  `json:"wtimeoutMS,omitempty"`
}

type opFile struct {
	Op  string          `json:"op"` // "insert", "update", "delete"
	Doc json.RawMessage `json:"doc"`
}

// errorFile is one reported write error, addressed by batch sequence and
// batch-local index.
type errorFile struct {
	Batch   int    `json:"batch"`
	Index   int    `json:"index"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// parseRequest parses a JSON request into a batch.Request.
func parseRequest(data []byte) (*batch.Request, error) {
	var rf requestFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("invalid JSON request: %w", err)
	}

	ordered := true
	if rf.Ordered != nil {
		ordered = *rf.Ordered
	}
	req := batch.NewRequest(ordered)
	if wc := rf.WriteConcern; wc != nil {
		req.WriteConcern = &batch.WriteConcern{
			W:        wc.W,
			Journal:  wc.Journal,
			WTimeout: time.Duration(wc.WTimeoutMS) * time.Millisecond,
		}
	}

	for i, of := range rf.Ops {
		kind, ok := batch.ParseOpKind(of.Op)
		if !ok {
			return nil, fmt.Errorf("operation %d: unknown operation: %q", i, of.Op)
		}
		if len(of.Doc) == 0 {
			return nil, fmt.Errorf("operation %d: missing doc", i)
		}
		req.Ops = append(req.Ops, batch.Op{Kind: kind, Document: of.Doc})
	}
	return req, nil
}

func loadRequest(path string) (*batch.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}
	return parseRequest(data)
}

func loadErrors(path string) ([]errorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read errors: %w", err)
	}
	var out []errorFile
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid JSON errors: %w", err)
	}
	return out, nil
}
