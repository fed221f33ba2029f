package batch

import (
	"context"
	"fmt"

	"github.com/joshuapare/bulkwrite/bulk/indexmap"
)

// Batch is one physical sub-batch of a Request.
type Batch struct {
	// Seq is the position of the batch in the plan, starting at 0.
	Seq int

	// Kind is shared by every op in the batch.
	Kind OpKind

	// Ops are the operations in send order.
	Ops []Op

	// Docs holds the encoded form of Ops[i].Document at Docs[i].
	Docs [][]byte

	// Bytes is the sum of len(Docs[i]).
	Bytes int

	// Indexes maps a position in Ops to a position in Request.Ops.
	Indexes indexmap.IndexMap
}

// Len returns the number of operations in the batch.
func (b *Batch) Len() int {
	return len(b.Ops)
}

// OriginalIndexes returns the request position of every op in the batch.
func (b *Batch) OriginalIndexes() ([]int, error) {
	out := make([]int, len(b.Ops))
	for i := range b.Ops {
		orig, err := b.Indexes.Map(i)
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", b.Seq, err)
		}
		out[i] = orig
	}
	return out, nil
}

// encoded is an op of the request with its encoded document.
type encoded struct {
	orig int
	op   Op
	doc  []byte
}

// Plan splits req into batches that respect opts.Limits.
//
// Zero-valued fields of opts fall back to DefaultOptions. The context is
// checked once per operation.
func Plan(ctx context.Context, req *Request, opts Options) ([]*Batch, error) {
	if req == nil || len(req.Ops) == 0 {
		return nil, ErrEmptyRequest
	}
	opts = opts.withDefaults()
	if err := opts.Limits.Validate(); err != nil {
		return nil, err
	}

	items := make([]encoded, len(req.Ops))
	for i, op := range req.Ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if int(op.Kind) >= len(opKinds) {
			return nil, fmt.Errorf("%w: op %d has kind %d", ErrUnknownOp, i, op.Kind)
		}
		doc, err := opts.Encoder.Encode(op.Document)
		if err != nil {
			return nil, fmt.Errorf("batch: encode op %d: %w", i, err)
		}
		if len(doc) > opts.Limits.MaxBytes {
			return nil, fmt.Errorf("%w: op %d is %d bytes, limit %d",
				ErrDocumentTooLarge, i, len(doc), opts.Limits.MaxBytes)
		}
		items[i] = encoded{orig: i, op: op, doc: doc}
	}

	p := &planner{opts: opts}
	if req.Ordered {
		p.planOrdered(items)
	} else {
		p.planUnordered(items)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.out, nil
}

type planner struct {
	opts Options
	out  []*Batch
	err  error
}

// planOrdered cuts runs of consecutive same-kind ops. Every batch covers a
// contiguous slice of items, so its map is a pre-seeded Range.
func (p *planner) planOrdered(items []encoded) {
	runStart := 0
	for i := 1; i <= len(items); i++ {
		if i < len(items) && items[i].op.Kind == items[runStart].op.Kind {
			continue
		}
		p.split(items[runStart:i], func(part []encoded) (indexmap.IndexMap, error) {
			return indexmap.NewRange(part[0].orig, len(part))
		})
		runStart = i
	}
}

// planUnordered groups ops by kind regardless of position. A group with gaps
// ends up with a Table-backed map.
func (p *planner) planUnordered(items []encoded) {
	var groups [len(opKinds)][]encoded
	for _, it := range items {
		groups[it.op.Kind] = append(groups[it.op.Kind], it)
	}
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		p.split(group, func(part []encoded) (indexmap.IndexMap, error) {
			m := indexmap.New()
			for local, it := range part {
				m = m.Add(local, it.orig)
			}
			return m, nil
		})
	}
}

// split cuts items into batches at the count and byte limits.
func (p *planner) split(items []encoded, mapper func([]encoded) (indexmap.IndexMap, error)) {
	lim := p.opts.Limits
	start, bytes := 0, 0
	for i := 0; i <= len(items); i++ {
		full := i == len(items) ||
			i-start == lim.MaxCount ||
			bytes+len(items[i].doc) > lim.MaxBytes
		if full && i > start {
			p.emit(items[start:i], bytes, mapper)
			start, bytes = i, 0
		}
		if i < len(items) {
			bytes += len(items[i].doc)
		}
	}
}

func (p *planner) emit(part []encoded, bytes int, mapper func([]encoded) (indexmap.IndexMap, error)) {
	if p.err != nil {
		return
	}
	m, err := mapper(part)
	if err != nil {
		p.err = err
		return
	}
	b := &Batch{
		Seq:     len(p.out),
		Kind:    part[0].op.Kind,
		Ops:     make([]Op, len(part)),
		Docs:    make([][]byte, len(part)),
		Bytes:   bytes,
		Indexes: m,
	}
	for i, it := range part {
		b.Ops[i] = it.op
		b.Docs[i] = it.doc
	}
	p.out = append(p.out, b)

	p.opts.Logger.Debug("planned batch",
		"seq", b.Seq,
		"kind", b.Kind.String(),
		"ops", len(part),
		"bytes", bytes,
		"map", m.Kind().String(),
	)
}
