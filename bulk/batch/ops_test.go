package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpKind_StringRoundTrip(t *testing.T) {
	for _, k := range opKinds {
		got, ok := ParseOpKind(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, got)
	}
	_, ok := ParseOpKind("upsert")
	require.False(t, ok)
	require.Equal(t, "unknown", OpKind(42).String())
}

func TestInsert_WriteConcern(t *testing.T) {
	in := NewInsert("a", "b", "c")
	require.Equal(t, []any{"a", "b", "c"}, in.Documents())
	require.Nil(t, in.WriteConcern())

	in.WithWriteConcernIfAbsent(Acknowledged)
	require.Same(t, Acknowledged, in.WriteConcern())

	in.WithWriteConcernIfAbsent(Unacknowledged)
	require.Same(t, Acknowledged, in.WriteConcern(), "IfAbsent must not replace")

	wc := &WriteConcern{W: 2, WTimeout: time.Second}
	require.Same(t, in, in.WithWriteConcern(wc))
	require.Same(t, wc, in.WriteConcern())
}

func TestInsert_Request(t *testing.T) {
	in := NewInsertMany([]any{"x", "y"}).WithWriteConcern(Unacknowledged)

	req := in.Request()
	require.True(t, req.Ordered)
	require.Equal(t, 2, req.Size())
	require.Same(t, Unacknowledged, req.WriteConcern)
	for i, op := range req.Ops {
		require.Equal(t, OpInsert, op.Kind)
		require.Equal(t, in.Documents()[i], op.Document)
	}
}

func TestWriteConcern_IsAcknowledged(t *testing.T) {
	var nilWC *WriteConcern
	require.True(t, nilWC.IsAcknowledged())
	require.True(t, Acknowledged.IsAcknowledged())
	require.False(t, Unacknowledged.IsAcknowledged())
	require.True(t, (&WriteConcern{Journal: true}).IsAcknowledged())
}

func TestOptions_Defaults(t *testing.T) {
	opt := DefaultOptions()
	if opt.Limits.MaxCount != 1000 {
		t.Errorf("Default MaxCount: got %d, want 1000", opt.Limits.MaxCount)
	}
	if opt.Limits.MaxBytes != 48_000_000 {
		t.Errorf("Default MaxBytes: got %d, want 48000000", opt.Limits.MaxBytes)
	}
	if _, ok := opt.Encoder.(RawEncoder); !ok {
		t.Errorf("Default Encoder: got %T, want RawEncoder", opt.Encoder)
	}
	if opt.Logger == nil {
		t.Error("Default Logger is nil")
	}

	filled := Options{Limits: Limits{MaxCount: 5}}.withDefaults()
	require.Equal(t, 5, filled.Limits.MaxCount)
	require.Equal(t, defaultMaxBytes, filled.Limits.MaxBytes)
	require.NoError(t, filled.Limits.Validate())
}
