package indexmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, m IndexMap, index int) int {
	t.Helper()
	orig, err := m.Map(index)
	require.NoError(t, err, "Map(%d)", index)
	return orig
}

func Test_NewRange_ContiguousMapping(t *testing.T) {
	cases := []struct {
		start, count int
	}{
		{0, 0},
		{0, 1},
		{0, 3},
		{7, 1},
		{100, 4},
		{1 << 20, 64},
	}
	for _, tc := range cases {
		m, err := NewRange(tc.start, tc.count)
		require.NoError(t, err)
		require.Equal(t, KindRange, m.Kind())
		require.Equal(t, tc.count, m.Len())
		for i := 0; i < tc.count; i++ {
			require.Equal(t, tc.start+i, mustMap(t, m, i))
		}
	}
}

func Test_Range_SequentialAddStaysRange(t *testing.T) {
	const n = 1000
	m := New()
	for i := 0; i < n; i++ {
		m = m.Add(i, i)
		require.Equal(t, KindRange, m.Kind(), "promoted at i=%d", i)
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, i, mustMap(t, m, i))
	}
}

func Test_Range_NonContiguousAddPromotes(t *testing.T) {
	m, err := NewRange(0, 3)
	require.NoError(t, err)

	promoted := m.Add(5, 10)
	require.Equal(t, KindTable, promoted.Kind())
	require.NotSame(t, m, promoted)
	require.Equal(t, 4, promoted.Len())

	assert.Equal(t, 0, mustMap(t, promoted, 0))
	assert.Equal(t, 1, mustMap(t, promoted, 1))
	assert.Equal(t, 2, mustMap(t, promoted, 2))
	assert.Equal(t, 10, mustMap(t, promoted, 5))

	// The discarded Range is not mutated by the promotion.
	require.Equal(t, 3, m.Len())
	_, err = m.Map(3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func Test_Range_MapOutOfRange(t *testing.T) {
	m, err := NewRange(0, 3)
	require.NoError(t, err)

	for _, idx := range []int{3, -1, 42} {
		_, err := m.Map(idx)
		require.ErrorIs(t, err, ErrOutOfRange, "Map(%d)", idx)
	}
}

func Test_Table_MapMissingEntry(t *testing.T) {
	m, err := NewRange(0, 3)
	require.NoError(t, err)
	m = m.Add(5, 10)
	require.Equal(t, KindTable, m.Kind())

	_, err = m.Map(3)
	require.ErrorIs(t, err, ErrMappingNotFound)
	require.NotErrorIs(t, err, ErrOutOfRange)

	_, err = m.Map(-1)
	require.ErrorIs(t, err, ErrMappingNotFound)
}

func Test_NegativeArgumentsRejected(t *testing.T) {
	_, err := NewRange(-1, 5)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewRange(0, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTable(-1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTable(3, -2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func Test_ScenarioA_BuildFromEmpty(t *testing.T) {
	m := New()
	m = m.Add(0, 0)
	m = m.Add(1, 1)
	m = m.Add(2, 2)

	require.Equal(t, KindRange, m.Kind())
	require.Equal(t, 0, mustMap(t, m, 0))
	require.Equal(t, 1, mustMap(t, m, 1))
	require.Equal(t, 2, mustMap(t, m, 2))
}

func Test_ScenarioB_PreSeededOffset(t *testing.T) {
	m, err := NewRange(100, 4)
	require.NoError(t, err)

	require.Equal(t, 100, mustMap(t, m, 0))
	require.Equal(t, 103, mustMap(t, m, 3))

	_, err = m.Map(4)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func Test_ScenarioC_PromoteOnGap(t *testing.T) {
	m, err := NewRange(0, 2)
	require.NoError(t, err)

	m = m.Add(2, 50)
	require.Equal(t, KindTable, m.Kind())
	require.Equal(t, 0, mustMap(t, m, 0))
	require.Equal(t, 1, mustMap(t, m, 1))
	require.Equal(t, 50, mustMap(t, m, 2))
}

func Test_Range_FirstAddIgnoresLocalIndex(t *testing.T) {
	m := New().Add(4, 9)

	require.Equal(t, KindRange, m.Kind())
	require.Equal(t, 1, m.Len())
	require.Equal(t, 9, mustMap(t, m, 0))

	_, err := m.Map(4)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func Test_Range_Bounds(t *testing.T) {
	r := &Range{}
	start, count := r.Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 0, count)

	m := r.Add(0, 12).Add(1, 13).Add(2, 14)
	require.Same(t, r, m)

	start, count = r.Bounds()
	require.Equal(t, 12, start)
	require.Equal(t, 3, count)
}

func Test_Range_EmptyMapFails(t *testing.T) {
	_, err := New().Map(0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func Test_Table_StaysTable(t *testing.T) {
	tbl, err := NewTable(10, 2)
	require.NoError(t, err)

	var m IndexMap = tbl
	m = m.Add(2, 12)
	m = m.Add(3, 0)
	require.Same(t, tbl, m)
	require.Equal(t, KindTable, m.Kind())
	require.Equal(t, 4, m.Len())

	require.Equal(t, 10, mustMap(t, m, 0))
	require.Equal(t, 11, mustMap(t, m, 1))
	require.Equal(t, 12, mustMap(t, m, 2))
	require.Equal(t, 0, mustMap(t, m, 3))
}

func Test_Table_AddOverwrites(t *testing.T) {
	tbl, err := NewTable(0, 3)
	require.NoError(t, err)

	tbl.Add(1, 99)
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, 99, mustMap(t, tbl, 1))
}

func Test_Table_ZeroValue(t *testing.T) {
	var tbl Table
	require.Equal(t, 0, tbl.Len())

	_, err := tbl.Map(0)
	require.ErrorIs(t, err, ErrMappingNotFound)

	tbl.Add(0, 7)
	require.Equal(t, 7, mustMap(t, &tbl, 0))
}

func Test_Range_PromotionAfterGrowth(t *testing.T) {
	// 0->3, 1->4, 2->5 then a jump back to the start of the request.
	m := New()
	for i, orig := range []int{3, 4, 5, 0, 1} {
		m = m.Add(i, orig)
	}
	require.Equal(t, KindTable, m.Kind())
	for i, want := range []int{3, 4, 5, 0, 1} {
		require.Equal(t, want, mustMap(t, m, i))
	}
}

func Test_ConcurrentMapAfterAdds(t *testing.T) {
	m := New()
	originals := []int{0, 2, 4, 6, 8, 10, 12, 14}
	for i, orig := range originals {
		m = m.Add(i, orig)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8*len(originals))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, want := range originals {
				got, err := m.Map(i)
				if err != nil {
					errs <- err
					continue
				}
				if got != want {
					errs <- assert.AnError
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Map: %v", err)
	}
}

func Test_Kind_String(t *testing.T) {
	if KindRange.String() != "Range" {
		t.Errorf("KindRange.String() = %q; want Range", KindRange.String())
	}
	if KindTable.String() != "Table" {
		t.Errorf("KindTable.String() = %q; want Table", KindTable.String())
	}
	if Kind(99).String() != "Unknown" {
		t.Errorf("Kind(99).String() = %q; want Unknown", Kind(99).String())
	}
}
