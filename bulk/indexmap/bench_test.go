package indexmap

import "testing"

const benchEntries = 1000

// buildMap adds benchEntries mappings with the given stride. Stride 1 keeps
// the map a Range; any other stride promotes it to a Table on the second Add.
func buildMap(stride int) IndexMap {
	m := New()
	for j := 0; j < benchEntries; j++ {
		m = m.Add(j, j*stride)
	}
	return m
}

// BenchmarkAdd compares building a map on the contiguous and promoted paths.
func BenchmarkAdd(b *testing.B) {
	for _, bc := range []struct {
		name   string
		stride int
	}{
		{"range", 1},
		{"table", 2},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = buildMap(bc.stride)
			}
		})
	}
}

// BenchmarkMap compares lookups on both representations.
func BenchmarkMap(b *testing.B) {
	for _, bc := range []struct {
		name   string
		stride int
	}{
		{"range", 1},
		{"table", 2},
	} {
		m := buildMap(bc.stride)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := m.Map(i % benchEntries); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
