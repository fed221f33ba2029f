// Command benchreport turns indexmap benchmark output into a markdown table
// comparing the Range and Table representations.
//
//	go test -bench . -benchmem ./bulk/indexmap | go run ./scripts/benchreport
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	Impl        string // "range" or "table"
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs the two representations for one operation.
type ComparisonResult struct {
	Operation   string
	RangeNs     float64
	TableNs     float64
	Speedup     float64 // TableNs / RangeNs
	RangeMem    int64
	TableMem    int64
	RangeAllocs int64
	TableAllocs int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

// BenchmarkAdd/range-8    10000    12450 ns/op    4096 B/op    8 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+B/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	report := generateMarkdownReport(generateComparisons(results))

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Lines from go test -json carry the text in Output.
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		// Format: Benchmark<Operation>/<impl>-<procs>
		name := matches[1]
		parts := strings.Split(name, "/")
		if len(parts) != 2 {
			continue
		}
		impl := parts[1]
		if dash := strings.LastIndex(impl, "-"); dash > 0 {
			impl = impl[:dash]
		}

		r := BenchmarkResult{
			Name:      name,
			Operation: strings.TrimPrefix(parts[0], "Benchmark"),
			Impl:      impl,
		}
		r.Iterations, _ = strconv.Atoi(matches[2])
		r.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		results = append(results, r)
	}

	return results
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	grouped := make(map[string]map[string]BenchmarkResult)
	for _, r := range results {
		if grouped[r.Operation] == nil {
			grouped[r.Operation] = make(map[string]BenchmarkResult)
		}
		grouped[r.Operation][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for op, impls := range grouped {
		rng, okRange := impls["range"]
		tbl, okTable := impls["table"]
		if !okRange || !okTable || rng.NsPerOp == 0 {
			continue
		}
		comparisons = append(comparisons, ComparisonResult{
			Operation:   op,
			RangeNs:     rng.NsPerOp,
			TableNs:     tbl.NsPerOp,
			Speedup:     tbl.NsPerOp / rng.NsPerOp,
			RangeMem:    rng.BytesPerOp,
			TableMem:    tbl.BytesPerOp,
			RangeAllocs: rng.AllocsPerOp,
			TableAllocs: tbl.AllocsPerOp,
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].Operation < comparisons[j].Operation
	})
	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult) string {
	var sb strings.Builder

	sb.WriteString("# Index Map Benchmarks\n\n")
	sb.WriteString("| Operation | Range (ns/op) | Table (ns/op) | Range speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|---------------|---------------|---------------|---------------|--------|\n")
	for _, c := range comparisons {
		fmt.Fprintf(&sb, "| %s | %.1f | %.1f | %.2fx | %d vs %d | %d vs %d |\n",
			c.Operation, c.RangeNs, c.TableNs, c.Speedup,
			c.RangeMem, c.TableMem, c.RangeAllocs, c.TableAllocs)
	}
	if len(comparisons) == 0 {
		sb.WriteString("\nNo paired range/table benchmarks found.\n")
	}
	return sb.String()
}
