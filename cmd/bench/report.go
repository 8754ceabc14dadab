package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/Neumenon/urncode40/urncode40"
)

var allKinds = []urncode40.BlockKind{
	urncode40.KindStandard,
	urncode40.KindNumeric,
	urncode40.KindASCII,
	urncode40.KindUTF8x2,
	urncode40.KindUTF8x3,
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprint(w, "name,input_chars,standard_len,optimal_len,saved,saved_pct")
	for _, k := range allKinds {
		fmt.Fprintf(w, ",%s", k)
	}
	fmt.Fprintln(w, ",round_trip")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.1f",
			r.Name, r.InputChars, r.StandardLen, r.OptimalLen, r.Saved, r.SavedPct)
		for _, k := range allKinds {
			fmt.Fprintf(w, ",%d", r.Kinds[k])
		}
		fmt.Fprintf(w, ",%t\n", r.RoundTrip)
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, version string) {
	fmt.Fprintf(w, "# URN Code 40 Benchmark Results\n\n")
	fmt.Fprintf(w, "**Corpus:** %s (%d cases)  \n\n", version, len(results))

	var totalStd, totalOpt, comparable int
	for _, r := range results {
		if r.StandardLen > 0 {
			totalStd += r.StandardLen
			totalOpt += r.OptimalLen
			comparable++
		}
	}

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Metric | Standard only | Optimal | Savings |\n")
	fmt.Fprintf(w, "|--------|---------------|---------|---------|\n")
	if totalStd > 0 {
		saved := totalStd - totalOpt
		fmt.Fprintf(w, "| **Hex digits** (%d cases) | %d | %d | %d (%.1f%%) |\n\n",
			comparable, totalStd, totalOpt, saved, float64(saved)/float64(totalStd)*100)
	} else {
		fmt.Fprintf(w, "| **Hex digits** | - | - | - |\n\n")
	}

	sorted := make([]CaseResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SavedPct > sorted[j].SavedPct
	})

	fmt.Fprintf(w, "## Top 5 Savings\n\n")
	fmt.Fprintf(w, "| Case | Standard | Optimal | Saved |\n")
	fmt.Fprintf(w, "|------|----------|---------|-------|\n")
	for i := 0; i < min(5, len(sorted)); i++ {
		r := sorted[i]
		if r.Saved <= 0 {
			break
		}
		fmt.Fprintf(w, "| %s | %d | %d | %.1f%% |\n", r.Name, r.StandardLen, r.OptimalLen, r.SavedPct)
	}

	fmt.Fprintf(w, "\n## Detailed Results\n\n")
	fmt.Fprintf(w, "| Case | Chars | Standard | Optimal | Blocks | Round trip |\n")
	fmt.Fprintf(w, "|------|-------|----------|---------|--------|------------|\n")
	for _, r := range results {
		std := "-"
		if r.StandardLen > 0 {
			std = fmt.Sprint(r.StandardLen)
		}
		fmt.Fprintf(w, "| %s | %d | %s | %d | %s | %t |\n",
			truncateName(r.Name, 25), r.InputChars, std, r.OptimalLen, kindSummary(r.Kinds), r.RoundTrip)
	}
}

// kindSummary renders block counts as "standard:3 numeric:1".
func kindSummary(kinds map[urncode40.BlockKind]int) string {
	s := ""
	for _, k := range allKinds {
		if n := kinds[k]; n > 0 {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%s:%d", k, n)
		}
	}
	return s
}

func truncateName(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
