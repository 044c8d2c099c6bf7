package engine

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Metrics holds informational measures on a produced output.
type Metrics struct {
	SizeBytes      int     // Size in bytes
	UniqueSymbols  int     // Number of distinct byte values
	Entropy        float64 // Shannon entropy (bits per byte)
	PrintableRatio float64 // Printable ASCII bytes / total (0-1)
	LineCount      int     // Newline count + 1
	InputSizeBytes int     // Size of what was decoded or rewritten
	SizeRatio      float64 // output/input size ratio
}

// ComputeMetrics computes metrics on out, which was produced from inputSize bytes.
func ComputeMetrics(out []byte, inputSize int) Metrics {
	m := Metrics{SizeBytes: len(out), InputSizeBytes: inputSize}
	if inputSize > 0 {
		m.SizeRatio = float64(len(out)) / float64(inputSize)
	}
	if len(out) == 0 {
		return m
	}
	var freq [256]int
	printable := 0
	for _, b := range out {
		freq[b]++
		if (b >= 0x20 && b < 0x7f) || b == '\n' || b == '\r' || b == '\t' {
			printable++
		}
	}
	n := float64(len(out))
	for _, c := range freq {
		if c == 0 {
			continue
		}
		m.UniqueSymbols++
		p := float64(c) / n
		m.Entropy -= p * math.Log2(p)
	}
	m.PrintableRatio = float64(printable) / n
	m.LineCount = bytes.Count(out, []byte{'\n'}) + 1
	return m
}

// PrintMetrics writes a one-line summary to w unless quiet.
func PrintMetrics(w io.Writer, m Metrics, quiet bool) {
	if quiet {
		return
	}
	line := fmt.Sprintf("%sMetrics:%s size=%s%d%s bytes | unique=%s%d%s | entropy=%.2f | printable=%.2f",
		Cyan, Reset, Green, m.SizeBytes, Reset, Green, m.UniqueSymbols, Reset, m.Entropy, m.PrintableRatio)
	if m.SizeRatio > 0 {
		line += fmt.Sprintf(" | ratio=%.2fx", m.SizeRatio)
	}
	if m.LineCount > 0 {
		line += fmt.Sprintf(" | lines=%d", m.LineCount)
	}
	fmt.Fprintln(w, line)
}
