package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestSplitLines checks \n, \r\n and lone \r terminators are removed and blank lines kept.
func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
		{"a\rb\r", []string{"a", "b"}},
		{"a\r\r\nb", []string{"a", "", "b"}},
		{"set x=1\recho %x%", []string{"set x=1", "echo %x%"}},
		{"  x  \ty\t", []string{"  x  \ty\t"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitLines(tt.in)); diff != "" {
			t.Errorf("splitLines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
