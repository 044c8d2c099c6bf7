package engine

import (
	"os"
)

// ANSI colour codes for status lines on stderr. Empty when stderr is not a
// terminal so redirected output stays plain.
var (
	Reset  string
	Bold   string
	Red    string
	Green  string
	Yellow string
	Cyan   string
	Gray   string
)

func init() {
	setColors(isTerminal(os.Stderr))
}

func setColors(enabled bool) {
	if !enabled {
		Reset, Bold, Red, Green, Yellow, Cyan, Gray = "", "", "", "", "", "", ""
		return
	}
	Reset = "\033[0m"
	Bold = "\033[1m"
	Red = "\033[31m"
	Green = "\033[32m"
	Yellow = "\033[33m"
	Cyan = "\033[36m"
	Gray = "\033[90m"
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
