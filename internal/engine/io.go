package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxInputSize is a safety limit to prevent memory exhaustion (100 MB).
const maxInputSize = 100 * 1024 * 1024

// utf8BOM is the UTF-8 Byte Order Mark (EF BB BF).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM removes the UTF-8 BOM from the beginning of data if present.
// Left in place it would become part of the first line and hide a leading
// "set" or "::" from the marker checks.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// readInput stats path before opening it so a missing file is reported as
// KindNotFound without any read attempt.
func readInput(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: KindNotFound, Msg: fmt.Sprintf("file '%s' does not exist", path)}
		}
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("error reading '%s'", path), Err: err}
	}
	if fi.IsDir() {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("input is a directory, not a file: %s", path)}
	}
	if fi.Size() > maxInputSize {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("file too large (%d bytes, max %d)", fi.Size(), maxInputSize)}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("error reading '%s'", path), Err: err}
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxInputSize+1))
	if err != nil {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("error reading '%s'", path), Err: err}
	}
	if len(data) > maxInputSize {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("input too large (>%d bytes, safety limit)", maxInputSize)}
	}
	return stripBOM(data), nil
}

// readTextLines reads path as UTF-8 text and splits it into lines.
func readTextLines(path string) ([]string, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, &Error{Kind: KindIO, Msg: fmt.Sprintf("error reading '%s'", path),
			Err: fmt.Errorf("file is not valid UTF-8")}
	}
	return splitLines(string(data)), nil
}

// splitLines splits on \n, \r\n and a lone \r, like a universal-newline reader.
// A final terminator does not produce an extra empty line; empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// writeOutput writes data to path in one call. A missing parent directory is
// an error, not created.
func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &Error{Kind: KindIO, Msg: fmt.Sprintf("error writing to '%s'", path), Err: err}
	}
	return nil
}
