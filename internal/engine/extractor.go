package engine

import (
	"fmt"
	"strings"
)

// LastMeaningfulLine scans lines from the end and returns the first trimmed
// line that is neither empty nor a comment.
func LastMeaningfulLine(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		t := strings.TrimSpace(lines[i])
		if t != "" && !isCommentLine(t) {
			return t, true
		}
	}
	return "", false
}

// ReadCarrierLine returns the line of path presumed to carry the payload.
func ReadCarrierLine(path string) (string, error) {
	data, err := readInput(path)
	if err != nil {
		return "", err
	}
	line, ok := LastMeaningfulLine(splitLines(string(data)))
	if !ok {
		return "", &Error{Kind: KindNoContent, Msg: fmt.Sprintf("no valid content found in '%s'", path)}
	}
	return line, nil
}
