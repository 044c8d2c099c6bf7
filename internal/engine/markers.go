package engine

import "strings"

// commentPrefixes start a line that batch treats as a comment.
// "::" is the label-as-comment idiom; REM is matched case-insensitively.
var commentPrefixes = []string{"::", "rem"}

// assignPrefix starts a line the resolver consumes instead of emitting.
const assignPrefix = "set"

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// isCommentLine reports whether the trimmed line is a comment.
// This is a prefix test, so "REMARK" also counts.
func isCommentLine(trimmed string) bool {
	for _, p := range commentPrefixes {
		if hasPrefixFold(trimmed, p) {
			return true
		}
	}
	return false
}

// isSkippedLine reports whether the trimmed line is left out of resolver output:
// empty, a comment, or anything beginning with "set" (assignments, setlocal).
func isSkippedLine(trimmed string) bool {
	return trimmed == "" || isCommentLine(trimmed) || hasPrefixFold(trimmed, assignPrefix)
}
