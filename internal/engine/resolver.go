package engine

import (
	"strings"
)

// CollectVariables builds the name→value mapping from every `set` line in file order.
// Later assignments to the same name overwrite earlier ones. Names are case-sensitive.
func CollectVariables(lines []string) map[string]string {
	vars := make(map[string]string)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || isCommentLine(line) {
			continue
		}
		m := reAssign.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		vars[strings.TrimSpace(m[1])] = strings.TrimSpace(m[2])
	}
	return vars
}

// RewriteLines returns the trimmed lines that are not empty, comments or `set`
// lines, with each %NAME% replaced by vars[NAME]. Unknown names keep their
// %NAME% text unchanged.
func RewriteLines(lines []string, vars map[string]string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isSkippedLine(line) {
			continue
		}
		out = append(out, substitute(line, vars))
	}
	return out
}

func substitute(line string, vars map[string]string) string {
	return rePlaceholder.ReplaceAllStringFunc(line, func(tok string) string {
		if v, ok := vars[tok[1:len(tok)-1]]; ok {
			return v
		}
		return tok
	})
}

// Deobfuscate resolves variables in a batch script and returns the rewritten
// lines joined by "\n".
func Deobfuscate(lines []string) string {
	return strings.Join(RewriteLines(lines, CollectVariables(lines)), "\n")
}
