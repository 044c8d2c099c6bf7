// Package batclean exposes the batch deobfuscation engine as a library.
package batclean

import (
	"github.com/benzoXdev/batclean/internal/engine"
)

type Options = engine.Options

const (
	ModeDeobf = engine.ModeDeobf
	ModeDump  = engine.ModeDump
)

// Run executes one deobf or dump run on files, as the CLI does.
func Run(opts Options) error {
	return engine.Run(opts)
}

// Deobfuscate resolves set/%NAME% variables in a script given as lines.
func Deobfuscate(lines []string) string {
	return engine.Deobfuscate(lines)
}

// ExtractToken returns the payload token from the last meaningful line of lines.
func ExtractToken(lines []string) (string, bool) {
	line, ok := engine.LastMeaningfulLine(lines)
	if !ok {
		return "", false
	}
	return engine.FindToken(line)
}

// DecodeToken reverses the Base64 + gzip + byte-reversal encoding.
func DecodeToken(token string) ([]byte, error) {
	return engine.DecodeToken(token)
}

// EncodePayload produces a token that DecodeToken turns back into payload.
func EncodePayload(payload []byte) (string, error) {
	return engine.EncodePayload(payload)
}
