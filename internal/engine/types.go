package engine

import (
	"fmt"
	"regexp"
)

// Mode selects which deobfuscation path Run takes.
type Mode string

const (
	ModeDeobf Mode = "deobf" // variable substitution on a batch script
	ModeDump  Mode = "dump"  // extract and decode the embedded payload
)

// DefaultMode is used when --mode is not given.
const DefaultMode = ModeDeobf

type Options struct {
	InputFile  string
	OutputFile string
	Mode       Mode
	Quiet      bool // no metrics or token details on stderr
}

// Validate rejects option sets Run cannot act on. It runs before any file is touched.
func (o Options) Validate() error {
	switch o.Mode {
	case ModeDeobf, ModeDump:
	default:
		return newUsageError(fmt.Sprintf("invalid --mode %q (valid: %s|%s)", o.Mode, ModeDeobf, ModeDump))
	}
	if o.InputFile == "" {
		return newUsageError("missing input_file")
	}
	if o.OutputFile == "" {
		return newUsageError("missing output_file")
	}
	return nil
}

// Stage is one reversible step of the payload decoder.
// Apply must not modify its input and must return a slice it owns.
type Stage interface {
	Apply(data []byte) ([]byte, error)
	Name() string
}

// minTokenLen is the shortest Base64 run accepted as a payload token.
const minTokenLen = 100

var (
	// reAssign matches `set NAME=VALUE` with optional quoting around the pair.
	reAssign = regexp.MustCompile(`(?i)^set\s+"?([^=]+)=([^"]*)"?$`)
	// rePlaceholder matches %NAME% references. Delimiters are single percent signs.
	rePlaceholder = regexp.MustCompile(`%([^%]+)%`)
	reToken       = regexp.MustCompile(fmt.Sprintf(`[A-Za-z0-9+/=]{%d,}`, minTokenLen))
)
