package engine

import (
	"errors"
	"fmt"
)

// Kind classifies a reported failure. Each kind has its own exit code.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindNotFound
	KindIO
	KindNoContent
	KindNoToken
	KindDecode
	KindDecompress
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindNotFound:
		return "not-found"
	case KindIO:
		return "io"
	case KindNoContent:
		return "no-content"
	case KindNoToken:
		return "no-token"
	case KindDecode:
		return "decode"
	case KindDecompress:
		return "decompress"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the error type returned by every engine operation.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so the sentinels below match through errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUsage      = &Error{Kind: KindUsage}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrIO         = &Error{Kind: KindIO}
	ErrNoContent  = &Error{Kind: KindNoContent}
	ErrNoToken    = &Error{Kind: KindNoToken}
	ErrDecode     = &Error{Kind: KindDecode}
	ErrDecompress = &Error{Kind: KindDecompress}
)

func newUsageError(msg string) error {
	return &Error{Kind: KindUsage, Msg: msg}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindNotFound:
		return 2
	case KindIO:
		return 3
	case KindNoContent:
		return 4
	case KindNoToken:
		return 5
	case KindDecode:
		return 6
	case KindDecompress:
		return 7
	}
	return 1
}
