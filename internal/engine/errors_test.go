package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorKinds checks sentinels match by kind through wrapping.
func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("dump: %w", &Error{Kind: KindDecode, Msg: "Base64 decoding failed", Err: fs.ErrInvalid})
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrDecompress)
	assert.ErrorIs(t, err, fs.ErrInvalid)
	assert.Equal(t, KindDecode, KindOf(err))
	assert.Equal(t, "dump: Base64 decoding failed: invalid argument", err.Error())
}

// TestExitCodes checks every kind has its own status.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	seen := map[int]Kind{}
	for _, k := range []Kind{KindUsage, KindNotFound, KindIO, KindNoContent, KindNoToken, KindDecode, KindDecompress} {
		code := ExitCode(&Error{Kind: k, Msg: k.String()})
		assert.NotZero(t, code)
		if prev, dup := seen[code]; dup {
			t.Errorf("exit code %d shared by %s and %s", code, prev, k)
		}
		seen[code] = k
		assert.NotEmpty(t, ErrorHint(&Error{Kind: k}), "hint for %s", k)
	}
	assert.Empty(t, ErrorHint(nil))
}
