package engine

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// maxPayloadSize caps decompressed output (256 MB).
const maxPayloadSize = 256 * 1024 * 1024

// Base64Stage decodes padded standard Base64. Unpadded input, a stray '='
// or data after the padding is rejected.
type Base64Stage struct{}

func (s *Base64Stage) Name() string { return "base64" }

func (s *Base64Stage) Apply(data []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(out, data)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Msg: "Base64 decoding failed", Err: err}
	}
	if n == 0 {
		return nil, &Error{Kind: KindDecode, Msg: "Base64 decoding failed", Err: fmt.Errorf("decoded payload is empty")}
	}
	return out[:n], nil
}

// GzipStage decompresses one or more concatenated gzip members.
// NUL padding between or after members is skipped.
type GzipStage struct {
	// Limit overrides maxPayloadSize when > 0.
	Limit int64
}

func (s *GzipStage) Name() string { return "gzip" }

func (s *GzipStage) Apply(data []byte) ([]byte, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = maxPayloadSize
	}
	fail := func(err error) ([]byte, error) {
		return nil, &Error{Kind: KindDecompress, Msg: "GZIP decompression failed", Err: err}
	}
	br := bytes.NewReader(data)
	zr, err := gzip.NewReader(br)
	if err != nil {
		return fail(err)
	}
	defer zr.Close()
	var out bytes.Buffer
	for {
		zr.Multistream(false)
		if _, err := io.Copy(&out, io.LimitReader(zr, limit+1-int64(out.Len()))); err != nil {
			return fail(err)
		}
		if int64(out.Len()) > limit {
			return fail(fmt.Errorf("decompressed payload too large (>%d bytes)", limit))
		}
		// bytes.Reader is an io.ByteReader, so zr has consumed exactly one member.
		rest := bytes.TrimLeft(data[len(data)-br.Len():], "\x00")
		if len(rest) == 0 {
			break
		}
		br = bytes.NewReader(rest)
		if err := zr.Reset(br); err != nil {
			return fail(err)
		}
		data = rest
	}
	if out.Len() == 0 {
		return fail(fmt.Errorf("decompressed payload is empty"))
	}
	return out.Bytes(), nil
}

// ReverseStage undoes the byte reversal applied before compression.
// It must run after GzipStage: reversed gzip data is not a gzip stream.
type ReverseStage struct{}

func (s *ReverseStage) Name() string { return "reverse" }

func (s *ReverseStage) Apply(data []byte) ([]byte, error) {
	return reverseBytes(data), nil
}

// reverseBytes returns a new slice holding data in reverse order.
func reverseBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}

// decodeStages is the fixed decode order.
func decodeStages() []Stage {
	return []Stage{&Base64Stage{}, &GzipStage{}, &ReverseStage{}}
}

// runStages applies stages in order and stops at the first failure.
func runStages(data []byte, stages []Stage) ([]byte, error) {
	var err error
	for _, s := range stages {
		data, err = s.Apply(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// DecodeToken turns a payload token back into the original bytes:
// Base64 decode, gunzip, reverse.
func DecodeToken(token string) ([]byte, error) {
	return runStages([]byte(token), decodeStages())
}

// EncodePayload is the inverse of DecodeToken: reverse, gzip, Base64.
func EncodePayload(payload []byte) (string, error) {
	gz, err := gzipBytes(reverseBytes(payload))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(gz), nil
}

// gzipBytes returns data compressed with gzip.
func gzipBytes(data []byte) ([]byte, error) {
	var b bytes.Buffer
	gz := gzip.NewWriter(&b)
	if _, err := gz.Write(data); err != nil {
		_ = gz.Close()
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return b.Bytes(), nil
}
