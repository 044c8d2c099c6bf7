package engine

import (
	"fmt"
	"runtime"
)

const version = "1.0.0"

// Banner is the one-line header printed before a run.
func Banner() string {
	return Cyan + "batclean" + Reset + " | v." + version + " | " + Gray + "batch deobfuscator" + Reset
}

// Version returns the version string.
func Version() string {
	return version
}

// VersionFull returns version with Go and platform info.
func VersionFull() string {
	return fmt.Sprintf("batclean v%s (%s/%s, %s)", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// ErrorHint returns a helpful hint for err, or "".
func ErrorHint(err error) string {
	switch KindOf(err) {
	case KindUsage:
		return "Usage: batclean [--mode deobf|dump] <input_file> <output_file>"
	case KindNotFound:
		return "Check the input path. Use an absolute path or run from the file's directory."
	case KindIO:
		return "Check permissions on both paths; deobf input must be UTF-8 text."
	case KindNoContent:
		return "The file has only blank lines, :: comments or REM lines."
	case KindNoToken:
		return "The payload must be a run of at least 100 Base64 characters on the last non-comment line. Try --mode deobf first."
	case KindDecode:
		return "The token is not padded standard Base64. It may still be wrapped in another layer."
	case KindDecompress:
		return "The decoded bytes are not a gzip stream. This tool only handles Base64 + gzip + reversed payloads."
	}
	return ""
}
