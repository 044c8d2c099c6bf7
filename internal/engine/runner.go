package engine

import (
	"fmt"
	"io"
	"os"
)

// Run validates opts and dispatches to the selected mode, writing status to
// the process stdout/stderr.
func Run(opts Options) error {
	return run(opts, os.Stdout, os.Stderr)
}

func run(opts Options, stdout, stderr io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	switch opts.Mode {
	case ModeDump:
		return dumpFile(opts, stdout, stderr)
	default:
		return deobfuscateFile(opts, stdout, stderr)
	}
}

// deobfuscateFile resolves variables in the input script and writes the
// rewritten text. Nothing is written if the input cannot be read.
func deobfuscateFile(opts Options, stdout, stderr io.Writer) error {
	lines, err := readTextLines(opts.InputFile)
	if err != nil {
		return err
	}
	out := []byte(Deobfuscate(lines))
	if err := writeOutput(opts.OutputFile, out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Deobfuscated script saved as: %s\n", opts.OutputFile)
	if !opts.Quiet {
		fmt.Fprintf(stderr, "%sLines:%s %d in, %d out\n", Yellow, Reset, len(lines), countLines(out))
		PrintMetrics(stderr, ComputeMetrics(out, inputSize(lines)), false)
	}
	return nil
}

// dumpFile extracts the payload token from the carrier line, decodes it and
// writes the raw bytes. The output file is only created after every decode
// stage has succeeded.
func dumpFile(opts Options, stdout, stderr io.Writer) error {
	line, err := ReadCarrierLine(opts.InputFile)
	if err != nil {
		return err
	}
	token, err := findTokenOrError(line)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Fprintf(stderr, "%sToken:%s %d Base64 chars\n", Yellow, Reset, len(token))
	}
	payload, err := DecodeToken(token)
	if err != nil {
		return err
	}
	if err := writeOutput(opts.OutputFile, payload); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Deobfuscated data saved to: %s\n", opts.OutputFile)
	PrintMetrics(stderr, ComputeMetrics(payload, len(token)), opts.Quiet)
	return nil
}

func countLines(out []byte) int {
	if len(out) == 0 {
		return 0
	}
	n := 1
	for _, b := range out {
		if b == '\n' {
			n++
		}
	}
	return n
}

func inputSize(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	return n
}
