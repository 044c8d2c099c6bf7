package engine

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the batclean command line.
func NewRootCommand() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "batclean [--mode deobf|dump] <input_file> <output_file>",
		Short: "Deobfuscate a batch file or decode its embedded Base64 + GZIP payload",
		Long: `Deobfuscate a batch file or decode its embedded payload.

Modes:
  deobf  resolve "set NAME=VALUE" assignments and substitute %NAME% references;
         comments, blank lines and set lines are dropped from the output.
  dump   take the last non-comment line, find its first run of at least 100
         Base64 characters, then Base64-decode, gunzip and byte-reverse it.
         The result is written as raw bytes.`,
		Version:       VersionFull(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := Options{
				InputFile:  args[0],
				OutputFile: args[1],
				Mode:       Mode(mode),
			}
			fmt.Fprintln(cmd.ErrOrStderr(), Banner())
			return run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(DefaultMode),
		fmt.Sprintf("%s: rewrite the batch script | %s: decode the embedded payload", ModeDeobf, ModeDump))
	return cmd
}

// Main runs the command with args and returns the process exit status.
// Failures are reported on stdout as an Error: line and an optional Hint: line.
func Main(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if KindOf(err) == 0 {
		err = &Error{Kind: KindUsage, Msg: "invalid arguments", Err: err}
	}
	ReportError(stdout, err)
	return ExitCode(err)
}

// ReportError writes err and its hint to w.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%sError:%s %v\n", Red, Reset, err)
	if hint := ErrorHint(err); hint != "" {
		fmt.Fprintf(w, "%sHint:%s %s\n", Gray, Reset, hint)
	}
}
