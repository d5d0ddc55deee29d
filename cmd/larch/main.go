package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"larch/internal/diag"
	"larch/internal/source"
	"larch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "larch",
	Short: "Larch language front end",
	Long:  `Larch is a small Lisp-syntaxed functional language; this tool tokenizes, parses, and checks its sources`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-errors", 64, "maximum number of errors to show across a directory run")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// prettyOpts resolves the --color flag against the output terminal.
func prettyOpts(cmd *cobra.Command, f *os.File) diag.PrettyOpts {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return diag.PrettyOpts{
		Color: colorFlag == "on" || (colorFlag == "auto" && isTerminal(f)),
	}
}

// reportError renders one error to stderr and returns a silent exit error so
// cobra does not print it a second time.
func reportError(cmd *cobra.Command, e *diag.Error, fs *source.FileSet) error {
	diag.Pretty(os.Stderr, e, fs, prettyOpts(cmd, os.Stderr))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return e
}
