package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"larch/internal/driver"
	"larch/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lh",
	Short: "Parse a larch source file into generic forms",
	Long:  `Parse tokenizes a larch source file and prints its top-level forms in canonical notation`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	forms, err := driver.ParseFile(fs, args[0])
	if err != nil {
		return reportError(cmd, err, fs)
	}
	for _, f := range forms {
		fmt.Fprintln(os.Stdout, f.String())
	}
	return nil
}
