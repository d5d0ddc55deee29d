package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"larch/internal/driver"
	"larch/internal/source"
	"larch/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lh",
	Short: "Tokenize a larch source file",
	Long:  `Tokenize breaks a larch source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("trivia", true, "include comments and doc comments")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}

	fs := source.NewFileSet()
	stream, lexErr := driver.TokenizeFile(fs, args[0])
	if lexErr != nil {
		return reportError(cmd, lexErr, fs)
	}
	if !trivia {
		stream = stream.FilterTrivia()
	}

	switch format {
	case "pretty":
		return printTokensPretty(stream)
	case "json":
		return printTokensJSON(stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printTokensPretty(stream token.Stream) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, tok := range stream {
		loc := tok.Loc()
		fmt.Fprintf(w, "%d:%d\t%s\t%q\n", loc.Line, loc.Pos, tok.Kind, tok.Text())
	}
	return w.Flush()
}

type tokenPayload struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line uint32 `json:"line"`
	Pos  uint32 `json:"pos"`
}

func printTokensJSON(stream token.Stream) error {
	payload := make([]tokenPayload, 0, stream.Len())
	for _, tok := range stream {
		loc := tok.Loc()
		payload = append(payload, tokenPayload{
			Kind: tok.Kind.String(),
			Text: tok.Text(),
			Line: loc.Line,
			Pos:  loc.Pos,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
