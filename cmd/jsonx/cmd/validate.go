package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/perr"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a document and report a syntax error, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := parserOptions()
		if err != nil {
			return err
		}

		if _, err := parser.Parse(src, opts); err != nil {
			var perrErr *perr.Error
			if errors.As(err, &perrErr) {
				loc := perrErr.Location()
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d:%d)\n", perrErr.Message(), loc.Line, loc.Column)
				return errSyntaxInvalid
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

// errSyntaxInvalid carries no message of its own; validate has already
// printed the perr.Error's human-readable form to stdout, and Execute's
// caller only needs a non-zero exit code.
var errSyntaxInvalid = errors.New("")

func init() {
	rootCmd.AddCommand(validateCmd)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}
