package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/printer"
)

var formatIndent uint

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Parse a document and re-emit it in canonical form",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := parserOptions()
		if err != nil {
			return err
		}

		doc, err := parser.Parse(src, opts)
		if err != nil {
			var perrErr *perr.Error
			if errors.As(err, &perrErr) {
				loc := perrErr.Location()
				return fmt.Errorf("%s (%d:%d)", perrErr.Message(), loc.Line, loc.Column)
			}
			return err
		}

		out := printer.PrintDocument(doc, printer.Options{Indent: formatIndent})
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	formatCmd.Flags().UintVar(&formatIndent, "indent", 2, "spaces per nesting level; 0 for compact output")
	rootCmd.AddCommand(formatCmd)
}
