package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonx-lang/jsonx/lexer"
	"github.com/jsonx-lang/jsonx/perr"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a document and print its token stream",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		m, err := resolveMode()
		if err != nil {
			return err
		}

		toks, err := lexer.Tokenize(src, lexer.Options{Mode: m})
		if err != nil {
			var perrErr *perr.Error
			if errors.As(err, &perrErr) {
				loc := perrErr.Location()
				return fmt.Errorf("%s (%d:%d)", perrErr.Message(), loc.Line, loc.Column)
			}
			return err
		}

		out := cmd.OutOrStdout()
		for _, tok := range toks {
			fmt.Fprintf(out, "%-12s %d..%d\n", tok.Type, tok.Loc.Start.Offset, tok.Loc.End.Offset)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
