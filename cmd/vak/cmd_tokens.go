package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vak/sans/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a SansScript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			for _, tok := range parser.Lex(data, args[0]) {
				fmt.Printf("%d:%d\t%s\t%q\n",
					tok.Span.Start.Line+1, tok.Span.Start.Column+1,
					tok.Kind, tok.Literal)
			}
			return nil
		},
	}
}
