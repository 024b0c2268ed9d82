package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vak/sans"
)

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "Print the functions and global variables of a SansScript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			doc := sans.Analyze(string(data))
			for _, fn := range doc.Functions {
				fmt.Printf("function %s(%s)\tlines %d-%d\n",
					fn.Name, strings.Join(fn.ParamNames(), ", "),
					fn.HeaderLine+1, fn.BodyEnd+1)
			}
			for _, v := range doc.Globals {
				fmt.Printf("global %s\tline %d\n", v.Name, v.Span.Start.Line+1)
			}
			return nil
		},
	}
}
