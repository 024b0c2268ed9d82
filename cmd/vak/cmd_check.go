package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vak/sans"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Analyze SansScript files and print diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errorCount := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}

				doc := sans.Analyze(string(data))
				for _, d := range doc.Diagnostics {
					fmt.Printf("%s:%d:%d: %s: %s [%s]\n",
						path, d.Span.Start.Line+1, d.Span.Start.Column+1,
						d.Severity, d.Message, d.Code)
					if d.Severity == sans.SeverityError {
						errorCount++
					}
				}
			}
			if errorCount > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d error(s)", errorCount)
			}
			return nil
		},
	}
}
