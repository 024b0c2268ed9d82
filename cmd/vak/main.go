package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vak",
		Short: "Language tooling for SansScript",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newSymbolsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
