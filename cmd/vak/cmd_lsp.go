package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/vak/project"
	"github.com/dhamidi/vak/sans/codebase"
)

func newLSPCmd() *cobra.Command {
	var verbosity int
	var logFile string
	var configFile string
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbosity = verbosity
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			// Stdout carries the protocol stream; logs go to stderr
			// or the configured file.
			var path *string
			if cfg.LogFile != "" {
				path = &cfg.LogFile
			}
			commonlog.Configure(cfg.Verbosity, path)

			server := codebase.NewLSPServer(version, cfg.Debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVarP(&verbosity, "verbose", "v", project.Default().Verbosity, "log verbosity (0-2)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default vak.yaml if present)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic")

	return cmd
}
