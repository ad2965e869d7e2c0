package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relgraph/config"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "relgraph",
		Short: "Find relation patterns that single out scene objects",
		Long: `relgraph builds a labelled relation graph per scene and reports, for
every object, the one-hop labels and two-hop label pairs that occur exactly
once, plus a four-way classification (both, only_1hop, only_2hop, neither).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = cfg.Log.Logger(cmd.ErrOrStderr())
			slog.SetDefault(a.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to relgraph.yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")

	root.AddCommand(newAnalyzeCmd(a), newServeCmd(a), newVersionCmd())

	return root
}
