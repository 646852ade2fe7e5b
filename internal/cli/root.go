package cli

import (
	"github.com/spf13/cobra"

	"codereview/internal/config"
	"codereview/internal/logging"
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codereview",
		Short: "Heuristic code review assistant",
		Long: `codereview inspects a pasted code snippet with a small set of
heuristic checks and reports severity-tagged suggestions, an improved
example snippet, a quality breakdown chart and a CSV report.

Run "codereview serve" for the browser form or "codereview analyze" on
a file or stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (optional)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cmd.AddCommand(newAnalyzeCommand(), newServeCommand())

	return cmd
}

// loadConfig reads the config named by the persistent flags and
// initialises the logger from it
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Logging.Debug = true
	}

	logging.InitLogger(cfg.Logging.Debug)
	return cfg, nil
}
