package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/balancer/internal/config"
	"github.com/abhisek/balancer/internal/journal"
)

var rootCmd = &cobra.Command{
	Use:   "balancer",
	Short: "Work-life balance skills assessment",
	Long:  "Balancer is a terminal assessment that walks you through workplace scenarios and scores how you balance competing demands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default ./config/config.yaml or the user config dir)")
	pf.String("catalog", "", "Path to a question catalog YAML file (default embedded catalog)")
	pf.String("journal", "", "Path to the SQLite session journal (default in memory)")
	pf.String("export", "", "Write the session document to this JSON file on completion")
	pf.String("presence", "", "Required-answer check: exists or truthy")
	pf.String("log-file", "", `Log file path, "-" disables logging`)
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(journalCmd)
}

// loadConfig reads configuration with the command's flags bound on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: file,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveJournalPath returns the configured journal path, falling back to the
// default on-disk location for commands that read past sessions.
func resolveJournalPath(cfg *config.Config) (string, error) {
	if cfg.JournalPath != "" {
		return cfg.JournalPath, nil
	}
	return journal.DefaultPath()
}
