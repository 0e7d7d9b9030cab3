package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/balancer/internal/app"
	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/journal"
	"github.com/abhisek/balancer/internal/logger"
)

// runApp loads configuration, opens the journal, starts a session, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	cat, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	presence, err := cfg.PresencePolicy()
	if err != nil {
		return err
	}

	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	sess := assessment.NewSession(cat,
		assessment.WithJournal(j.Repo()),
		assessment.WithLogger(log),
		assessment.WithPresence(presence),
	)
	if _, err := sess.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	log.Info("launching",
		zap.String("env", cfg.Env),
		zap.String("catalog", cat.Version),
		zap.Bool("persistent_journal", cfg.JournalPath != ""),
	)

	return app.Run(app.Options{
		Session:    sess,
		ExportPath: cfg.ExportPath,
		Logger:     log,
	})
}
