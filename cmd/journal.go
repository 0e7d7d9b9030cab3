package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect recorded assessment sessions",
}

// openJournal opens the configured on-disk journal for reading. A missing
// file is an error rather than a new empty journal.
func openJournal(cmd *cobra.Command) (*journal.Journal, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	path, err := resolveJournalPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve journal path: %w", err)
	}
	j, err := journal.OpenExisting(path)
	if errors.Is(err, journal.ErrNotFound) {
		return nil, fmt.Errorf("%w (record sessions with --journal)", err)
	}
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		j, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer j.Close()

		sessions, err := j.Repo().Sessions(cmd.Context(), journal.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-19s  %-19s  %7s  %s\n",
			"Session", "Started", "Last activity", "Entries", "Done")
		fmt.Println(strings.Repeat("─", 96))

		for _, s := range sessions {
			done := ""
			if s.Completed {
				done = "✓"
			}
			fmt.Printf("%-36s  %-19s  %-19s  %7d  %s\n",
				s.SessionID,
				s.FirstAt.Local().Format("2006-01-02 15:04:05"),
				s.LastAt.Local().Format("2006-01-02 15:04:05"),
				s.Entries,
				done,
			)
		}
		return nil
	},
}

var journalReplayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Rebuild a session from its journal and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		j, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer j.Close()

		entries, err := j.Repo().Entries(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("query entries: %w", err)
		}
		st, err := assessment.Replay(cat, entries)
		if err != nil {
			return fmt.Errorf("replay %s: %w", args[0], err)
		}

		doc := assessment.Export(st)
		doc.SessionID = args[0]
		doc.CatalogVersion = cat.Version
		return assessment.WriteJSON(os.Stdout, doc)
	},
}

func init() {
	journalListCmd.Flags().Int("limit", 20, "Maximum number of sessions to show (0 = all)")

	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalReplayCmd)
}
