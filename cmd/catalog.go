package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/balancer/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections, scenarios and questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%s (%s)\n", cat.Title, cat.Version)
		fmt.Println(strings.Repeat("─", 80))

		for i, sec := range cat.Sections {
			fmt.Printf("%d. %s %s\n", i+1, sec.IconGlyph(), sec.Title)
			if !sec.Implemented() {
				if i > 0 {
					fmt.Println("     (coming soon)")
				}
				continue
			}
			for _, sc := range sec.Scenarios {
				fmt.Printf("   %-14s  %s\n", sc.ID, sc.Title)
				for _, q := range sc.Questions {
					req := " "
					if q.Required {
						req = "*"
					}
					text := q.Text
					if len(text) > 44 {
						text = text[:41] + "..."
					}
					fmt.Printf("     %s %-18s  %-15s  %s\n", req, q.ID, q.Type.DisplayName(), text)
				}
			}
		}

		fmt.Printf("\n%d sections, %d questions (* required)\n", cat.Len(), cat.QuestionCount())
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.CatalogPath
		}
		if path == "" {
			return fmt.Errorf("no catalog file given (pass a path or --catalog)")
		}

		cat, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%s, %d sections, %d questions)\n",
			path, cat.Version, cat.Len(), cat.QuestionCount())
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := cfg.Catalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		b, err := cat.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
