package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/balancer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the result a given number of answers would earn",
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetInt("answers")
		if answers < 0 {
			return fmt.Errorf("--answers must not be negative")
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		r := scoring.ResultForCount(answers)
		if asJSON {
			b, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		fmt.Printf("Answers:  %d\n", answers)
		fmt.Printf("Score:    %d / %d\n", r.OverallScore, scoring.MaxScore)
		fmt.Printf("Profile:  %s\n\n", r.Profile)
		for _, ss := range r.SectionScores {
			fmt.Printf("  %-16s  %6.1f\n", ss.DisplayLabel(), ss.Score)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().Int("answers", 0, "Number of distinct answered questions")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}
