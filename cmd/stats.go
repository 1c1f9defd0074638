package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/simplify/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStoreFromCmd(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()

		totals, err := repo.Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		if totals.SessionsStarted == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		fmt.Println("Practice")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-22s %d\n", "Sessions started", totals.SessionsStarted)
		fmt.Printf("%-22s %d\n", "Sessions finished", totals.SessionsFinished)
		fmt.Printf("%-22s %d\n", "Exercises solved", totals.Exercises)
		fmt.Printf("%-22s %d\n", "Reduction steps", totals.Steps)
		fmt.Printf("%-22s %d\n", "Mistakes", totals.Mistakes)
		fmt.Printf("%-22s %d\n", "Hints", totals.Hints)
		fmt.Printf("%-22s %s\n", "Avg time / exercise", totals.AvgExercise.Round(time.Second))

		mistakes, err := repo.MistakeCounts(ctx)
		if err != nil {
			return fmt.Errorf("query mistakes: %w", err)
		}
		if len(mistakes) > 0 {
			fmt.Println()
			fmt.Println("Mistakes by kind")
			fmt.Println(strings.Repeat("─", 40))
			for _, m := range mistakes {
				fmt.Printf("%-22s %d\n", m.Outcome, m.Count)
			}
		}

		sessions, err := repo.RecentSessions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 60))
			for _, sess := range sessions {
				status := "finished"
				if !sess.Complete() {
					status = "left early"
				}
				fmt.Printf("%-19s  %2d/%-2d  %-8s  %-6s  %s\n",
					sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
					sess.ExercisesCompleted, sess.ExercisesTotal,
					sess.Duration.Round(time.Second), sess.Generator, status)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
