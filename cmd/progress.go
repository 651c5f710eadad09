package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ascentlearn/ascent/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress <session-id>",
	Short: "Show progression state for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		track, _ := cmd.Flags().GetString("track")
		if track != store.TrackInstitution && track != store.TrackIndividual {
			return fmt.Errorf("invalid track %q (want %s or %s)", track, store.TrackInstitution, store.TrackIndividual)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rec, err := s.ProgressRepo().Get(ctx, sessionID, track)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if rec == nil {
			fmt.Printf("No progress recorded for session %s on the %s track.\n", sessionID, track)
			return nil
		}

		fmt.Printf("Session:   %s\n", rec.SessionID)
		fmt.Printf("Track:     %s\n", rec.Track)
		fmt.Printf("XP:        %d\n", rec.XP)
		fmt.Printf("Level:     %d unlocked\n", rec.UnlockedLevel)
		fmt.Printf("Chapter:   #%d\n", rec.ChapterIndex+1)
		if rec.RetryAvailableAt != nil && rec.RetryAvailableAt.After(time.Now()) {
			fmt.Printf("Cooldown:  retry at %s\n", rec.RetryAvailableAt.Local().Format("15:04:05"))
		}
		if rec.RemedialPlan != nil && !rec.RemedialPlan.Consumed {
			fmt.Printf("Remedial:  %s\n", rec.RemedialPlan.Category)
		}

		if len(rec.History) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-5s  %-7s  %-6s  %s\n", "When", "Level", "Score", "Passed", "XP")
		fmt.Println(strings.Repeat("─", 52))
		for _, a := range rec.History {
			passed := "no"
			if a.Passed {
				passed = "yes"
			}
			fmt.Printf("%-19s  %-5d  %2d/%-4d  %-6s  %d\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.Level, a.Score, a.MaxScore, passed, a.XPGained)
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().String("track", store.TrackInstitution, "Progression track (institution or individual)")
}
