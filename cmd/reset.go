package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ascentlearn/ascent/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Delete a session's progression on both tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		removed := 0
		for _, track := range []string{store.TrackInstitution, store.TrackIndividual} {
			err := s.ProgressRepo().Delete(ctx, sessionID, track)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("delete %s progress: %w", track, err)
			}
			removed++
		}

		if removed == 0 {
			fmt.Printf("No progress found for session %s.\n", sessionID)
			return nil
		}
		fmt.Printf("Reset %d track(s) for session %s.\n", removed, sessionID)
		return nil
	},
}
