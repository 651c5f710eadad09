package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ascentlearn/ascent/internal/store"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Inspect the mistake repository",
}

var mistakesListCmd = &cobra.Command{
	Use:   "list [session-id]",
	Short: "List recorded mistakes, optionally for one session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		var mistakes []store.Mistake
		if len(args) == 1 {
			mistakes, err = s.MistakeRepo().BySession(ctx, args[0])
		} else {
			mistakes, err = s.MistakeRepo().All(ctx)
		}
		if err != nil {
			return fmt.Errorf("query mistakes: %w", err)
		}

		if len(mistakes) == 0 {
			fmt.Println("No mistakes recorded.")
			return nil
		}

		for _, m := range mistakes {
			fmt.Printf("[%s] L%d  %s\n", m.SessionID, m.Level, m.Question)
			fmt.Printf("  answered %q, correct %q\n", m.UserAnswer, m.CorrectAnswer)
			if m.Explanation != "" {
				fmt.Printf("  why: %s\n", m.Explanation)
			}
			if m.Comment != "" {
				fmt.Printf("  note: %s\n", m.Comment)
			}
			fmt.Println()
		}
		return nil
	},
}

var mistakesCommentCmd = &cobra.Command{
	Use:   "comment <session-id> <question> <comment>",
	Short: "Attach a personal note to a recorded mistake",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		err = s.MistakeRepo().UpdateComment(context.Background(), args[0], strings.TrimSpace(args[1]), args[2])
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no mistake matching that question for session %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		fmt.Println("Comment saved.")
		return nil
	},
}

func init() {
	mistakesCmd.AddCommand(mistakesListCmd)
	mistakesCmd.AddCommand(mistakesCommentCmd)
}
