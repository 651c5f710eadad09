package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ascentlearn/ascent/internal/roadmap"
	"github.com/ascentlearn/ascent/internal/store"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Inspect study roadmaps",
}

var roadmapListCmd = &cobra.Command{
	Use:   "list <session-id>",
	Short: "List a session's roadmaps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		maps, err := s.RoadmapRepo().BySession(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("query roadmaps: %w", err)
		}
		if len(maps) == 0 {
			fmt.Println("No roadmaps found.")
			return nil
		}

		fmt.Printf("%-36s  %-9s  %-5s  %s\n", "ID", "Status", "Days", "Title")
		fmt.Println(strings.Repeat("─", 80))
		for _, rm := range maps {
			fmt.Printf("%-36s  %-9s  %2d/%-2d  %s\n",
				rm.ID, rm.Status, len(rm.CompletedDays), rm.TotalDays, truncate(rm.Title, 40))
		}
		return nil
	},
}

var roadmapViewCmd = &cobra.Command{
	Use:   "view <roadmap-id>",
	Short: "Show a roadmap's day-by-day plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rm, err := s.RoadmapRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("load roadmap: %w", err)
		}
		if rm == nil {
			return fmt.Errorf("roadmap %s not found", args[0])
		}

		fmt.Printf("%s (%s, %d days, %d completed)\n", rm.Title, rm.Status, rm.TotalDays, len(rm.CompletedDays))
		if rm.Description != "" {
			fmt.Println(rm.Description)
		}
		fmt.Println()

		for _, day := range rm.Days {
			marker := " "
			if dayCompleted(rm, day.DayNumber) {
				marker = "✓"
			}
			state := ""
			if day.Content == roadmap.ContentNotGenerated {
				state = " (content pending)"
			}
			fmt.Printf("%s Day %2d: %s%s\n", marker, day.DayNumber, day.Topic, state)
		}
		return nil
	},
}

func dayCompleted(rm *store.Roadmap, day int) bool {
	for _, d := range rm.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

func init() {
	roadmapCmd.AddCommand(roadmapListCmd)
	roadmapCmd.AddCommand(roadmapViewCmd)
}
