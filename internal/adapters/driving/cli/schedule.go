package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiangteng007/senteng-design-system/internal/core/domain"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Plan appointments on the studio calendar",
	Long: `Creates and lists appointments on the studio's shared calendar.

Appointments are fixed one-hour slots: site surveys, client meetings,
hand-overs. Events without a time use the studio's default start time.`,
	RunE: runScheduleMonth,
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Plan a one-hour appointment",
	Long: `Plans a one-hour appointment on the studio calendar.

Examples:
  senteng schedule add "林公館 丈量" --date 2026-09-02 --time 14:00
  senteng schedule add "建材挑選" --date 2026-09-05 --location 總部展示間`,
	Args: cobra.ExactArgs(1),
	RunE: runScheduleAdd,
}

var scheduleMonthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "List one month's appointments",
	Long: `Lists every appointment in a calendar month, current month by
default.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScheduleMonth,
}

// Flags for schedule.
var (
	scheduleJSON        bool
	scheduleAddDate     string
	scheduleAddTime     string
	scheduleAddLocation string
	scheduleAddDesc     string
)

func init() {
	scheduleCmd.PersistentFlags().BoolVar(
		&scheduleJSON, "json", false, "output as JSON")

	scheduleAddCmd.Flags().StringVar(
		&scheduleAddDate, "date", "", "appointment date (YYYY-MM-DD)")
	scheduleAddCmd.Flags().StringVar(
		&scheduleAddTime, "time", "", "start time (HH:MM, default from settings)")
	scheduleAddCmd.Flags().StringVar(
		&scheduleAddLocation, "location", "", "location")
	scheduleAddCmd.Flags().StringVar(
		&scheduleAddDesc, "desc", "", "description")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleMonthCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	if scheduleService == nil {
		return errors.New("schedule service not configured")
	}

	ctx := context.Background()

	event := domain.ScheduleEvent{
		Title:       args[0],
		Date:        scheduleAddDate,
		Time:        scheduleAddTime,
		Location:    scheduleAddLocation,
		Description: scheduleAddDesc,
	}

	created, err := scheduleService.Plan(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to plan appointment: %w", err)
	}

	cmd.Printf("Planned %q on %s", created.Title, created.Date)
	if created.Time != "" {
		cmd.Printf(" at %s", created.Time)
	}
	cmd.Println(".")
	return nil
}

func runScheduleMonth(cmd *cobra.Command, args []string) error {
	if scheduleService == nil {
		return errors.New("schedule service not configured")
	}

	ctx := context.Background()

	ref := time.Now()
	if len(args) > 0 {
		parsed, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
		}
		ref = parsed
	}

	events, err := scheduleService.Month(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	if scheduleJSON {
		return outputScheduleJSON(cmd, events)
	}
	return outputScheduleTable(cmd, ref, events)
}

func outputScheduleJSON(cmd *cobra.Command, events []domain.ScheduleEvent) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal appointments: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputScheduleTable(cmd *cobra.Command, ref time.Time, events []domain.ScheduleEvent) error {
	month := ref.Format("2006-01")
	if len(events) == 0 {
		cmd.Printf("No appointments in %s.\n", month)
		return nil
	}

	cmd.Printf("Appointments in %s (%d):\n", month, len(events))
	cmd.Println()
	for i := range events {
		ev := &events[i]
		cmd.Printf("  %s %s  %s\n", ev.Date, ev.Time, ev.Title)
		if ev.Location != "" {
			cmd.Printf("      Location: %s\n", ev.Location)
		}
		if ev.Description != "" {
			cmd.Printf("      %s\n", ev.Description)
		}
	}
	cmd.Println()
	return nil
}
