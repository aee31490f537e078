// Activity log commands for the cardbox CLI.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Inspect the operation log",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recorded operations, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		ops, err := backend.Operations().List()
		if err != nil {
			return fmt.Errorf("list operations: %w", err)
		}
		return printResult(ops, func() {
			for _, op := range ops {
				ts := time.UnixMilli(op.Time).Local().Format(time.RFC3339)
				fmt.Printf("%s\t%s\t%s %d\n", ts, op.Action, op.ContentType, op.ContentID)
			}
		})
	},
}

var activityYearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Show the activity calendar for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			year = y
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		records, err := backend.Operations().RecordsByYear(year)
		if err != nil {
			return fmt.Errorf("activity for %d: %w", year, err)
		}
		return printResult(records, func() {
			for _, rec := range records {
				fmt.Printf("%s\t%d change(s)\n", rec.Date, len(rec.Operations))
			}
		})
	},
}

func init() {
	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityYearCmd)
}
