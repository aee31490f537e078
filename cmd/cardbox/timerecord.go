// Time record commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	timeDate      string
	timeCost      int64
	timeContent   string
	timeEventType string
	timeTimeType  string
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Manage time records",
}

var timeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Log a time record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if timeDate == "" {
			return fmt.Errorf("--date is required")
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		record, err := backend.TimeRecords().Create(&types.TimeRecord{
			Date:      timeDate,
			Cost:      timeCost,
			Content:   timeContent,
			EventType: timeEventType,
			TimeType:  timeTimeType,
		})
		if err != nil {
			return fmt.Errorf("create time record: %w", err)
		}
		return printResult(record, func() {
			fmt.Printf("Created time record %d\n", record.ID)
		})
	},
}

var timeListCmd = &cobra.Command{
	Use:   "list [date]",
	Short: "List time records, optionally for one date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		var records []*types.TimeRecord
		if len(args) == 1 {
			records, err = backend.TimeRecords().ByDate(args[0])
		} else {
			records, err = backend.TimeRecords().List()
		}
		if err != nil {
			return fmt.Errorf("list time records: %w", err)
		}
		return printResult(records, func() {
			for _, r := range records {
				fmt.Printf("%d\t%s\t%dm\t%s\t%s\n", r.ID, r.Date, r.Cost, r.EventType, snippet(r.Content))
			}
		})
	},
}

var timeRangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "List time records between two dates, grouped by date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		groups, err := backend.TimeRecords().ByTimeRange(args[0], args[1])
		if err != nil {
			return fmt.Errorf("list time records: %w", err)
		}
		return printResult(groups, func() {
			for _, g := range groups {
				var total int64
				for _, r := range g.TimeRecords {
					total += r.Cost
				}
				fmt.Printf("%s\t%d record(s)\t%dm\n", g.Date, len(g.TimeRecords), total)
			}
		})
	},
}

var timeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a time record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		record, err := backend.TimeRecords().Get(id)
		if err != nil {
			return fmt.Errorf("get time record %d: %w", id, err)
		}
		if cmd.Flags().Changed("date") {
			record.Date = timeDate
		}
		if cmd.Flags().Changed("cost") {
			record.Cost = timeCost
		}
		if cmd.Flags().Changed("content") {
			record.Content = timeContent
		}
		if cmd.Flags().Changed("event-type") {
			record.EventType = timeEventType
		}
		if cmd.Flags().Changed("time-type") {
			record.TimeType = timeTimeType
		}
		record, err = backend.TimeRecords().Update(record)
		if err != nil {
			return fmt.Errorf("update time record %d: %w", id, err)
		}
		return printResult(record, func() {
			fmt.Printf("Updated time record %d\n", record.ID)
		})
	},
}

var timeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a time record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		n, err := backend.TimeRecords().Delete(id)
		if err != nil {
			return fmt.Errorf("delete time record %d: %w", id, err)
		}
		fmt.Printf("Deleted %d record(s)\n", n)
		return nil
	},
}

var timeTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the event and time type labels in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		eventTypes, err := backend.TimeRecords().EventTypes()
		if err != nil {
			return fmt.Errorf("list event types: %w", err)
		}
		timeTypes, err := backend.TimeRecords().TimeTypes()
		if err != nil {
			return fmt.Errorf("list time types: %w", err)
		}
		result := map[string][]string{"event_types": eventTypes, "time_types": timeTypes}
		return printResult(result, func() {
			fmt.Printf("event types: %v\ntime types: %v\n", eventTypes, timeTypes)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{timeCreateCmd, timeUpdateCmd} {
		cmd.Flags().StringVar(&timeDate, "date", "", "record date (YYYY-MM-DD)")
		cmd.Flags().Int64Var(&timeCost, "cost", 0, "minutes spent")
		cmd.Flags().StringVar(&timeContent, "content", "", "what the time went to")
		cmd.Flags().StringVar(&timeEventType, "event-type", "", "event type label")
		cmd.Flags().StringVar(&timeTimeType, "time-type", "", "time type label")
	}

	timeCmd.AddCommand(timeCreateCmd)
	timeCmd.AddCommand(timeListCmd)
	timeCmd.AddCommand(timeRangeCmd)
	timeCmd.AddCommand(timeUpdateCmd)
	timeCmd.AddCommand(timeDeleteCmd)
	timeCmd.AddCommand(timeTypesCmd)
}
