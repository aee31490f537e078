// History commands for the cardbox CLI.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history <content-type> <id>",
	Short: "List content snapshots for an entity, newest first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		page, err := backend.History().ListByContent(args[0], id, historyLimit, historyOffset)
		if err != nil {
			return fmt.Errorf("list history for %s %d: %w", args[0], id, err)
		}
		return printResult(page, func() {
			fmt.Printf("%d snapshot(s)\n", page.Total)
			for _, h := range page.Items {
				fmt.Printf("%s\t%s\t%s\n", h.CreatedAt.Local().Format(time.RFC3339), h.HistoryID, snippet(h.Content))
			}
		})
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "snapshots per page (0 = all)")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "snapshots to skip")
}
