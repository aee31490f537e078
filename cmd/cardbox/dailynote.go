// Daily note commands for the cardbox CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	noteDate    string
	noteContent string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage daily notes",
}

var noteSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the note for a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noteDate == "" {
			return fmt.Errorf("--date is required")
		}
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		// One note per date: update in place when it already exists.
		existing, err := backend.DailyNotes().ByDate(noteDate)
		switch {
		case err == nil:
			existing.Content = noteContent
			note, err := backend.DailyNotes().Update(existing)
			if err != nil {
				return fmt.Errorf("update daily note: %w", err)
			}
			return printResult(note, func() {
				fmt.Printf("Updated note for %s\n", note.Date)
			})
		case errors.Is(err, types.ErrNotFound):
			note, err := backend.DailyNotes().Create(&types.DailyNote{Date: noteDate, Content: noteContent})
			if err != nil {
				return fmt.Errorf("create daily note: %w", err)
			}
			return printResult(note, func() {
				fmt.Printf("Created note for %s\n", note.Date)
			})
		default:
			return fmt.Errorf("get daily note: %w", err)
		}
	},
}

var noteGetCmd = &cobra.Command{
	Use:   "get <date>",
	Short: "Get the note for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		note, err := backend.DailyNotes().ByDate(args[0])
		if err != nil {
			return fmt.Errorf("get note for %s: %w", args[0], err)
		}
		return printResult(note, func() {
			fmt.Printf("%s\n%s\n", note.Date, note.Content)
		})
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		notes, err := backend.DailyNotes().List()
		if err != nil {
			return fmt.Errorf("list daily notes: %w", err)
		}
		return printResult(notes, func() {
			for _, n := range notes {
				fmt.Printf("%s\t%s\n", n.Date, snippet(n.Content))
			}
		})
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the note for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		note, err := backend.DailyNotes().ByDate(args[0])
		if err != nil {
			return fmt.Errorf("get note for %s: %w", args[0], err)
		}
		n, err := backend.DailyNotes().Delete(note.ID)
		if err != nil {
			return fmt.Errorf("delete note for %s: %w", args[0], err)
		}
		fmt.Printf("Deleted %d note(s)\n", n)
		return nil
	},
}

func init() {
	noteSetCmd.Flags().StringVar(&noteDate, "date", "", "note date (YYYY-MM-DD)")
	noteSetCmd.Flags().StringVar(&noteContent, "content", "", "note content")

	noteCmd.AddCommand(noteSetCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
