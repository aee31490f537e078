// Whiteboard commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/pkg/types"
)

var (
	boardTitle string
	boardDesc  string
	boardData  string
	boardTags  string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage whiteboards",
}

var boardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new whiteboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		board, err := backend.WhiteBoards().Create(&types.WhiteBoard{
			Title:       boardTitle,
			Description: boardDesc,
			Data:        boardData,
			Tags:        splitList(boardTags),
		})
		if err != nil {
			return fmt.Errorf("create whiteboard: %w", err)
		}
		return printResult(board, func() {
			fmt.Printf("Created whiteboard %d: %s\n", board.ID, board.Title)
		})
	},
}

var boardGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a whiteboard by id",
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

		board, err := backend.WhiteBoards().Get(id)
		if err != nil {
			return fmt.Errorf("get whiteboard %d: %w", id, err)
		}
		return printResult(board, func() {
			fmt.Printf("whiteboard %d: %s\n%s\n", board.ID, board.Title, board.Description)
		})
	},
}

var boardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List whiteboards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		boards, err := backend.WhiteBoards().List()
		if err != nil {
			return fmt.Errorf("list whiteboards: %w", err)
		}
		return printResult(boards, func() {
			for _, b := range boards {
				fmt.Printf("%d\t%s\n", b.ID, b.Title)
			}
		})
	},
}

var boardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a whiteboard",
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

		board, err := backend.WhiteBoards().Get(id)
		if err != nil {
			return fmt.Errorf("get whiteboard %d: %w", id, err)
		}
		if cmd.Flags().Changed("title") {
			board.Title = boardTitle
		}
		if cmd.Flags().Changed("desc") {
			board.Description = boardDesc
		}
		if cmd.Flags().Changed("data") {
			board.Data = boardData
		}
		if cmd.Flags().Changed("tags") {
			board.Tags = splitList(boardTags)
		}
		board, err = backend.WhiteBoards().Update(board)
		if err != nil {
			return fmt.Errorf("update whiteboard %d: %w", id, err)
		}
		return printResult(board, func() {
			fmt.Printf("Updated whiteboard %d\n", board.ID)
		})
	},
}

var boardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a whiteboard",
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

		n, err := backend.WhiteBoards().Delete(id)
		if err != nil {
			return fmt.Errorf("delete whiteboard %d: %w", id, err)
		}
		fmt.Printf("Deleted %d whiteboard(s)\n", n)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{boardCreateCmd, boardUpdateCmd} {
		cmd.Flags().StringVar(&boardTitle, "title", "", "whiteboard title")
		cmd.Flags().StringVar(&boardDesc, "desc", "", "whiteboard description")
		cmd.Flags().StringVar(&boardData, "data", "", "canvas data (JSON)")
		cmd.Flags().StringVar(&boardTags, "tags", "", "comma-separated tags")
	}

	boardCmd.AddCommand(boardCreateCmd)
	boardCmd.AddCommand(boardGetCmd)
	boardCmd.AddCommand(boardListCmd)
	boardCmd.AddCommand(boardUpdateCmd)
	boardCmd.AddCommand(boardDeleteCmd)
}
