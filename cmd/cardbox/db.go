// Store management commands for the cardbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage store files",
}

var dbPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the current store file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		fmt.Println(backend.Path())
		return nil
	},
}

var dbUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to a different store file, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := backend.Reconnect(args[0]); err != nil {
			return fmt.Errorf("switch to store %q: %w", args[0], err)
		}
		fmt.Println(backend.Path())
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbPathCmd)
	dbCmd.AddCommand(dbUseCmd)
}
