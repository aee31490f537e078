// Package main provides the cardbox CLI, the command layer over the SQLite
// knowledge-base store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cardboxhq/cardbox/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
