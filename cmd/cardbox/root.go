// Root command for the cardbox CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/cardboxhq/cardbox/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDatabase  string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configDataDir  string
	configDatabase string
	configLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "cardbox",
	Short:        "Cardbox is a local-first knowledge base",
	Long:         "Cardbox stores cards, articles, documents, projects, time records,\nand whiteboards in an embedded SQLite store.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDatabase = cfg.GetString(cfgKeyDatabase)
		configLogLevel = cfg.GetString(cfgKeyLogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.cardbox-db)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "store file name (default: data.db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(articleCmd)
	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(settingCmd)
}

// resolveDataDir returns the data directory following the precedence
// flag > config.yaml data_dir > CARDBOX_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > CARDBOX_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
