package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/config"
	"github.com/pasevin/hubspot-properties-import/internal/logging"
)

var (
	cfg    *config.Config
	logger *logrus.Logger

	logLevel string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:   "hsprops",
	Short: "Manage HubSpot contact properties from CSV export files",
	Long: `hsprops keeps a HubSpot portal's contact properties in line with a CSV
export: it creates or updates properties and their groups, bulk-deletes
properties or groups listed in a file, and keeps a local history of runs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: HSPROPS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path of the local run history database. (Env: HSPROPS_DB_PATH)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deletePropertiesCmd)
	rootCmd.AddCommand(deleteGroupsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
}

func initConfig() {
	err := godotenv.Load()

	cfg = config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	logger = logging.NewLogger(cfg.LogLevel)

	if err == nil {
		logger.Debug("Loaded environment from .env")
	}
}
