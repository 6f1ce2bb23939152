package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/client/hubspot"
	"github.com/pasevin/hubspot-properties-import/internal/repository"
	"github.com/pasevin/hubspot-properties-import/internal/service"
)

var dryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Create or update contact properties from an export file",
	Long: `Import walks the export file row by row. Properties marked as defined by
HubSpot are skipped, missing property groups are created, and each remaining
property is created or updated depending on whether the portal already has
it. A failing row is reported and the import moves on.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would change without writing anything")
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	hubspotClient := hubspot.NewHubSpotClient(cfg.BaseURL, cfg.AccessToken)

	var runRepo *repository.RunRepository
	var runItemRepo *repository.RunItemRepository
	if !dryRun {
		db, err := repository.InitDB(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()
		runRepo = repository.NewRunRepository(db)
		runItemRepo = repository.NewRunItemRepository(db)
	}

	importService := service.NewImportService(hubspotClient, runRepo, runItemRepo, logger)
	return importService.ImportProperties(args[0], dryRun)
}
