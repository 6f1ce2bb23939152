package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/client/hubspot"
	"github.com/pasevin/hubspot-properties-import/internal/repository"
	"github.com/pasevin/hubspot-properties-import/internal/service"
)

var deletePropertiesCmd = &cobra.Command{
	Use:   "delete-properties <file.csv>",
	Short: "Delete the custom properties named in an export file",
	Long: `Delete-properties collects the distinct internal names of the non-HubSpot
rows in the file and deletes the matching custom properties. Names the
portal does not have are skipped; read-only properties are left alone and
reported as failures. Delete requests are spaced one second apart.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteProperties,
}

func runDeleteProperties(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	db, err := repository.InitDB(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	deleteService := service.NewDeleteService(
		hubspot.NewHubSpotClient(cfg.BaseURL, cfg.AccessToken),
		repository.NewRunRepository(db),
		repository.NewRunItemRepository(db),
		logger,
	)
	return deleteService.DeleteProperties(args[0])
}
