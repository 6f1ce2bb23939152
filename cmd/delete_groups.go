package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/client/hubspot"
	"github.com/pasevin/hubspot-properties-import/internal/repository"
	"github.com/pasevin/hubspot-properties-import/internal/service"
)

var deleteGroupsCmd = &cobra.Command{
	Use:   "delete-groups <file.csv>",
	Short: "Delete every property group named in an export file",
	Long: `Delete-groups collects the distinct group names across all rows of the
file, including rows for HubSpot-defined properties, and deletes each group.
Failures are logged per group and do not stop the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteGroups,
}

func runDeleteGroups(cmd *cobra.Command, args []string) error {
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
	return deleteService.DeleteGroups(args[0])
}
