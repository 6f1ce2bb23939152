package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/client/hubspot"
	"github.com/pasevin/hubspot-properties-import/internal/service"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Write the portal's contact properties to an export file",
	Long: `Export fetches every contact property of the portal, HubSpot-defined ones
included, and writes them as a CSV file in the same column layout the import
reads.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	exportService := service.NewExportService(
		hubspot.NewHubSpotClient(cfg.BaseURL, cfg.AccessToken),
		logger,
	)
	return exportService.ExportProperties(args[0])
}
