package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pasevin/hubspot-properties-import/internal/repository"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show runs recorded in the local history",
	Long: `History lists past runs from the local database, newest first. With a run
id it shows that run's per-property outcomes instead. No HubSpot credential
is needed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := repository.InitDB(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	runRepo := repository.NewRunRepository(db)
	runItemRepo := repository.NewRunItemRepository(db)

	if len(args) == 1 {
		return showRun(runRepo, runItemRepo, args[0])
	}

	runs, err := runRepo.GetRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-17s  %-21s  %d ok / %d failed / %d skipped  %s  %s\n",
			run.Id,
			run.Operation,
			run.Status,
			run.Succeeded,
			run.Failed,
			run.Skipped,
			humanize.Time(run.StartedAt),
			run.SourceFile,
		)
	}
	return nil
}

func showRun(runRepo *repository.RunRepository, runItemRepo *repository.RunItemRepository, id string) error {
	run, err := runRepo.GetRun(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", run.Id)
	fmt.Printf("  Operation: %s\n", run.Operation)
	fmt.Printf("  Source:    %s\n", run.SourceFile)
	fmt.Printf("  Status:    %s\n", run.Status)
	fmt.Printf("  Started:   %s\n", humanize.Time(run.StartedAt))
	if run.CompletedAt != nil {
		fmt.Printf("  Finished:  %s\n", humanize.Time(*run.CompletedAt))
	}
	fmt.Printf("  Items:     %d total, %d succeeded, %d failed, %d skipped\n",
		run.TotalItems, run.Succeeded, run.Failed, run.Skipped)

	items, err := runItemRepo.GetItems(run.Id)
	if err != nil {
		return err
	}

	if len(items) > 0 {
		fmt.Println()
	}
	for _, item := range items {
		line := fmt.Sprintf("  %-8s %-8s %s", item.Status, item.Action, item.ItemName)
		if item.ErrorMessage != "" {
			line += "  (" + item.ErrorMessage + ")"
		}
		fmt.Println(line)
	}
	return nil
}
