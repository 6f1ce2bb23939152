package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pasevin/hubspot-properties-import/internal/client"
	"github.com/pasevin/hubspot-properties-import/internal/csv"
	"github.com/pasevin/hubspot-properties-import/internal/models"
	"github.com/pasevin/hubspot-properties-import/internal/repository"
)

type ImportService struct {
	schemaClient client.SchemaClient
	runRepo      *repository.RunRepository
	runItemRepo  *repository.RunItemRepository
	log          *logrus.Logger
}

func NewImportService(
	schemaClient client.SchemaClient,
	runRepo *repository.RunRepository,
	runItemRepo *repository.RunItemRepository,
	log *logrus.Logger,
) *ImportService {
	return &ImportService{
		schemaClient: schemaClient,
		runRepo:      runRepo,
		runItemRepo:  runItemRepo,
		log:          log,
	}
}

// ImportProperties creates or updates one property per input row, in input
// order. A row failure marks that item and the run continues; only problems
// with the input file itself abort the run. With dryRun set nothing is
// written, remotely or to the run history.
func (s *ImportService) ImportProperties(filename string, dryRun bool) error {
	rows, err := csv.NewParser(filename).ParseRows()
	if err != nil {
		return fmt.Errorf("read property file: %w", err)
	}

	runId := ""
	if !dryRun {
		runId, err = s.runRepo.Create(&repository.SyncRun{
			Operation:  "import",
			SourceFile: filename,
			Status:     "running",
			TotalItems: len(rows),
		})
		if err != nil {
			return fmt.Errorf("create run: %w", err)
		}
	}

	successCount := 0
	failCount := 0
	skipCount := 0

	for i, row := range rows {
		s.log.Infof("Processing property %d of %d", i+1, len(rows))

		if row.IsBuiltIn() {
			s.log.Infof("Skipping built-in property %q", row.InternalName)
			s.recordItem(runId, row.InternalName, "skipped", "skipped", "")
			skipCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}

		def, err := models.PropertyDefinitionFromRow(row)
		if err != nil {
			s.log.Errorf("Invalid row: %v", err)
			s.recordItem(runId, row.InternalName, "none", "failed", err.Error())
			failCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}

		s.ensureGroup(def.GroupName, dryRun)

		action, err := s.reconcileProperty(def, dryRun)
		if err != nil {
			s.log.Errorf("Failed to import property %q: %v", def.Name, err)
			s.recordItem(runId, def.Name, action, "failed", err.Error())
			failCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}

		s.recordItem(runId, def.Name, action, "success", "")
		successCount++
		s.updateProgress(runId, successCount, failCount, skipCount)
	}

	finalStatus := "completed"
	if failCount > 0 {
		finalStatus = "completed_with_errors"
	}
	if !dryRun {
		if err := s.runRepo.Complete(runId, finalStatus); err != nil {
			s.log.Warnf("Could not complete run record: %v", err)
		}
	}

	s.log.Infof("Import finished: %d succeeded, %d failed, %d skipped", successCount, failCount, skipCount)
	return nil
}

// ensureGroup makes the grouping referenced by a row exist remotely before
// the property write. Failures here are logged and tolerated; the remote
// store rejects the property itself if the group is genuinely missing.
func (s *ImportService) ensureGroup(groupName string, dryRun bool) {
	if groupName == "" {
		return
	}

	groups, err := s.schemaClient.GetGroups()
	if err != nil {
		s.log.Warnf("Could not list property groups: %v", err)
		return
	}

	for _, g := range groups {
		if g.Name == groupName {
			return
		}
	}

	if dryRun {
		s.log.Infof("[dry-run] would create property group %q", groupName)
		return
	}

	if _, err := s.schemaClient.CreateGroup(models.PropertyGroup{Name: groupName, DisplayName: groupName}); err != nil {
		s.log.Warnf("Could not create property group %q: %v", groupName, err)
		return
	}
	s.log.Infof("Created property group %q", groupName)
}

func (s *ImportService) reconcileProperty(def models.PropertyDefinition, dryRun bool) (string, error) {
	existing, err := s.schemaClient.GetProperty(def.Name)
	if err != nil {
		return "none", fmt.Errorf("look up property %q: %w", def.Name, err)
	}

	if existing == nil {
		if dryRun {
			s.log.Infof("[dry-run] would create property %q", def.Name)
			return "created", nil
		}
		if _, err := s.schemaClient.CreateProperty(def); err != nil {
			return "created", err
		}
		s.log.Infof("Created property %q", def.Name)
		return "created", nil
	}

	if dryRun {
		s.log.Infof("[dry-run] would update property %q", def.Name)
		return "updated", nil
	}
	if _, err := s.schemaClient.UpdateProperty(def); err != nil {
		return "updated", err
	}
	s.log.Infof("Updated property %q", def.Name)
	return "updated", nil
}

func (s *ImportService) recordItem(runId, name, action, status, errorMessage string) {
	if runId == "" {
		return
	}
	err := s.runItemRepo.Create(&repository.SyncItem{
		RunID:        runId,
		ItemName:     name,
		Action:       action,
		Status:       status,
		ErrorMessage: errorMessage,
	})
	if err != nil {
		s.log.Warnf("Could not record run item %q: %v", name, err)
	}
}

func (s *ImportService) updateProgress(runId string, succeeded, failed, skipped int) {
	if runId == "" {
		return
	}
	if err := s.runRepo.UpdateProgress(runId, succeeded, failed, skipped); err != nil {
		s.log.Warnf("Could not update run progress: %v", err)
	}
}
