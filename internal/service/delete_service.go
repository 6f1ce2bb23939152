package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pasevin/hubspot-properties-import/internal/client"
	"github.com/pasevin/hubspot-properties-import/internal/csv"
	"github.com/pasevin/hubspot-properties-import/internal/models"
	"github.com/pasevin/hubspot-properties-import/internal/repository"
)

type DeleteService struct {
	schemaClient client.SchemaClient
	runRepo      *repository.RunRepository
	runItemRepo  *repository.RunItemRepository
	log          *logrus.Logger

	// throttle is the pause after each delete request, to stay under the
	// remote rate limit.
	throttle time.Duration
}

func NewDeleteService(
	schemaClient client.SchemaClient,
	runRepo *repository.RunRepository,
	runItemRepo *repository.RunItemRepository,
	log *logrus.Logger,
) *DeleteService {
	return &DeleteService{
		schemaClient: schemaClient,
		runRepo:      runRepo,
		runItemRepo:  runItemRepo,
		log:          log,
		throttle:     time.Second,
	}
}

// DeleteProperties deletes every custom property named by the input file.
// Targets are cross-checked against one snapshot of the remote custom
// properties: names missing from it are skipped, read-only properties are
// never deleted and count as failures. The failed names are listed once at
// the end; partial failure does not abort the run.
func (s *DeleteService) DeleteProperties(filename string) error {
	rows, err := csv.NewParser(filename).ParseRows()
	if err != nil {
		return fmt.Errorf("read property file: %w", err)
	}

	targets := collectPropertyTargets(rows)

	runId, err := s.runRepo.Create(&repository.SyncRun{
		Operation:  "delete-properties",
		SourceFile: filename,
		Status:     "running",
		TotalItems: len(targets),
	})
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}

	snapshot, err := s.schemaClient.GetProperties()
	if err != nil {
		if err := s.runRepo.Complete(runId, "failed"); err != nil {
			s.log.Warnf("Could not complete run record: %v", err)
		}
		return fmt.Errorf("list custom properties: %w", err)
	}

	custom := make(map[string]struct{}, len(snapshot))
	for _, def := range snapshot {
		custom[def.Name] = struct{}{}
	}

	successCount := 0
	failCount := 0
	skipCount := 0
	var failed []string

	for i, name := range targets {
		s.log.Infof("Processing property %d of %d", i+1, len(targets))

		if _, ok := custom[name]; !ok {
			s.log.Infof("Property %q not found among custom properties, skipping", name)
			s.recordItem(runId, name, "skipped", "skipped", "")
			skipCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}

		def, err := s.schemaClient.GetProperty(name)
		if err != nil {
			s.log.Errorf("Could not fetch property %q: %v", name, err)
			failed = append(failed, name)
			s.recordItem(runId, name, "deleted", "failed", err.Error())
			failCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}
		if def == nil {
			s.log.Errorf("Property %q was listed but could not be fetched", name)
			failed = append(failed, name)
			s.recordItem(runId, name, "deleted", "failed", "property not returned by the API")
			failCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}
		if def.ReadOnlyValue {
			s.log.Warnf("Property %q is read only, not deleting", name)
			failed = append(failed, name)
			s.recordItem(runId, name, "deleted", "failed", "property is read only")
			failCount++
			s.updateProgress(runId, successCount, failCount, skipCount)
			continue
		}

		if err := s.schemaClient.DeleteProperty(name); err != nil {
			s.log.Errorf("Failed to delete property %q: %v", name, err)
			failed = append(failed, name)
			s.recordItem(runId, name, "deleted", "failed", err.Error())
			failCount++
		} else {
			s.log.Infof("Deleted property %q", name)
			s.recordItem(runId, name, "deleted", "success", "")
			successCount++
		}
		s.updateProgress(runId, successCount, failCount, skipCount)

		time.Sleep(s.throttle)
	}

	finalStatus := "completed"
	if failCount > 0 {
		finalStatus = "completed_with_errors"
	}
	if err := s.runRepo.Complete(runId, finalStatus); err != nil {
		s.log.Warnf("Could not complete run record: %v", err)
	}

	if len(failed) > 0 {
		s.log.Warnf("Failed to delete %d properties: %s", len(failed), strings.Join(failed, ", "))
	}
	s.log.Infof("Delete finished: %d deleted, %d failed, %d skipped", successCount, failCount, skipCount)
	return nil
}

// DeleteGroups deletes every distinct group named anywhere in the input
// file. Unlike property deletion there is no snapshot check and no pause,
// and rows flagged built-in still contribute their group name.
func (s *DeleteService) DeleteGroups(filename string) error {
	rows, err := csv.NewParser(filename).ParseRows()
	if err != nil {
		return fmt.Errorf("read property file: %w", err)
	}

	targets := collectGroupTargets(rows)

	runId, err := s.runRepo.Create(&repository.SyncRun{
		Operation:  "delete-groups",
		SourceFile: filename,
		Status:     "running",
		TotalItems: len(targets),
	})
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}

	successCount := 0
	failCount := 0

	for i, name := range targets {
		s.log.Infof("Processing group %d of %d", i+1, len(targets))

		if err := s.schemaClient.DeleteGroup(name); err != nil {
			s.log.Errorf("Failed to delete group %q: %v", name, err)
			s.recordItem(runId, name, "deleted", "failed", err.Error())
			failCount++
		} else {
			s.log.Infof("Deleted group %q", name)
			s.recordItem(runId, name, "deleted", "success", "")
			successCount++
		}
		s.updateProgress(runId, successCount, failCount, 0)
	}

	finalStatus := "completed"
	if failCount > 0 {
		finalStatus = "completed_with_errors"
	}
	if err := s.runRepo.Complete(runId, finalStatus); err != nil {
		s.log.Warnf("Could not complete run record: %v", err)
	}

	s.log.Infof("Group delete finished: %d deleted, %d failed", successCount, failCount)
	return nil
}

// collectPropertyTargets returns the distinct internal names of the
// non-built-in rows, in first-occurrence order.
func collectPropertyTargets(rows []models.PropertyRow) []string {
	seen := make(map[string]struct{})
	targets := make([]string, 0, len(rows))

	for _, row := range rows {
		if row.IsBuiltIn() {
			continue
		}
		name := strings.TrimSpace(row.InternalName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}
	return targets
}

// collectGroupTargets returns the distinct group names across all rows,
// built-in ones included, in first-occurrence order.
func collectGroupTargets(rows []models.PropertyRow) []string {
	seen := make(map[string]struct{})
	targets := make([]string, 0, len(rows))

	for _, row := range rows {
		name := strings.TrimSpace(row.GroupName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		targets = append(targets, name)
	}
	return targets
}

func (s *DeleteService) recordItem(runId, name, action, status, errorMessage string) {
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

func (s *DeleteService) updateProgress(runId string, succeeded, failed, skipped int) {
	if err := s.runRepo.UpdateProgress(runId, succeeded, failed, skipped); err != nil {
		s.log.Warnf("Could not update run progress: %v", err)
	}
}
