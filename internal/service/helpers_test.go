package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/pasevin/hubspot-properties-import/internal/repository"
)

const exportHeader = "Internal name,Name,Type,Description,Group name,Form field,Options,Read only value,Calculated,External options,Deleted,Hubspot defined"

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// writeExportFile builds a property export with the given records under a
// temp dir and returns its path.
func writeExportFile(t *testing.T, records ...string) string {
	t.Helper()

	content := exportHeader + "\n"
	for _, record := range records {
		content += record + "\n"
	}

	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write export file: %v", err)
	}
	return path
}

// setupHistory creates the run history repositories on a throwaway database.
func setupHistory(t *testing.T) (*repository.RunRepository, *repository.RunItemRepository, func()) {
	t.Helper()

	db, err := repository.InitDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to init test DB: %v", err)
	}

	cleanup := func() {
		db.Close()
	}
	return repository.NewRunRepository(db), repository.NewRunItemRepository(db), cleanup
}

// lastRun fetches the single run the test expects to have recorded.
func lastRun(t *testing.T, runRepo *repository.RunRepository) repository.SyncRun {
	t.Helper()

	runs, err := runRepo.GetRuns()
	if err != nil {
		t.Fatalf("Failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected exactly one recorded run, got %d", len(runs))
	}
	return runs[0]
}
