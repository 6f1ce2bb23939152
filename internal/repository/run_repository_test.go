package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	db, err := InitDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to init test DB: %v", err)
	}

	cleanup := func() {
		db.Close()
	}
	return db, cleanup
}

func TestInitDBCreatesTables(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	for _, table := range []string{"sync_runs", "sync_items"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestRunLifecycle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRunRepository(db)

	id, err := repo.Create(&SyncRun{
		Operation:  "import",
		SourceFile: "contacts.csv",
		Status:     "running",
		TotalItems: 3,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	run, err := repo.GetRun(id)
	assert.NoError(t, err)
	assert.Equal(t, "import", run.Operation)
	assert.Equal(t, "contacts.csv", run.SourceFile)
	assert.Equal(t, "running", run.Status)
	assert.Equal(t, 3, run.TotalItems)
	assert.False(t, run.StartedAt.IsZero())
	assert.Nil(t, run.CompletedAt)

	assert.NoError(t, repo.UpdateProgress(id, 2, 1, 0))
	assert.NoError(t, repo.Complete(id, "completed_with_errors"))

	run, err = repo.GetRun(id)
	assert.NoError(t, err)
	assert.Equal(t, 2, run.Succeeded)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 0, run.Skipped)
	assert.Equal(t, "completed_with_errors", run.Status)
	assert.NotNil(t, run.CompletedAt)
}

func TestUpdateTotalItems(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRunRepository(db)
	id, err := repo.Create(&SyncRun{Operation: "import", SourceFile: "a.csv", Status: "running"})
	assert.NoError(t, err)

	assert.NoError(t, repo.UpdateTotalItems(id, 42))

	run, err := repo.GetRun(id)
	assert.NoError(t, err)
	assert.Equal(t, 42, run.TotalItems)
}

func TestGetRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewRunRepository(db)

	first, err := repo.Create(&SyncRun{Operation: "import", SourceFile: "a.csv", Status: "running"})
	assert.NoError(t, err)
	second, err := repo.Create(&SyncRun{Operation: "delete-properties", SourceFile: "b.csv", Status: "running"})
	assert.NoError(t, err)

	runs, err := repo.GetRuns()
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	// Newest first, even when both runs start within the same second.
	assert.Equal(t, second, runs[0].Id)
	assert.Equal(t, first, runs[1].Id)
}

func TestGetRunMissing(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := NewRunRepository(db).GetRun("does-not-exist")
	assert.Error(t, err)
}

func TestRunItems(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	runRepo := NewRunRepository(db)
	itemRepo := NewRunItemRepository(db)

	runId, err := runRepo.Create(&SyncRun{Operation: "import", SourceFile: "a.csv", Status: "running"})
	assert.NoError(t, err)

	assert.NoError(t, itemRepo.Create(&SyncItem{
		RunID:    runId,
		ItemName: "lead_score",
		Action:   "created",
		Status:   "success",
	}))
	assert.NoError(t, itemRepo.Create(&SyncItem{
		RunID:        runId,
		ItemName:     "broken_prop",
		Action:       "updated",
		Status:       "failed",
		ErrorMessage: "HubSpot error: invalid option",
	}))

	items, err := itemRepo.GetItems(runId)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "lead_score", items[0].ItemName)
	assert.Equal(t, "created", items[0].Action)
	assert.Equal(t, "success", items[0].Status)
	assert.Equal(t, "", items[0].ErrorMessage)

	assert.Equal(t, "broken_prop", items[1].ItemName)
	assert.Equal(t, "failed", items[1].Status)
	assert.Equal(t, "HubSpot error: invalid option", items[1].ErrorMessage)

	other, err := itemRepo.GetItems("another-run")
	assert.NoError(t, err)
	assert.Empty(t, other)
}
