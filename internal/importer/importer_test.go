package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

func testRepo(t *testing.T) repos.ActivityRepo {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Activity{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repos.NewActivityRepo(db, log)
}

func TestRunImportsAndMovesFiles(t *testing.T) {
	log, _ := logger.New("development")
	repo := testRepo(t)

	base := t.TempDir()
	dropDir := filepath.Join(base, "new_activities")
	processedDir := filepath.Join(base, "processed_activities")
	if err := os.MkdirAll(dropDir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := `**Towel Burrito Unroll**
**•Materials Needed**
* bath towel
* small treats
**•Step-by-Step Instructions**
1. Lay the towel flat and scatter treats along it
2. Roll the towel up loosely
3. Let your dog nose and paw it open
**•Estimated Time**
10-15 minutes
`
	if err := os.WriteFile(filepath.Join(dropDir, "mental_batch.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	im := New(log, repo, dropDir, processedDir)
	result, err := im.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FilesProcessed != 1 || result.Added != 1 || result.Skipped != 0 {
		t.Fatalf("got %+v", result)
	}

	got, err := repo.GetByName(context.Background(), nil, "Towel Burrito Unroll")
	if err != nil {
		t.Fatalf("imported activity not stored: %v", err)
	}
	// category comes from the filename
	if got.Category != "Mental" {
		t.Errorf("got category %q, want Mental", got.Category)
	}

	if _, err := os.Stat(filepath.Join(processedDir, "mental_batch.txt")); err != nil {
		t.Errorf("file should move to the processed folder: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dropDir, "mental_batch.txt")); !os.IsNotExist(err) {
		t.Error("file should leave the drop folder")
	}
}

func TestRunSkipsExistingActivities(t *testing.T) {
	log, _ := logger.New("development")
	repo := testRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, []*types.Activity{{Name: "Towel Burrito Unroll", Category: "Mental"}}); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	dropDir := filepath.Join(base, "new_activities")
	processedDir := filepath.Join(base, "processed_activities")
	if err := os.MkdirAll(dropDir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `name: Towel Burrito Unroll
category: Mental
`
	if err := os.WriteFile(filepath.Join(dropDir, "batch.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := New(log, repo, dropDir, processedDir).Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Added != 0 || result.Skipped != 1 {
		t.Fatalf("got %+v, want 0 added 1 skipped", result)
	}

	count, _ := repo.Count(ctx, nil)
	if count != 1 {
		t.Errorf("duplicate import changed row count to %d", count)
	}
}

func TestRunEmptyDropFolder(t *testing.T) {
	log, _ := logger.New("development")
	repo := testRepo(t)

	base := t.TempDir()
	result, err := New(log, repo, filepath.Join(base, "in"), filepath.Join(base, "out")).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.FilesProcessed != 0 {
		t.Errorf("got %+v, want zero result", result)
	}
}
