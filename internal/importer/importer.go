package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

const maxConcurrentFiles = 4

type Result struct {
	FilesProcessed int
	Added          int
	Skipped        int
}

// Importer walks a drop folder, adds any activities it finds, and
// moves finished files aside so a rerun does not re-read them.
type Importer struct {
	log          *logger.Logger
	activityRepo repos.ActivityRepo
	dropDir      string
	processedDir string
}

func New(log *logger.Logger, activityRepo repos.ActivityRepo, dropDir, processedDir string) *Importer {
	return &Importer{
		log:          log.With("component", "Importer"),
		activityRepo: activityRepo,
		dropDir:      dropDir,
		processedDir: processedDir,
	}
}

func (im *Importer) Run(ctx context.Context) (Result, error) {
	if err := os.MkdirAll(im.dropDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create drop folder: %w", err)
	}
	if err := os.MkdirAll(im.processedDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create processed folder: %w", err)
	}

	entries, err := os.ReadDir(im.dropDir)
	if err != nil {
		return Result{}, fmt.Errorf("read drop folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".yaml", ".yml":
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		im.log.Info("No activity files found in drop folder", "folder", im.dropDir)
		return Result{}, nil
	}

	im.log.Info("Processing activity files", "count", len(files))

	results := make([]Result, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFiles)
	for i, name := range files {
		group.Go(func() error {
			fileResult, err := im.processFile(groupCtx, name)
			if err != nil {
				im.log.Warn("Could not process activity file", "file", name, "error", err)
				return nil
			}
			results[i] = fileResult
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.FilesProcessed += r.FilesProcessed
		total.Added += r.Added
		total.Skipped += r.Skipped
	}
	im.log.Info("Import complete", "files", total.FilesProcessed, "added", total.Added, "skipped", total.Skipped)
	return total, nil
}

func (im *Importer) processFile(ctx context.Context, name string) (Result, error) {
	path := filepath.Join(im.dropDir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", name, err)
	}

	var activities []*types.Activity
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		activities, err = ParseYAML(content)
		if err != nil {
			return Result{}, err
		}
	default:
		activities = ParseText(string(content))
		category := DetectCategory(name, string(content))
		for _, a := range activities {
			a.Category = category
		}
	}

	result := Result{FilesProcessed: 1}
	for _, activity := range activities {
		if activity.Name == "" {
			continue
		}
		exists, err := im.activityRepo.NameExists(ctx, nil, activity.Name)
		if err != nil {
			return result, err
		}
		if exists {
			im.log.Info("Skipping existing activity", "name", activity.Name)
			result.Skipped++
			continue
		}
		if _, err := im.activityRepo.Create(ctx, nil, []*types.Activity{activity}); err != nil {
			im.log.Warn("Could not add activity", "name", activity.Name, "error", err)
			continue
		}
		im.log.Info("Added activity", "name", activity.Name, "category", activity.Category)
		result.Added++
	}

	if err := os.Rename(path, filepath.Join(im.processedDir, name)); err != nil {
		return result, fmt.Errorf("move %s to processed folder: %w", name, err)
	}
	return result, nil
}
