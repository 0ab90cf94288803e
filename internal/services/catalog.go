package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/seed"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

// CatalogService owns catalog reads and the import path.
type CatalogService interface {
	EnsureSeeded(ctx context.Context) error
	ListAll(ctx context.Context) ([]*types.Activity, error)
	ByCategory(ctx context.Context) (map[string][]*types.Activity, []*types.Activity, error)
	Import(ctx context.Context, activity *types.Activity) error
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.ActivityRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, activityRepo repos.ActivityRepo) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{db: db, log: serviceLog, activityRepo: activityRepo}
}

func (cs *catalogService) EnsureSeeded(ctx context.Context) error {
	return seed.Populate(ctx, cs.activityRepo, cs.log)
}

func (cs *catalogService) ListAll(ctx context.Context) ([]*types.Activity, error) {
	return cs.activityRepo.List(ctx, nil)
}

// ByCategory groups the catalog for the library page and picks up to
// four featured activities, one per category.
func (cs *catalogService) ByCategory(ctx context.Context) (map[string][]*types.Activity, []*types.Activity, error) {
	activities, err := cs.activityRepo.List(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	grouped := make(map[string][]*types.Activity, len(types.Categories))
	for _, c := range types.Categories {
		grouped[string(c)] = []*types.Activity{}
	}
	for _, a := range activities {
		if _, known := grouped[a.Category]; known {
			grouped[a.Category] = append(grouped[a.Category], a)
		}
	}

	featured := make([]*types.Activity, 0, 4)
	for _, c := range types.Categories {
		if len(featured) == 4 {
			break
		}
		if rows := grouped[string(c)]; len(rows) > 0 {
			featured = append(featured, rows[0])
		}
	}
	return grouped, featured, nil
}

func (cs *catalogService) Import(ctx context.Context, activity *types.Activity) error {
	if activity.Name == "" {
		return fmt.Errorf("name is required")
	}
	if activity.Category == "" {
		return fmt.Errorf("category is required")
	}
	activity.ApplyImportDefaults()

	if _, err := cs.activityRepo.Create(ctx, nil, []*types.Activity{activity}); err != nil {
		return err
	}
	cs.log.Info("Activity imported", "name", activity.Name, "category", activity.Category)
	return nil
}
