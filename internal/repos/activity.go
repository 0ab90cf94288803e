package repos

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

type ActivityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, activities []*types.Activity) ([]*types.Activity, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Activity, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Activity, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	FindMatching(ctx context.Context, tx *gorm.DB, profile types.NormalizedProfile, limit int) ([]*types.Activity, error)
	SearchKeywords(ctx context.Context, tx *gorm.DB, keywords []string, limit int) ([]*types.Activity, error)
	Random(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Activity, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type activityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityRepo(db *gorm.DB, baseLog *logger.Logger) ActivityRepo {
	repoLog := baseLog.With("repo", "ActivityRepo")
	return &activityRepo{db: db, log: repoLog}
}

func (ar *activityRepo) Create(ctx context.Context, tx *gorm.DB, activities []*types.Activity) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if len(activities) == 0 {
		return []*types.Activity{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (ar *activityRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Order("category, name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *activityRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var result types.Activity
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ar *activityRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Activity{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindMatching filters the catalog on the normalized profile. Matching
// is LIKE-based over the serialized list columns, so a value that
// appears inside a longer word still matches; that looseness is
// inherited and accepted. Rows come back in random order, capped at
// limit. An empty result means "not enough", not an error.
func (ar *activityRepo) FindMatching(ctx context.Context, tx *gorm.DB, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	q := transaction.WithContext(ctx).Model(&types.Activity{})
	if !profile.Category.Wildcard() {
		q = q.Where("category LIKE ?", like(string(profile.Category)))
	}
	q = q.Where("(breed_sizes LIKE ? OR breed_sizes LIKE ?)", like(string(profile.BreedSize)), like("All")).
		Where("(age_groups LIKE ? OR age_groups LIKE ?)", like(string(profile.AgeGroup)), like("All")).
		Where("(weather_suitable LIKE ? OR weather_suitable LIKE ?)", like(string(profile.Weather)), like("Any"))

	var results []*types.Activity
	if err := q.Order("RANDOM()").Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SearchKeywords returns rows where any keyword appears in the name,
// description, category or tags. With no keywords it falls back to a
// random sample.
func (ar *activityRepo) SearchKeywords(ctx context.Context, tx *gorm.DB, keywords []string, limit int) ([]*types.Activity, error) {
	if len(keywords) == 0 {
		return ar.Random(ctx, tx, limit)
	}

	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	conditions := make([]string, 0, len(keywords))
	params := make([]interface{}, 0, len(keywords)*4)
	for _, kw := range keywords {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ? OR category LIKE ? OR tags LIKE ?)")
		p := like(kw)
		params = append(params, p, p, p, p)
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), params...).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *activityRepo) Random(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Order("RANDOM()").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *activityRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Activity{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func like(s string) string {
	return "%" + s + "%"
}
