package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

type fakeActivityRepo struct {
	findMatchingFn   func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error)
	searchKeywordsFn func(ctx context.Context, keywords []string, limit int) ([]*types.Activity, error)
	getByNameFn      func(ctx context.Context, name string) (*types.Activity, error)
}

func (f *fakeActivityRepo) Create(ctx context.Context, tx *gorm.DB, activities []*types.Activity) ([]*types.Activity, error) {
	return activities, nil
}

func (f *fakeActivityRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Activity, error) {
	if f.getByNameFn != nil {
		return f.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeActivityRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	return false, nil
}

func (f *fakeActivityRepo) FindMatching(ctx context.Context, tx *gorm.DB, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
	if f.findMatchingFn != nil {
		return f.findMatchingFn(ctx, profile, limit)
	}
	return nil, nil
}

func (f *fakeActivityRepo) SearchKeywords(ctx context.Context, tx *gorm.DB, keywords []string, limit int) ([]*types.Activity, error) {
	if f.searchKeywordsFn != nil {
		return f.searchKeywordsFn(ctx, keywords, limit)
	}
	return nil, nil
}

func (f *fakeActivityRepo) Random(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return 0, nil
}

type fakeOpenAIClient struct {
	chatFn     func(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float64) (string, error)
	chatJSONFn func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error)
}

func (f *fakeOpenAIClient) Chat(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float64) (string, error) {
	if f.chatFn != nil {
		return f.chatFn(ctx, messages, maxTokens, temperature)
	}
	return "", nil
}

func (f *fakeOpenAIClient) ChatJSON(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
	if f.chatJSONFn != nil {
		return f.chatJSONFn(ctx, system, user, maxTokens)
	}
	return nil, nil
}

type fakeCoachClient struct {
	enabled    bool
	discoverFn func(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error)
	adviceFn   func(ctx context.Context, message string, profile types.DogProfile, activityContext map[string]any) (string, error)
}

func (f *fakeCoachClient) Enabled() bool { return f.enabled }

func (f *fakeCoachClient) DiscoverActivities(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error) {
	if f.discoverFn != nil {
		return f.discoverFn(ctx, profile, existing, maxActivities)
	}
	return nil, nil
}

func (f *fakeCoachClient) CoachAdvice(ctx context.Context, message string, profile types.DogProfile, activityContext map[string]any) (string, error) {
	if f.adviceFn != nil {
		return f.adviceFn(ctx, message, profile, activityContext)
	}
	return "", nil
}
