package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

func namedActivities(names ...string) []*types.Activity {
	out := make([]*types.Activity, 0, len(names))
	for _, n := range names {
		out = append(out, &types.Activity{Name: n})
	}
	return out
}

func standardProfile() types.DogProfile {
	return types.DogProfile{
		Breed:          "Medium breed (25-60 lbs)",
		Age:            "Adult (3-7 years)",
		EnergyLevel:    "Medium energy",
		Weather:        "Any weather - flexible activities",
		EnrichmentType: "Mental enrichment - brain games",
	}
}

func TestGenerateActivitiesCatalogOnly(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			return namedActivities("A", "B", "C", "D"), nil
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			t.Fatal("AI generation must not run when the catalog fills the limit")
			return nil, nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, nil)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want 4", len(activities))
	}
}

func TestGenerateActivitiesTopsUpFromAI(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			return namedActivities("Catalog Match"), nil
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			return map[string]any{
				"activities": []any{
					map[string]any{"name": "AI One", "materials": []any{"ball"}, "instructions": []any{"throw it"}},
					map[string]any{"name": "AI Two"},
					map[string]any{"name": "AI Three"},
				},
			}, nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, nil)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want 4", len(activities))
	}
	if activities[0].Name != "Catalog Match" {
		t.Errorf("catalog activities must come first, got %q", activities[0].Name)
	}
	if activities[1].Name != "AI One" {
		t.Errorf("got %q in slot 1, want AI One", activities[1].Name)
	}
}

func TestGenerateActivitiesStaticFallbackOnAIError(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			return namedActivities("A", "B", "C"), nil
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			return nil, errors.New("model unavailable")
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, nil)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("generation failure must not surface: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want 4", len(activities))
	}
	if activities[3].Name != "Sniff & Find Treats" {
		t.Errorf("got %q as fallback, want Sniff & Find Treats", activities[3].Name)
	}
}

func TestGenerateActivitiesWithoutAIClient(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{}

	gs := NewGeneratorService(nil, log, repo, nil, nil)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	// empty catalog, no AI: the single static standard activity remains
	if len(activities) != 1 {
		t.Fatalf("got %d activities, want 1", len(activities))
	}
}

func TestGenerateActivitiesPrefersCoachDiscovery(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			return namedActivities("Catalog Match"), nil
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			t.Fatal("local generation must not run when discovery succeeds")
			return nil, nil
		},
	}
	coach := &fakeCoachClient{
		enabled: true,
		discoverFn: func(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error) {
			if maxActivities != 3 {
				t.Errorf("discovery asked for %d activities, want 3", maxActivities)
			}
			return namedActivities("Remote One", "Remote Two", "Remote Three"), nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, coach)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want 4", len(activities))
	}
	if activities[1].Name != "Remote One" {
		t.Errorf("got %q in slot 1, want Remote One", activities[1].Name)
	}
}

func TestGenerateActivitiesCoachFailureFallsThrough(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{}
	coach := &fakeCoachClient{
		enabled: true,
		discoverFn: func(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error) {
			return nil, errors.New("edge function down")
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			return map[string]any{"activities": []any{
				map[string]any{"name": "Local One"},
				map[string]any{"name": "Local Two"},
				map[string]any{"name": "Local Three"},
				map[string]any{"name": "Local Four"},
			}}, nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, coach)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	if len(activities) != 4 || activities[0].Name != "Local One" {
		t.Fatalf("expected 4 locally generated activities, got %d", len(activities))
	}
}

func TestGeneratePassiveStaticFallback(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			if profile.Category != types.CategoryPassive {
				t.Errorf("passive flow matched category %q, want Passive", profile.Category)
			}
			return namedActivities("Lick Mat Meditation", "Puzzle Feeder Challenge"), nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, nil, nil)
	activities, err := gs.GeneratePassive(context.Background(), "Any dog", "Any age", 4)
	if err != nil {
		t.Fatalf("GeneratePassive: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want 4", len(activities))
	}
	if activities[2].Name != "Frozen Kong Treat" || activities[3].Name != "Sniff Mat Foraging" {
		t.Errorf("unexpected passive fallback: %q, %q", activities[2].Name, activities[3].Name)
	}
}

func TestGenerateActivitiesTrimsExcessTopUp(t *testing.T) {
	log := testLogger(t)
	repo := &fakeActivityRepo{
		findMatchingFn: func(ctx context.Context, profile types.NormalizedProfile, limit int) ([]*types.Activity, error) {
			return namedActivities("A", "B", "C"), nil
		},
	}
	openai := &fakeOpenAIClient{
		chatJSONFn: func(ctx context.Context, system, user string, maxTokens int) (map[string]any, error) {
			return map[string]any{"activities": []any{
				map[string]any{"name": "Extra One"},
				map[string]any{"name": "Extra Two"},
				map[string]any{"name": "Extra Three"},
			}}, nil
		},
	}

	gs := NewGeneratorService(nil, log, repo, openai, nil)
	activities, err := gs.GenerateActivities(context.Background(), standardProfile(), 4)
	if err != nil {
		t.Fatalf("GenerateActivities: %v", err)
	}
	if len(activities) != 4 {
		t.Fatalf("got %d activities, want exactly 4", len(activities))
	}
}
