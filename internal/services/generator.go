package services

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

// GeneratorService answers "give me N activities for this dog". The
// catalog is always consulted first; when it comes up short the
// remainder is topped up from the remote discovery function, then the
// local LLM, then a small static list. Generation failures never reach
// the caller.
type GeneratorService interface {
	GenerateActivities(ctx context.Context, profile types.DogProfile, limit int) ([]*types.Activity, error)
	GeneratePassive(ctx context.Context, breed, age string, limit int) ([]*types.Activity, error)
}

type generatorService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.ActivityRepo
	openaiClient OpenAIClient
	coachClient  CoachClient
}

// NewGeneratorService wires the cascade. openaiClient and coachClient
// may be nil; each missing tier just falls through to the next.
func NewGeneratorService(db *gorm.DB, log *logger.Logger, activityRepo repos.ActivityRepo, openaiClient OpenAIClient, coachClient CoachClient) GeneratorService {
	serviceLog := log.With("service", "GeneratorService")
	return &generatorService{
		db:           db,
		log:          serviceLog,
		activityRepo: activityRepo,
		openaiClient: openaiClient,
		coachClient:  coachClient,
	}
}

func (gs *generatorService) GenerateActivities(ctx context.Context, profile types.DogProfile, limit int) ([]*types.Activity, error) {
	normalized := profile.Normalize()
	activities, err := gs.activityRepo.FindMatching(ctx, nil, normalized, limit)
	if err != nil {
		return nil, err
	}
	gs.log.Debug("Catalog matching done", "matched", len(activities), "limit", limit)

	if len(activities) >= limit {
		return activities, nil
	}

	needed := limit - len(activities)
	extra := gs.topUp(ctx, profile, activities, needed, standardPrompt(profile, needed), standardFallbackActivities())
	if len(extra) > needed {
		extra = extra[:needed]
	}
	return append(activities, extra...), nil
}

func (gs *generatorService) GeneratePassive(ctx context.Context, breed, age string, limit int) ([]*types.Activity, error) {
	profile := types.DogProfile{
		Breed:          breed,
		Age:            age,
		EnrichmentType: "Passive",
	}

	activities, err := gs.activityRepo.FindMatching(ctx, nil, profile.Normalize(), limit)
	if err != nil {
		return nil, err
	}
	if len(activities) >= limit {
		return activities, nil
	}

	needed := limit - len(activities)
	prompt := passivePrompt(fmt.Sprintf("Dog breed: %s, Age: %s", breed, age), needed)
	extra := gs.topUp(ctx, profile, activities, needed, prompt, passiveFallbackActivities())
	if len(extra) > needed {
		extra = extra[:needed]
	}
	return append(activities, extra...), nil
}

// topUp is the fallback cascade: remote discovery, local generation,
// static list. Every tier's failure is absorbed here.
func (gs *generatorService) topUp(ctx context.Context, profile types.DogProfile, existing []*types.Activity, needed int, prompt generationPrompt, static []*types.Activity) []*types.Activity {
	if gs.coachClient != nil && gs.coachClient.Enabled() {
		discovered, err := gs.coachClient.DiscoverActivities(ctx, profile, existing, needed)
		if err == nil && len(discovered) > 0 {
			gs.log.Debug("Topped up from remote discovery", "count", len(discovered))
			return discovered
		}
		if err != nil {
			gs.log.Warn("Remote discovery failed, trying local generation", "error", err)
		}
	}

	if gs.openaiClient != nil {
		generated, err := gs.generateAI(ctx, prompt)
		if err == nil && len(generated) > 0 {
			gs.log.Debug("Topped up from AI generation", "count", len(generated))
			return generated
		}
		if err != nil {
			gs.log.Warn("AI generation failed, using static fallback", "error", err)
		}
	}

	return static
}

type generationPrompt struct {
	System string
	User   string
}

func (gs *generatorService) generateAI(ctx context.Context, prompt generationPrompt) ([]*types.Activity, error) {
	obj, err := gs.openaiClient.ChatJSON(ctx, prompt.System, prompt.User, 1500)
	if err != nil {
		return nil, err
	}

	rawList, ok := obj["activities"].([]any)
	if !ok {
		return nil, fmt.Errorf("model reply missing activities array")
	}

	activities := make([]*types.Activity, 0, len(rawList))
	for _, raw := range rawList {
		doc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if a := activityFromDoc(doc); a != nil {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func activityFromDoc(doc map[string]any) *types.Activity {
	name, _ := doc["name"].(string)
	if name == "" {
		return nil
	}
	safety, _ := doc["safety_notes"].(string)
	estimated, _ := doc["estimated_time"].(string)
	return &types.Activity{
		Name:          name,
		Materials:     datatypes.JSONSlice[string](stringSlice(doc["materials"])),
		Instructions:  datatypes.JSONSlice[string](stringSlice(doc["instructions"])),
		SafetyNotes:   safety,
		EstimatedTime: estimated,
	}
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func standardPrompt(profile types.DogProfile, count int) generationPrompt {
	user := fmt.Sprintf(`Create %d specific, safe enrichment activities for a dog with this profile: %s

For each activity, provide:
1. Activity name
2. Materials needed
3. Step-by-step instructions (3-5 steps)
4. Safety notes
5. Estimated time

Focus on activities appropriate for the weather and enrichment type requested.
Make instructions clear and beginner-friendly.
Only suggest safe activities with common household items or easily obtainable materials.

Format as JSON with this structure:
{
    "activities": [
        {
            "name": "Activity Name",
            "materials": ["item1", "item2"],
            "instructions": ["step1", "step2", "step3"],
            "safety_notes": "Safety information",
            "estimated_time": "15-20 minutes"
        }
    ]
}`, count, profile.Summary())

	return generationPrompt{
		System: "You are a professional dog trainer and enrichment specialist. Provide safe, creative activities.",
		User:   user,
	}
}

func passivePrompt(profileSummary string, count int) generationPrompt {
	user := fmt.Sprintf(`Create %d specific passive enrichment activities for a dog with this profile: %s

Passive enrichment means activities that dogs can do independently without direct human interaction or training. These should be things the dog can enjoy on their own while you're busy or want them to self-entertain.

For each activity, provide:
1. Activity name
2. Materials needed (common household items)
3. Simple setup instructions (2-3 steps)
4. Safety notes
5. How long it typically keeps dogs occupied

Focus on:
- Puzzle toys and food dispensers
- Sniffing and foraging activities
- Chew toys and long-lasting treats
- Environmental enrichment they can explore alone
- Activities that are safe for unsupervised dogs

Make instructions simple for busy dog owners. Only suggest safe activities.

Format as JSON with this structure:
{
    "activities": [
        {
            "name": "Activity Name",
            "materials": ["item1", "item2"],
            "instructions": ["step1", "step2"],
            "safety_notes": "Safety information",
            "estimated_time": "15-30 minutes"
        }
    ]
}`, count, profileSummary)

	return generationPrompt{
		System: "You are a professional dog trainer specializing in passive enrichment and independent dog activities. Focus on safe, unsupervised activities.",
		User:   user,
	}
}

// standardFallbackActivities is the last resort for the standard flow.
func standardFallbackActivities() []*types.Activity {
	return []*types.Activity{
		{
			Name:      "Sniff & Find Treats",
			Materials: datatypes.JSONSlice[string]{"small treats", "towel or blanket"},
			Instructions: datatypes.JSONSlice[string]{
				"Hide small treats under a towel or blanket",
				"Encourage your dog to sniff and find them",
				"Start easy and make it harder as they get better",
				"Praise them when they find treats",
			},
			SafetyNotes:   "Use dog-safe treats only. Supervise to prevent eating towel.",
			EstimatedTime: "10-15 minutes",
		},
	}
}

// passiveFallbackActivities is the last resort for the passive flow.
func passiveFallbackActivities() []*types.Activity {
	return []*types.Activity{
		{
			Name:      "Frozen Kong Treat",
			Materials: datatypes.JSONSlice[string]{"Kong toy", "wet dog food or peanut butter", "treats"},
			Instructions: datatypes.JSONSlice[string]{
				"Stuff Kong with wet food or peanut butter",
				"Add some treats for variety",
				"Freeze for 2+ hours",
			},
			SafetyNotes:   "Use dog-safe peanut butter without xylitol. Supervise initially.",
			EstimatedTime: "20-45 minutes",
		},
		{
			Name:      "Sniff Mat Foraging",
			Materials: datatypes.JSONSlice[string]{"towel or blanket", "small treats"},
			Instructions: datatypes.JSONSlice[string]{
				"Lay out towel and scatter small treats on it",
				"Scrunch up the towel to hide treats",
				"Let your dog find them by sniffing",
			},
			SafetyNotes:   "Use appropriate-sized treats to prevent choking. Wash towel regularly.",
			EstimatedTime: "10-20 minutes",
		},
	}
}
