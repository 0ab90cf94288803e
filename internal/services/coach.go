package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
	"github.com/cherilynwood/dog-enrichment-backend/internal/utils"
)

// CoachClient talks to the hosted edge functions (activity discovery,
// enrichment coach, content generation). It is optional: without the
// base URL and anon key every call errors immediately and callers move
// on to their local fallback.
type CoachClient interface {
	Enabled() bool
	DiscoverActivities(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error)
	CoachAdvice(ctx context.Context, message string, profile types.DogProfile, activityContext map[string]any) (string, error)
}

type coachClient struct {
	log         *logger.Logger
	baseURL     string
	anonKey     string
	discoverURL string
	coachURL    string
	// generateURL is reserved for the hosted generate-content function.
	generateURL string
	httpClient  *http.Client
}

func NewCoachClient(log *logger.Logger) CoachClient {
	clientLog := log.With("service", "CoachClient")

	c := &coachClient{
		log:         clientLog,
		baseURL:     utils.GetEnv("SUPABASE_URL", "", log),
		anonKey:     utils.GetEnv("SUPABASE_ANON_KEY", "", log),
		discoverURL: utils.GetEnv("SUPABASE_DISCOVER_ACTIVITIES_URL", "", log),
		coachURL:    utils.GetEnv("SUPABASE_ENRICHMENT_COACH_URL", "", log),
		generateURL: utils.GetEnv("SUPABASE_GENERATE_CONTENT_URL", "", log),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
	if !c.Enabled() {
		clientLog.Warn("Coach credentials not found - falling back to local mode")
	}
	return c
}

func (c *coachClient) Enabled() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// RemoteDogProfile is the profile document the coach functions expect.
type RemoteDogProfile struct {
	Name                 string   `json:"name"`
	Breed                string   `json:"breed"`
	Size                 string   `json:"size"`
	Age                  float64  `json:"age"`
	AgeGroup             string   `json:"ageGroup"`
	EnergyLevel          string   `json:"energyLevel"`
	LivingSituation      string   `json:"livingSituation"`
	MobilityIssues       []string `json:"mobilityIssues"`
	WeatherPreference    string   `json:"weatherPreference"`
	EnrichmentPreference string   `json:"enrichmentPreference"`
}

// BuildRemoteProfile converts form text into the coach's profile format.
// The remote vocabulary has no "Young adult" bucket, so young adults map
// to Adult with a representative age.
func BuildRemoteProfile(profile types.DogProfile) RemoteDogProfile {
	size := "Medium"
	breed := profile.Breed
	switch types.ParseBreedSize(profile.Breed) {
	case types.BreedSizeSmall:
		size = "Small"
		breed = strings.ReplaceAll(breed, " (under 25 lbs)", "")
	case types.BreedSizeMedium:
		size = "Medium"
		breed = strings.ReplaceAll(breed, " (25-60 lbs)", "")
	case types.BreedSizeLarge:
		size = "Large"
		breed = strings.ReplaceAll(breed, " (60-90 lbs)", "")
	case types.BreedSizeGiant:
		size = "Giant"
		breed = strings.ReplaceAll(breed, " (over 90 lbs)", "")
	}

	age := 5.0
	ageGroup := "Adult"
	switch types.ParseAgeGroup(profile.Age) {
	case types.AgeGroupPuppy:
		age = 0.5
		ageGroup = "Puppy"
	case types.AgeGroupYoungAdult:
		age = 2
		ageGroup = "Adult"
	case types.AgeGroupSenior:
		age = 8
		ageGroup = "Senior"
	}

	energy := "Medium"
	lowerEnergy := strings.ToLower(profile.EnergyLevel)
	if strings.Contains(lowerEnergy, "low energy") {
		energy = "Low"
	} else if strings.Contains(lowerEnergy, "high energy") {
		energy = "High"
	}

	living := "House"
	if types.ParseWeatherClass(profile.Weather) == types.WeatherIndoor {
		living = "Apartment"
	}

	return RemoteDogProfile{
		Name:                 "My Dog",
		Breed:                breed,
		Size:                 size,
		Age:                  age,
		AgeGroup:             ageGroup,
		EnergyLevel:          energy,
		LivingSituation:      living,
		MobilityIssues:       []string{},
		WeatherPreference:    profile.Weather,
		EnrichmentPreference: profile.EnrichmentType,
	}
}

type remoteActivity struct {
	Title        string   `json:"title"`
	Pillar       string   `json:"pillar"`
	Materials    []string `json:"materials"`
	Instructions []string `json:"instructions"`
	Duration     int      `json:"duration"`
	Difficulty   string   `json:"difficulty"`
	EnergyLevel  string   `json:"energyLevel"`
	Tags         []string `json:"tags"`
}

type discoverResponse struct {
	Activities []remoteActivity `json:"activities"`
	Message    string           `json:"message"`
}

type coachResponse struct {
	Reply string `json:"reply"`
}

func (c *coachClient) post(ctx context.Context, url string, payload any, out any) error {
	if !c.Enabled() || url == "" {
		return fmt.Errorf("coach not configured")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return readErr
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coach api error: %d", resp.StatusCode)
	}
	return json.Unmarshal(raw, out)
}

func (c *coachClient) DiscoverActivities(ctx context.Context, profile types.DogProfile, existing []*types.Activity, maxActivities int) ([]*types.Activity, error) {
	existingDocs := make([]map[string]any, 0, len(existing))
	for _, a := range existing {
		existingDocs = append(existingDocs, map[string]any{"title": a.Name, "pillar": a.Category})
	}

	payload := map[string]any{
		"dogProfile":         BuildRemoteProfile(profile),
		"existingActivities": existingDocs,
		"maxActivities":      maxActivities,
		"qualityThreshold":   0.6,
	}

	var resp discoverResponse
	if err := c.post(ctx, c.discoverURL, payload, &resp); err != nil {
		return nil, err
	}
	return convertRemoteActivities(resp.Activities), nil
}

func (c *coachClient) CoachAdvice(ctx context.Context, message string, profile types.DogProfile, activityContext map[string]any) (string, error) {
	payload := map[string]any{
		"messages":        []map[string]string{{"role": "user", "content": message}},
		"dogProfile":      BuildRemoteProfile(profile),
		"activityHistory": []any{},
		"pillarBalance":   map[string]any{},
		"activityContext": activityContext,
	}

	var resp coachResponse
	if err := c.post(ctx, c.coachURL, payload, &resp); err != nil {
		return "", err
	}
	if resp.Reply == "" {
		return "", fmt.Errorf("coach returned empty reply")
	}
	return resp.Reply, nil
}

// convertRemoteActivities maps the coach's activity format onto catalog
// rows for rendering.
func convertRemoteActivities(remote []remoteActivity) []*types.Activity {
	out := make([]*types.Activity, 0, len(remote))
	for _, ra := range remote {
		name := ra.Title
		if name == "" {
			name = "Unnamed Activity"
		}
		pillar := ra.Pillar
		if pillar == "" {
			pillar = "Mental"
		}
		duration := ra.Duration
		if duration == 0 {
			duration = 15
		}
		difficulty := ra.Difficulty
		if difficulty == "" {
			difficulty = "Medium"
		}
		energy := ra.EnergyLevel
		if energy == "" {
			energy = "Medium"
		}
		out = append(out, &types.Activity{
			Name:            name,
			Category:        strings.Title(strings.ToLower(pillar)),
			Materials:       datatypes.JSONSlice[string](ra.Materials),
			Instructions:    datatypes.JSONSlice[string](ra.Instructions),
			SafetyNotes:     "Always supervise your dog during activities.",
			EstimatedTime:   fmt.Sprintf("%d minutes", duration),
			DifficultyLevel: difficulty,
			EnergyRequired:  energy,
			Tags:            datatypes.JSONSlice[string](ra.Tags),
		})
	}
	return out
}
