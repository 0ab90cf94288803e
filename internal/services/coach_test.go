package services

import (
	"testing"

	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

func TestBuildRemoteProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile types.DogProfile
		want    RemoteDogProfile
	}{
		{
			name: "small indoor puppy",
			profile: types.DogProfile{
				Breed:          "Small breed (under 25 lbs)",
				Age:            "Puppy (under 1 year)",
				EnergyLevel:    "Low energy",
				Weather:        "Indoor weather - inside activities",
				EnrichmentType: "Mental enrichment - brain games",
			},
			want: RemoteDogProfile{
				Name:                 "My Dog",
				Breed:                "Small breed",
				Size:                 "Small",
				Age:                  0.5,
				AgeGroup:             "Puppy",
				EnergyLevel:          "Low",
				LivingSituation:      "Apartment",
				MobilityIssues:       []string{},
				WeatherPreference:    "Indoor weather - inside activities",
				EnrichmentPreference: "Mental enrichment - brain games",
			},
		},
		{
			// the remote vocabulary has no young adult bucket
			name: "young adult maps to adult",
			profile: types.DogProfile{
				Breed:          "Large breed (60-90 lbs)",
				Age:            "Young adult (1-3 years)",
				EnergyLevel:    "High energy",
				Weather:        "Nice weather - outdoor activities",
				EnrichmentType: "Physical enrichment - exercise",
			},
			want: RemoteDogProfile{
				Name:                 "My Dog",
				Breed:                "Large breed",
				Size:                 "Large",
				Age:                  2,
				AgeGroup:             "Adult",
				EnergyLevel:          "High",
				LivingSituation:      "House",
				MobilityIssues:       []string{},
				WeatherPreference:    "Nice weather - outdoor activities",
				EnrichmentPreference: "Physical enrichment - exercise",
			},
		},
		{
			name: "senior giant with defaults",
			profile: types.DogProfile{
				Breed:          "Giant breed (over 90 lbs)",
				Age:            "Senior (7+ years)",
				EnergyLevel:    "Medium energy",
				Weather:        "Any weather - flexible activities",
				EnrichmentType: "Social enrichment - bonding",
			},
			want: RemoteDogProfile{
				Name:                 "My Dog",
				Breed:                "Giant breed",
				Size:                 "Giant",
				Age:                  8,
				AgeGroup:             "Senior",
				EnergyLevel:          "Medium",
				LivingSituation:      "House",
				MobilityIssues:       []string{},
				WeatherPreference:    "Any weather - flexible activities",
				EnrichmentPreference: "Social enrichment - bonding",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRemoteProfile(tt.profile)
			if got.Breed != tt.want.Breed || got.Size != tt.want.Size ||
				got.Age != tt.want.Age || got.AgeGroup != tt.want.AgeGroup ||
				got.EnergyLevel != tt.want.EnergyLevel || got.LivingSituation != tt.want.LivingSituation ||
				got.Name != tt.want.Name {
				t.Errorf("BuildRemoteProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertRemoteActivities(t *testing.T) {
	remote := []remoteActivity{
		{
			Title:        "Flirt Pole Chase",
			Pillar:       "PHYSICAL",
			Materials:    []string{"flirt pole"},
			Instructions: []string{"wave it", "let them catch it"},
			Duration:     20,
			Difficulty:   "Easy",
			EnergyLevel:  "High",
		},
		{},
	}

	got := convertRemoteActivities(remote)
	if len(got) != 2 {
		t.Fatalf("got %d activities, want 2", len(got))
	}

	first := got[0]
	if first.Name != "Flirt Pole Chase" || first.Category != "Physical" {
		t.Errorf("got name %q category %q", first.Name, first.Category)
	}
	if first.EstimatedTime != "20 minutes" {
		t.Errorf("got estimated time %q", first.EstimatedTime)
	}

	// empty remote rows pick up defaults
	second := got[1]
	if second.Name != "Unnamed Activity" || second.Category != "Mental" {
		t.Errorf("got name %q category %q", second.Name, second.Category)
	}
	if second.EstimatedTime != "15 minutes" || second.DifficultyLevel != "Medium" || second.EnergyRequired != "Medium" {
		t.Errorf("defaults not applied: %+v", second)
	}
	if second.SafetyNotes == "" {
		t.Error("converted activities should carry the supervision note")
	}
}

func TestCoachDisabledWithoutCredentials(t *testing.T) {
	log := testLogger(t)
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	c := NewCoachClient(log)
	if c.Enabled() {
		t.Error("coach should be disabled without credentials")
	}
}
