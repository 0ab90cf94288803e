package seed

import "testing"

func TestInitialActivitiesAreComplete(t *testing.T) {
	activities := InitialActivities()
	if len(activities) != 14 {
		t.Fatalf("got %d activities, want 14", len(activities))
	}

	seen := make(map[string]bool, len(activities))
	categories := make(map[string]int)
	for _, a := range activities {
		t.Run(a.Name, func(t *testing.T) {
			if a.Name == "" {
				t.Fatal("activity without a name")
			}
			if seen[a.Name] {
				t.Errorf("duplicate name %q", a.Name)
			}
			seen[a.Name] = true

			// every row must render: non-empty materials and steps
			if len(a.Materials) == 0 {
				t.Error("no materials")
			}
			if len(a.Instructions) == 0 {
				t.Error("no instructions")
			}
			if a.Category == "" {
				t.Error("no category")
			}
			if a.Description == "" {
				t.Error("no description")
			}
			if a.EstimatedTime == "" {
				t.Error("no estimated time")
			}
			if a.WeatherSuitable == "" {
				t.Error("no weather suitability")
			}
			if len(a.BreedSizes) == 0 {
				t.Error("no breed sizes")
			}
			if len(a.AgeGroups) == 0 {
				t.Error("no age groups")
			}
		})
		categories[a.Category]++
	}

	for _, c := range []string{"Mental", "Physical", "Social", "Environmental", "Instinctual", "Passive"} {
		if categories[c] == 0 {
			t.Errorf("category %q has no starter activities", c)
		}
	}
}
