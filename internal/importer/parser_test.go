package importer

import (
	"testing"
)

const sampleDropFile = `**Towel Burrito Unroll**
**•Description**
Wrap treats in a rolled towel for your dog to unroll
**•Materials Needed**
* bath towel
* small treats
**•Step-by-Step Instructions**
1. Lay the towel flat and scatter treats along it
2. Roll the towel up loosely
3. Let your dog nose and paw it open
**•Safety Notes**
Supervise so the towel is not chewed.
Replace frayed towels.
**•Estimated Time**
10-15 minutes

**Bonding Massage Time**
**•Materials Needed**
* quiet room
**•Step-by-Step Instructions**
1. Sit with your dog somewhere calm
2. Use slow strokes along the back
**•Estimated Time**
15 minutes
`

func TestParseText(t *testing.T) {
	activities := ParseText(sampleDropFile)
	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(activities))
	}

	first := activities[0]
	if first.Name != "Towel Burrito Unroll" {
		t.Errorf("got name %q", first.Name)
	}
	if first.Description != "Wrap treats in a rolled towel for your dog to unroll" {
		t.Errorf("got description %q", first.Description)
	}
	if len(first.Materials) != 2 || first.Materials[0] != "bath towel" {
		t.Errorf("got materials %v", first.Materials)
	}
	if len(first.Instructions) != 3 || first.Instructions[2] != "Let your dog nose and paw it open" {
		t.Errorf("got instructions %v", first.Instructions)
	}
	if first.SafetyNotes != "Supervise so the towel is not chewed. Replace frayed towels." {
		t.Errorf("multi-line safety notes should join: %q", first.SafetyNotes)
	}
	if first.EstimatedTime != "10-15 minutes" {
		t.Errorf("got estimated time %q", first.EstimatedTime)
	}

	second := activities[1]
	if second.Name != "Bonding Massage Time" {
		t.Errorf("got name %q", second.Name)
	}
	// bonding activities pick up low-key defaults
	if second.EnergyRequired != "Low" || second.DifficultyLevel != "Easy" {
		t.Errorf("got energy %q difficulty %q", second.EnergyRequired, second.DifficultyLevel)
	}
	if second.Description == "" {
		t.Error("missing description should fall back to a generated one")
	}
	if len(second.BreedSizes) != 1 || second.BreedSizes[0] != "All" {
		t.Errorf("got breed sizes %v", second.BreedSizes)
	}
}

func TestParseTextSkipsFragments(t *testing.T) {
	if got := ParseText("**Tiny**\nshort"); len(got) != 0 {
		t.Errorf("short fragments should be skipped, got %d activities", len(got))
	}
	if got := ParseText(""); len(got) != 0 {
		t.Errorf("empty content should yield nothing, got %d", len(got))
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"filename wins", "mental_games.txt", "lots of running and jumping", "Mental"},
		{"physical filename", "exercise_ideas.txt", "", "Physical"},
		{"content puzzle", "batch1.txt", "a puzzle your dog solves", "Mental"},
		{"content digging", "batch2.txt", "digging pit setup", "Instinctual"},
		{"content lick", "batch3.txt", "lick mat prep", "Passive"},
		{"training defaults to social", "batch4.txt", "basic training session", "Social"},
		{"nothing recognizable", "batch5.txt", "???", "Social"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.filename, tt.content); got != tt.want {
				t.Errorf("DetectCategory(%q, %q) = %q, want %q", tt.filename, tt.content, got, tt.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`name: Cardboard Castle
category: Environmental
description: A box fort to explore
materials:
  - cardboard boxes
  - treats
instructions:
  - Stack the boxes
  - Hide treats inside
safety_notes: Remove tape and staples first.
estimated_time: 20 minutes
breed_sizes:
  - Small
  - Medium
---
name: Second Activity
category: Mental
`)

	activities, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(activities))
	}

	first := activities[0]
	if first.Name != "Cardboard Castle" || first.Category != "Environmental" {
		t.Errorf("got %q / %q", first.Name, first.Category)
	}
	if len(first.Materials) != 2 || len(first.BreedSizes) != 2 {
		t.Errorf("lists did not decode: %v %v", first.Materials, first.BreedSizes)
	}

	// defaults fill what the document leaves out
	second := activities[1]
	if second.WeatherSuitable != "Any" || second.DifficultyLevel != "Medium" {
		t.Errorf("import defaults not applied: %+v", second)
	}
	if len(second.AgeGroups) != 1 || second.AgeGroups[0] != "All" {
		t.Errorf("got age groups %v", second.AgeGroups)
	}
}

func TestParseYAMLBadDocument(t *testing.T) {
	if _, err := ParseYAML([]byte("name: [unclosed")); err == nil {
		t.Error("malformed yaml should error")
	}
}
