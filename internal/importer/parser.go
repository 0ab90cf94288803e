package importer

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

// Drop files use a lightweight markdown-ish layout:
//
//	**Activity Name**
//	**•Materials Needed**
//	* item
//	**•Step-by-Step Instructions**
//	1. step
//	**•Safety Notes**
//	text
//	**•Estimated Time**
//	10-15 minutes
var (
	// a name line is "**Some Activity**"; section headers start with "**•"
	nameLineRe = regexp.MustCompile(`^\*\*([^*•][^*]*)\*\*\s*$`)
	nameRe     = regexp.MustCompile(`^\*\*(.+?)\*\*`)
	stepRe     = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
)

// minSectionLen filters out stray fragments between activities.
const minSectionLen = 50

// ParseText extracts every activity from a drop-file's raw content.
// A new activity begins at each name line.
func ParseText(content string) []*types.Activity {
	var sections []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if nameLineRe.MatchString(strings.TrimSpace(line)) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	var activities []*types.Activity
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if len(section) < minSectionLen {
			continue
		}
		if a := parseSection(section); a != nil {
			activities = append(activities, a)
		}
	}
	return activities
}

func parseSection(text string) *types.Activity {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	nameMatch := nameRe.FindStringSubmatch(lines[0])
	if nameMatch == nil {
		return nil
	}
	name := strings.TrimSpace(nameMatch[1])

	activity := &types.Activity{
		Name:        name,
		Category:    "Mental",
		Description: fmt.Sprintf("A %s enrichment activity", strings.ToLower(name)),
	}
	activity.ApplyImportDefaults()

	section := ""
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "**•Materials Needed**"):
			section = "materials"
			continue
		case strings.HasPrefix(line, "**•Step-by-Step Instructions**"):
			section = "instructions"
			continue
		case strings.HasPrefix(line, "**•Safety Notes**"):
			section = "safety"
			continue
		case strings.HasPrefix(line, "**•Estimated Time**"):
			section = "time"
			continue
		case strings.HasPrefix(line, "**•Description**"):
			section = "description"
			continue
		}

		switch section {
		case "materials":
			if strings.HasPrefix(line, "*") {
				if material := strings.TrimSpace(strings.ReplaceAll(line, "*", "")); material != "" {
					activity.Materials = append(activity.Materials, material)
				}
			}
		case "instructions":
			if m := stepRe.FindStringSubmatch(line); m != nil {
				activity.Instructions = append(activity.Instructions, m[2])
			}
		case "safety":
			if !strings.HasPrefix(line, "**") {
				if activity.SafetyNotes != "" {
					activity.SafetyNotes += " " + line
				} else {
					activity.SafetyNotes = line
				}
			}
		case "time":
			if !strings.HasPrefix(line, "**") {
				activity.EstimatedTime = line
			}
		case "description":
			if !strings.HasPrefix(line, "**") {
				activity.Description = line
			}
		}
	}

	applyContentDefaults(activity)
	return activity
}

func applyContentDefaults(activity *types.Activity) {
	nameLower := strings.ToLower(activity.Name)
	if strings.Contains(nameLower, "training") || strings.Contains(nameLower, "bonding") {
		activity.EnergyRequired = "Low"
		activity.DifficultyLevel = "Easy"
		activity.Tags = datatypes.JSONSlice[string]{"training", "bonding", "communication"}
	}
	if len(activity.Materials) == 0 {
		activity.Materials = datatypes.JSONSlice[string]{"Basic supplies"}
	}
	if len(activity.Instructions) == 0 {
		activity.Instructions = datatypes.JSONSlice[string]{"Follow activity guidelines"}
	}
}

// DetectCategory guesses a category from the filename first and the
// file content second. Training-flavored files land in Social.
func DetectCategory(filename, content string) string {
	filenameLower := strings.ToLower(filename)
	contentLower := strings.ToLower(content)

	filenameCues := []struct {
		words    []string
		category string
	}{
		{[]string{"mental", "brain"}, "Mental"},
		{[]string{"physical", "exercise"}, "Physical"},
		{[]string{"social"}, "Social"},
		{[]string{"environmental"}, "Environmental"},
		{[]string{"instinctual"}, "Instinctual"},
		{[]string{"passive"}, "Passive"},
	}
	for _, cue := range filenameCues {
		for _, w := range cue.words {
			if strings.Contains(filenameLower, w) {
				return cue.category
			}
		}
	}

	contentCues := []struct {
		words    []string
		category string
	}{
		{[]string{"training", "bonding", "social", "interaction"}, "Social"},
		{[]string{"puzzle", "brain", "cognitive", "thinking", "mental"}, "Mental"},
		{[]string{"exercise", "running", "jumping", "physical"}, "Physical"},
		{[]string{"environment", "outdoor", "exploration"}, "Environmental"},
		{[]string{"instinct", "natural", "digging", "hunting"}, "Instinctual"},
		{[]string{"calm", "passive", "relaxing", "lick"}, "Passive"},
	}
	for _, cue := range contentCues {
		for _, w := range cue.words {
			if strings.Contains(contentLower, w) {
				return cue.category
			}
		}
	}

	return "Social"
}

type yamlActivity struct {
	Name            string   `yaml:"name"`
	Category        string   `yaml:"category"`
	Subcategory     string   `yaml:"subcategory"`
	Description     string   `yaml:"description"`
	Materials       []string `yaml:"materials"`
	Instructions    []string `yaml:"instructions"`
	SafetyNotes     string   `yaml:"safety_notes"`
	EstimatedTime   string   `yaml:"estimated_time"`
	DifficultyLevel string   `yaml:"difficulty_level"`
	EnergyRequired  string   `yaml:"energy_required"`
	WeatherSuitable string   `yaml:"weather_suitable"`
	BreedSizes      []string `yaml:"breed_sizes"`
	AgeGroups       []string `yaml:"age_groups"`
	Tags            []string `yaml:"tags"`
}

// ParseYAML decodes a structured activity document. Multi-document
// files yield one activity per document.
func ParseYAML(content []byte) ([]*types.Activity, error) {
	var activities []*types.Activity
	decoder := yaml.NewDecoder(strings.NewReader(string(content)))
	for {
		var doc yamlActivity
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode activity document: %w", err)
		}
		if doc.Name == "" {
			continue
		}
		activity := &types.Activity{
			Name:            doc.Name,
			Category:        doc.Category,
			Subcategory:     doc.Subcategory,
			Description:     doc.Description,
			Materials:       datatypes.JSONSlice[string](doc.Materials),
			Instructions:    datatypes.JSONSlice[string](doc.Instructions),
			SafetyNotes:     doc.SafetyNotes,
			EstimatedTime:   doc.EstimatedTime,
			DifficultyLevel: doc.DifficultyLevel,
			EnergyRequired:  doc.EnergyRequired,
			WeatherSuitable: doc.WeatherSuitable,
			BreedSizes:      datatypes.JSONSlice[string](doc.BreedSizes),
			AgeGroups:       datatypes.JSONSlice[string](doc.AgeGroups),
			Tags:            datatypes.JSONSlice[string](doc.Tags),
		}
		activity.ApplyImportDefaults()
		activities = append(activities, activity)
	}
	return activities, nil
}
