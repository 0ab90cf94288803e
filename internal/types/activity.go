package types

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is one catalog row. List-typed fields are stored as JSON text
// so the matcher can run LIKE patterns over them on both sqlite and
// postgres.
type Activity struct {
	ID              uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string                      `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Category        string                      `gorm:"not null;index;column:category" json:"category"`
	Subcategory     string                      `gorm:"column:subcategory" json:"subcategory"`
	Description     string                      `gorm:"column:description" json:"description"`
	Materials       datatypes.JSONSlice[string] `gorm:"type:text;column:materials" json:"materials"`
	Instructions    datatypes.JSONSlice[string] `gorm:"type:text;column:instructions" json:"instructions"`
	SafetyNotes     string                      `gorm:"column:safety_notes" json:"safety_notes"`
	EstimatedTime   string                      `gorm:"column:estimated_time" json:"estimated_time"`
	DifficultyLevel string                      `gorm:"column:difficulty_level" json:"difficulty_level"`
	EnergyRequired  string                      `gorm:"column:energy_required" json:"energy_required"`
	WeatherSuitable string                      `gorm:"column:weather_suitable" json:"weather_suitable"`
	BreedSizes      datatypes.JSONSlice[string] `gorm:"type:text;column:breed_sizes" json:"breed_sizes"`
	AgeGroups       datatypes.JSONSlice[string] `gorm:"type:text;column:age_groups" json:"age_groups"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:text;column:tags" json:"tags"`
	CreatedAt       time.Time                   `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// ApplyImportDefaults fills the fields the import surface treats as
// optional, mirroring what the catalog expects of every row.
func (a *Activity) ApplyImportDefaults() {
	if a.DifficultyLevel == "" {
		a.DifficultyLevel = "Medium"
	}
	if a.EnergyRequired == "" {
		a.EnergyRequired = "Medium"
	}
	if a.WeatherSuitable == "" {
		a.WeatherSuitable = "Any"
	}
	if len(a.BreedSizes) == 0 {
		a.BreedSizes = datatypes.JSONSlice[string]{"All"}
	}
	if len(a.AgeGroups) == 0 {
		a.AgeGroups = datatypes.JSONSlice[string]{"All"}
	}
	if a.Tags == nil {
		a.Tags = datatypes.JSONSlice[string]{}
	}
}
