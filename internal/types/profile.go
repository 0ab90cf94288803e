package types

import (
	"fmt"
	"strings"
)

// DogProfile is the raw form submission. It lives for the request (and a
// session cookie), never in the database.
type DogProfile struct {
	Breed          string `json:"breed"`
	Age            string `json:"age"`
	EnergyLevel    string `json:"energy_level"`
	Weather        string `json:"weather"`
	EnrichmentType string `json:"enrichment_type"`
}

func (p DogProfile) Summary() string {
	return fmt.Sprintf("Dog breed: %s, Age: %s, Energy level: %s, Weather: %s, Preferred enrichment: %s",
		p.Breed, p.Age, p.EnergyLevel, p.Weather, p.EnrichmentType)
}

// NormalizedProfile is the canonical form the matcher filters on.
type NormalizedProfile struct {
	BreedSize BreedSize
	AgeGroup  AgeGroup
	Weather   WeatherClass
	Category  Category
}

func (p DogProfile) Normalize() NormalizedProfile {
	return NormalizedProfile{
		BreedSize: ParseBreedSize(p.Breed),
		AgeGroup:  ParseAgeGroup(p.Age),
		Weather:   ParseWeatherClass(p.Weather),
		Category:  ParseCategory(p.EnrichmentType),
	}
}

type BreedSize string

const (
	BreedSizeSmall  BreedSize = "Small"
	BreedSizeMedium BreedSize = "Medium"
	BreedSizeLarge  BreedSize = "Large"
	BreedSizeGiant  BreedSize = "Giant"
	BreedSizeAll    BreedSize = "All"
)

// ParseBreedSize classifies free text like "Large breed (60-90 lbs)".
// Unrecognized input matches every size.
func ParseBreedSize(s string) BreedSize {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "small"):
		return BreedSizeSmall
	case strings.Contains(lower, "medium"):
		return BreedSizeMedium
	case strings.Contains(lower, "large"):
		return BreedSizeLarge
	case strings.Contains(lower, "giant"):
		return BreedSizeGiant
	default:
		return BreedSizeAll
	}
}

type AgeGroup string

const (
	AgeGroupPuppy      AgeGroup = "Puppy"
	AgeGroupYoungAdult AgeGroup = "Young adult"
	AgeGroupAdult      AgeGroup = "Adult"
	AgeGroupSenior     AgeGroup = "Senior"
	AgeGroupAll        AgeGroup = "All"
)

// ParseAgeGroup classifies free text like "Adult (3-7 years)". The
// "young adult" check must run before the plain "adult" check or
// "Young adult (1-3 years)" would classify as Adult.
func ParseAgeGroup(s string) AgeGroup {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "puppy"):
		return AgeGroupPuppy
	case strings.Contains(lower, "young adult"):
		return AgeGroupYoungAdult
	case strings.Contains(lower, "senior"):
		return AgeGroupSenior
	case strings.Contains(lower, "adult"):
		return AgeGroupAdult
	default:
		return AgeGroupAll
	}
}

type WeatherClass string

const (
	WeatherNice   WeatherClass = "Nice weather"
	WeatherIndoor WeatherClass = "Indoor weather"
	WeatherAny    WeatherClass = "Any"
)

// ParseWeatherClass maps the weather selection to the catalog's
// weather_suitable vocabulary. "Mixed" and anything unrecognized mean
// no preference.
func ParseWeatherClass(s string) WeatherClass {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "nice"), strings.Contains(lower, "outdoor"):
		return WeatherNice
	case strings.Contains(lower, "indoor"):
		return WeatherIndoor
	default:
		return WeatherAny
	}
}

type Category string

const (
	CategoryMental        Category = "Mental"
	CategoryPhysical      Category = "Physical"
	CategorySocial        Category = "Social"
	CategoryEnvironmental Category = "Environmental"
	CategoryInstinctual   Category = "Instinctual"
	CategoryPassive       Category = "Passive"

	// CategoryAny is the wildcard: no category filter at all.
	CategoryAny Category = "Any"
)

var Categories = []Category{
	CategoryMental,
	CategoryPhysical,
	CategorySocial,
	CategoryEnvironmental,
	CategoryInstinctual,
	CategoryPassive,
}

// categoryMatchOrder checks Environmental before Mental: the
// case-insensitive scan would otherwise hit the "mental" substring
// inside "environmental" first.
var categoryMatchOrder = []Category{
	CategoryEnvironmental,
	CategoryMental,
	CategoryPhysical,
	CategorySocial,
	CategoryInstinctual,
	CategoryPassive,
}

// ParseCategory classifies enrichment-type selections like
// "Physical Enrichment - Exercise and movement activities". "Mixed"
// requests span every category. Unrecognized input falls back to Mental;
// that default is inherited behavior, kept on purpose.
func ParseCategory(s string) Category {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "mixed") {
		return CategoryAny
	}
	for _, c := range categoryMatchOrder {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c
		}
	}
	return CategoryMental
}

func (c Category) Wildcard() bool {
	return c == CategoryAny
}
