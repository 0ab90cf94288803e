// Package seed holds the built-in activity catalog the store populates
// itself with on first startup.
package seed

import (
	"context"

	"gorm.io/datatypes"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/repos"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

// Populate inserts the built-in catalog unless the table already has
// rows. The row-count guard keeps repeated startups from duplicating
// seed data; concurrent first launches of separate processes remain
// best-effort.
func Populate(ctx context.Context, activityRepo repos.ActivityRepo, log *logger.Logger) error {
	count, err := activityRepo.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("Catalog already populated, skipping seed", "rows", count)
		return nil
	}

	activities := InitialActivities()
	if _, err := activityRepo.Create(ctx, nil, activities); err != nil {
		return err
	}
	log.Info("Catalog seeded", "rows", len(activities))
	return nil
}

func list(items ...string) datatypes.JSONSlice[string] {
	return datatypes.JSONSlice[string](items)
}

// InitialActivities returns the curated starter catalog covering all six
// enrichment categories.
func InitialActivities() []*types.Activity {
	return []*types.Activity{
		// Mental enrichment
		{
			Name:        "Frozen Kong Challenge",
			Category:    "Mental",
			Description: "A mentally stimulating treat-dispensing activity",
			Materials:   list("Kong toy", "wet dog food or peanut butter", "small treats", "water"),
			Instructions: list(
				"Stuff the Kong with wet food or peanut butter",
				"Add small treats throughout for variety",
				"Fill any gaps with water",
				"Freeze for 2-4 hours until solid",
				"Give to your dog and supervise initially",
			),
			SafetyNotes:     "Use xylitol-free peanut butter only. Remove when Kong becomes small enough to swallow whole.",
			EstimatedTime:   "30-60 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("All"),
			AgeGroups:       list("Adult", "Young adult", "Senior"),
			Tags:            list("food_puzzle", "long_lasting", "solo_activity"),
		},
		{
			Name:        "Muffin Tin Treat Hunt",
			Category:    "Mental",
			Description: "A DIY puzzle using household items",
			Materials:   list("12-cup muffin tin", "tennis balls", "small treats"),
			Instructions: list(
				"Place treats in each muffin cup",
				"Cover each cup with a tennis ball",
				"Show your dog the setup",
				"Encourage them to remove balls to find treats",
				"Praise when they solve each cup",
			),
			SafetyNotes:     "Supervise to ensure balls are not destroyed or swallowed. Use appropriately sized balls.",
			EstimatedTime:   "10-20 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("Medium", "Large", "Giant"),
			AgeGroups:       list("All"),
			Tags:            list("DIY", "problem_solving", "treats"),
		},
		{
			Name:        "Snuffle Mat Foraging",
			Category:    "Mental",
			Description: "Encourages natural foraging behavior",
			Materials:   list("Snuffle mat or thick towel", "small treats or kibble"),
			Instructions: list(
				"Scatter treats throughout the snuffle mat fibers",
				"If using towel, scrunch it up with treats inside",
				"Present to your dog",
				"Let them use their nose to find all treats",
				"Encourage sniffing behavior with praise",
			),
			SafetyNotes:     "Supervise to prevent eating the mat material. Clean mat regularly.",
			EstimatedTime:   "15-25 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("sniffing", "foraging", "instinctual"),
		},

		// Physical enrichment
		{
			Name:        "Backyard Agility Course",
			Category:    "Physical",
			Description: "Build confidence and coordination",
			Materials:   list("Pool noodles", "cones or markers", "blanket", "treats"),
			Instructions: list(
				"Set up pool noodles as jumps (low height)",
				"Create a weaving course with cones",
				"Lay blanket flat for crawling under",
				"Guide dog through course slowly",
				"Reward each successful obstacle",
			),
			SafetyNotes:     "Keep jumps low. Stop if dog shows stress. Ensure safe footing.",
			EstimatedTime:   "20-30 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "High",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("Medium", "Large"),
			AgeGroups:       list("Young adult", "Adult"),
			Tags:            list("agility", "confidence", "coordination"),
		},
		{
			Name:        "Stair Climbing Workout",
			Category:    "Physical",
			Description: "Great cardio and leg strengthening",
			Materials:   list("Stairs", "leash", "water bowl"),
			Instructions: list(
				"Start with 2-3 trips up and down",
				"Walk slowly and let dog set pace",
				"Take breaks at top and bottom",
				"Gradually increase repetitions over weeks",
				"Always provide water after exercise",
			),
			SafetyNotes:     "Not suitable for puppies or dogs with joint issues. Check with vet first.",
			EstimatedTime:   "10-15 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "High",
			WeatherSuitable: "Any",
			BreedSizes:      list("Medium", "Large", "Giant"),
			AgeGroups:       list("Young adult", "Adult"),
			Tags:            list("cardio", "strength", "indoor"),
		},
		{
			Name:        "Swimming Session",
			Category:    "Physical",
			Description: "Low-impact full body exercise",
			Materials:   list("Safe swimming area", "dog life jacket", "towels"),
			Instructions: list(
				"Start in shallow water to build confidence",
				"Use life jacket for safety",
				"Enter water with your dog initially",
				"Gradually encourage deeper water",
				"Keep sessions short at first",
			),
			SafetyNotes:     "Never leave dog unattended. Check water safety. Rinse after swimming.",
			EstimatedTime:   "20-40 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "High",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("All"),
			AgeGroups:       list("Young adult", "Adult"),
			Tags:            list("swimming", "low_impact", "summer"),
		},

		// Social enrichment
		{
			Name:        "Training & Bonding Session",
			Category:    "Social",
			Description: "Strengthen your relationship through learning",
			Materials:   list("High-value treats", "clicker (optional)"),
			Instructions: list(
				"Choose 1-2 new tricks to work on",
				"Keep sessions short and positive",
				"Reward every small success",
				"End on a successful note",
				"Practice daily for consistency",
			),
			SafetyNotes:     "Use positive reinforcement only. Stop if dog becomes frustrated.",
			EstimatedTime:   "10-15 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("training", "bonding", "communication"),
		},
		{
			Name:        "Puppy Playdate",
			Category:    "Social",
			Description: "Supervised socialization with other dogs",
			Materials:   list("Compatible dog friend", "neutral meeting space"),
			Instructions: list(
				"Meet in neutral territory first",
				"Keep both dogs on leash initially",
				"Allow brief sniffing and greeting",
				"Move to fenced area if all goes well",
				"Supervise all interactions closely",
			),
			SafetyNotes:     "Ensure both dogs are vaccinated and friendly. Separate if any tension arises.",
			EstimatedTime:   "30-60 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "Medium",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("All"),
			AgeGroups:       list("Puppy", "Young adult", "Adult"),
			Tags:            list("socialization", "play", "other_dogs"),
		},

		// Environmental enrichment
		{
			Name:        "Sensory Garden Exploration",
			Category:    "Environmental",
			Description: "Explore different textures and scents safely",
			Materials:   list("Various safe plants", "different ground textures", "leash"),
			Instructions: list(
				"Visit a dog-friendly garden or park",
				"Allow dog to sniff different plants safely",
				"Walk on various surfaces (grass, gravel, sand)",
				"Let them investigate new scents",
				"Encourage exploration with praise",
			),
			SafetyNotes:     "Research plant safety first. Avoid areas with pesticides or toxic plants.",
			EstimatedTime:   "20-30 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Low",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("exploration", "nature", "sensory"),
		},
		{
			Name:        "Indoor Obstacle Course",
			Category:    "Environmental",
			Description: "Transform your home into an adventure",
			Materials:   list("Pillows", "blankets", "cardboard boxes", "treats"),
			Instructions: list(
				"Create tunnels with blankets and chairs",
				"Make stepping stones with pillows",
				"Hide treats in cardboard boxes",
				"Guide dog through the course",
				"Rearrange weekly for variety",
			),
			SafetyNotes:     "Ensure all obstacles are stable. Remove anything that could be swallowed.",
			EstimatedTime:   "15-25 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Medium",
			WeatherSuitable: "Indoor weather",
			BreedSizes:      list("Small", "Medium"),
			AgeGroups:       list("All"),
			Tags:            list("indoor", "DIY", "exploration"),
		},

		// Instinctual enrichment
		{
			Name:        "Digging Box Adventure",
			Category:    "Instinctual",
			Description: "Safe outlet for natural digging behavior",
			Materials:   list("Large plastic container", "sand or dirt", "buried toys", "treats"),
			Instructions: list(
				"Fill container with clean sand or dirt",
				"Bury toys and treats throughout",
				"Show dog the box and encourage digging",
				"Praise enthusiastic digging",
				"Refresh with new treasures regularly",
			),
			SafetyNotes:     "Use clean materials only. Supervise to prevent eating sand/dirt.",
			EstimatedTime:   "20-30 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Medium",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("digging", "natural_behavior", "messy_fun"),
		},
		{
			Name:        "Scent Trail Hunting",
			Category:    "Instinctual",
			Description: "Engage their incredible sense of smell",
			Materials:   list("Strong-scented treats", "multiple locations"),
			Instructions: list(
				"Drag treat along ground to create scent trail",
				"Start with short, simple trails",
				"Hide jackpot of treats at trail end",
				"Release dog to follow trail",
				"Gradually increase trail complexity",
			),
			SafetyNotes:     "Use safe outdoor areas. Avoid areas with other animal waste.",
			EstimatedTime:   "15-25 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "Medium",
			WeatherSuitable: "Nice weather",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("scent_work", "tracking", "hunting"),
		},

		// Passive enrichment
		{
			Name:        "Lick Mat Meditation",
			Category:    "Passive",
			Description: "Calming, self-directed activity",
			Materials:   list("Lick mat or plate", "wet food, yogurt, or peanut butter"),
			Instructions: list(
				"Spread thin layer of food on lick mat",
				"Freeze for 30 minutes for longer lasting",
				"Give to dog in quiet area",
				"Let them work at their own pace",
				"Clean mat when finished",
			),
			SafetyNotes:     "Use dog-safe ingredients only. Supervise initially to ensure they do not bite mat.",
			EstimatedTime:   "15-30 minutes",
			DifficultyLevel: "Easy",
			EnergyRequired:  "Very Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("calming", "solo", "licking"),
		},
		{
			Name:        "Puzzle Feeder Challenge",
			Category:    "Passive",
			Description: "Makes mealtime last longer and more engaging",
			Materials:   list("Puzzle feeder or slow feeder bowl", "regular dog food"),
			Instructions: list(
				"Place regular meal portion in puzzle feeder",
				"Show dog the feeder",
				"Let them figure out how to access food",
				"Start with easier puzzles for beginners",
				"Gradually increase difficulty over time",
			),
			SafetyNotes:     "Ensure puzzle is appropriate size for your dog. Clean regularly.",
			EstimatedTime:   "20-45 minutes",
			DifficultyLevel: "Medium",
			EnergyRequired:  "Very Low",
			WeatherSuitable: "Any",
			BreedSizes:      list("All"),
			AgeGroups:       list("All"),
			Tags:            list("feeding", "problem_solving", "solo"),
		},
	}
}
