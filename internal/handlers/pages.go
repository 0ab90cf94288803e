package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/middleware"
	"github.com/cherilynwood/dog-enrichment-backend/internal/services"
)

// Form vocabularies. The matcher only ever sees these as free text, but
// the form offers the known set.
var (
	breedOptions = []string{
		"Small breed (under 25 lbs)",
		"Medium breed (25-60 lbs)",
		"Large breed (60-90 lbs)",
		"Giant breed (over 90 lbs)",
	}
	ageOptions = []string{
		"Puppy (under 1 year)",
		"Young adult (1-3 years)",
		"Adult (3-7 years)",
		"Senior (7+ years)",
	}
	energyOptions = []string{
		"Low energy",
		"Medium energy",
		"High energy",
	}
	weatherOptions = []string{
		"Nice weather - outdoor activities",
		"Indoor weather - inside activities",
		"Any weather - flexible activities",
	}
	enrichmentOptions = []string{
		"Mental enrichment - brain games",
		"Physical enrichment - exercise",
		"Social enrichment - bonding",
		"Environmental enrichment - exploration",
		"Instinctual enrichment - natural behaviors",
		"Passive enrichment - independent activities",
		"Mixed enrichment - variety of activities",
	}
)

type PageHandler struct {
	log            *logger.Logger
	catalogService services.CatalogService
	imageService   services.DogImageService
}

func NewPageHandler(log *logger.Logger, catalogService services.CatalogService, imageService services.DogImageService) *PageHandler {
	return &PageHandler{log: log, catalogService: catalogService, imageService: imageService}
}

func (ph *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Images": gin.H{
			"Hero":          ph.imageService.UniqueImage("hero"),
			"Mental":        ph.imageService.UniqueImage("mental_landing"),
			"Physical":      ph.imageService.UniqueImage("physical_landing"),
			"Social":        ph.imageService.UniqueImage("social_landing"),
			"Environmental": ph.imageService.UniqueImage("environmental_landing"),
			"Instinctual":   ph.imageService.UniqueImage("instinctual_landing"),
			"Passive":       ph.imageService.UniqueImage("passive_landing"),
		},
	})
}

func (ph *PageHandler) AppForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SavedProfile":      middleware.ProfileFromContext(c),
		"BreedOptions":      breedOptions,
		"AgeOptions":        ageOptions,
		"EnergyOptions":     energyOptions,
		"WeatherOptions":    weatherOptions,
		"EnrichmentOptions": enrichmentOptions,
	})
}

// Checkout is a placeholder that just shows the profile form until the
// payment flow exists.
func (ph *PageHandler) Checkout(c *gin.Context) {
	ph.AppForm(c)
}

func (ph *PageHandler) Library(c *gin.Context) {
	grouped, featured, err := ph.catalogService.ByCategory(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "library_failed", err)
		return
	}

	categoryImages := make(map[string][]string, len(grouped))
	for category := range grouped {
		categoryImages[category] = ph.imageService.MultipleUniqueImages(2, strings.ToLower(category))
	}

	c.HTML(http.StatusOK, "library.html", gin.H{
		"ActivitiesByCategory": grouped,
		"FeaturedActivities":   featured,
		"CategoryImages":       categoryImages,
		"LibraryImage":         ph.imageService.UniqueImage("library"),
	})
}

func (ph *PageHandler) ImportPage(c *gin.Context) {
	c.HTML(http.StatusOK, "import.html", gin.H{})
}
