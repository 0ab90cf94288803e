package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/services"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

const activityLimit = 4

type ActivityHandler struct {
	log              *logger.Logger
	generatorService services.GeneratorService
	catalogService   services.CatalogService
	sessionService   services.SessionService
	imageService     services.DogImageService
}

func NewActivityHandler(log *logger.Logger, generatorService services.GeneratorService, catalogService services.CatalogService, sessionService services.SessionService, imageService services.DogImageService) *ActivityHandler {
	return &ActivityHandler{
		log:              log,
		generatorService: generatorService,
		catalogService:   catalogService,
		sessionService:   sessionService,
		imageService:     imageService,
	}
}

func (ah *ActivityHandler) GenerateActivities(c *gin.Context) {
	profile := types.DogProfile{
		Breed:          c.PostForm("breed"),
		Age:            c.PostForm("age"),
		EnergyLevel:    c.PostForm("energy_level"),
		Weather:        c.PostForm("weather"),
		EnrichmentType: c.PostForm("enrichment_type"),
	}
	if profile.Breed == "" || profile.Age == "" || profile.EnergyLevel == "" || profile.Weather == "" || profile.EnrichmentType == "" {
		RespondError(c, http.StatusBadRequest, "missing_fields", fmt.Errorf("all profile fields are required"))
		return
	}

	ah.saveProfileCookie(c, profile)

	activities, err := ah.generatorService.GenerateActivities(c.Request.Context(), profile, activityLimit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"Activities": activities,
		"DogProfile": profile.Summary(),
		"BreedImage": ah.imageService.BreedImage(profile.Breed),
	})
}

func (ah *ActivityHandler) GeneratePassive(c *gin.Context) {
	breed := c.DefaultPostForm("breed", "Any dog")
	age := c.DefaultPostForm("age", "Any age")

	activities, err := ah.generatorService.GeneratePassive(c.Request.Context(), breed, age, activityLimit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "generation_failed", err)
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"Activities": activities,
		"DogProfile": fmt.Sprintf("Passive Enrichment Ideas for: Dog breed: %s, Age: %s", breed, age),
		"BreedImage": ah.imageService.BreedImage(breed),
	})
}

type importActivityRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	Description     string   `json:"description"`
	Materials       []string `json:"materials"`
	Instructions    []string `json:"instructions"`
	SafetyNotes     string   `json:"safety_notes"`
	EstimatedTime   string   `json:"estimated_time"`
	DifficultyLevel string   `json:"difficulty_level"`
	EnergyRequired  string   `json:"energy_required"`
	WeatherSuitable string   `json:"weather_suitable"`
	BreedSizes      []string `json:"breed_sizes"`
	AgeGroups       []string `json:"age_groups"`
	Tags            []string `json:"tags"`
}

func (ah *ActivityHandler) ImportActivity(c *gin.Context) {
	var req importActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	activity := &types.Activity{
		Name:            req.Name,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Description:     req.Description,
		Materials:       datatypes.JSONSlice[string](req.Materials),
		Instructions:    datatypes.JSONSlice[string](req.Instructions),
		SafetyNotes:     req.SafetyNotes,
		EstimatedTime:   req.EstimatedTime,
		DifficultyLevel: req.DifficultyLevel,
		EnergyRequired:  req.EnergyRequired,
		WeatherSuitable: req.WeatherSuitable,
		BreedSizes:      datatypes.JSONSlice[string](req.BreedSizes),
		AgeGroups:       datatypes.JSONSlice[string](req.AgeGroups),
		Tags:            datatypes.JSONSlice[string](req.Tags),
	}

	if err := ah.catalogService.Import(c.Request.Context(), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Activity '%s' added successfully!", req.Name)})
}

func (ah *ActivityHandler) GetActivities(c *gin.Context) {
	activities, err := ah.catalogService.ListAll(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, activities)
}

func (ah *ActivityHandler) saveProfileCookie(c *gin.Context, profile types.DogProfile) {
	token, err := ah.sessionService.EncodeProfile(profile)
	if err != nil {
		ah.log.Warn("Could not encode session profile", "error", err)
		return
	}
	c.SetCookie(services.SessionCookieName, token, ah.sessionService.CookieMaxAge(), "/", "", false, true)
}
