package server

import (
	"embed"
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cherilynwood/dog-enrichment-backend/internal/handlers"
	"github.com/cherilynwood/dog-enrichment-backend/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

type RouterConfig struct {
	PageHandler       *handlers.PageHandler
	ActivityHandler   *handlers.ActivityHandler
	ChatHandler       *handlers.ChatHandler
	SessionMiddleware *middleware.SessionMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	router.Use(cfg.SessionMiddleware.LoadProfile())

	// ===============
	// || Pages     ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", cfg.PageHandler.Landing)
	router.GET("/app", cfg.PageHandler.AppForm)
	router.GET("/checkout", cfg.PageHandler.Checkout)
	router.GET("/library", cfg.PageHandler.Library)
	router.GET("/import", cfg.PageHandler.ImportPage)

	// ===============
	// || Forms     ||
	// ===============
	router.POST("/generate-activities", cfg.ActivityHandler.GenerateActivities)
	router.POST("/generate-passive", cfg.ActivityHandler.GeneratePassive)
	router.POST("/import-activity", cfg.ActivityHandler.ImportActivity)

	// ===============
	// || API       ||
	// ===============
	api := router.Group("/api")
	{
		api.GET("/activities", cfg.ActivityHandler.GetActivities)
		api.POST("/chat", cfg.ChatHandler.Chat)
		api.POST("/activity-breakdown", cfg.ChatHandler.ActivityBreakdown)
	}

	return router
}
