package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/ai"
	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/services"
)

type Handler struct {
	db           *gorm.DB
	repos        *db.Repositories
	targets      *services.TargetsService
	tracking     *services.TrackingService
	analysis     *services.AnalysisService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool, aiClient ai.Client, analysisTimeout time.Duration) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		db:           database,
		repos:        repos,
		targets:      services.NewTargetsService(database),
		tracking:     services.NewTrackingService(repos),
		analysis:     services.NewAnalysisService(aiClient, repos, location, analysisTimeout),
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
