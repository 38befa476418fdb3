package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/terraincognita07/macrolog/internal/ai"
	"github.com/terraincognita07/macrolog/internal/api"
	"github.com/terraincognita07/macrolog/internal/db"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "macrolog.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"
	analysisTimeout := mustParseDuration(getEnv("AI_TIMEOUT", "45s"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var aiClient ai.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		aiClient, err = ai.NewGeminiClient(apiKey)
		if err != nil {
			log.Fatalf("ai client init failed: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set, image analysis disabled")
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, aiClient, analysisTimeout)

	app := fiber.New(fiber.Config{
		AppName:               "Macrolog",
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Macrolog listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func mustParseDuration(raw string) time.Duration {
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("invalid duration %q, falling back to 45s", raw)
		return 45 * time.Second
	}
	return value
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
