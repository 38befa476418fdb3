package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/auth/register", handler.Register)
	users.Post("/auth/login", handler.Login)
	users.Post("/auth/logout", handler.AuthRequired, handler.Logout)
	users.Get("/me", handler.AuthRequired, handler.Me)
	users.Patch("/update", handler.AuthRequired, handler.UpdateMe)
	users.Delete("/delete", handler.AuthRequired, handler.DeleteAccount)

	nutrition := api.Group("/nutrition", handler.AuthRequired)
	nutrition.Get("/profile", handler.GetProfile)
	nutrition.Put("/profile", handler.PutProfile)
	nutrition.Get("/goals", handler.ListGoals)
	nutrition.Post("/goals", handler.CreateGoal)
	nutrition.Get("/goals/active", handler.GetActiveGoal)
	nutrition.Post("/targets/calculate", handler.CalculateTargets)
	nutrition.Get("/targets", handler.GetTargetsByDate)
	nutrition.Get("/targets/today", handler.GetTargetsToday)

	foods := api.Group("/foods", handler.AuthRequired)
	foods.Get("/", handler.ListFoods)
	foods.Post("/", handler.CreateFood)
	foods.Post("/search", handler.SearchFoods)
	foods.Get("/scanned/my", handler.ListMyScannedFoods)
	foods.Get("/scanned/:id", handler.GetScannedFood)
	foods.Delete("/scanned/:id", handler.DeleteScannedFood)
	foods.Post("/scanned/:id/convert", handler.ConvertScannedFood)
	foods.Get("/:id", handler.GetFood)
	foods.Put("/:id", handler.UpdateFood)
	foods.Delete("/:id", handler.DeleteFood)

	tracking := api.Group("/tracking", handler.AuthRequired)
	tracking.Get("/logs", handler.ListLogs)
	tracking.Get("/logs/today", handler.GetLogToday)
	tracking.Post("/logs/today", handler.PostLogToday)
	tracking.Get("/logs/by-date", handler.GetLogByDate)
	tracking.Get("/logs/:id", handler.GetLog)
	tracking.Post("/foods/quick-log", handler.QuickLog)
	tracking.Put("/foods/:id", handler.UpdateLoggedItem)
	tracking.Delete("/foods/:id", handler.DeleteLoggedItem)
	tracking.Get("/summary", handler.TrackingSummary)

	aiGroup := api.Group("/ai", handler.AuthRequired)
	aiGroup.Post("/analyze", handler.AnalyzeImage)
	aiGroup.Get("/analyses", handler.ListAnalyses)
	aiGroup.Get("/analyses/:id", handler.GetAnalysis)
	aiGroup.Get("/stats", handler.AnalysisStats)
	aiGroup.Get("/stats/by-date", handler.UsageByDate)
}
