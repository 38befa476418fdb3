package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/terraincognita07/macrolog/internal/ai"
	"github.com/terraincognita07/macrolog/internal/db"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithAI(t, nil)
}

func newTestAppWithAI(t *testing.T, aiClient ai.Client) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "macrolog-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, false, aiClient, 5*time.Second)

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024 * 1024})
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, token string, payload any) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	request := httptest.NewRequest(method, path, &body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d", request.Method, request.URL.Path, response.StatusCode, wantStatus)
	}

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func doRequestList(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) []any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: status = %d, want %d", request.Method, request.URL.Path, response.StatusCode, wantStatus)
	}

	decoded := []any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return decoded
}

func formatItemPath(id float64) string {
	return fmt.Sprintf("/api/tracking/foods/%d", int(id))
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	payload := map[string]string{"email": email, "password": "StrongPass1"}
	body := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/auth/register", "", payload), http.StatusCreated)

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register returned no token: %v", body)
	}
	return token
}
