package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/macrolog/internal/models"
)

func TestFoodCreateAndList(t *testing.T) {
	app, database := newTestApp(t)
	token := registerTestUser(t, app, "foods@example.com")

	created := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/foods/", token, map[string]any{
		"name":              "greek yogurt",
		"brand":             "homestead",
		"calories_per_100g": 97,
		"protein_per_100g":  9,
		"carbs_per_100g":    4,
		"fat_per_100g":      5,
	}), http.StatusCreated)
	if created["is_verified"].(bool) {
		t.Fatal("user-submitted foods start unverified")
	}

	// Unverified entries stay out of the shared list.
	listed := doRequestList(t, app, jsonRequest(t, http.MethodGet, "/api/foods/", token, nil), http.StatusOK)
	if len(listed) != 0 {
		t.Fatalf("list = %v, want empty", listed)
	}

	verified := models.Food{Name: "banana", CaloriesPer100: 89, IsVerified: true}
	if err := database.Create(&verified).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	listed = doRequestList(t, app, jsonRequest(t, http.MethodGet, "/api/foods/", token, nil), http.StatusOK)
	if len(listed) != 1 {
		t.Fatalf("list length = %d, want 1", len(listed))
	}

	doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/foods/", token, map[string]any{
		"name":              "",
		"calories_per_100g": -2,
	}), http.StatusBadRequest)
}

func TestFoodSearch(t *testing.T) {
	app, database := newTestApp(t)
	token := registerTestUser(t, app, "search@example.com")

	seed := []models.Food{
		{Name: "peanut butter", Brand: "nutco", CaloriesPer100: 588, IsVerified: true},
		{Name: "almond butter", Brand: "nutco", CaloriesPer100: 614, IsVerified: true},
		{Name: "peanut brittle", Brand: "sweets", CaloriesPer100: 480, IsVerified: false},
	}
	for index := range seed {
		if err := database.Create(&seed[index]).Error; err != nil {
			t.Fatalf("seed food: %v", err)
		}
	}

	results := doRequestList(t, app, jsonRequest(t, http.MethodPost, "/api/foods/search", token,
		map[string]any{"query": "peanut"}), http.StatusOK)
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1 (unverified excluded)", len(results))
	}

	results = doRequestList(t, app, jsonRequest(t, http.MethodPost, "/api/foods/search", token,
		map[string]any{"query": "NUTCO"}), http.StatusOK)
	if len(results) != 2 {
		t.Fatalf("brand match count = %d, want 2", len(results))
	}

	doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/foods/search", token,
		map[string]any{"query": "  "}), http.StatusBadRequest)
}

func TestFoodUpdateOwnership(t *testing.T) {
	app, _ := newTestApp(t)
	creatorToken := registerTestUser(t, app, "creator@example.com")
	strangerToken := registerTestUser(t, app, "stranger@example.com")

	created := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/foods/", creatorToken, map[string]any{
		"name":              "granola",
		"calories_per_100g": 471,
	}), http.StatusCreated)
	foodPath := fmt.Sprintf("/api/foods/%d", int(created["id"].(float64)))

	doRequest(t, app, jsonRequest(t, http.MethodPut, foodPath, strangerToken, map[string]any{
		"name":              "granola (hijacked)",
		"calories_per_100g": 1,
	}), http.StatusForbidden)

	updated := doRequest(t, app, jsonRequest(t, http.MethodPut, foodPath, creatorToken, map[string]any{
		"name":              "granola, toasted",
		"calories_per_100g": 480,
	}), http.StatusOK)
	if updated["name"] != "granola, toasted" {
		t.Fatalf("name = %v", updated["name"])
	}

	doRequest(t, app, jsonRequest(t, http.MethodDelete, foodPath, strangerToken, nil), http.StatusForbidden)
	doRequest(t, app, jsonRequest(t, http.MethodDelete, foodPath, creatorToken, nil), http.StatusOK)
	doRequest(t, app, jsonRequest(t, http.MethodGet, foodPath, creatorToken, nil), http.StatusNotFound)
}

func TestScannedFoodLifecycle(t *testing.T) {
	app, database := newTestApp(t)
	token := registerTestUser(t, app, "scanned@example.com")

	var user models.User
	if err := database.Where("email = ?", "scanned@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	per100 := 165.0
	scanned := models.ScannedFood{
		UserID:         user.ID,
		Name:           "grilled chicken",
		ServingSize:    "1 fillet",
		CaloriesPer100: &per100,
	}
	if err := database.Create(&scanned).Error; err != nil {
		t.Fatalf("seed scanned food: %v", err)
	}

	listed := doRequestList(t, app, jsonRequest(t, http.MethodGet, "/api/foods/scanned/my", token, nil), http.StatusOK)
	if len(listed) != 1 {
		t.Fatalf("scanned list length = %d, want 1", len(listed))
	}

	scannedPath := fmt.Sprintf("/api/foods/scanned/%d", scanned.ID)
	detail := doRequest(t, app, jsonRequest(t, http.MethodGet, scannedPath, token, nil), http.StatusOK)
	if detail["ai_identified_name"] != "grilled chicken" {
		t.Fatalf("name = %v", detail["ai_identified_name"])
	}

	converted := doRequest(t, app, jsonRequest(t, http.MethodPost, scannedPath+"/convert", token, nil), http.StatusCreated)
	if converted["name"] != "grilled chicken" {
		t.Fatalf("converted name = %v", converted["name"])
	}
	if converted["calories_per_100g"].(float64) != 165 {
		t.Fatalf("converted calories = %v, want 165", converted["calories_per_100g"])
	}
	// Missing per-100g macros convert as zero.
	if converted["protein_per_100g"].(float64) != 0 {
		t.Fatalf("converted protein = %v, want 0", converted["protein_per_100g"])
	}

	otherToken := registerTestUser(t, app, "other-scanned@example.com")
	doRequest(t, app, jsonRequest(t, http.MethodGet, scannedPath, otherToken, nil), http.StatusNotFound)
	doRequest(t, app, jsonRequest(t, http.MethodDelete, scannedPath, otherToken, nil), http.StatusNotFound)

	doRequest(t, app, jsonRequest(t, http.MethodDelete, scannedPath, token, nil), http.StatusOK)
	doRequest(t, app, jsonRequest(t, http.MethodGet, scannedPath, token, nil), http.StatusNotFound)
}
