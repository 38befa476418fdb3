package models

import (
	"time"

	"gorm.io/datatypes"
)

// Food is a shared food-database entry with nutrition per 100 g.
type Food struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null;index" json:"name"`
	Brand          string    `json:"brand"`
	Barcode        string    `gorm:"index" json:"barcode"`
	CaloriesPer100 float64   `gorm:"column:calories_per_100g;not null" json:"calories_per_100g"`
	ProteinPer100  float64   `gorm:"column:protein_per_100g;not null" json:"protein_per_100g"`
	CarbsPer100    float64   `gorm:"column:carbs_per_100g;not null" json:"carbs_per_100g"`
	FatPer100      float64   `gorm:"column:fat_per_100g;not null" json:"fat_per_100g"`
	IsVerified     bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedByID    *uint     `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ScannedFood is a food identified from an image by the AI pipeline. The
// per-serving and per-100g sets are each optional; either may be absent
// depending on what the pipeline returned.
type ScannedFood struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"column:ai_identified_name;not null" json:"ai_identified_name"`
	ServingSize string `json:"serving_size"`

	CaloriesPerServing *float64 `json:"calories_per_serving,omitempty"`
	ProteinPerServing  *float64 `json:"protein_per_serving,omitempty"`
	CarbsPerServing    *float64 `json:"carbs_per_serving,omitempty"`
	FatPerServing      *float64 `json:"fat_per_serving,omitempty"`

	CaloriesPer100 *float64 `gorm:"column:calories_per_100g" json:"calories_per_100g,omitempty"`
	ProteinPer100  *float64 `gorm:"column:protein_per_100g" json:"protein_per_100g,omitempty"`
	CarbsPer100    *float64 `gorm:"column:carbs_per_100g" json:"carbs_per_100g,omitempty"`
	FatPer100      *float64 `gorm:"column:fat_per_100g" json:"fat_per_100g,omitempty"`

	RawResponse datatypes.JSON `json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
}
