package db

import (
	"errors"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUser(userID uint) (models.Profile, bool, error) {
	var profile models.Profile
	err := repo.database.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, true, nil
}

// Upsert writes the profile fields for the user, creating the row on first
// save. Keyed by user: a second upsert overwrites, never duplicates.
func (repo *ProfileRepository) Upsert(profile *models.Profile) error {
	return UpsertProfileTx(repo.database, profile)
}

// UpsertProfileTx is the transactional form used when the profile write has
// to commit together with other writes.
func UpsertProfileTx(tx *gorm.DB, profile *models.Profile) error {
	var existing models.Profile
	err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return tx.Save(profile).Error
}
