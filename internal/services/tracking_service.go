package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
)

var (
	ErrFoodNotFound        = errors.New("food not found")
	ErrScannedFoodNotFound = errors.New("scanned food not found")
	ErrItemNotFound        = errors.New("logged food item not found")
)

// TrackingService owns the write path of daily logs: quick-log, item update,
// item delete and day reset. Every mutation commits together with the
// recomputed day totals.
type TrackingService struct {
	foods        *db.FoodRepository
	scannedFoods *db.ScannedFoodRepository
	dailyLogs    *db.DailyLogRepository
}

func NewTrackingService(repos *db.Repositories) *TrackingService {
	return &TrackingService{
		foods:        repos.Foods,
		scannedFoods: repos.ScannedFoods,
		dailyLogs:    repos.DailyLogs,
	}
}

// QuickLog resolves the entry's nutrition, attaches the item to the day's
// log (creating the log on first use) and recomputes the totals.
func (service *TrackingService) QuickLog(userID uint, day time.Time, entry QuickLogEntry) (models.LoggedFoodItem, error) {
	item := models.LoggedFoodItem{
		Quantity: entry.Quantity,
		Unit:     entry.Unit,
		MealType: entry.MealType,
		LoggedAt: time.Now().UTC(),
	}

	switch entry.Mode {
	case EntryCanonical:
		food, err := service.foods.FindByID(entry.FoodID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LoggedFoodItem{}, ErrFoodNotFound
		}
		if err != nil {
			return models.LoggedFoodItem{}, err
		}
		nutrition := ScaleCanonical(food, entry.Quantity)
		item.FoodID = &food.ID
		item.Name = food.Name
		item.Calories = nutrition.Calories
		item.Protein = nutrition.Protein
		item.Carbs = nutrition.Carbs
		item.Fat = nutrition.Fat

	case EntryScanned:
		scanned, err := service.scannedFoods.FindByUserAndID(userID, entry.ScannedFoodID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LoggedFoodItem{}, ErrScannedFoodNotFound
		}
		if err != nil {
			return models.LoggedFoodItem{}, err
		}
		nutrition := ScaleScanned(scanned, entry.Quantity)
		item.ScannedFoodID = &scanned.ID
		item.Name = scanned.Name
		item.Calories = nutrition.Calories
		item.Protein = nutrition.Protein
		item.Carbs = nutrition.Carbs
		item.Fat = nutrition.Fat

	case EntryManual:
		item.Name = entry.Name
		item.Calories = entry.Manual.Calories
		item.Protein = entry.Manual.Protein
		item.Carbs = entry.Manual.Carbs
		item.Fat = entry.Manual.Fat

	default:
		return models.LoggedFoodItem{}, ErrNoEntrySource
	}

	logEntry, err := service.dailyLogs.GetOrCreate(userID, day)
	if err != nil {
		return models.LoggedFoodItem{}, err
	}
	item.DailyLogID = logEntry.ID

	if err := service.dailyLogs.CreateItem(&item); err != nil {
		return models.LoggedFoodItem{}, err
	}
	return item, nil
}

// ItemUpdate carries the mutable fields of a logged item. Nutrition values
// stay absolute for the portion; no rescaling happens on update.
type ItemUpdate struct {
	Name     string
	Quantity float64
	Unit     string
	MealType string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

func (service *TrackingService) UpdateItem(userID uint, itemID uint, update ItemUpdate) (models.LoggedFoodItem, error) {
	item, err := service.dailyLogs.FindItemForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LoggedFoodItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.LoggedFoodItem{}, err
	}

	if update.Quantity <= 0 {
		return models.LoggedFoodItem{}, ErrInvalidQuantity
	}
	if !models.IsValidMealType(update.MealType) {
		return models.LoggedFoodItem{}, ErrInvalidMealType
	}

	item.Name = update.Name
	item.Quantity = update.Quantity
	item.Unit = update.Unit
	item.MealType = update.MealType
	item.Calories = update.Calories
	item.Protein = update.Protein
	item.Carbs = update.Carbs
	item.Fat = update.Fat

	if err := service.dailyLogs.SaveItem(&item); err != nil {
		return models.LoggedFoodItem{}, err
	}
	return item, nil
}

func (service *TrackingService) DeleteItem(userID uint, itemID uint) error {
	item, err := service.dailyLogs.FindItemForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	return service.dailyLogs.DeleteItem(item)
}

// ResetDay drops every item from the (user, day) log and zeroes its totals.
func (service *TrackingService) ResetDay(userID uint, day time.Time) (models.DailyLog, error) {
	logEntry, err := service.dailyLogs.GetOrCreate(userID, day)
	if err != nil {
		return models.DailyLog{}, err
	}
	if err := service.dailyLogs.ResetItems(logEntry.ID); err != nil {
		return models.DailyLog{}, err
	}
	refreshed, _, err := service.dailyLogs.FindByUserAndDate(userID, day)
	if err != nil {
		return models.DailyLog{}, err
	}
	return refreshed, nil
}
