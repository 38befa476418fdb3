package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Profiles     *ProfileRepository
	Goals        *GoalRepository
	Targets      *TargetsRepository
	Foods        *FoodRepository
	ScannedFoods *ScannedFoodRepository
	DailyLogs    *DailyLogRepository
	Analyses     *AnalysisRepository
	Usage        *UsageRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Profiles:     NewProfileRepository(database),
		Goals:        NewGoalRepository(database),
		Targets:      NewTargetsRepository(database),
		Foods:        NewFoodRepository(database),
		ScannedFoods: NewScannedFoodRepository(database),
		DailyLogs:    NewDailyLogRepository(database),
		Analyses:     NewAnalysisRepository(database),
		Usage:        NewUsageRepository(database),
	}
}
