package api

type credentialsInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type namesInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type profileInput struct {
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	ActivityFactor float64 `json:"activity_factor"`
}

type goalInput struct {
	GoalType string `json:"goal_type"`
}

type calculateTargetsInput struct {
	profileInput
	GoalType string `json:"goal_type"`
	Date     string `json:"date"`
}

type foodInput struct {
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Barcode        string  `json:"barcode"`
	CaloriesPer100 float64 `json:"calories_per_100g"`
	ProteinPer100  float64 `json:"protein_per_100g"`
	CarbsPer100    float64 `json:"carbs_per_100g"`
	FatPer100      float64 `json:"fat_per_100g"`
}

type foodSearchInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type quickLogInput struct {
	FoodID        *uint    `json:"food_id"`
	ScannedFoodID *uint    `json:"scanned_food_id"`
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	MealType      string   `json:"meal_type"`
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbs         *float64 `json:"carbs"`
	Fat           *float64 `json:"fat"`
	Date          string   `json:"date"`
}

type itemUpdateInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	MealType string  `json:"meal_type"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type logActionInput struct {
	Action string `json:"action"`
}

type analyzeImageInput struct {
	ImageData   string `json:"image_data"`
	ImageFormat string `json:"image_format"`
}
