package models

// FoodItem is a single logged food entry. Items are immutable once created;
// they are only ever appended to or removed from a profile.
type FoodItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
}

// Exercise is a single logged exercise entry.
type Exercise struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Duration       float64 `json:"duration"` // minutes
	CaloriesBurned float64 `json:"caloriesBurned"`
	Timestamp      int64   `json:"timestamp"` // epoch milliseconds
}

// DailyGoal holds the four daily nutrition targets.
type DailyGoal struct {
	CalorieTarget float64 `json:"calorieTarget"`
	ProteinTarget float64 `json:"proteinTarget"`
	CarbsTarget   float64 `json:"carbsTarget"`
	FatTarget     float64 `json:"fatTarget"`
}

// UserProfile is the single persisted aggregate: one user's name, goal and
// full diary. The whole document is read and written as a unit.
type UserProfile struct {
	Name      string     `json:"name"`
	DailyGoal DailyGoal  `json:"dailyGoal"`
	Foods     []FoodItem `json:"foods"`
	Exercises []Exercise `json:"exercises"`
}

// DaySummary is the derived "today" view of a profile: the diary entries
// logged since local midnight plus their aggregated totals.
type DaySummary struct {
	Foods          []FoodItem `json:"foods"`
	Exercises      []Exercise `json:"exercises"`
	TotalCalories  float64    `json:"totalCalories"`
	TotalProtein   float64    `json:"totalProtein"`
	TotalCarbs     float64    `json:"totalCarbs"`
	TotalFat       float64    `json:"totalFat"`
	CaloriesBurned float64    `json:"caloriesBurned"`
	NetCalories    float64    `json:"netCalories"`
}

// DefaultProfile returns the profile used whenever no stored data exists or
// the stored payload cannot be parsed.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name: "Usuário",
		DailyGoal: DailyGoal{
			CalorieTarget: 2000,
			ProteinTarget: 150,
			CarbsTarget:   250,
			FatTarget:     65,
		},
		Foods:     []FoodItem{},
		Exercises: []Exercise{},
	}
}
