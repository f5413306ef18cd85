package service

import (
	"time"

	"github.com/caloria-app/backend/internal/models"
)

// TodaySummary derives the "today" view of a profile: entries timestamped at
// or after local midnight of the current moment, plus their totals. Pure
// function; the day boundary is recomputed on every call.
func TodaySummary(profile models.UserProfile) models.DaySummary {
	return summaryAt(profile, time.Now())
}

func summaryAt(profile models.UserProfile, now time.Time) models.DaySummary {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	boundary := midnight.UnixMilli()

	foods := make([]models.FoodItem, 0, len(profile.Foods))
	for _, item := range profile.Foods {
		// Inclusive lower bound, no upper bound: future-dated entries count.
		if item.Timestamp >= boundary {
			foods = append(foods, item)
		}
	}

	exercises := make([]models.Exercise, 0, len(profile.Exercises))
	for _, item := range profile.Exercises {
		if item.Timestamp >= boundary {
			exercises = append(exercises, item)
		}
	}

	summary := models.DaySummary{
		Foods:     foods,
		Exercises: exercises,
	}

	for _, item := range foods {
		summary.TotalCalories += item.Calories
		summary.TotalProtein += item.Protein
		summary.TotalCarbs += item.Carbs
		summary.TotalFat += item.Fat
	}
	for _, item := range exercises {
		summary.CaloriesBurned += item.CaloriesBurned
	}

	// Not clamped: more exercise than intake goes negative.
	summary.NetCalories = summary.TotalCalories - summary.CaloriesBurned

	return summary
}
