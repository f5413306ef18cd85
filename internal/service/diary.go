package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/caloria-app/backend/internal/models"
	"github.com/caloria-app/backend/internal/store"
)

// DiaryService mutates the profile document. Every operation follows the
// same read-modify-write pattern: load the whole document, change exactly one
// field or sequence, save the whole document back. Operations are not atomic
// with respect to each other; the last save wins.
type DiaryService struct {
	store store.ProfileStore
}

// NewDiaryService creates a new DiaryService backed by the given store.
func NewDiaryService(profileStore store.ProfileStore) *DiaryService {
	return &DiaryService{store: profileStore}
}

// NewFoodItem builds a food entry with a fresh identifier and the current
// timestamp. Items are immutable after this point.
func NewFoodItem(name string, calories, protein, carbs, fat float64) models.FoodItem {
	return models.FoodItem{
		ID:        uuid.New().String(),
		Name:      name,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fat:       fat,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewExercise builds an exercise entry with a fresh identifier and the
// current timestamp.
func NewExercise(name string, duration, caloriesBurned float64) models.Exercise {
	return models.Exercise{
		ID:             uuid.New().String(),
		Name:           name,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		Timestamp:      time.Now().UnixMilli(),
	}
}

// Profile returns the current profile document.
func (s *DiaryService) Profile() models.UserProfile {
	return s.store.Load()
}

// AddFood appends item to the food diary and returns the updated profile.
func (s *DiaryService) AddFood(item models.FoodItem) (models.UserProfile, error) {
	profile := s.store.Load()
	profile.Foods = append(profile.Foods, item)

	if err := s.store.Save(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// RemoveFood removes every food entry with the given identifier, keeping the
// order of the rest. An absent identifier is a no-op; the document is still
// re-saved.
func (s *DiaryService) RemoveFood(id string) (models.UserProfile, error) {
	profile := s.store.Load()

	kept := make([]models.FoodItem, 0, len(profile.Foods))
	for _, item := range profile.Foods {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	profile.Foods = kept

	if err := s.store.Save(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// AddExercise appends item to the exercise diary and returns the updated
// profile.
func (s *DiaryService) AddExercise(item models.Exercise) (models.UserProfile, error) {
	profile := s.store.Load()
	profile.Exercises = append(profile.Exercises, item)

	if err := s.store.Save(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// RemoveExercise removes every exercise entry with the given identifier.
func (s *DiaryService) RemoveExercise(id string) (models.UserProfile, error) {
	profile := s.store.Load()

	kept := make([]models.Exercise, 0, len(profile.Exercises))
	for _, item := range profile.Exercises {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	profile.Exercises = kept

	if err := s.store.Save(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// UpdateDailyGoal replaces the profile's daily goal wholesale.
func (s *DiaryService) UpdateDailyGoal(goal models.DailyGoal) (models.UserProfile, error) {
	profile := s.store.Load()
	profile.DailyGoal = goal

	if err := s.store.Save(profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}
