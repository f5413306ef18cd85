package store

import (
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/caloria-app/backend/config"
	"github.com/caloria-app/backend/internal/models"
)

// StorageKey is the fixed key the profile document is persisted under,
// regardless of backend.
const StorageKey = "calorie-counter-data"

// ProfileStore persists the single profile document. Load never fails:
// missing data, an unreachable backend or an unparseable payload all resolve
// to the default profile. Save overwrites the whole document unconditionally;
// the last writer wins.
type ProfileStore interface {
	Load() models.UserProfile
	Save(profile models.UserProfile) error
}

// Open creates the profile store selected by cfg.StoreBackend.
func Open(cfg *config.Config) (ProfileStore, error) {
	switch cfg.StoreBackend {
	case "bolt":
		return NewBoltStore(cfg.StorePath)
	case "sqlite":
		return NewSQLiteStore(cfg.StorePath)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(client), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// decodeProfile parses a stored payload. Anything that is not a valid
// profile document silently becomes the default profile; corruption is not
// an error here.
func decodeProfile(data []byte) models.UserProfile {
	if len(data) == 0 {
		return models.DefaultProfile()
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return models.DefaultProfile()
	}

	if profile.Foods == nil {
		profile.Foods = []models.FoodItem{}
	}
	if profile.Exercises == nil {
		profile.Exercises = []models.Exercise{}
	}

	return profile
}
