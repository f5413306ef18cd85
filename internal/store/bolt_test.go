package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/caloria-app/backend/internal/models"
)

func newTestBoltStore(t *testing.T) *BoltStore {
	t.Helper()

	s, err := NewBoltStore(filepath.Join(t.TempDir(), "caloria.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestBoltStore(t *testing.T) {
	t.Run("fresh database loads default profile", func(t *testing.T) {
		s := newTestBoltStore(t)

		assert.Equal(t, models.DefaultProfile(), s.Load())
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		s := newTestBoltStore(t)

		profile := models.DefaultProfile()
		profile.Name = "Maria"
		profile.Foods = append(profile.Foods, models.FoodItem{ID: "f1", Name: "Arroz", Calories: 130, Carbs: 28, Timestamp: 1700000000000})
		profile.Exercises = append(profile.Exercises, models.Exercise{ID: "e1", Name: "Corrida", Duration: 30, CaloriesBurned: 300, Timestamp: 1700000000000})

		require.NoError(t, s.Save(profile))
		assert.Equal(t, profile, s.Load())
	})

	t.Run("save overwrites unconditionally", func(t *testing.T) {
		s := newTestBoltStore(t)

		first := models.DefaultProfile()
		first.Name = "first"
		require.NoError(t, s.Save(first))

		second := models.DefaultProfile()
		second.Name = "second"
		require.NoError(t, s.Save(second))

		assert.Equal(t, "second", s.Load().Name)
	})

	t.Run("corrupted payload degrades to default", func(t *testing.T) {
		s := newTestBoltStore(t)

		profile := models.DefaultProfile()
		profile.Name = "Maria"
		require.NoError(t, s.Save(profile))

		err := s.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket([]byte(boltBucketProfile)).Put([]byte(StorageKey), []byte("{broken"))
		})
		require.NoError(t, err)

		assert.Equal(t, models.DefaultProfile(), s.Load())
	})
}
