package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyplan/entities"
	"studyplan/pkg/planner/repository"
)

type kvStore struct{ db *gorm.DB }

// NewKV returns the sqlite-backed key-value cache.
func NewKV(db *gorm.DB) repository.KV { return &kvStore{db} }

func (s *kvStore) Read(key string) (string, bool, error) {
	var e entities.CacheEntry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *kvStore) Write(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entities.CacheEntry{Key: key, Value: value}).Error
}
