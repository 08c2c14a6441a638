package repositories

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arohalabs/pocket-cfo-be/internal/models"
)

// PostgresStore keeps the snapshot in the shared Postgres database.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(key string) ([]byte, bool, error) {
	var row models.StateSnapshot
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(row.Value), true, nil
}

func (s *PostgresStore) Save(key string, data []byte) error {
	row := models.StateSnapshot{Key: key, Value: datatypes.JSON(data)}
	err := s.db.Save(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Close is a no-op; the GORM connection is shared and closed by main.
func (s *PostgresStore) Close() error {
	return nil
}
