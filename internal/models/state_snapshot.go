package models

import (
	"time"

	"gorm.io/datatypes"
)

// StateSnapshot is the persisted application state document, one row
// per store key.
type StateSnapshot struct {
	Key       string         `gorm:"type:text;primary_key" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (StateSnapshot) TableName() string {
	return "state_snapshots"
}
