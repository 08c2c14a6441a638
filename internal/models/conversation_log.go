package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConversationLog records one question/answer exchange with the
// assistant for auditing.
type ConversationLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConversationID string         `gorm:"type:text;not null;index" json:"conversation_id"`
	Question       string         `gorm:"type:text;not null" json:"question"`
	Answer         string         `gorm:"type:text" json:"answer"`
	KPIDeltas      datatypes.JSON `gorm:"type:jsonb" json:"kpi_deltas"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (ConversationLog) TableName() string {
	return "conversation_logs"
}

// BeforeCreate sets UUID before creating
func (c *ConversationLog) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
