package repositories

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/models"
)

type ConversationRepo interface {
	LogExchange(conversationID, question, answer string, deltas []catalog.KPIDelta) error
	GetByConversationID(conversationID string, limit int) ([]models.ConversationLog, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) LogExchange(conversationID, question, answer string, deltas []catalog.KPIDelta) error {
	var deltaJSON datatypes.JSON
	if len(deltas) > 0 {
		raw, err := json.Marshal(deltas)
		if err != nil {
			return err
		}
		deltaJSON = datatypes.JSON(raw)
	}

	entry := models.ConversationLog{
		ConversationID: conversationID,
		Question:       question,
		Answer:         answer,
		KPIDeltas:      deltaJSON,
	}
	return r.db.Create(&entry).Error
}

func (r *conversationRepo) GetByConversationID(conversationID string, limit int) ([]models.ConversationLog, error) {
	var logs []models.ConversationLog
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error

	return logs, err
}
