package store

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gridironhub/chat_backend/models"
)

// MessageStore persists and queries chat messages. The hub and the history
// endpoint depend on this interface rather than the GORM implementation so
// tests can substitute their own.
type MessageStore interface {
	// SaveMessage validates and inserts one message, returning the stored
	// record with its server-assigned id and timestamp.
	SaveMessage(ctx context.Context, username, message string, roomID *string) (*models.ChatMessage, error)

	// Messages returns prior messages ordered oldest first. A nil roomID
	// returns messages from every room; limit > 0 caps the result to the
	// most recent limit messages.
	Messages(ctx context.Context, roomID *string, limit int) ([]models.ChatMessage, error)
}

type messageInput struct {
	Username string `validate:"required,max=100"`
	Message  string `validate:"required,max=500"`
}

var validate = validator.New()

// GormMessageStore is the database-backed MessageStore.
type GormMessageStore struct {
	db *gorm.DB
}

func NewGormMessageStore(db *gorm.DB) *GormMessageStore {
	return &GormMessageStore{db: db}
}

func (s *GormMessageStore) SaveMessage(ctx context.Context, username, message string, roomID *string) (*models.ChatMessage, error) {
	input := messageInput{
		Username: strings.TrimSpace(username),
		Message:  strings.TrimSpace(message),
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	record := models.ChatMessage{
		ID:       uuid.NewString(),
		Username: input.Username,
		Message:  input.Message,
		RoomID:   roomID,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *GormMessageStore) Messages(ctx context.Context, roomID *string, limit int) ([]models.ChatMessage, error) {
	query := s.db.WithContext(ctx).Model(&models.ChatMessage{})
	if roomID != nil {
		query = query.Where("room_id = ?", *roomID)
	}

	// Non-nil so an empty history serializes as [] rather than null.
	messages := make([]models.ChatMessage, 0)

	if limit > 0 {
		// Take the newest limit rows, then flip back to ascending for display.
		if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&messages).Error; err != nil {
			return nil, err
		}
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}
		return messages, nil
	}

	if err := query.Order("created_at ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
