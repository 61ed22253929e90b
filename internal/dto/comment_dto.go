package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/ecoeventos/eventos-api/internal/models"
)

// CommentCreateRequest defines the payload for publishing a comment on an
// event. A blank usuario falls back to the configured default author.
type CommentCreateRequest struct {
	EventID uint   `json:"evento_id" validate:"required"`
	Content string `json:"contenido" validate:"required,max=1000"`
	Author  string `json:"usuario" validate:"omitempty,max=255"`
}

// CommentUpdateRequest defines the payload for editing a comment body.
type CommentUpdateRequest struct {
	Content string `json:"contenido" validate:"required,max=1000"`
}

// ModerationLogEntry is a single audit trail row for moderation views.
type ModerationLogEntry struct {
	ID         uint              `json:"id"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   uint              `json:"entity_id"`
	Metadata   datatypes.JSONMap `json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ModerationLogListResponse wraps one page of the moderation audit trail.
type ModerationLogListResponse struct {
	Items    []ModerationLogEntry `json:"items"`
	Page     int                  `json:"page"`
	LastPage int                  `json:"last_page"`
	PageSize int                  `json:"page_size"`
	Total    int64                `json:"total"`
}

// NewModerationLogEntry maps a stored log row to its response shape.
func NewModerationLogEntry(entry models.ModerationLog) ModerationLogEntry {
	return ModerationLogEntry{
		ID:         entry.ID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Metadata:   entry.Metadata,
		CreatedAt:  entry.CreatedAt,
	}
}
