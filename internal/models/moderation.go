package models

import (
	"time"

	"gorm.io/datatypes"
)

// Moderation log actions recorded by the comment workflow.
const (
	ModerationActionCommentCreated     = "comment.created"
	ModerationActionCommentEdited      = "comment.edited"
	ModerationActionCommentDeactivated = "comment.deactivated"
)

// ModerationLog captures an auditable moderation action, such as a comment
// being created, edited or soft-deleted.
type ModerationLog struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Action     string            `gorm:"size:64;not null;index" json:"action"`
	EntityType string            `gorm:"size:64;not null" json:"entity_type"`
	EntityID   uint              `gorm:"not null" json:"entity_id"`
	Metadata   datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time         `json:"created_at"`
}
