package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/models"
)

// CommentRepository exposes persistence helpers for event comments. Rows are
// never removed; Deactivate flips the activo flag instead.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id uint) (models.Comment, error)
	UpdateContent(ctx context.Context, id uint, content string) error
	Deactivate(ctx context.Context, id uint) error
	ListByEvent(ctx context.Context, eventID uint, includeInactive bool) ([]models.Comment, error)
	CountActiveByEvent(ctx context.Context, eventID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository constructs a repository backed by GORM.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// UpdateContent replaces the comment body and marks the row as edited. The
// flag is set even when the new content matches the old one verbatim.
func (r *commentRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"contenido": content, "editado": true}).
		Error
}

func (r *commentRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("activo", false).
		Error
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID uint, includeInactive bool) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).Where("evento_id = ?", eventID)

	if !includeInactive {
		query = query.Where("activo = ?", true)
	}

	var comments []models.Comment
	if err := query.Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepository) CountActiveByEvent(ctx context.Context, eventID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("evento_id = ? AND activo = ?", eventID, true).
		Count(&total).
		Error
	return total, err
}
