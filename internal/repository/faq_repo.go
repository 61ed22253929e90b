package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/models"
)

// ErrReorderTargetMissing reports a reorder batch entry whose id does not
// reference an existing FAQ. The whole batch is rolled back when it occurs.
var ErrReorderTargetMissing = errors.New("reorder target does not exist")

// FaqFilter narrows FAQ list queries. Nil pointer fields leave the
// corresponding predicate out of the query.
type FaqFilter struct {
	Category *string
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

// FaqPosition is a single (id, orden) pair of a reorder batch.
type FaqPosition struct {
	ID    uint
	Order int
}

// FaqRepository exposes persistence helpers for FAQ entries.
type FaqRepository interface {
	Create(ctx context.Context, faq *models.Faq) error
	FindByID(ctx context.Context, id uint) (models.Faq, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter FaqFilter) ([]models.Faq, int64, error)
	ListActive(ctx context.Context, category *string) ([]models.Faq, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Reorder(ctx context.Context, positions []FaqPosition) error
}

type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository constructs the repository implementation.
func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, faq *models.Faq) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r *faqRepository) FindByID(ctx context.Context, id uint) (models.Faq, error) {
	var faq models.Faq
	if err := r.db.WithContext(ctx).First(&faq, id).Error; err != nil {
		return models.Faq{}, err
	}
	return faq, nil
}

func (r *faqRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Faq{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *faqRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Faq{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *faqRepository) List(ctx context.Context, filter FaqFilter) ([]models.Faq, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Faq{})

	if filter.Category != nil {
		query = query.Where("categoria = ?", *filter.Category)
	}

	if filter.Active != nil {
		query = query.Where("activo = ?", *filter.Active)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(pregunta) LIKE ? OR LOWER(respuesta) LIKE ?", pattern, pattern)
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var items []models.Faq
	if err := query.Order("orden ASC, id ASC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *faqRepository) ListActive(ctx context.Context, category *string) ([]models.Faq, error) {
	query := r.db.WithContext(ctx).Where("activo = ?", true)

	if category != nil {
		query = query.Where("categoria = ?", *category)
	}

	var items []models.Faq
	if err := query.Order("orden ASC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *faqRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Faq{}).
		Distinct().
		Where("categoria IS NOT NULL AND categoria <> ''").
		Order("categoria ASC").
		Pluck("categoria", &categories).
		Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Reorder applies every (id, orden) pair inside a single transaction: a
// missing id rolls the whole batch back.
func (r *faqRepository) Reorder(ctx context.Context, positions []FaqPosition) error {
	if len(positions) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, position := range positions {
			result := tx.Model(&models.Faq{}).
				Where("id = ?", position.ID).
				Update("orden", position.Order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: faq %d", ErrReorderTargetMissing, position.ID)
			}
		}
		return nil
	})
}
