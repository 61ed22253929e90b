package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/models"
)

// EventRepository exposes persistence helpers for events. Events have no
// delete path.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository constructs the repository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("fecha ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Updates(fields).
		Error
}

func (r *eventRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Count(&total).
		Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
