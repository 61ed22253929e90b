package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/repository"
)

// ErrEventNotFound indicates the referenced event id does not exist.
var ErrEventNotFound = errors.New("event not found")

const eventDateLayout = "2006-01-02"

// EventService exposes event publishing and retrieval operations. Events have
// no delete path; estado drives visibility instead.
type EventService interface {
	Create(ctx context.Context, req dto.EventCreateRequest) (models.Event, error)
	Get(ctx context.Context, id uint) (models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, id uint, req dto.EventUpdateRequest) (models.Event, error)
	Comments(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error)
}

type eventService struct {
	events    repository.EventRepository
	comments  repository.CommentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEventService constructs the event service.
func NewEventService(events repository.EventRepository, comments repository.CommentRepository, validate *validator.Validate, logger zerolog.Logger) EventService {
	return &eventService{
		events:    events,
		comments:  comments,
		validator: validate,
		logger:    logger.With().Str("component", "event_service").Logger(),
	}
}

func (s *eventService) Create(ctx context.Context, req dto.EventCreateRequest) (models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Event{}, err
	}

	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid fecha %q: %w", req.Date, err)
	}

	event := models.Event{
		Name:         req.Name,
		Description:  req.Description,
		Date:         datatypes.Date(date),
		Time:         req.Time,
		Venue:        req.Venue,
		ActivityType: req.ActivityType,
		Organizer:    req.Organizer,
		Status:       models.EventStatusActive,
		Image:        req.Image,
	}
	if req.MaxCapacity != nil {
		event.MaxCapacity = *req.MaxCapacity
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.events.Create(ctx, &event); err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info().Uint("event_id", event.ID).Str("nombre", event.Name).Msg("event created")

	return event, nil
}

// Get returns the event together with its active comments (newest first) and
// the comment total derived from the comments table.
func (s *eventService) Get(ctx context.Context, id uint) (models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}

	comments, err := s.comments.ListByEvent(ctx, id, false)
	if err != nil {
		return models.Event{}, err
	}
	event.Comments = comments
	event.CommentsCount = int64(len(comments))

	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		total, err := s.comments.CountActiveByEvent(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].CommentsCount = total
	}

	return events, nil
}

func (s *eventService) Update(ctx context.Context, id uint, req dto.EventUpdateRequest) (models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Event{}, err
	}

	if _, err := s.events.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["nombre"] = *req.Name
	}
	if req.Description != nil {
		fields["descripcion"] = *req.Description
	}
	if req.Date != nil {
		date, err := time.Parse(eventDateLayout, *req.Date)
		if err != nil {
			return models.Event{}, fmt.Errorf("invalid fecha %q: %w", *req.Date, err)
		}
		fields["fecha"] = datatypes.Date(date)
	}
	if req.Time != nil {
		fields["hora"] = *req.Time
	}
	if req.Venue != nil {
		fields["ubicacion"] = *req.Venue
	}
	if req.ActivityType != nil {
		fields["tipo_actividad"] = *req.ActivityType
	}
	if req.Organizer != nil {
		fields["organizador"] = *req.Organizer
	}
	if req.MaxCapacity != nil {
		fields["capacidad_maxima"] = *req.MaxCapacity
	}
	if req.Status != nil {
		fields["estado"] = *req.Status
	}
	if req.Image != nil {
		fields["imagen"] = *req.Image
	}

	if err := s.events.Update(ctx, id, fields); err != nil {
		return models.Event{}, fmt.Errorf("failed to update event %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

// Comments returns an event's comment thread. includeInactive switches from
// the public view to the unfiltered moderation view.
func (s *eventService) Comments(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error) {
	exists, err := s.events.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	return s.comments.ListByEvent(ctx, id, includeInactive)
}
