package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/repository"
)

var (
	// ErrCommentNotFound indicates the referenced comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrCommentEventMissing indicates the comment targets a non-existent event.
	ErrCommentEventMissing = errors.New("comment event does not exist")
	// ErrCommentContentEmpty indicates the comment body was empty once sanitized.
	ErrCommentContentEmpty = errors.New("comment content is empty after sanitization")
)

// CommentService exposes the comment moderation workflow.
type CommentService interface {
	Create(ctx context.Context, req dto.CommentCreateRequest) (models.Comment, error)
	Update(ctx context.Context, id uint, req dto.CommentUpdateRequest) (models.Comment, error)
	Deactivate(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (models.Comment, error)
	Activity(ctx context.Context, page, pageSize int, action string) (dto.ModerationLogListResponse, error)
}

type commentService struct {
	comments      repository.CommentRepository
	events        repository.EventRepository
	logs          repository.ModerationLogRepository
	validator     *validator.Validate
	policy        *bluemonday.Policy
	defaultAuthor string
	logger        zerolog.Logger
	tracer        trace.Tracer
}

// NewCommentService constructs the comment moderation service. defaultAuthor
// attributes comments submitted without a usuario value.
func NewCommentService(comments repository.CommentRepository, events repository.EventRepository, logs repository.ModerationLogRepository, validate *validator.Validate, defaultAuthor string, logger zerolog.Logger) CommentService {
	if strings.TrimSpace(defaultAuthor) == "" {
		defaultAuthor = "anónimo"
	}
	return &commentService{
		comments:      comments,
		events:        events,
		logs:          logs,
		validator:     validate,
		policy:        bluemonday.StrictPolicy(),
		defaultAuthor: defaultAuthor,
		logger:        logger.With().Str("component", "comment_service").Logger(),
		tracer:        otel.Tracer("github.com/ecoeventos/eventos-api/internal/service/comment"),
	}
}

func (s *commentService) Create(ctx context.Context, req dto.CommentCreateRequest) (models.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "comment.create")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return models.Comment{}, err
	}

	exists, err := s.events.Exists(ctx, req.EventID)
	if err != nil {
		span.RecordError(err)
		return models.Comment{}, fmt.Errorf("failed to verify event %d: %w", req.EventID, err)
	}
	if !exists {
		span.SetStatus(codes.Error, "event missing")
		return models.Comment{}, ErrCommentEventMissing
	}

	content := strings.TrimSpace(s.policy.Sanitize(req.Content))
	if content == "" {
		span.SetStatus(codes.Error, "empty content")
		return models.Comment{}, ErrCommentContentEmpty
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = s.defaultAuthor
	}

	comment := models.Comment{
		EventID: req.EventID,
		Content: content,
		Author:  author,
		Edited:  false,
		Active:  true,
	}

	if err := s.comments.Create(ctx, &comment); err != nil {
		span.RecordError(err)
		return models.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	span.SetAttributes(attribute.Int("comment.id", int(comment.ID)), attribute.Int("event.id", int(comment.EventID)))
	s.logger.Info().Uint("comment_id", comment.ID).Uint("event_id", comment.EventID).Msg("comment created")

	s.record(ctx, models.ModerationActionCommentCreated, comment.ID, datatypes.JSONMap{"evento_id": comment.EventID, "usuario": comment.Author})

	return comment, nil
}

// Update replaces the comment body and always marks the row as edited, even
// when the submitted content matches the stored one verbatim.
func (s *commentService) Update(ctx context.Context, id uint, req dto.CommentUpdateRequest) (models.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "comment.update")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return models.Comment{}, err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return models.Comment{}, err
	}

	content := strings.TrimSpace(s.policy.Sanitize(req.Content))
	if content == "" {
		span.SetStatus(codes.Error, "empty content")
		return models.Comment{}, ErrCommentContentEmpty
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		span.RecordError(err)
		return models.Comment{}, fmt.Errorf("failed to update comment %d: %w", id, err)
	}

	s.logger.Info().Uint("comment_id", id).Msg("comment updated")
	s.record(ctx, models.ModerationActionCommentEdited, id, nil)

	return s.Get(ctx, id)
}

// Deactivate soft-deletes a comment: the row stays retrievable by id but
// disappears from active-only listings.
func (s *commentService) Deactivate(ctx context.Context, id uint) error {
	ctx, span := s.tracer.Start(ctx, "comment.deactivate")
	defer span.End()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.comments.Deactivate(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to deactivate comment %d: %w", id, err)
	}

	s.logger.Info().Uint("comment_id", id).Msg("comment deactivated")
	s.record(ctx, models.ModerationActionCommentDeactivated, id, nil)

	return nil
}

func (s *commentService) Get(ctx context.Context, id uint) (models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, ErrCommentNotFound
		}
		return models.Comment{}, err
	}
	return comment, nil
}

func (s *commentService) Activity(ctx context.Context, page, pageSize int, action string) (dto.ModerationLogListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	entries, total, err := s.logs.List(ctx, repository.ModerationLogFilter{
		Page:     page,
		PageSize: pageSize,
		Action:   action,
	})
	if err != nil {
		return dto.ModerationLogListResponse{}, err
	}

	items := make([]dto.ModerationLogEntry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.NewModerationLogEntry(entry))
	}

	lastPage := int(math.Ceil(float64(total) / float64(pageSize)))
	if lastPage < 1 {
		lastPage = 1
	}

	return dto.ModerationLogListResponse{
		Items:    items,
		Page:     page,
		LastPage: lastPage,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// record writes the audit trail entry for a moderation action. Failures are
// logged and swallowed: the primary mutation already committed.
func (s *commentService) record(ctx context.Context, action string, commentID uint, metadata datatypes.JSONMap) {
	entry := models.ModerationLog{
		Action:     action,
		EntityType: "comment",
		EntityID:   commentID,
		Metadata:   metadata,
	}
	if err := s.logs.Create(ctx, &entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Uint("comment_id", commentID).Msg("failed to record moderation log entry")
	}
}
