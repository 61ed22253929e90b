package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/repository"
)

// ErrFaqNotFound indicates the referenced FAQ id does not exist.
var ErrFaqNotFound = errors.New("faq not found")

const (
	defaultPageSize = 15
	maxPageSize     = 100

	faqCachePrefix        = "faqs:"
	faqPublicCacheKey     = "faqs:public:v1"
	faqCategoriesCacheKey = "faqs:categorias:v1"
)

// FaqService exposes the FAQ knowledge base operations.
type FaqService interface {
	Create(ctx context.Context, req dto.FaqCreateRequest) (models.Faq, error)
	Get(ctx context.Context, id uint) (models.Faq, error)
	Update(ctx context.Context, id uint, req dto.FaqUpdateRequest) (models.Faq, error)
	Delete(ctx context.Context, id uint) error
	ToggleStatus(ctx context.Context, id uint) (models.Faq, error)
	List(ctx context.Context, req dto.FaqListRequest) (dto.FaqListResponse, error)
	ListPublic(ctx context.Context) ([]models.Faq, error)
	ListByCategory(ctx context.Context, category string) ([]models.Faq, error)
	Categories(ctx context.Context) ([]string, error)
	Reorder(ctx context.Context, req dto.FaqReorderRequest) error
}

type faqService struct {
	repo      repository.FaqRepository
	cache     *redis.Client
	ttl       time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewFaqService constructs the FAQ service. The cache client may be nil, in
// which case public listings always hit the database.
func NewFaqService(repo repository.FaqRepository, cache *redis.Client, ttl time.Duration, validate *validator.Validate, logger zerolog.Logger) FaqService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &faqService{
		repo:      repo,
		cache:     cache,
		ttl:       ttl,
		validator: validate,
		logger:    logger.With().Str("component", "faq_service").Logger(),
	}
}

func (s *faqService) Create(ctx context.Context, req dto.FaqCreateRequest) (models.Faq, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Faq{}, err
	}

	faq := models.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Active:   true,
	}
	if req.Order != nil {
		faq.Order = *req.Order
	}
	if req.Active != nil {
		faq.Active = *req.Active
	}

	if err := s.repo.Create(ctx, &faq); err != nil {
		return models.Faq{}, fmt.Errorf("failed to create faq: %w", err)
	}

	s.invalidateCache(ctx)

	return faq, nil
}

func (s *faqService) Get(ctx context.Context, id uint) (models.Faq, error) {
	faq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Faq{}, ErrFaqNotFound
		}
		return models.Faq{}, err
	}
	return faq, nil
}

func (s *faqService) Update(ctx context.Context, id uint, req dto.FaqUpdateRequest) (models.Faq, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Faq{}, err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return models.Faq{}, err
	}

	fields := map[string]interface{}{}
	if req.Question != nil {
		fields["pregunta"] = *req.Question
	}
	if req.Answer != nil {
		fields["respuesta"] = *req.Answer
	}
	if req.Category != nil {
		fields["categoria"] = *req.Category
	}
	if req.Order != nil {
		fields["orden"] = *req.Order
	}
	if req.Active != nil {
		fields["activo"] = *req.Active
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return models.Faq{}, fmt.Errorf("failed to update faq %d: %w", id, err)
	}

	s.invalidateCache(ctx)

	return s.Get(ctx, id)
}

func (s *faqService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFaqNotFound
		}
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *faqService) ToggleStatus(ctx context.Context, id uint) (models.Faq, error) {
	faq, err := s.Get(ctx, id)
	if err != nil {
		return models.Faq{}, err
	}

	if err := s.repo.Update(ctx, id, map[string]interface{}{"activo": !faq.Active}); err != nil {
		return models.Faq{}, fmt.Errorf("failed to toggle faq %d: %w", id, err)
	}

	s.invalidateCache(ctx)

	return s.Get(ctx, id)
}

func (s *faqService) List(ctx context.Context, req dto.FaqListRequest) (dto.FaqListResponse, error) {
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	items, total, err := s.repo.List(ctx, repository.FaqFilter{
		Category: req.Category,
		Active:   req.Active,
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return dto.FaqListResponse{}, err
	}

	lastPage := int(math.Ceil(float64(total) / float64(pageSize)))
	if lastPage < 1 {
		lastPage = 1
	}

	return dto.FaqListResponse{
		Items:    items,
		Page:     page,
		LastPage: lastPage,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (s *faqService) ListPublic(ctx context.Context) ([]models.Faq, error) {
	var cached []models.Faq
	if s.cacheGet(ctx, faqPublicCacheKey, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListActive(ctx, nil)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, faqPublicCacheKey, items)

	return items, nil
}

func (s *faqService) ListByCategory(ctx context.Context, category string) ([]models.Faq, error) {
	key := fmt.Sprintf("faqs:categoria:v1:%s", category)

	var cached []models.Faq
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListActive(ctx, &category)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, items)

	return items, nil
}

func (s *faqService) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if s.cacheGet(ctx, faqCategoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, faqCategoriesCacheKey, categories)

	return categories, nil
}

func (s *faqService) Reorder(ctx context.Context, req dto.FaqReorderRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	positions := make([]repository.FaqPosition, 0, len(req.Items))
	for _, item := range req.Items {
		positions = append(positions, repository.FaqPosition{ID: item.ID, Order: item.Order})
	}

	if err := s.repo.Reorder(ctx, positions); err != nil {
		if errors.Is(err, repository.ErrReorderTargetMissing) {
			return fmt.Errorf("%w: %s", ErrFaqNotFound, err.Error())
		}
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *faqService) cacheGet(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key).Result()
	if err != nil || payload == "" {
		return false
	}
	return json.Unmarshal([]byte(payload), target) == nil
}

func (s *faqService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache faq listing")
	}
}

// invalidateCache drops every cached FAQ listing after a write. Cache
// failures are logged, never surfaced: stale entries expire via TTL anyway.
func (s *faqService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	iter := s.cache.Scan(ctx, 0, faqCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn().Err(err).Str("key", iter.Val()).Msg("failed to invalidate faq cache entry")
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to scan faq cache keys")
	}
}
