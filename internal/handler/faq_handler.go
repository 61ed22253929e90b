package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/service"
	"github.com/ecoeventos/eventos-api/internal/utils"
)

// FaqHandler exposes the FAQ knowledge base endpoints.
type FaqHandler struct {
	service service.FaqService
	logger  zerolog.Logger
}

// NewFaqHandler constructs the handler.
func NewFaqHandler(service service.FaqService, logger zerolog.Logger) *FaqHandler {
	return &FaqHandler{
		service: service,
		logger:  logger.With().Str("component", "faq_handler").Logger(),
	}
}

// Register wires the FAQ routes. Static segments come before the :id routes
// so "public" and friends are not swallowed as identifiers.
func (h *FaqHandler) Register(router fiber.Router) {
	router.Get("/public", h.listPublic)
	router.Get("/categorias", h.categories)
	router.Get("/categoria/:categoria", h.listByCategory)
	router.Post("/reordenar", h.reorder)
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Patch("/:id/toggle-status", h.toggleStatus)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *FaqHandler) list(c *fiber.Ctx) error {
	req := dto.FaqListRequest{
		Search:   strings.TrimSpace(c.Query("buscar")),
		Page:     parseQueryInt(c, "page"),
		PageSize: parseQueryInt(c, "page_size"),
	}

	if category := strings.TrimSpace(c.Query("categoria")); category != "" {
		req.Category = &category
	}

	if raw := strings.TrimSpace(c.Query("activo")); raw != "" {
		active, err := parseBoolToken(raw)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid query parameters", map[string]string{
				"activo": "must be one of: true, false, 1, 0",
			})
		}
		req.Active = &active
	}

	result, err := h.service.List(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list faqs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list faqs")
	}

	return utils.OK(c, result, "faqs retrieved", nil)
}

func (h *FaqHandler) listPublic(c *fiber.Ctx) error {
	items, err := h.service.ListPublic(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list public faqs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list faqs")
	}

	return utils.SendSuccess(c, "faqs retrieved", items)
}

func (h *FaqHandler) listByCategory(c *fiber.Ctx) error {
	category, err := decodeParam(c, "categoria")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid categoria parameter")
	}

	items, err := h.service.ListByCategory(c.Context(), category)
	if err != nil {
		h.logger.Error().Err(err).Str("categoria", category).Msg("failed to list faqs by category")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list faqs")
	}

	return utils.SendSuccess(c, "faqs retrieved", items)
}

func (h *FaqHandler) categories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list faq categories")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list categories")
	}

	return utils.SendSuccess(c, "categories retrieved", categories)
}

func (h *FaqHandler) create(c *fiber.Ctx) error {
	var payload dto.FaqCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	faq, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		}
		h.logger.Error().Err(err).Msg("failed to create faq")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create faq")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "faq created", faq)
}

func (h *FaqHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	faq, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faq not found")
		}
		h.logger.Error().Err(err).Uint("faq_id", id).Msg("failed to get faq")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch faq")
	}

	return utils.SendSuccess(c, "faq retrieved", faq)
}

func (h *FaqHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FaqUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	faq, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFaqNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "faq not found")
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		}
		h.logger.Error().Err(err).Uint("faq_id", id).Msg("failed to update faq")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update faq")
	}

	return utils.SendSuccess(c, "faq updated", faq)
}

func (h *FaqHandler) toggleStatus(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	faq, err := h.service.ToggleStatus(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faq not found")
		}
		h.logger.Error().Err(err).Uint("faq_id", id).Msg("failed to toggle faq status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to toggle faq status")
	}

	return utils.SendSuccess(c, "faq status updated", faq)
}

func (h *FaqHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "faq not found")
		}
		h.logger.Error().Err(err).Uint("faq_id", id).Msg("failed to delete faq")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete faq")
	}

	return utils.SendSuccess(c, "faq deleted", nil)
}

func (h *FaqHandler) reorder(c *fiber.Ctx) error {
	var payload dto.FaqReorderRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Reorder(c.Context(), payload); err != nil {
		switch {
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		case errors.Is(err, service.ErrFaqNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		h.logger.Error().Err(err).Msg("failed to reorder faqs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to reorder faqs")
	}

	return utils.SendSuccess(c, "faqs reordered", nil)
}
