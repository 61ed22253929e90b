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

// CommentHandler exposes the comment moderation endpoints.
type CommentHandler struct {
	service service.CommentService
	logger  zerolog.Logger
}

// NewCommentHandler constructs the handler.
func NewCommentHandler(service service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger.With().Str("component", "comment_handler").Logger(),
	}
}

// Register wires the comment routes.
func (h *CommentHandler) Register(router fiber.Router) {
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
}

// RegisterModeration wires the moderation audit trail route.
func (h *CommentHandler) RegisterModeration(router fiber.Router) {
	router.Get("/actividad", h.activity)
}

func (h *CommentHandler) create(c *fiber.Ctx) error {
	var payload dto.CommentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	comment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		case errors.Is(err, service.ErrCommentEventMissing):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", map[string]string{
				"evento_id": "must reference an existing event",
			})
		case errors.Is(err, service.ErrCommentContentEmpty):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", map[string]string{
				"contenido": "this field is required",
			})
		}
		h.logger.Error().Err(err).Msg("failed to create comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create comment")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "comment created", comment)
}

func (h *CommentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "comment not found")
		}
		h.logger.Error().Err(err).Uint("comment_id", id).Msg("failed to get comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch comment")
	}

	return utils.SendSuccess(c, "comment retrieved", comment)
}

func (h *CommentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.CommentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	comment, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "comment not found")
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		case errors.Is(err, service.ErrCommentContentEmpty):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", map[string]string{
				"contenido": "this field is required",
			})
		}
		h.logger.Error().Err(err).Uint("comment_id", id).Msg("failed to update comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update comment")
	}

	return utils.SendSuccess(c, "comment updated", comment)
}

// delete soft-deletes: the row stays in storage with activo=false.
func (h *CommentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Deactivate(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "comment not found")
		}
		h.logger.Error().Err(err).Uint("comment_id", id).Msg("failed to deactivate comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to deactivate comment")
	}

	return utils.SendSuccess(c, "comment deactivated", nil)
}

func (h *CommentHandler) activity(c *fiber.Ctx) error {
	result, err := h.service.Activity(
		c.Context(),
		parseQueryInt(c, "page"),
		parseQueryInt(c, "page_size"),
		strings.TrimSpace(c.Query("accion")),
	)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list moderation activity")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list moderation activity")
	}

	return utils.OK(c, result, "moderation activity retrieved", nil)
}
