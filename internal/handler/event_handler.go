package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/service"
	"github.com/ecoeventos/eventos-api/internal/utils"
)

// EventHandler exposes the event endpoints.
type EventHandler struct {
	service service.EventService
	logger  zerolog.Logger
}

// NewEventHandler constructs the handler.
func NewEventHandler(service service.EventService, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With().Str("component", "event_handler").Logger(),
	}
}

// Register wires the event routes.
func (h *EventHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Get("/:id/comments", h.listComments)
}

func (h *EventHandler) list(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list events")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list events")
	}

	return utils.SendSuccess(c, "events retrieved", events)
}

func (h *EventHandler) create(c *fiber.Ctx) error {
	var payload dto.EventCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		}
		h.logger.Error().Err(err).Msg("failed to create event")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create event")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "event created", event)
}

func (h *EventHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "event not found")
		}
		h.logger.Error().Err(err).Uint("event_id", id).Msg("failed to get event")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch event")
	}

	return utils.SendSuccess(c, "event retrieved", event)
}

func (h *EventHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.EventUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	event, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "event not found")
		case isValidationError(err):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", validationDetails(err))
		}
		h.logger.Error().Err(err).Uint("event_id", id).Msg("failed to update event")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update event")
	}

	return utils.SendSuccess(c, "event updated", event)
}

// listComments returns an event's comment thread; incluir_inactivos=true
// switches to the unfiltered moderation view.
func (h *EventHandler) listComments(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	includeInactive := false
	if raw := c.Query("incluir_inactivos"); raw != "" {
		includeInactive, err = parseBoolToken(raw)
		if err != nil {
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "invalid query parameters", map[string]string{
				"incluir_inactivos": "must be one of: true, false, 1, 0",
			})
		}
	}

	comments, err := h.service.Comments(c.Context(), id, includeInactive)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "event not found")
		}
		h.logger.Error().Err(err).Uint("event_id", id).Msg("failed to list event comments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list comments")
	}

	return utils.SendSuccess(c, "comments retrieved", comments)
}
