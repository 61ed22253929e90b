package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/service"
	"github.com/ecoeventos/eventos-api/internal/utils"
)

type mockEventService struct {
	createFn   func(ctx context.Context, req dto.EventCreateRequest) (models.Event, error)
	getFn      func(ctx context.Context, id uint) (models.Event, error)
	listFn     func(ctx context.Context) ([]models.Event, error)
	updateFn   func(ctx context.Context, id uint, req dto.EventUpdateRequest) (models.Event, error)
	commentsFn func(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error)
}

func (m *mockEventService) Create(ctx context.Context, req dto.EventCreateRequest) (models.Event, error) {
	return m.createFn(ctx, req)
}

func (m *mockEventService) Get(ctx context.Context, id uint) (models.Event, error) {
	return m.getFn(ctx, id)
}

func (m *mockEventService) List(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}

func (m *mockEventService) Update(ctx context.Context, id uint, req dto.EventUpdateRequest) (models.Event, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockEventService) Comments(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error) {
	return m.commentsFn(ctx, id, includeInactive)
}

func newEventApp(svc service.EventService) *fiber.App {
	app := fiber.New()
	NewEventHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/events"))
	return app
}

func TestEventHandlerCreate(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, req dto.EventCreateRequest) (models.Event, error) {
			return models.Event{ID: 1, Name: req.Name, Status: models.EventStatusActive}, nil
		},
	}
	app := newEventApp(svc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/events/", fiber.Map{
		"nombre":      "Taller de Compostaje",
		"descripcion": "Aprende a compostar",
		"fecha":       "2026-10-01",
		"ubicacion":   "Parque Central",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestEventHandlerCreateValidationFailure(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, req dto.EventCreateRequest) (models.Event, error) {
			return models.Event{}, utils.NewValidator().Struct(req)
		},
	}
	app := newEventApp(svc)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/events/", fiber.Map{
		"nombre": "Sin fecha",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeResponse(t, resp)
	details, ok := body.Details.(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, details, "fecha")
	require.Contains(t, details, "descripcion")
}

func TestEventHandlerGetNotFound(t *testing.T) {
	svc := &mockEventService{
		getFn: func(ctx context.Context, id uint) (models.Event, error) {
			return models.Event{}, service.ErrEventNotFound
		},
	}
	app := newEventApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/404", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventHandlerListCommentsIncludeInactive(t *testing.T) {
	var captured bool
	svc := &mockEventService{
		commentsFn: func(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error) {
			captured = includeInactive
			return []models.Comment{}, nil
		},
	}
	app := newEventApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/1/comments?incluir_inactivos=true", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, captured)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/events/1/comments", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, captured)
}

func TestEventHandlerListCommentsRejectsInvalidFlag(t *testing.T) {
	svc := &mockEventService{
		commentsFn: func(ctx context.Context, id uint, includeInactive bool) ([]models.Comment, error) {
			t.Error("service must not be called for an invalid incluir_inactivos value")
			return nil, nil
		},
	}
	app := newEventApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/events/1/comments?incluir_inactivos=maybe", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
