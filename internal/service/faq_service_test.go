package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecoeventos/eventos-api/internal/dto"
	"github.com/ecoeventos/eventos-api/internal/models"
	"github.com/ecoeventos/eventos-api/internal/repository"
	"github.com/ecoeventos/eventos-api/internal/utils"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func setupServiceDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(entities...))
	return db
}

func newFaqService(t *testing.T, cache *redis.Client) (FaqService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t, &models.Faq{})
	svc := NewFaqService(repository.NewFaqRepository(db), cache, time.Minute, utils.NewValidator(), testLogger())
	return svc, db
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func TestFaqServiceCreateQuestionBoundary(t *testing.T) {
	svc, _ := newFaqService(t, nil)

	atLimit := strings.Repeat("p", 255)
	faq, err := svc.Create(context.Background(), dto.FaqCreateRequest{Question: atLimit, Answer: "respuesta"})
	require.NoError(t, err)
	require.Equal(t, atLimit, faq.Question)
	require.True(t, faq.Active)
	require.Equal(t, 0, faq.Order)

	_, err = svc.Create(context.Background(), dto.FaqCreateRequest{Question: strings.Repeat("p", 256), Answer: "respuesta"})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors, "one character over the bound must fail validation")
}

func TestFaqServiceCreateInactive(t *testing.T) {
	svc, db := newFaqService(t, nil)

	inactive := false
	faq, err := svc.Create(context.Background(), dto.FaqCreateRequest{Question: "q?", Answer: "a", Active: &inactive})
	require.NoError(t, err)
	require.False(t, faq.Active)

	var stored models.Faq
	require.NoError(t, db.First(&stored, faq.ID).Error)
	require.False(t, stored.Active, "explicit activo=false must survive the insert")
}

func TestFaqServiceUpdateRejectsBlankRequiredFields(t *testing.T) {
	svc, db := newFaqService(t, nil)

	faq := models.Faq{Question: "q?", Answer: "a", Active: true}
	require.NoError(t, db.Create(&faq).Error)

	var validationErrors validator.ValidationErrors

	_, err := svc.Update(context.Background(), faq.ID, dto.FaqUpdateRequest{Question: strPtr("")})
	require.ErrorAs(t, err, &validationErrors, "present-but-blank pregunta must fail validation")

	_, err = svc.Update(context.Background(), faq.ID, dto.FaqUpdateRequest{Answer: strPtr("")})
	require.ErrorAs(t, err, &validationErrors)

	stored, err := svc.Get(context.Background(), faq.ID)
	require.NoError(t, err)
	require.Equal(t, "q?", stored.Question)
	require.Equal(t, "a", stored.Answer)
}

func TestFaqServiceListNormalizesPagination(t *testing.T) {
	svc, db := newFaqService(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Faq{Question: fmt.Sprintf("q%d?", i), Answer: "a", Active: true}).Error)
	}

	result, err := svc.List(context.Background(), dto.FaqListRequest{Page: -2, PageSize: -5})
	require.NoError(t, err)
	require.Equal(t, 1, result.Page)
	require.Equal(t, 15, result.PageSize)
	require.Equal(t, 1, result.LastPage)
	require.Equal(t, int64(3), result.Total)
	require.Len(t, result.Items, 3)
}

func TestFaqServiceListLastPage(t *testing.T) {
	svc, db := newFaqService(t, nil)

	for i := 0; i < 31; i++ {
		require.NoError(t, db.Create(&models.Faq{Question: fmt.Sprintf("q%d?", i), Answer: "a", Active: true}).Error)
	}

	result, err := svc.List(context.Background(), dto.FaqListRequest{Page: 3})
	require.NoError(t, err)
	require.Equal(t, 3, result.Page)
	require.Equal(t, 3, result.LastPage)
	require.Equal(t, int64(31), result.Total)
	require.Len(t, result.Items, 1)
}

func TestFaqServiceToggleStatusTwiceRestoresOriginal(t *testing.T) {
	svc, db := newFaqService(t, nil)

	faq := models.Faq{Question: "q?", Answer: "a", Active: true}
	require.NoError(t, db.Create(&faq).Error)

	toggled, err := svc.ToggleStatus(context.Background(), faq.ID)
	require.NoError(t, err)
	require.False(t, toggled.Active)

	restored, err := svc.ToggleStatus(context.Background(), faq.ID)
	require.NoError(t, err)
	require.True(t, restored.Active)
}

func TestFaqServiceUpdatePartial(t *testing.T) {
	svc, db := newFaqService(t, nil)

	faq := models.Faq{Question: "antes?", Answer: "respuesta", Order: 2, Active: true}
	require.NoError(t, db.Create(&faq).Error)

	updated, err := svc.Update(context.Background(), faq.ID, dto.FaqUpdateRequest{
		Question: strPtr("después?"),
		Order:    intPtr(7),
	})
	require.NoError(t, err)
	require.Equal(t, "después?", updated.Question)
	require.Equal(t, "respuesta", updated.Answer, "untouched fields keep their value")
	require.Equal(t, 7, updated.Order)
}

func TestFaqServiceGetMissingMapsToNotFound(t *testing.T) {
	svc, _ := newFaqService(t, nil)

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrFaqNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), 99), ErrFaqNotFound)
}

func TestFaqServicePublicListingCachesAndInvalidates(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer cache.Close()

	svc, db := newFaqService(t, cache)

	require.NoError(t, db.Create(&models.Faq{Question: "q1?", Answer: "a", Active: true}).Error)
	require.NoError(t, db.Create(&models.Faq{Question: "oculta?", Answer: "a", Active: false}).Error)

	items, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Row added behind the service's back: the cached listing is served.
	require.NoError(t, db.Create(&models.Faq{Question: "q2?", Answer: "a", Active: true}).Error)
	cached, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, cached, 1)

	// A write through the service invalidates the cache.
	_, err = svc.Create(context.Background(), dto.FaqCreateRequest{Question: "q3?", Answer: "a"})
	require.NoError(t, err)

	fresh, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, fresh, 3)
}

func TestFaqServiceCategories(t *testing.T) {
	svc, db := newFaqService(t, nil)

	require.NoError(t, db.Create(&models.Faq{Question: "1?", Answer: "a", Category: strPtr("Registro"), Active: true}).Error)
	require.NoError(t, db.Create(&models.Faq{Question: "2?", Answer: "a", Category: strPtr("Eventos"), Active: true}).Error)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Eventos", "Registro"}, categories)
}

func TestFaqServiceReorderMissingTarget(t *testing.T) {
	svc, db := newFaqService(t, nil)

	faq := models.Faq{Question: "q?", Answer: "a", Order: 1, Active: true}
	require.NoError(t, db.Create(&faq).Error)

	err := svc.Reorder(context.Background(), dto.FaqReorderRequest{Items: []dto.FaqReorderItem{
		{ID: faq.ID, Order: 5},
		{ID: faq.ID + 100, Order: 2},
	}})
	require.ErrorIs(t, err, ErrFaqNotFound)

	stored, err := svc.Get(context.Background(), faq.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stored.Order)
}

func TestFaqServiceReorderRejectsNegativeOrder(t *testing.T) {
	svc, db := newFaqService(t, nil)

	faq := models.Faq{Question: "q?", Answer: "a", Active: true}
	require.NoError(t, db.Create(&faq).Error)

	err := svc.Reorder(context.Background(), dto.FaqReorderRequest{Items: []dto.FaqReorderItem{
		{ID: faq.ID, Order: -1},
	}})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}
