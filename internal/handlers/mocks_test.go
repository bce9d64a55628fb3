package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"mug-store/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type CategoryServiceMock struct {
	mock.Mock
}

func (m *CategoryServiceMock) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CategoryServiceMock) GetCategory(ctx context.Context, id string) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryServiceMock) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryServiceMock) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryServiceMock) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

type MugServiceMock struct {
	mock.Mock
}

func (m *MugServiceMock) ListMugs(ctx context.Context) ([]models.Mug, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Mug), args.Error(1)
}

func (m *MugServiceMock) GetMug(ctx context.Context, id string) (models.Mug, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugServiceMock) CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error) {
	args := m.Called(ctx, mug)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugServiceMock) UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugServiceMock) DeleteMug(ctx context.Context, id string) (models.Mug, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Mug), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(method, route, target, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, route, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

