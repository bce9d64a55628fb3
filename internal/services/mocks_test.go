package services

import (
	"context"

	"mug-store/internal/domain/models"

	"github.com/stretchr/testify/mock"
)

type CategoryRepositoryMock struct {
	mock.Mock
}

func (m *CategoryRepositoryMock) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) GetCategory(ctx context.Context, id string) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Category), args.Error(1)
}

type MugRepositoryMock struct {
	mock.Mock
}

func (m *MugRepositoryMock) ListMugs(ctx context.Context) ([]models.Mug, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Mug), args.Error(1)
}

func (m *MugRepositoryMock) GetMug(ctx context.Context, id string) (models.Mug, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugRepositoryMock) CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error) {
	args := m.Called(ctx, mug)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugRepositoryMock) UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Mug), args.Error(1)
}

func (m *MugRepositoryMock) DeleteMug(ctx context.Context, id string) (models.Mug, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Mug), args.Error(1)
}
