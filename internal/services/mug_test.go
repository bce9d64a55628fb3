package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"mug-store/internal/domain/models"
	"mug-store/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

func newMugService(repo MugRepository) *MugService {
	service := NewMugService(slog.Default(), repo)
	service.now = func() time.Time { return fixedNow }
	return service
}

func TestMugService_CreateMug_StampsTimestamps(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(MugRepositoryMock)
	repo.On("CreateMug", ctx, mock.MatchedBy(func(m models.Mug) bool {
		return m.ID == "m-1" && m.CreatedAt == fixedNow.Unix() && m.UpdatedAt == fixedNow.Unix()
	})).Return(models.Mug{ID: "m-1", CreatedAt: fixedNow.Unix(), UpdatedAt: fixedNow.Unix()}, nil).Once()
	service := newMugService(repo)

	// Act
	created, err := service.CreateMug(ctx, models.Mug{ID: "m-1", CreatedAt: 1, UpdatedAt: 2})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Unix(), created.CreatedAt)
	repo.AssertExpectations(t)
}

func TestMugService_UpdateMug_OverridesUpdatedAt(t *testing.T) {
	// Arrange
	ctx := context.Background()
	price := 30
	repo := new(MugRepositoryMock)
	repo.On("UpdateMug", ctx, "m-1", models.MugPatch{Price: &price, UpdatedAt: fixedNow.Unix()}).
		Return(models.Mug{ID: "m-1", Price: 30, UpdatedAt: fixedNow.Unix()}, nil).Once()
	service := newMugService(repo)

	// Act
	updated, err := service.UpdateMug(ctx, "m-1", models.MugPatch{Price: &price, UpdatedAt: 42})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Price)
	assert.Equal(t, fixedNow.Unix(), updated.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestMugService_UpdateMug_WrapsNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(MugRepositoryMock)
	repo.On("UpdateMug", ctx, "missing", mock.Anything).Return(models.Mug{}, repository.ErrNotFound).Once()
	service := newMugService(repo)

	// Act
	_, err := service.UpdateMug(ctx, "missing", models.MugPatch{})

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestMugService_ListMugs_PropagatesRepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(MugRepositoryMock)
	repo.On("ListMugs", ctx).Return([]models.Mug(nil), errors.New("connection refused")).Once()
	service := newMugService(repo)

	// Act
	mugs, err := service.ListMugs(ctx)

	// Assert
	assert.ErrorContains(t, err, "connection refused")
	assert.Nil(t, mugs)
	repo.AssertExpectations(t)
}

func TestMugService_GetAndDelete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mug := models.Mug{ID: "m-1", Name: "Wild Mug #7"}
	repo := new(MugRepositoryMock)
	repo.On("GetMug", ctx, "m-1").Return(mug, nil).Once()
	repo.On("DeleteMug", ctx, "m-1").Return(mug, nil).Once()
	repo.On("DeleteMug", ctx, "m-1").Return(models.Mug{}, repository.ErrNotFound).Once()
	service := newMugService(repo)

	// Act
	got, getErr := service.GetMug(ctx, "m-1")
	deleted, deleteErr := service.DeleteMug(ctx, "m-1")
	_, secondDeleteErr := service.DeleteMug(ctx, "m-1")

	// Assert
	require.NoError(t, getErr)
	require.NoError(t, deleteErr)
	assert.Equal(t, mug, got)
	assert.Equal(t, mug, deleted)
	assert.ErrorIs(t, secondDeleteErr, repository.ErrNotFound)
	repo.AssertExpectations(t)
}
