package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"mug-store/internal/domain/models"
	"mug-store/internal/lib/logger"
	"mug-store/internal/repository/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var mugName = regexp.MustCompile(`^(Lazy|Bright|Happy|Bold|Smooth|Fierce|Elegant|Wild|Creative|Mysterious) Mug #\d+$`)

func TestRun_SQLite(t *testing.T) {
	// Arrange
	ctx := context.Background()
	log, _ := logger.Discard()

	store, err := sqlite.NewSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	leftover, err := store.CreateCategory(ctx, models.Category{ID: uuid.NewString(), Name: "Old"})
	require.NoError(t, err)

	// Act
	result, err := Run(ctx, log, store, 150, rand.New(rand.NewPCG(1, 2)))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 2, Mugs: 150}, result)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	ids := make(map[string]bool)
	for _, c := range categories {
		assert.Contains(t, CategoryNames, c.Name)
		assert.NotEqual(t, leftover.ID, c.ID)
		ids[c.ID] = true
	}

	mugs, err := store.ListMugs(ctx)
	require.NoError(t, err)
	require.Len(t, mugs, 150)

	categoryID := mugs[0].CategoryID
	for _, m := range mugs {
		assert.Regexp(t, mugName, m.Name)
		assert.Equal(t, categoryID, m.CategoryID)
		assert.True(t, ids[m.CategoryID])
		assert.GreaterOrEqual(t, m.Price, minPrice)
		assert.LessOrEqual(t, m.Price, maxPrice)
		assert.True(t, strings.HasPrefix(m.Image, "https://via.placeholder.com/150?text=Mug+"))
		assert.True(t, strings.HasSuffix(m.Description, "."))
		assert.Equal(t, m.CreatedAt, m.UpdatedAt)
	}
}

func TestRun_Reseed(t *testing.T) {
	ctx := context.Background()
	log, _ := logger.Discard()

	store, err := sqlite.NewSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = Run(ctx, log, store, 10, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	_, err = Run(ctx, log, store, 5, rand.New(rand.NewPCG(5, 6)))
	require.NoError(t, err)

	mugs, err := store.ListMugs(ctx)
	require.NoError(t, err)
	assert.Len(t, mugs, 5)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ClearMugs(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ClearCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) InsertCategories(ctx context.Context, categories []models.Category) (int, error) {
	args := m.Called(ctx, categories)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) InsertMugs(ctx context.Context, mugs []models.Mug) (int, error) {
	args := m.Called(ctx, mugs)
	return args.Int(0), args.Error(1)
}

func TestRun_ClearFails(t *testing.T) {
	// Arrange
	log, _ := logger.Discard()
	repo := new(MockRepository)
	repo.On("ClearMugs", mock.Anything).Return(0, errors.New("db down")).Once()

	// Act
	_, err := Run(context.Background(), log, repo, 10, rand.New(rand.NewPCG(1, 1)))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "InsertCategories", mock.Anything, mock.Anything)
}

func TestRun_ZeroMugs(t *testing.T) {
	log, _ := logger.Discard()
	repo := new(MockRepository)
	repo.On("ClearMugs", mock.Anything).Return(3, nil).Once()
	repo.On("ClearCategories", mock.Anything).Return(2, nil).Once()
	repo.On("InsertCategories", mock.Anything, mock.AnythingOfType("[]models.Category")).Return(2, nil).Once()

	result, err := Run(context.Background(), log, repo, 0, rand.New(rand.NewPCG(1, 1)))

	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 2}, result)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "InsertMugs", mock.Anything, mock.Anything)
}

func TestRun_NegativeCount(t *testing.T) {
	log, _ := logger.Discard()
	repo := new(MockRepository)

	_, err := Run(context.Background(), log, repo, -1, rand.New(rand.NewPCG(1, 1)))

	require.Error(t, err)
	repo.AssertExpectations(t)
}
