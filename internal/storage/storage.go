package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mug-store/internal/config"
	"mug-store/internal/domain/models"
	"mug-store/internal/repository/postgres"
	"mug-store/internal/repository/sqlite"
)

var ErrUnsupportedURL = errors.New("unsupported store url")

// Store is implemented by every backend.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) (models.Category, error)
	InsertCategories(ctx context.Context, categories []models.Category) (int, error)
	ClearCategories(ctx context.Context) (int, error)

	ListMugs(ctx context.Context) ([]models.Mug, error)
	GetMug(ctx context.Context, id string) (models.Mug, error)
	CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error)
	UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error)
	DeleteMug(ctx context.Context, id string) (models.Mug, error)
	InsertMugs(ctx context.Context, mugs []models.Mug) (int, error)
	ClearMugs(ctx context.Context) (int, error)

	Close() error
}

var (
	_ Store = (*postgres.Storage)(nil)
	_ Store = (*sqlite.Storage)(nil)
)

// Open picks a backend from the URL scheme:
// postgres:// and postgresql:// go to Postgres, file:, sqlite:// and :memory: to SQLite.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	const op = "storage.Open"

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		store Store
		err   error
	)
	switch url := cfg.URL; {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		store, err = postgres.NewPostgres(ctx, url, cfg.AuthToken)
	case strings.HasPrefix(url, "sqlite://"):
		store, err = sqlite.NewSQLite(ctx, strings.TrimPrefix(url, "sqlite://"))
	case strings.HasPrefix(url, "file:"), url == ":memory:":
		store, err = sqlite.NewSQLite(ctx, url)
	default:
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnsupportedURL, url)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return store, nil
}
