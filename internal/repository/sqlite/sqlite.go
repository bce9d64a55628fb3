package sqlite

import (
	"context"
	"errors"
	"fmt"

	"mug-store/internal/domain/models"
	"mug-store/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Storage is the local, file backed store. It creates its tables on open.
type Storage struct {
	db *gorm.DB
}

func NewSQLite(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// a second connection to ":memory:" would see an empty database
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Mug{}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mapError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", repository.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s", repository.ErrConstraint, err)
	default:
		return err
	}
}

func (s *Storage) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.SQLite.ListCategories"

	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return categories, nil
}

func (s *Storage) GetCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "storage.SQLite.GetCategory"

	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&category).Error; err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return category, nil
}

func (s *Storage) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	const op = "storage.SQLite.CreateCategory"

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return category, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	const op = "storage.SQLite.UpdateCategory"

	var category models.Category
	res := s.db.WithContext(ctx).
		Model(&category).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(patch.Columns())
	if res.Error != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return models.Category{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return category, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "storage.SQLite.DeleteCategory"

	var category models.Category
	res := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&category)
	if res.Error != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return models.Category{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return category, nil
}

func (s *Storage) InsertCategories(ctx context.Context, categories []models.Category) (int, error) {
	const op = "storage.SQLite.InsertCategories"

	if len(categories) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).Create(&categories)
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}

	return int(res.RowsAffected), nil
}

func (s *Storage) ClearCategories(ctx context.Context) (int, error) {
	const op = "storage.SQLite.ClearCategories"

	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Category{})
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}

	return int(res.RowsAffected), nil
}

func (s *Storage) ListMugs(ctx context.Context) ([]models.Mug, error) {
	const op = "storage.SQLite.ListMugs"

	var mugs []models.Mug
	if err := s.db.WithContext(ctx).Find(&mugs).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return mugs, nil
}

func (s *Storage) GetMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "storage.SQLite.GetMug"

	var mug models.Mug
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&mug).Error; err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return mug, nil
}

func (s *Storage) CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error) {
	const op = "storage.SQLite.CreateMug"

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&mug).Error; err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return mug, nil
}

func (s *Storage) UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error) {
	const op = "storage.SQLite.UpdateMug"

	var mug models.Mug
	res := s.db.WithContext(ctx).
		Model(&mug).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(patch.Columns())
	if res.Error != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return models.Mug{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return mug, nil
}

func (s *Storage) DeleteMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "storage.SQLite.DeleteMug"

	var mug models.Mug
	res := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&mug)
	if res.Error != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}
	if res.RowsAffected == 0 {
		return models.Mug{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return mug, nil
}

func (s *Storage) InsertMugs(ctx context.Context, mugs []models.Mug) (int, error) {
	const op = "storage.SQLite.InsertMugs"

	if len(mugs) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(&mugs, 100)
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}

	return int(res.RowsAffected), nil
}

func (s *Storage) ClearMugs(ctx context.Context) (int, error) {
	const op = "storage.SQLite.ClearMugs"

	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Mug{})
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(res.Error))
	}

	return int(res.RowsAffected), nil
}
