package postgres

import (
	"context"
	"fmt"

	"mug-store/internal/domain/models"

	"github.com/Masterminds/squirrel"
)

func (s *Storage) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.Postgres.ListCategories"

	sql, args, err := psql().Select(categoryColumns...).
		From(categoriesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categories, err := queryAll[models.Category](ctx, s.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *Storage) GetCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "storage.Postgres.GetCategory"

	sql, args, err := psql().Select(categoryColumns...).
		From(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	category, err := queryOne[models.Category](ctx, s.db, sql, args)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (s *Storage) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	const op = "storage.Postgres.CreateCategory"

	sql, args, err := psql().Insert(categoriesTable).
		Columns(categoryColumns...).
		Values(category.ID, category.Name).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := queryOne[models.Category](ctx, s.db, sql, args)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Storage) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	const op = "storage.Postgres.UpdateCategory"

	sql, args, err := psql().Update(categoriesTable).
		SetMap(patch.Columns()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := queryOne[models.Category](ctx, s.db, sql, args)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "storage.Postgres.DeleteCategory"

	sql, args, err := psql().Delete(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := queryOne[models.Category](ctx, s.db, sql, args)
	if err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Storage) InsertCategories(ctx context.Context, categories []models.Category) (int, error) {
	const op = "storage.Postgres.InsertCategories"

	if len(categories) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []any{c.ID, c.Name})
	}

	inserted, err := insertAll(ctx, s.db, categoriesTable, categoryColumns, rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return inserted, nil
}

func (s *Storage) ClearCategories(ctx context.Context) (int, error) {
	const op = "storage.Postgres.ClearCategories"

	sql, args, err := psql().Delete(categoriesTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return int(tag.RowsAffected()), nil
}
