package postgres

import (
	"context"
	"fmt"

	"mug-store/internal/domain/models"

	"github.com/Masterminds/squirrel"
)

func mugValues(m models.Mug) []any {
	return []any{m.ID, m.Name, m.Description, m.Price, m.CategoryID, m.Image, m.CreatedAt, m.UpdatedAt}
}

func (s *Storage) ListMugs(ctx context.Context) ([]models.Mug, error) {
	const op = "storage.Postgres.ListMugs"

	sql, args, err := psql().Select(mugColumns...).
		From(mugsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	mugs, err := queryAll[models.Mug](ctx, s.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mugs, nil
}

func (s *Storage) GetMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "storage.Postgres.GetMug"

	sql, args, err := psql().Select(mugColumns...).
		From(mugsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	mug, err := queryOne[models.Mug](ctx, s.db, sql, args)
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	return mug, nil
}

func (s *Storage) CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error) {
	const op = "storage.Postgres.CreateMug"

	sql, args, err := psql().Insert(mugsTable).
		Columns(mugColumns...).
		Values(mugValues(mug)...).
		Suffix(returning(mugColumns)).
		ToSql()
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := queryOne[models.Mug](ctx, s.db, sql, args)
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (s *Storage) UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error) {
	const op = "storage.Postgres.UpdateMug"

	sql, args, err := psql().Update(mugsTable).
		SetMap(patch.Columns()).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(mugColumns)).
		ToSql()
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := queryOne[models.Mug](ctx, s.db, sql, args)
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "storage.Postgres.DeleteMug"

	sql, args, err := psql().Delete(mugsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(mugColumns)).
		ToSql()
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := queryOne[models.Mug](ctx, s.db, sql, args)
	if err != nil {
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

func (s *Storage) InsertMugs(ctx context.Context, mugs []models.Mug) (int, error) {
	const op = "storage.Postgres.InsertMugs"

	if len(mugs) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(mugs))
	for _, m := range mugs {
		rows = append(rows, mugValues(m))
	}

	inserted, err := insertAll(ctx, s.db, mugsTable, mugColumns, rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return inserted, nil
}

func (s *Storage) ClearMugs(ctx context.Context) (int, error) {
	const op = "storage.Postgres.ClearMugs"

	sql, args, err := psql().Delete(mugsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return int(tag.RowsAffected()), nil
}
