package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mug-store/internal/domain/models"
	"mug-store/internal/repository"
)

type MugRepository interface {
	ListMugs(ctx context.Context) ([]models.Mug, error)
	GetMug(ctx context.Context, id string) (models.Mug, error)
	CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error)
	UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error)
	DeleteMug(ctx context.Context, id string) (models.Mug, error)
}

type MugService struct {
	log           *slog.Logger
	mugRepository MugRepository
	now           func() time.Time
}

func NewMugService(log *slog.Logger, mugRepository MugRepository) *MugService {
	return &MugService{
		log:           log,
		mugRepository: mugRepository,
		now:           time.Now,
	}
}

func (s *MugService) ListMugs(ctx context.Context) ([]models.Mug, error) {
	const op = "services.MugService.ListMugs"

	mugs, err := s.mugRepository.ListMugs(ctx)
	if err != nil {
		s.log.Error("failed to list mugs", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if mugs == nil {
		mugs = []models.Mug{}
	}

	return mugs, nil
}

func (s *MugService) GetMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "services.MugService.GetMug"

	log := s.log.With(
		slog.String("op", op),
		slog.String("mug_id", id),
	)

	mug, err := s.mugRepository.GetMug(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("failed to get mug", slog.String("error", err.Error()))
		}
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	return mug, nil
}

// CreateMug stamps createdAt and updatedAt with the current unix time.
func (s *MugService) CreateMug(ctx context.Context, mug models.Mug) (models.Mug, error) {
	const op = "services.MugService.CreateMug"

	log := s.log.With(
		slog.String("op", op),
		slog.String("mug_id", mug.ID),
		slog.String("category_id", mug.CategoryID),
	)

	log.Info("creating mug")

	now := s.now().Unix()
	mug.CreatedAt = now
	mug.UpdatedAt = now

	created, err := s.mugRepository.CreateMug(ctx, mug)
	if err != nil {
		log.Error("failed to create mug", slog.String("error", err.Error()))
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("mug created")

	return created, nil
}

// UpdateMug always overwrites updatedAt, whatever the patch carries.
func (s *MugService) UpdateMug(ctx context.Context, id string, patch models.MugPatch) (models.Mug, error) {
	const op = "services.MugService.UpdateMug"

	log := s.log.With(
		slog.String("op", op),
		slog.String("mug_id", id),
	)

	log.Info("updating mug")

	patch.UpdatedAt = s.now().Unix()

	updated, err := s.mugRepository.UpdateMug(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("nothing to update")
		} else {
			log.Error("failed to update mug", slog.String("error", err.Error()))
		}
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("mug updated")

	return updated, nil
}

func (s *MugService) DeleteMug(ctx context.Context, id string) (models.Mug, error) {
	const op = "services.MugService.DeleteMug"

	log := s.log.With(
		slog.String("op", op),
		slog.String("mug_id", id),
	)

	log.Info("deleting mug")

	deleted, err := s.mugRepository.DeleteMug(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("nothing to delete")
		} else {
			log.Error("failed to delete mug", slog.String("error", err.Error()))
		}
		return models.Mug{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("mug deleted")

	return deleted, nil
}
