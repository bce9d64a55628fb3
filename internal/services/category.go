package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mug-store/internal/domain/models"
	"mug-store/internal/repository"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) (models.Category, error)
}

type CategoryService struct {
	log                *slog.Logger
	categoryRepository CategoryRepository
}

func NewCategoryService(log *slog.Logger, categoryRepository CategoryRepository) *CategoryService {
	return &CategoryService{
		log:                log,
		categoryRepository: categoryRepository,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "services.CategoryService.ListCategories"

	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "services.CategoryService.GetCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id),
	)

	category, err := s.categoryRepository.GetCategory(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("failed to get category", slog.String("error", err.Error()))
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	const op = "services.CategoryService.CreateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", category.ID),
	)

	log.Info("creating category")

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Error("failed to create category", slog.String("error", err.Error()))
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category created")

	return created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	const op = "services.CategoryService.UpdateCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id),
	)

	log.Info("updating category")

	updated, err := s.categoryRepository.UpdateCategory(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("nothing to update")
		} else {
			log.Error("failed to update category", slog.String("error", err.Error()))
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category updated")

	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (models.Category, error) {
	const op = "services.CategoryService.DeleteCategory"

	log := s.log.With(
		slog.String("op", op),
		slog.String("category_id", id),
	)

	log.Info("deleting category")

	deleted, err := s.categoryRepository.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("nothing to delete")
		} else {
			log.Error("failed to delete category", slog.String("error", err.Error()))
		}
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("category deleted")

	return deleted, nil
}
