// Package seed fills the store with sample categories and mugs.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"mug-store/internal/domain/models"

	"github.com/google/uuid"
)

type Repository interface {
	ClearMugs(ctx context.Context) (int, error)
	ClearCategories(ctx context.Context) (int, error)
	InsertCategories(ctx context.Context, categories []models.Category) (int, error)
	InsertMugs(ctx context.Context, mugs []models.Mug) (int, error)
}

var (
	CategoryNames = []string{"Cool Mugs", "Lame Mugs"}

	adjectives = []string{
		"Lazy", "Bright", "Happy", "Bold", "Smooth",
		"Fierce", "Elegant", "Wild", "Creative", "Mysterious",
	}

	loremWords = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod
		tempor incididunt ut labore et dolore magna aliqua enim ad minim veniam quis nostrud exercitation
		ullamco laboris nisi aliquip ex ea commodo consequat duis aute irure in reprehenderit voluptate velit
		esse cillum fugiat nulla pariatur excepteur sint occaecat cupidatat non proident sunt culpa qui officia
		deserunt mollit anim id est laborum`)
)

const (
	minPrice = 20
	maxPrice = 99
)

type Result struct {
	Categories int
	Mugs       int
}

// Run wipes mugs and categories, then inserts both categories and count mugs
// that all belong to one randomly chosen category.
func Run(ctx context.Context, log *slog.Logger, repo Repository, count int, rnd *rand.Rand) (Result, error) {
	const op = "seed.Run"

	log = log.With(slog.String("op", op))

	if count < 0 {
		return Result{}, fmt.Errorf("%s: negative mug count %d", op, count)
	}

	deletedMugs, err := repo.ClearMugs(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	deletedCategories, err := repo.ClearCategories(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("store cleared", slog.Int("mugs", deletedMugs), slog.Int("categories", deletedCategories))

	categories := make([]models.Category, 0, len(CategoryNames))
	for _, name := range CategoryNames {
		categories = append(categories, models.Category{ID: uuid.NewString(), Name: name})
	}

	var result Result
	if result.Categories, err = repo.InsertCategories(ctx, categories); err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}

	category := categories[rnd.IntN(len(categories))]
	now := time.Now().Unix()

	mugs := make([]models.Mug, 0, count)
	for n := 1; n <= count; n++ {
		mugs = append(mugs, models.Mug{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("%s Mug #%d", adjectives[rnd.IntN(len(adjectives))], n),
			Description: sentence(rnd),
			Price:       minPrice + rnd.IntN(maxPrice-minPrice+1),
			CategoryID:  category.ID,
			Image:       fmt.Sprintf("https://via.placeholder.com/150?text=Mug+%d", n),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if count > 0 {
		if result.Mugs, err = repo.InsertMugs(ctx, mugs); err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("store seeded",
		slog.Int("categories", result.Categories),
		slog.Int("mugs", result.Mugs),
		slog.String("category", category.Name),
	)

	return result, nil
}

// sentence returns 6 to 12 lorem words, capitalized and ending with a period.
func sentence(rnd *rand.Rand) string {
	words := make([]string, 6+rnd.IntN(7))
	for i := range words {
		words[i] = loremWords[rnd.IntN(len(loremWords))]
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]

	return strings.Join(words, " ") + "."
}
