package app

import (
	"context"
	"errors"
	"log/slog"

	httpserver "mug-store/internal/app/http-server"
	"mug-store/internal/config"
	"mug-store/internal/handlers"
	"mug-store/internal/middlewares"
	"mug-store/internal/routes"
	"mug-store/internal/services"
	"mug-store/internal/storage"

	"go.uber.org/zap"
)

type App struct {
	HTTPServer *httpserver.Server
	Store      storage.Store
}

// New opens the store and wires the HTTP stack on top of it. It panics when the store cannot be opened.
func New(log *slog.Logger, zapLog *zap.Logger, cfg *config.Config) *App {
	store, err := storage.Open(context.Background(), cfg.Store)
	if err != nil {
		panic(err)
	}

	categoryService := services.NewCategoryService(log, store)
	mugService := services.NewMugService(log, store)

	validator := middlewares.NewValidator()

	categoryHandler := handlers.NewCategoryHandler(log, categoryService, validator)
	mugHandler := handlers.NewMugHandler(log, mugService, validator)

	r := routes.InitRoutes(zapLog, cfg.Server.CORSOrigins, categoryHandler, mugHandler)

	server := httpserver.NewServer(log, cfg.Server.Address, cfg.Server.Timeout, r)

	return &App{
		HTTPServer: server,
		Store:      store,
	}
}

// Stop shuts the server down first so in-flight requests can still reach the store.
func (a *App) Stop(ctx context.Context) error {
	return errors.Join(a.HTTPServer.Stop(ctx), a.Store.Close())
}
