package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mug-store/internal/app"
	"mug-store/internal/config"
	"mug-store/internal/lib/logger"
)

// @title       The Mugs Store API
// @version     1.0
// @description CRUD API over mugs and their categories.
// @BasePath    /
func main() {
	cfg := config.MustLoad()

	fmt.Println(`
 _ __ ___  _   _  __ _   ___| |_ ___  _ __ ___
| '_ ' _ \| | | |/ _' | / __| __/ _ \| '__/ _ \
| | | | | | |_| | (_| | \__ \ || (_) | | |  __/
|_| |_| |_|\__,_|\__, | |___/\__\___/|_|  \___|
                 |___/`)

	log, zapLog := logger.New(cfg.Server.Env)
	defer func() { _ = zapLog.Sync() }()

	log.Info("Starting http", slog.String("env", cfg.Server.Env), slog.String("address", cfg.Server.Address))

	application := app.New(log, zapLog, cfg)

	go application.HTTPServer.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	sign := <-stop

	log.Info("Application stopped", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Stop(ctx); err != nil {
		log.Error("failed to stop application", slog.String("error", err.Error()))
	}
}
