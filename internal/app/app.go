package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"uidgen/internal/config"
	"uidgen/internal/db"
	"uidgen/internal/repository"
	"uidgen/internal/router"
	"uidgen/internal/service"
	"uidgen/internal/worker"
	"uidgen/pkg/uid"
)

// Application — основная структура приложения: конфигурация, БД, генератор и HTTP-сервер.
type Application struct {
	cfg    *config.Config
	db     *gorm.DB
	gen    *uid.Generator
	server *http.Server
}

// Init инициализирует приложение: загружает конфигурацию, при необходимости подключается к БД,
// получает worker id, создаёт генератор и HTTP-сервер.
func Init() (*Application, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("конфигурация загружена",
		"port", cfg.App.Port,
		"worker_strategy", cfg.Worker.Strategy,
		"uid_bits", fmt.Sprintf("(1, %d, %d, %d)", cfg.UID.TimeBits, cfg.UID.WorkerBits, cfg.UID.SeqBits),
		"uid_epoch", cfg.UID.Epoch,
	)

	return build(context.Background(), cfg, logger)
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	app := &Application{cfg: cfg}

	var (
		store  worker.NodeStore
		pinger service.Pinger
	)
	if cfg.NeedsDB() {
		database, err := db.Init(cfg)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации базы данных: %w", err)
		}
		app.db = database
		slog.Info("база данных готова", "driver", cfg.DB.Driver)

		repo := repository.NewWorkerNodeRepository(database)
		store, pinger = repo, repo
	}

	assigner, err := worker.NewAssigner(cfg.Worker, store)
	if err != nil {
		app.cleanup()
		return nil, err
	}

	gen, err := uid.New(ctx, cfg.UID.Generator(), assigner, uid.WithLogger(logger))
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("ошибка инициализации генератора: %w", err)
	}
	app.gen = gen

	app.server = &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router.New(service.NewUIDService(gen, pinger), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return app, nil
}

// Run запускает HTTP-сервер и ожидает сигнала завершения.
func (app *Application) Run() {
	defer app.cleanup()

	go func() {
		slog.Info("запуск сервера", "addr", app.server.Addr, "worker_id", app.gen.WorkerID())
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("ошибка сервера", "error", err)
			os.Exit(1)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown ожидает SIGINT/SIGTERM и выполняет graceful shutdown.
func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("остановка сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		slog.Error("ошибка при остановке сервера", "error", err)
	}

	slog.Info("сервер остановлен")
}

// cleanup освобождает ресурсы (закрывает соединение с БД).
func (app *Application) cleanup() {
	if app.db != nil {
		sqlDB, err := app.db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("ошибка закрытия соединения с БД", "error", err)
		}
	}
}
