// Package main wires the HTTP server for the project board service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "project-board-service/internal/transport/http/server/handlers-fiber"
	"project-board-service/internal/usecase"

	"project-board-service/config"
	"project-board-service/internal/exporter"
	"project-board-service/internal/repository"
	"project-board-service/internal/transport/http/middleware"
	"project-board-service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	exp := exporter.New(cfg.Storage.ExportDir)
	uc := usecase.New(log, ctx, repo, exp, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("server stopped", "error", err)
			stop()
		}
	}()
	log.Infow("server started", "addr", cfg.ServerAddr(), "backend", cfg.Storage.Backend)

	<-ctx.Done()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Errorw("server shutdown error", "error", err)
	}
	log.Infow("server stopped")
}
