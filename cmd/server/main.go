package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ToDoList/internal/app"
	"ToDoList/internal/config"
	"ToDoList/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	//сброс буфера логгера
	defer func() { _ = sugar.Sync() }()

	defer func() {
		if rec := recover(); rec != nil {
			sugar.Errorw("Server panicked", "panic", rec)
			code = 1
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DBDriver", cfg.DBDriver,
		"StorageMode", cfg.StorageMode,
		"MaxConns", cfg.MaxConns,
	)

	a, err := app.New(ctx, cfg, sugar)
	if err != nil {
		sugar.Errorw("failed to initialize application", "error", err)
		return 1
	}

	if err := a.Run(ctx); err != nil {
		sugar.Errorw("Server stopped with error", "error", err)
		return 1
	}
	return 0
}
