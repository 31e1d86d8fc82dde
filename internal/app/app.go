// Package app собирает сервер: пул БД, репозитории, сервисы, роутер.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"ToDoList/internal/config"
	"ToDoList/internal/handlers"
	"ToDoList/internal/repo"
	"ToDoList/internal/repo/rawsql"
	"ToDoList/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	db     *gorm.DB

	// closePool закрывает общий *sql.DB: через gorm или через исполнитель в режиме sql
	closePool func() error
	server    *http.Server
}

// New открывает пул и связывает слои. Режим хранения выбирается по cfg.StorageMode,
// пользователи всегда идут через gorm.
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*App, error) {
	db, err := repo.InitDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	var (
		items     repo.ItemRepository
		closePool = func() error { return repo.CloseDB(db) }
	)
	if cfg.StorageMode == config.StorageSQL {
		sqlDB, err := db.DB()
		if err != nil {
			_ = closePool()
			return nil, err
		}
		bind := rawsql.Question
		if cfg.DBDriver == config.DriverPostgres {
			bind = rawsql.Dollar
		}
		exec := rawsql.NewExecutor(sqlDB, bind, cfg.ConnTimeout, logger)
		items = rawsql.NewItemRepository(exec)
		closePool = exec.Close
	} else {
		items = repo.NewItemRepository(db, logger)
	}
	users := repo.NewUserRepository(db)

	itemService := service.NewItemService(items, users, logger)
	userService := service.NewUserService(users, items)
	h := handlers.NewHandler(itemService, userService, logger, cfg)

	return &App{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		closePool: closePool,
		server:    &http.Server{
			Addr:              cfg.BaseURL,
			Handler:           h.Router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler — корневой роутер, нужен тестам.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run слушает cfg.BaseURL до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		_ = a.closePool()
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve обслуживает ln. Отмена ctx: закрыть пул, затем мягко остановить сервер,
// результат nil. Ошибка listener: закрыть пул и listener, вернуть ошибку.
// Паники обработчиков перехватывает middleware.WithRecover.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infow("Starting server", "addr", ln.Addr().String(), "storage", a.cfg.StorageMode, "driver", a.cfg.DBDriver)
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		a.logger.Infow("Shutdown signal received")
		return a.shutdown()
	case err := <-errCh:
		a.logger.Errorw("Server failed", "error", err)
		if cerr := a.Close(); cerr != nil {
			a.logger.Warnw("closing after failure", "error", cerr)
		}
		return err
	}
}

// Close закрывает пул и listener без ожидания активных запросов.
func (a *App) Close() error {
	err := a.closePool()
	if cerr := a.server.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) shutdown() error {
	if err := a.closePool(); err != nil {
		a.logger.Warnw("closing pool failed", "error", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Infow("Server stopped")
	return nil
}
