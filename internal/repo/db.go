package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ToDoList/internal/config"
	"ToDoList/internal/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает пул соединений и оборачивает его в gorm.
// Один и тот же *sql.DB (gormDB.DB()) используется и ORM-репозиториями,
// и raw SQL исполнителем.
func InitDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	maxConns := cfg.MaxConns
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: SQLiteDSN(cfg.DBPath)}
		// SQLite допускает одного писателя: параллельные соединения ловят SQLITE_BUSY
		maxConns = 1
	default:
		sqlDB, err := sql.Open("pgx", cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		dial = postgres.New(postgres.Config{Conn: sqlDB})
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ConfigurePool(sqlDB, maxConns, cfg.IdleTimeout)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return db, nil
}

// SQLiteDSN добавляет к пути базы busy_timeout и WAL.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// ConfigurePool передаёт параметры пула в database/sql как есть.
// idleTimeout = 0 означает, что неиспользуемые соединения не закрываются.
func ConfigurePool(sqlDB *sql.DB, maxConns int, idleTimeout time.Duration) {
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxIdleTime(idleTimeout)
}

// Migrate создаёт таблицы для всех зарегистрированных моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Entities()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// CloseDB закрывает пул соединений.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
