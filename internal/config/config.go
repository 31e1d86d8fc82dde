package config

import (
	"flag"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageORM = "orm"
	StorageSQL = "sql"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	DBDriver    string `env:"DB_DRIVER"`
	DBHost      string `env:"DB_HOST"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBPath      string `env:"DB_PATH"`
	StorageMode string `env:"STORAGE_MODE"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE"`

	// Pool settings, передаются в database/sql без изменений
	MaxConns    int           `env:"DB_MAX_CONNS" envDefault:"10"`
	ConnTimeout time.Duration `env:"DB_CONN_TIMEOUT" envDefault:"0s"`
	IdleTimeout time.Duration `env:"DB_IDLE_TIMEOUT" envDefault:"10s"`

	// Logging
	AppEnv   string `env:"APP_ENV"`
	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "драйвер БД: postgres или sqlite")
	flag.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "путь к файлу SQLite (для db-driver=sqlite)")
	flag.StringVar(&cfg.StorageMode, "storage", cfg.StorageMode, "слой доступа к данным: orm или sql")
	flag.BoolVar(&cfg.AutoMigrate, "migrate", cfg.AutoMigrate, "создать таблицы при старте")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the ToDoList server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.BoolVar(&cfg.Version, "version", false, "print version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.DBDriver != DriverSQLite {
		cfg.DBDriver = DriverPostgres
	}
	if cfg.StorageMode != StorageSQL {
		cfg.StorageMode = StorageORM
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == 0 {
		cfg.DBPort = 5432
	}
	if cfg.DBName == "" {
		cfg.DBName = "todo"
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "todo.db"
	}
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = 10
	}
	if cfg.ConnTimeout < 0 {
		cfg.ConnTimeout = 0
	}
	if cfg.IdleTimeout < 0 {
		cfg.IdleTimeout = 0
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:4000"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
}

// PostgresDSN возвращает строку подключения. Если DATABASE_URI не задан,
// она собирается из отдельных параметров; SSL обязателен всегда.
func (cfg *Config) PostgresDSN() string {
	if cfg.DatabaseDSN != "" {
		return requireSSL(cfg.DatabaseDSN)
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort)),
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=require",
	}
	if cfg.DBPassword != "" {
		u.User = url.UserPassword(cfg.DBUser, cfg.DBPassword)
	} else {
		u.User = url.User(cfg.DBUser)
	}
	return u.String()
}

// requireSSL поднимает sslmode до require в явно заданной строке подключения.
// verify-ca и verify-full строже и остаются как есть.
func requireSSL(dsn string) string {
	if strings.Contains(dsn, "://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		if !strictSSLMode(q.Get("sslmode")) {
			q.Set("sslmode", "require")
			u.RawQuery = q.Encode()
		}
		return u.String()
	}

	// формат ключ=значение
	parts := strings.Fields(dsn)
	for i, p := range parts {
		if v, ok := strings.CutPrefix(p, "sslmode="); ok {
			if !strictSSLMode(v) {
				parts[i] = "sslmode=require"
			}
			return strings.Join(parts, " ")
		}
	}
	return strings.Join(append(parts, "sslmode=require"), " ")
}

func strictSSLMode(mode string) bool {
	switch mode {
	case "require", "verify-ca", "verify-full":
		return true
	}
	return false
}

// IsProduction сообщает, что процесс запущен в production-окружении.
func (cfg *Config) IsProduction() bool {
	return cfg.AppEnv == "production"
}
