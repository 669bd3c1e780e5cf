package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Storage drivers understood by the storage module.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	StorageDriver   string
	DatabaseURI     string
	ResetOnStart    bool
	ClientsCSV      string
	OrdersCSV       string
	APITokenHash    string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultDatabaseURI     = "shop.db"
	defaultClientsCSV      = "clients.csv"
	defaultOrdersCSV       = "orders.csv"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg, logLevelStr := defaults(lookup)

	// the hash file wins over API_TOKEN_HASH but not over the flag
	if hashFile, ok := lookup("API_TOKEN_HASH_FILE"); ok && hashFile != "" {
		content, err := os.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("read api token hash file: %w", err)
		}
		cfg.APITokenHash = strings.TrimSpace(string(content))
	}

	fs := pflag.NewFlagSet("ordertrack", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	// subcommands own their flags
	fs.ParseErrorsWhitelist.UnknownFlags = true

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	bindFlags(fs, cfg, &logLevelStr, &shutdownTimeoutStr)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.StorageDriver == "" {
		cfg.StorageDriver = inferDriver(cfg.DatabaseURI)
	}

	switch cfg.StorageDriver {
	case DriverSQLite:
	case DriverPostgres:
		if !isPostgresDSN(cfg.DatabaseURI) {
			return nil, fmt.Errorf("postgres driver requires a postgres DSN, got %q", cfg.DatabaseURI)
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return cfg, nil
}

// RegisterFlags declares the configuration flags on fs so a CLI accepts and
// documents them. Load parses the raw arguments itself; values parsed into
// fs are not read back.
func RegisterFlags(fs *pflag.FlagSet) {
	cfg, logLevelStr := defaults(os.LookupEnv)
	shutdownTimeoutStr := cfg.ShutdownTimeout.String()
	bindFlags(fs, cfg, &logLevelStr, &shutdownTimeoutStr)
}

func defaults(lookup envLookup) (*Config, string) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		StorageDriver:   getString(lookup, "STORAGE_DRIVER", ""),
		DatabaseURI:     getString(lookup, "DATABASE_URI", defaultDatabaseURI),
		ResetOnStart:    getBool(lookup, "RESET_ON_START", true),
		ClientsCSV:      getString(lookup, "CLIENTS_CSV", defaultClientsCSV),
		OrdersCSV:       getString(lookup, "ORDERS_CSV", defaultOrdersCSV),
		APITokenHash:    getString(lookup, "API_TOKEN_HASH", ""),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
	return cfg, getString(lookup, "LOG_LEVEL", defaultLogLevel)
}

func bindFlags(fs *pflag.FlagSet, cfg *Config, logLevel, shutdownTimeout *string) {
	fs.StringVarP(&cfg.RunAddress, "address", "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.StorageDriver, "driver", cfg.StorageDriver, "Storage driver: sqlite or postgres")
	fs.StringVarP(&cfg.DatabaseURI, "database", "d", cfg.DatabaseURI, "SQLite file or PostgreSQL DSN")
	fs.BoolVar(&cfg.ResetOnStart, "reset", cfg.ResetOnStart, "Recreate the store on start (use --reset=false to keep data)")
	fs.StringVar(&cfg.ClientsCSV, "clients-csv", cfg.ClientsCSV, "Clients CSV file")
	fs.StringVar(&cfg.OrdersCSV, "orders-csv", cfg.OrdersCSV, "Orders CSV file")
	fs.StringVar(&cfg.APITokenHash, "api-token-hash", cfg.APITokenHash, "Bcrypt hash of the API token")
	fs.StringVar(logLevel, "log-level", *logLevel, "Log level: debug, info, warn, error")
	fs.StringVar(shutdownTimeout, "shutdown-timeout", *shutdownTimeout, "Graceful shutdown timeout")
}

func inferDriver(dsn string) string {
	if isPostgresDSN(dsn) {
		return DriverPostgres
	}
	return DriverSQLite
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
