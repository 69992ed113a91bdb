package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
)

const maxAccountNumberDigits = 18

// DefaultSQLiteDSN is used when DB_DRIVER is sqlite3 and DATABASE_DSN is unset.
const DefaultSQLiteDSN = "file:banking_system.db?_foreign_keys=on"

type Config struct {
	DBDriver              string `env:"DB_DRIVER,default=sqlite3"`
	DatabaseDSN           string `env:"DATABASE_DSN"`
	MigrationsDir         string `env:"MIGRATIONS_DIR"`
	AccountNumberDigits   int    `env:"ACCOUNT_NUMBER_DIGITS,default=10"`
	AccountNumberAttempts int    `env:"ACCOUNT_NUMBER_ATTEMPTS,default=5"`
	PasswordHashCost      int    `env:"PASSWORD_HASH_COST,default=10"`
	HTTPAddr              string `env:"HTTP_ADDR,default=:8080"`
	ChannelID             string `env:"CHANNEL_ID,default=BankingApp"`
	ChannelKey            string `env:"CHANNEL_KEY,default=BankingKey001"`
	LogFile               string `env:"LOG_FILE"`
}

func Load(ctx context.Context) (Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, lookuper); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.DatabaseDSN = strings.TrimSpace(cfg.DatabaseDSN)
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			cfg.DatabaseDSN = DefaultSQLiteDSN
		}
	case DriverPostgres, DriverPGX:
		cfg.DatabaseDSN = normalizeConnectionString(cfg.DatabaseDSN)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres, DriverPGX:
	default:
		return fmt.Errorf("DB_DRIVER must be one of %s, %s, %s", DriverSQLite, DriverPostgres, DriverPGX)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required for DB_DRIVER=%s", c.DBDriver)
	}
	if c.AccountNumberDigits < 1 || c.AccountNumberDigits > maxAccountNumberDigits {
		return fmt.Errorf("ACCOUNT_NUMBER_DIGITS must be between 1 and %d", maxAccountNumberDigits)
	}
	if c.AccountNumberAttempts < 1 {
		return fmt.Errorf("ACCOUNT_NUMBER_ATTEMPTS must be at least 1")
	}
	if c.PasswordHashCost < 4 || c.PasswordHashCost > 31 {
		return fmt.Errorf("PASSWORD_HASH_COST must be between 4 and 31")
	}
	return nil
}

// normalizeConnectionString turns an ADO-style "Host=..;Port=..;" string into
// a libpq keyword/value DSN. URLs and keyword/value DSNs pass through.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host", "server":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username", "user id":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
