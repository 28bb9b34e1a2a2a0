package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config agrupa toda a configuração da aplicação, carregada do ambiente.
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Preferences PreferencesConfig
}

type AppConfig struct {
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// PreferencesConfig define os valores padrão das preferências do usuário
// quando a tabela de preferências ainda está vazia.
type PreferencesConfig struct {
	PageSize      int
	NDiasProximas int
	SortByDate    bool
}

func Load() (*Config, error) {
	dbPort := envInt("DB_PORT", 5432)

	cfg := &Config{
		App: AppConfig{
			Environment: envStr("APP_ENV", "development"),
			LogLevel:    envStr("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: envStr("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:            envStr("DB_HOST", "localhost"),
			Port:            dbPort,
			User:            envStr("DB_USER", "postgres"),
			Password:        envStr("DB_PASSWORD", "postgres"),
			DBName:          envStr("DB_NAME", "iclub_financeiro"),
			SSLMode:         envStr("DB_SSLMODE", "disable"),
			MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(envInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		},
		Preferences: PreferencesConfig{
			PageSize:      envInt("DEFAULT_PAGE_SIZE", 10),
			NDiasProximas: envInt("DEFAULT_DIAS_PROXIMAS", 7),
			SortByDate:    envBool("DEFAULT_SORT_BY_DATE", true),
		},
	}

	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}
