package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/hugohenrick/erp-servicos/internal/domain/transaction"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/database"
	"github.com/shopspring/decimal"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config reúne as configurações da aplicação
type Config struct {
	App      AppConfig
	Database *database.PostgresConfig
	VAT      transaction.VATSettings
	Log      LogConfig
}

// AppConfig contém as configurações do servidor HTTP
type AppConfig struct {
	Port               string
	BasePath           string
	Environment        string
	CorsAllowedOrigins []string
	StorageDriver      string // postgres ou memory
	AutoMigrate        bool
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level    string
	FilePath string
}

// IsDevelopment indica se a aplicação roda em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// Load lê as configurações das variáveis de ambiente
func Load() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			BasePath:           getEnv("APP_BASE_PATH", "/api/v1"),
			Environment:        getEnv("APP_ENV", "development"),
			CorsAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
			StorageDriver:      getEnv("STORAGE_DRIVER", StoragePostgres),
			AutoMigrate:        getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Database: database.NewPostgresConfigFromEnv(),
		VAT: transaction.VATSettings{
			Enabled: getEnvAsBool("VAT_ENABLED", false),
			Rate:    getEnvAsDecimal("VAT_RATE", decimal.RequireFromString("0.07")),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE_PATH", ""),
		},
	}
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value, err := decimal.NewFromString(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
