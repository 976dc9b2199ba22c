package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration, loaded from environment
// variables (and a .env file if present).
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Storage pool parameters (spec.md §5/§6: "storage connection URL and
	// pool parameters — max connections, idle timeout, statement timeout").
	DBMaxConns         int32
	DBMinConns         int32
	DBMaxConnIdleTime  time.Duration
	DBStatementTimeout time.Duration

	// CORS allowlist for the HTTP transport.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_CONN_IDLE_TIME", "5m")
	viper.SetDefault("DB_STATEMENT_TIMEOUT", "10s")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.DBMinConns = viper.GetInt32("DB_MIN_CONNS")

	idleStr := viper.GetString("DB_MAX_CONN_IDLE_TIME")
	idle, err := time.ParseDuration(idleStr)
	if err != nil {
		idle = 5 * time.Minute
		log.Printf("Warning: invalid DB_MAX_CONN_IDLE_TIME %q, defaulting to %s\n", idleStr, idle)
	}
	cfg.DBMaxConnIdleTime = idle

	stmtStr := viper.GetString("DB_STATEMENT_TIMEOUT")
	stmt, err := time.ParseDuration(stmtStr)
	if err != nil {
		stmt = 10 * time.Second
		log.Printf("Warning: invalid DB_STATEMENT_TIMEOUT %q, defaulting to %s\n", stmtStr, stmt)
	}
	cfg.DBStatementTimeout = stmt

	origins := viper.GetString("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	var allowed []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed = append(allowed, o)
		}
	}
	cfg.AllowedOrigins = allowed

	return cfg, nil
}
