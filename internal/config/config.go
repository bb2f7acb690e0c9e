package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Tutor    TutorConfig
	Logger   LoggerConfig
	Study    StudyConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

type TutorConfig struct {
	Enabled bool
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type StudyConfig struct {
	DailyGoalMinutes int
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "tutor")
	v.SetDefault("DATABASE_PASSWORD", "tutor")
	v.SetDefault("DATABASE_NAME", "tutor")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("AUTH_SECRET", "")
	v.SetDefault("AUTH_TOKEN_TTL", "24h")
	v.SetDefault("AUTH_ISSUER", "ai-tutor-service")
	v.SetDefault("TUTOR_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("TUTOR_API_KEY", "")
	v.SetDefault("TUTOR_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("TUTOR_TIMEOUT", "30s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("STUDY_DAILY_GOAL_MINUTES", 30)

	// Env
	v.AutomaticEnv()

	if v.GetString("AUTH_SECRET") == "" {
		return nil, fmt.Errorf("AUTH_SECRET is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Auth: AuthConfig{
			Secret:   v.GetString("AUTH_SECRET"),
			TokenTTL: parseDuration(v.GetString("AUTH_TOKEN_TTL"), 24*time.Hour),
			Issuer:   v.GetString("AUTH_ISSUER"),
		},
		Tutor: TutorConfig{
			Enabled: v.GetString("TUTOR_API_KEY") != "",
			URL:     v.GetString("TUTOR_URL"),
			APIKey:  v.GetString("TUTOR_API_KEY"),
			Model:   v.GetString("TUTOR_MODEL"),
			Timeout: parseDuration(v.GetString("TUTOR_TIMEOUT"), 30*time.Second),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Study: StudyConfig{
			DailyGoalMinutes: v.GetInt("STUDY_DAILY_GOAL_MINUTES"),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
