// Package config provides configuration management for the Diamond Picks analyzer.
package config

import "fmt"

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Sources  SourcesConfig  `mapstructure:"sources" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Tracking TrackingConfig `mapstructure:"tracking" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Health   HealthConfig   `mapstructure:"health" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SourcesConfig represents the external data source endpoints and credentials
type SourcesConfig struct {
	ScheduleURL         string  `mapstructure:"schedule_url" validate:"required,url"`
	OddsURL             string  `mapstructure:"odds_url" validate:"required,url"`
	OddsAPIKey          string  `mapstructure:"odds_api_key"`
	WeatherURL          string  `mapstructure:"weather_url" validate:"required,url"`
	WeatherAPIKey       string  `mapstructure:"weather_api_key"`
	Bookmaker           string  `mapstructure:"bookmaker" validate:"required"`
	FetchTimeoutSeconds int     `mapstructure:"fetch_timeout_seconds" validate:"required,gt=0"`
	MaxRetries          int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit           float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// CacheConfig represents per-source cache TTLs in seconds
type CacheConfig struct {
	GamesTTLSeconds   int `mapstructure:"games_ttl_seconds" validate:"required,gt=0"`
	OddsTTLSeconds    int `mapstructure:"odds_ttl_seconds" validate:"required,gt=0"`
	WeatherTTLSeconds int `mapstructure:"weather_ttl_seconds" validate:"required,gt=0"`
	TrendsTTLSeconds  int `mapstructure:"trends_ttl_seconds" validate:"required,gt=0"`
}

// AnalysisConfig represents analysis run scheduling
type AnalysisConfig struct {
	Schedule   string `mapstructure:"schedule" validate:"required"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

// TrackingConfig represents bet tracker configuration
type TrackingConfig struct {
	Store            string `mapstructure:"store" validate:"required,oneof=memory postgres"`
	FeedbackCapacity int    `mapstructure:"feedback_capacity" validate:"required,gt=0"`
}

// DatabaseConfig represents the optional shared Postgres store
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// FeedConfig represents the optional live odds websocket feed
type FeedConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url" validate:"omitempty,url|startswith=ws"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health server configuration
type HealthConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

// GetDatabaseDSN builds the PostgreSQL connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host,
		c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
