// Package config provides centralized configuration management for the quote service
// with validation, type safety, and clear documentation for SRE/DevOps teams.
//
// Configuration Sources (12-factor app principles):
//  1. Default values (hardcoded)
//  2. .env file (local development via godotenv)
//  3. Environment variables (Kubernetes runtime)
//  4. Helm values → deployment.yaml → env/extraEnv → container environment
//
// Usage:
//
//	import "github.com/duynhne/quote-service/config"
//
//	func main() {
//	    cfg := config.Load()
//	    if err := cfg.Validate(); err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use cfg.Service.Port, cfg.Email.APIKey, etc.
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServiceName = "quote-service"

	// DefaultSender is used when SMTP_FROM is not set.
	DefaultSender = "quotes@sunday.studio"

	ProviderResend  = "resend"
	ProviderMailgun = "mailgun"
)

// Config holds all configuration for the quote service
type Config struct {
	Service         ServiceConfig   // Service-specific settings (port, name, version)
	Tracing         TracingConfig   // OpenTelemetry/Tempo configuration
	Profiling       ProfilingConfig // Pyroscope continuous profiling
	Logging         LoggingConfig   // Structured logging (Zap)
	Metrics         MetricsConfig   // Prometheus metrics
	CORS            CORSConfig      // Browser origins allowed to post the quote form
	Email           EmailConfig     // Email provider used to relay quote requests
	ShutdownTimeout int             // Graceful shutdown timeout in seconds - from SHUTDOWN_TIMEOUT env (default: 10)
	// ReadinessDrainDelay: delay after failing readiness before shutting down the HTTP server.
	// This gives Kubernetes/Service routing time to stop sending new traffic.
	// From READINESS_DRAIN_DELAY env (default: 5s, max: 30s).
	ReadinessDrainDelay int
}

// ServiceConfig defines basic service configuration
type ServiceConfig struct {
	Name    string // Service name (e.g., "quote-service") - from SERVICE_NAME env
	Port    string // HTTP server port (default: "8080") - from PORT env
	Version string // Service version (optional) - from VERSION env
	Env     string // Environment (dev/staging/production) - from ENV env
}

// TracingConfig defines OpenTelemetry tracing configuration
// Traces are sent to OpenTelemetry Collector for distributed tracing analysis
type TracingConfig struct {
	Enabled            bool    // Enable tracing (default: true) - from TRACING_ENABLED env
	Endpoint           string  // OTel Collector endpoint - from OTEL_COLLECTOR_ENDPOINT env
	SampleRate         float64 // Trace sampling rate (0.0-1.0) - from OTEL_SAMPLE_RATE env
	ServiceName        string  // Service name for traces (defaults to ServiceConfig.Name)
	MaxExportBatchSize int     // Max spans per batch (default: 512)
}

// ProfilingConfig defines Pyroscope continuous profiling configuration
type ProfilingConfig struct {
	Enabled     bool   // Enable profiling (default: true) - from PROFILING_ENABLED env
	Endpoint    string // Pyroscope endpoint - from PYROSCOPE_ENDPOINT env
	ServiceName string // Service name for profiling (defaults to ServiceConfig.Name)
}

// LoggingConfig defines structured logging configuration
type LoggingConfig struct {
	Level  string // Log level: debug, info, warn, error (default: "info") - from LOG_LEVEL env
	Format string // Log format: json, console (default: "json") - from LOG_FORMAT env
	File   string // Optional rotated log file path - from LOG_FILE env
}

// MetricsConfig defines Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   // Enable metrics (default: true) - from METRICS_ENABLED env
	Path    string // Metrics endpoint path (default: "/metrics") - from METRICS_PATH env
}

// CORSConfig defines which browser origins may call the API
type CORSConfig struct {
	AllowedOrigins []string // Comma separated origins - from ALLOWED_ORIGINS env
}

// EmailConfig defines the transactional email provider used for quote notifications.
// APIKey and To are checked per request, not at startup: a missing secret turns every
// submission into a "service not configured" response instead of a crash loop.
type EmailConfig struct {
	Provider       string        // "resend" or "mailgun" (default: "resend") - from EMAIL_PROVIDER env
	APIKey         string        // Provider API key - from RESEND_API_KEY (or MAILGUN_API_KEY) env
	To             string        // Destination for quote notifications - from QUOTE_TO env
	From           string        // Sender address (default: "quotes@sunday.studio") - from SMTP_FROM env
	BaseURL        string        // Resend API base URL (default: "https://api.resend.com") - from RESEND_API_URL env
	MailgunDomain  string        // Mailgun sending domain - from MAILGUN_DOMAIN env
	MailgunAPIBase string        // Mailgun API base (optional, e.g. EU region) - from MAILGUN_API_BASE env
	Timeout        time.Duration // Outbound call timeout, 0 disables (default: 15s) - from EMAIL_TIMEOUT env
}

// IsConfigured reports whether both delivery secrets are present.
func (e EmailConfig) IsConfigured() bool {
	return e.APIKey != "" && e.To != ""
}

// Load reads configuration from environment variables with defaults
// It automatically loads .env file if present (for local development)
//
// Priority: .env file < environment variables
// This means ENV vars override .env file values (production takes precedence)
func Load() *Config {
	// Load .env file if exists (for local development)
	// godotenv.Load() fails silently if .env doesn't exist - perfect for production
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", defaultServiceName),
			Port:    getEnv("PORT", "8080"),
			Version: getEnv("VERSION", "dev"),
			Env:     getEnv("ENV", "development"),
		},
		Tracing: TracingConfig{
			Enabled:            getEnvBool("TRACING_ENABLED", true),
			Endpoint:           getEnv("OTEL_COLLECTOR_ENDPOINT", "otel-collector-opentelemetry-collector.monitoring.svc.cluster.local:4318"),
			SampleRate:         getEnvFloat("OTEL_SAMPLE_RATE", 0.1), // 10% default (production)
			ServiceName:        getEnv("SERVICE_NAME", defaultServiceName),
			MaxExportBatchSize: getEnvInt("OTEL_BATCH_SIZE", 512),
		},
		Profiling: ProfilingConfig{
			Enabled:     getEnvBool("PROFILING_ENABLED", true),
			Endpoint:    getEnv("PYROSCOPE_ENDPOINT", "http://pyroscope.monitoring.svc.cluster.local:4040"),
			ServiceName: getEnv("SERVICE_NAME", defaultServiceName),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(getEnv("EMAIL_PROVIDER", ProviderResend)),
			APIKey:         getEnv("RESEND_API_KEY", os.Getenv("MAILGUN_API_KEY")),
			To:             getEnv("QUOTE_TO", ""),
			From:           getEnv("SMTP_FROM", DefaultSender),
			BaseURL:        strings.TrimRight(getEnv("RESEND_API_URL", "https://api.resend.com"), "/"),
			MailgunDomain:  getEnv("MAILGUN_DOMAIN", ""),
			MailgunAPIBase: getEnv("MAILGUN_API_BASE", ""),
			Timeout:        getEnvDuration("EMAIL_TIMEOUT", 15*time.Second),
		},
		ShutdownTimeout:     getEnvDurationSeconds("SHUTDOWN_TIMEOUT", 10),
		ReadinessDrainDelay: getEnvDurationSecondsWithMax("READINESS_DRAIN_DELAY", 5, 30),
	}
}

// Validate performs comprehensive validation of all configuration fields
// Returns detailed error messages for SRE/DevOps troubleshooting
func (c *Config) Validate() error {
	var errors []string

	// Service validation
	if c.Service.Name == "" || c.Service.Name == "unknown" {
		errors = append(errors, "SERVICE_NAME is required (e.g., 'quote-service')")
	}
	if c.Service.Port == "" {
		errors = append(errors, "PORT is required (e.g., '8080')")
	}
	// Validate port is a valid number
	if _, err := strconv.Atoi(c.Service.Port); err != nil {
		errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Service.Port))
	}
	// Validate environment
	validEnvs := []string{"development", "dev", "staging", "stage", "production", "prod"}
	if !contains(validEnvs, c.Service.Env) {
		errors = append(errors, fmt.Sprintf("ENV must be one of %v, got: %s", validEnvs, c.Service.Env))
	}

	// Tracing validation
	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errors = append(errors, "OTEL_COLLECTOR_ENDPOINT is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1.0 {
			errors = append(errors, fmt.Sprintf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got: %.2f", c.Tracing.SampleRate))
		}
		if c.Tracing.ServiceName == "" || c.Tracing.ServiceName == "unknown" {
			errors = append(errors, "SERVICE_NAME is required for tracing (used in Tempo queries)")
		}
	}

	// Profiling validation
	if c.Profiling.Enabled {
		if c.Profiling.Endpoint == "" {
			errors = append(errors, "PYROSCOPE_ENDPOINT is required when profiling is enabled")
		}
		if c.Profiling.ServiceName == "" || c.Profiling.ServiceName == "unknown" {
			errors = append(errors, "SERVICE_NAME is required for profiling (used in Pyroscope UI)")
		}
	}

	// Logging validation
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of %v, got: %s", validLogLevels, c.Logging.Level))
	}
	validLogFormats := []string{"json", "console"}
	if !contains(validLogFormats, strings.ToLower(c.Logging.Format)) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of %v, got: %s", validLogFormats, c.Logging.Format))
	}

	// Email validation (secrets are checked per request, see EmailConfig)
	validProviders := []string{ProviderResend, ProviderMailgun}
	if !contains(validProviders, c.Email.Provider) {
		errors = append(errors, fmt.Sprintf("EMAIL_PROVIDER must be one of %v, got: %s", validProviders, c.Email.Provider))
	}
	if c.Email.Provider == ProviderMailgun && c.Email.MailgunDomain == "" {
		errors = append(errors, "MAILGUN_DOMAIN is required when EMAIL_PROVIDER=mailgun")
	}
	if c.Email.Provider == ProviderResend && !strings.HasPrefix(c.Email.BaseURL, "http") {
		errors = append(errors, fmt.Sprintf("RESEND_API_URL must be an http(s) URL, got: %s", c.Email.BaseURL))
	}
	if c.Email.Timeout < 0 {
		errors = append(errors, fmt.Sprintf("EMAIL_TIMEOUT must not be negative, got: %s", c.Email.Timeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Service.Env)
	return env == "production" || env == "prod"
}

// Helper functions for environment variable parsing

// getEnv reads an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool reads a boolean environment variable with a default fallback
// Accepts: "true", "1", "yes" for true | "false", "0", "no" for false
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "yes"
}

// getEnvList reads a comma separated environment variable, dropping empty entries
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvDuration reads a Go duration (e.g., "15s") with a default fallback
// "0" is accepted and means no limit
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvInt reads an integer environment variable with a default fallback
// Returns default if parsing fails
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat reads a float64 environment variable with a default fallback
// Returns default if parsing fails
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvDurationSeconds reads a duration env var as whole seconds, capped at 60
func getEnvDurationSeconds(key string, defaultValueSeconds int) int {
	return getEnvDurationSecondsWithMax(key, defaultValueSeconds, 60)
}

// GetShutdownTimeoutDuration returns shutdown timeout as time.Duration
// Convenience method for use in main.go
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// getEnvDurationSecondsWithMax reads a duration env var and returns seconds as int.
// Accepts Go duration format (e.g., "5s", "30s", "1m").
// Returns default on invalid values (silent fallback for startup safety).
func getEnvDurationSecondsWithMax(key string, defaultValueSeconds int, maxSeconds int) int {
	timeoutStr := os.Getenv(key)
	if timeoutStr == "" {
		return defaultValueSeconds
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return defaultValueSeconds
	}

	seconds := int(timeout.Seconds())
	if seconds <= 0 || seconds > maxSeconds {
		return defaultValueSeconds
	}

	return seconds
}

// GetReadinessDrainDelayDuration returns readiness drain delay as time.Duration.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return time.Duration(c.ReadinessDrainDelay) * time.Second
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
