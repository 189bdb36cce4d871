package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host settings don't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVICE_NAME", "PORT", "VERSION", "ENV",
		"TRACING_ENABLED", "OTEL_COLLECTOR_ENDPOINT", "OTEL_SAMPLE_RATE", "OTEL_BATCH_SIZE",
		"PROFILING_ENABLED", "PYROSCOPE_ENDPOINT",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
		"METRICS_ENABLED", "METRICS_PATH",
		"ALLOWED_ORIGINS",
		"EMAIL_PROVIDER", "RESEND_API_KEY", "MAILGUN_API_KEY", "QUOTE_TO", "SMTP_FROM",
		"RESEND_API_URL", "MAILGUN_DOMAIN", "MAILGUN_API_BASE", "EMAIL_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "READINESS_DRAIN_DELAY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "quote-service", cfg.Service.Name)
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, ProviderResend, cfg.Email.Provider)
	assert.Equal(t, DefaultSender, cfg.Email.From)
	assert.Equal(t, "https://api.resend.com", cfg.Email.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Email.Timeout)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Email.IsConfigured())
	assert.NoError(t, cfg.Validate(), "missing email secrets must not block startup")
}

func TestLoad_Email(t *testing.T) {
	clearEnv(t)
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("QUOTE_TO", "bookings@sunday.studio")
	t.Setenv("SMTP_FROM", "Sunday Studio <hello@sunday.studio>")
	t.Setenv("RESEND_API_URL", "http://localhost:9999/")
	t.Setenv("EMAIL_TIMEOUT", "0")
	t.Setenv("EMAIL_PROVIDER", "Resend")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Email.IsConfigured())
	assert.Equal(t, "re_123", cfg.Email.APIKey)
	assert.Equal(t, "Sunday Studio <hello@sunday.studio>", cfg.Email.From)
	assert.Equal(t, "http://localhost:9999", cfg.Email.BaseURL)
	assert.Equal(t, ProviderResend, cfg.Email.Provider)
	assert.Zero(t, cfg.Email.Timeout)
}

func TestLoad_MailgunKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_PROVIDER", "mailgun")
	t.Setenv("MAILGUN_API_KEY", "mg-key")
	t.Setenv("MAILGUN_DOMAIN", "mg.sunday.studio")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "mg-key", cfg.Email.APIKey)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"unknown provider", map[string]string{"EMAIL_PROVIDER": "smtp"}, "EMAIL_PROVIDER"},
		{"mailgun without domain", map[string]string{"EMAIL_PROVIDER": "mailgun"}, "MAILGUN_DOMAIN"},
		{"resend url without scheme", map[string]string{"RESEND_API_URL": "api.resend.com"}, "RESEND_API_URL"},
		{"negative timeout", map[string]string{"EMAIL_TIMEOUT": "-1s"}, "EMAIL_TIMEOUT"},
		{"bad port", map[string]string{"PORT": "http"}, "PORT"},
		{"bad env", map[string]string{"ENV": "qa"}, "ENV"},
		{"bad log level", map[string]string{"LOG_LEVEL": "trace"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Load().Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://sunday.studio, ,https://www.sunday.studio ,")

	assert.Equal(t, []string{"https://sunday.studio", "https://www.sunday.studio"}, getEnvList("ALLOWED_ORIGINS"))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("EMAIL_TIMEOUT", "not-a-duration")
	assert.Equal(t, 3*time.Second, getEnvDuration("EMAIL_TIMEOUT", 3*time.Second))

	t.Setenv("EMAIL_TIMEOUT", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("EMAIL_TIMEOUT", 3*time.Second))
}

func TestGetEnvDurationSeconds(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 10},
		{"30s", 30},
		{"1m", 60},
		{"2m", 10},
		{"0s", 10},
		{"soon", 10},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SHUTDOWN_TIMEOUT", tt.value)
			assert.Equal(t, tt.want, getEnvDurationSeconds("SHUTDOWN_TIMEOUT", 10))
		})
	}

	t.Setenv("READINESS_DRAIN_DELAY", "45s")
	assert.Equal(t, 5, getEnvDurationSecondsWithMax("READINESS_DRAIN_DELAY", 5, 30))
}
