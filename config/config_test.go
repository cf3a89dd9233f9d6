package config

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GO_ENV=production skips .env loading so the test only sees t.Setenv values.
func setProductionEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "secret")
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "STORAGE", "EVENTS_CSV", "DATABASE_URL", "ADMIN_PASSWORD",
		"MODERATOR_SESSION_TTL", "CONTEXT_TIMEOUT", "CORS_ALLOWED_ORIGINS", "DEFAULT_LOCALE",
		"EMAIL_PROVIDER", "AWS_SES_INSECURE_SKIP_VERIFY",
	} {
		t.Setenv(key, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad_defaults(t *testing.T) {
	setProductionEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "csv", cfg.Storage)
	assert.Equal(t, "eventos.csv", cfg.EventsCSV)
	assert.Equal(t, 8*time.Hour, cfg.ModeratorSessionTTL)
	assert.Equal(t, 5*time.Second, cfg.ContextTimeout)
	assert.Equal(t, "es", cfg.DefaultLocale)
	assert.Equal(t, "noop", cfg.EmailProvider)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_overrides(t *testing.T) {
	setProductionEnv(t, map[string]string{
		"PORT":                         "9090",
		"STORAGE":                      "Postgres",
		"DATABASE_URL":                 "postgres://localhost/ferias",
		"MODERATOR_SESSION_TTL":        "30m",
		"CORS_ALLOWED_ORIGINS":         "https://a.example, https://b.example ,",
		"AWS_SES_INSECURE_SKIP_VERIFY": "true",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.Storage)
	assert.Equal(t, 30*time.Minute, cfg.ModeratorSessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AWSSESInsecureSkipVerify)
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "unknown storage", vars: map[string]string{"STORAGE": "mongo"}},
		{name: "postgres without url", vars: map[string]string{"STORAGE": "postgres"}},
		{name: "bad duration", vars: map[string]string{"CONTEXT_TIMEOUT": "soon"}},
		{name: "negative duration", vars: map[string]string{"MODERATOR_SESSION_TTL": "-1h"}},
		{name: "bad bool", vars: map[string]string{"AWS_SES_INSECURE_SKIP_VERIFY": "maybe"}},
		{name: "missing jwt secret in production", vars: map[string]string{"JWT_SECRET": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setProductionEnv(t, tt.vars)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "v", record["k"])

	buf.Reset()
	newLogger(&buf, "development", "").Debug("debug hidden at info")
	assert.Empty(t, buf.String())
}
