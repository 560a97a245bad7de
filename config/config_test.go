package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		assert  func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"GO_ENV": "production"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, DataSourceAirtable, cfg.DataSource)
				assert.Equal(t, "America/Chicago", cfg.Timezone)
				assert.Equal(t, 3, cfg.VisiblePastEvents)
				assert.Equal(t, time.Duration(0), cfg.FetchTimeout)
				assert.Equal(t, time.Hour, cfg.Auth.JWTExpiry)
				assert.Equal(t, "https://api.airtable.com", cfg.Airtable.BaseURL)
				assert.Equal(t, "Events", cfg.Airtable.EventsTable)
				assert.Equal(t, "Presenters", cfg.Airtable.PresentersTable)
				assert.Equal(t, "noop", cfg.Email.Provider)
				assert.Empty(t, cfg.CORSAllowedOrigins)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"GO_ENV":               "production",
				"PORT":                 "9000",
				"DATA_SOURCE":          "Postgres",
				"TIMEZONE":             "UTC",
				"VISIBLE_PAST_EVENTS":  "5",
				"FETCH_TIMEOUT":        "10s",
				"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
				"ANNOUNCE_RECIPIENTS":  "list@example.com",
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9000", cfg.Port)
				assert.Equal(t, DataSourcePostgres, cfg.DataSource)
				assert.Equal(t, 5, cfg.VisiblePastEvents)
				assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
				assert.Equal(t, []string{"list@example.com"}, cfg.Email.Recipients)
				assert.Equal(t, time.UTC, cfg.Location())
			},
		},
		{
			name:    "unknown data source",
			env:     map[string]string{"GO_ENV": "production", "DATA_SOURCE": "sheets"},
			wantErr: true,
		},
		{
			name:    "invalid timezone",
			env:     map[string]string{"GO_ENV": "production", "TIMEZONE": "Nowhere/City"},
			wantErr: true,
		},
		{
			name:    "invalid visible past",
			env:     map[string]string{"GO_ENV": "production", "VISIBLE_PAST_EVENTS": "three"},
			wantErr: true,
		},
		{
			name:    "negative visible past",
			env:     map[string]string{"GO_ENV": "production", "VISIBLE_PAST_EVENTS": "-1"},
			wantErr: true,
		},
		{
			name:    "invalid fetch timeout",
			env:     map[string]string{"GO_ENV": "production", "FETCH_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

// clearEnv blanks every key Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GO_ENV", "PORT", "DATA_SOURCE", "DATABASE_URL", "TIMEZONE", "VISIBLE_PAST_EVENTS",
		"FETCH_TIMEOUT", "CORS_ALLOWED_ORIGINS", "AIRTABLE_API_KEY", "AIRTABLE_BASE_ID",
		"AIRTABLE_BASE_URL", "AIRTABLE_EVENTS_TABLE", "AIRTABLE_PRESENTERS_TABLE",
		"JWT_SECRET", "JWT_EXPIRY", "ADMIN_PASSWORD_HASH", "ADMIN_PASSWORD_SALT",
		"EMAIL_PROVIDER", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME", "AWS_REGION",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "SES_INSECURE_SKIP_VERIFY",
		"ANNOUNCE_RECIPIENTS",
	} {
		t.Setenv(k, "")
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,b,"))
}
