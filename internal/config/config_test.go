package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "90m", want: 90 * time.Minute},
		{in: "168h", want: 168 * time.Hour},
		{in: "xd", wantErr: true},
		{in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("JWT_EXPIRES_IN", "2d")
	t.Setenv("MAX_RESUME_BYTES", "not-a-number")
	t.Setenv("RESET_DB", "true")

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 48*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, int64(10<<20), cfg.MaxResumeBytes)
	assert.True(t, cfg.ResetDB)
}

func TestValidate_JWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{name: "development default", env: "development", secret: DefaultJWTSecret},
		{name: "production default", env: "production", secret: DefaultJWTSecret, wantErr: true},
		{name: "staging default", env: "staging", secret: DefaultJWTSecret, wantErr: true},
		{name: "production custom", env: "production", secret: "s3cr3t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Env: tt.env, JWTSecret: tt.secret}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_DefaultSecretRejectedInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Error(t, cfg.Validate())
}
