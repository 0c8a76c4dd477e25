package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "folio-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiration)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		App:      AppConfig{Port: "9090"},
		Database: DatabaseConfig{MaxOpenConns: 50},
		Admin:    AdminConfig{Email: "owner@folio.dev"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "owner@folio.dev", cfg.Admin.Email)
}

func TestValidateDevelopment(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.NoError(t, cfg.validate())
}

func TestValidateProduction(t *testing.T) {
	base := func() *Config {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
			Database: DatabaseConfig{
				Password: "secret",
				SSLMode:  "require",
			},
		}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "tooshort"
		assert.Error(t, cfg.validate())
	})

	t.Run("missing db password", func(t *testing.T) {
		cfg := base()
		cfg.Database.Password = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("sslmode disable", func(t *testing.T) {
		cfg := base()
		cfg.Database.SSLMode = "disable"
		assert.Error(t, cfg.validate())
	})

	t.Run("wildcard cors", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})
}

func TestValidateIdleExceedsOpen(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Database.MaxIdleConns = 100
	assert.Error(t, cfg.validate())
}

func TestValidateSamplingRatio(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Telemetry.SamplingRatio = 1.5
	assert.Error(t, cfg.validate())
}

func TestDSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "folio",
		Password: "p@ss:word/1",
		DBName:   "folio",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss:word/1") // special chars must be escaped
}
