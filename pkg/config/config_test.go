package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 7, cfg.Alerts.DaysBefore)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration)
	assert.Equal(t, "*", cfg.HTTP.CORSOrigins)
	assert.Equal(t, "onboarding@resend.dev", cfg.Email.Sender)
	assert.Equal(t, UploadDriverLocal, cfg.Uploads.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("ALERT_DAYS_BEFORE", "15")
	v.Set("STORE_DRIVER", "MEMORY")
	v.Set("HTTP_PORT", 9090)
	v.Set("MINIO_USE_SSL", true)
	v.Set("DB_FORCE_IPV4", false)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Alerts.DaysBefore)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Uploads.MinIOUseSSL)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "armazem", Password: "p@ss:word", DBName: "armazem", SSLMode: "disable"}
	assert.Equal(t, "postgres://armazem:p%40ss%3Aword@db:5432/armazem?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
