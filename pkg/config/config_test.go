package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Listing.CacheTTL)
	assert.Equal(t, int64(10_000_000_000), cfg.Listing.DefaultMaxValue)
	assert.Equal(t, 500, cfg.Exports.MaxRows)
	assert.Equal(t, "tender.alerts", cfg.Alerts.Exchange)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_DRIVER", "PGX")
	v.Set("ALLOWED_ORIGINS", "https://tendersaarthi.in, ,https://admin.tendersaarthi.in")
	v.Set("LISTING_CACHE_TTL", "not-a-duration")
	v.Set("DEFAULT_MAX_TENDER_VALUE", -1)

	cfg := fromViper(v)

	assert.Equal(t, DriverPgx, cfg.Database.Driver)
	assert.Equal(t, []string{"https://tendersaarthi.in", "https://admin.tendersaarthi.in"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Listing.CacheTTL)
	assert.Equal(t, int64(10_000_000_000), cfg.Listing.DefaultMaxValue)
}

func TestDatabaseURL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "tenders", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/tenders?sslmode=disable", db.URL())
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tenders sslmode=disable", db.DSN())
}
