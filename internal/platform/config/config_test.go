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

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, 240*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, insecureAccessSecret, cfg.AccessTokenSecret)
	assert.Equal(t, insecureRefreshSecret, cfg.RefreshTokenSecret)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.True(t, cfg.CookieSecure)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ACCESS_TOKEN_EXPIRY", "not-a-duration")
	v.Set("REFRESH_TOKEN_EXPIRY", "48h")
	v.Set("CORS_ORIGIN", "https://a.example, https://b.example ,")
	v.Set("S3_ENDPOINT", "http://localhost:9000/")
	v.Set("S3_BUCKET", "media")
	v.Set("ACCESS_TOKEN_SECRET", "access")

	cfg := fromViper(v)

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry, "invalid durations fall back")
	assert.Equal(t, 48*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:9000/media", cfg.S3.PublicBaseURL)
	assert.Equal(t, "access", cfg.AccessTokenSecret)
}
