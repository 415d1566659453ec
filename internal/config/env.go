package config

import (
	"sync"

	"github.com/spf13/viper"
)

var (
	env     *viper.Viper
	envOnce sync.Once
)

// Env returns the shared viper instance reading process environment
// variables. Defaults for every key are registered here.
func Env() *viper.Viper {
	envOnce.Do(func() {
		v := viper.New()
		v.AutomaticEnv()

		v.SetDefault("APP_NAME", "Job Board")
		v.SetDefault("APP_ENV", "production")
		v.SetDefault("APP_PORT", ":5000")
		v.SetDefault("APP_URL", "http://localhost:5000")
		v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
		v.SetDefault("RATE_LIMIT_MAX", 100)

		v.SetDefault("DB_HOST", "localhost")
		v.SetDefault("DB_PORT", "5432")
		v.SetDefault("DB_SSLMODE", "disable")
		v.SetDefault("DB_TIMEZONE", "UTC")

		v.SetDefault("SESSION_COOKIE_NAME", "session_id")
		v.SetDefault("SESSION_TTL", "168h")
		v.SetDefault("SESSION_COOKIE_SECURE", false)
		v.SetDefault("SESSION_CLEANUP_SPEC", "@hourly")

		v.SetDefault("UPLOAD_DIR", "./uploads")
		v.SetDefault("UPLOAD_MAX_BYTES", 10*1024*1024)
		env = v
	})
	return env
}
