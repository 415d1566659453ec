package config

import (
	"log"
	"os"
	"strings"
	"sync"
)

type AppConfig struct {
	Name         string
	Env          string
	Port         string
	BaseURL      string
	CORSOrigins  string
	RateLimitMax int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		v := Env()
		if _, ok := os.LookupEnv("APP_ENV"); !ok {
			log.Printf("Warning: APP_ENV not set, defaulting to %s", v.GetString("APP_ENV"))
		}
		port := v.GetString("APP_PORT")
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		appConfig = &AppConfig{
			Name:         v.GetString("APP_NAME"),
			Env:          v.GetString("APP_ENV"),
			Port:         port,
			BaseURL:      v.GetString("APP_URL"),
			CORSOrigins:  v.GetString("CORS_ORIGINS"),
			RateLimitMax: v.GetInt("RATE_LIMIT_MAX"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
