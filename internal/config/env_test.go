package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppEnvDefaultsToProduction(t *testing.T) {
	t.Setenv("APP_ENV", "")

	assert.Equal(t, "production", Env().GetString("APP_ENV"))
	assert.True(t, LoadAppConfig().IsProduction())
}
