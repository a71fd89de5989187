package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittracker/backend/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "fittracker", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.Proxy.Timeout)
	assert.Empty(t, cfg.Predictor.URL)
	assert.Equal(t, 3*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Planner.Timeout)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.False(t, cfg.S3.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Stdout)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  address: ":9090"
store:
  backend: mongo
  seed: false
predictor:
  url: http://localhost:5001/predict-calories
  timeout: 750ms
jwt:
  expiration: 30m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_NAME", "fittracker_test")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, config.BackendMongo, cfg.Store.Backend)
	assert.False(t, cfg.Store.Seed)
	assert.Equal(t, "http://localhost:5001/predict-calories", cfg.Predictor.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.Predictor.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "fittracker_test", cfg.Database.Name)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	_, err := config.LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.backend")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))
	_, err := config.LoadConfig(dir)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	noSecret := cfg
	noSecret.JWT.Secret = ""
	assert.Error(t, noSecret.Validate())

	s3NoBucket := cfg
	s3NoBucket.S3.Enabled = true
	s3NoBucket.S3.BucketName = ""
	assert.Error(t, s3NoBucket.Validate())

	proxy := cfg
	proxy.Store.Backend = config.BackendProxy
	assert.NoError(t, proxy.Validate())
	proxy.Proxy.BaseURL = ""
	assert.Error(t, proxy.Validate())
}

func TestLoadConfig_UpstreamEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "proxy")
	t.Setenv("PROXY_BASE_URL", "http://store.internal:8081")
	t.Setenv("PREDICTOR_URL", "http://model.internal/predict")
	t.Setenv("PLANNER_URL", "http://planner.internal/generate")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.ProxyConfig{BaseURL: "http://store.internal:8081", Timeout: 5 * time.Second}, cfg.Proxy)
	assert.Equal(t, config.EndpointConfig{URL: "http://model.internal/predict", Timeout: 3 * time.Second}, cfg.Predictor)
	assert.Equal(t, config.EndpointConfig{URL: "http://planner.internal/generate", Timeout: 5 * time.Second}, cfg.Planner)
}
