package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store backends selectable with store.backend.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendProxy  = "proxy"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Store     StoreConfig    `mapstructure:"store"`
	Database  DatabaseConfig `mapstructure:"database"`
	Proxy     ProxyConfig    `mapstructure:"proxy"`
	Predictor EndpointConfig `mapstructure:"predictor"`
	Planner   EndpointConfig `mapstructure:"planner"`
	S3        S3Config       `mapstructure:"s3"`
	JWT       JWTConfig      `mapstructure:"jwt"`
	Log       LogConfig      `mapstructure:"log"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	GinMode      string        `mapstructure:"gin_mode"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	// Seed loads the sample dataset into the memory backend.
	Seed bool `mapstructure:"seed"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// ProxyConfig points the proxy backend at the upstream store API.
type ProxyConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// EndpointConfig describes a single-endpoint collaborator such as the calorie
// predictor or the plan generator. An empty URL means "always use the fallback".
type EndpointConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type S3Config struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	URLExpiry       time.Duration `mapstructure:"url_expiry"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	JSON   bool   `mapstructure:"json"`
	Stdout bool   `mapstructure:"stdout"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

var defaults = map[string]any{
	"server.address":       ":8080",
	"server.read_timeout":  "10s",
	"server.write_timeout": "10s",
	"server.idle_timeout":  "120s",
	"server.gin_mode":      "debug",

	"store.backend": BackendMemory,
	"store.seed":    true,

	"database.uri":  "mongodb://localhost:27017",
	"database.name": "fittracker",

	"proxy.base_url": "http://localhost:8081",
	"proxy.timeout":  "5s",

	"predictor.url":     "",
	"predictor.timeout": "3s",
	"planner.url":       "",
	"planner.timeout":   "5s",

	"s3.enabled":           false,
	"s3.endpoint":          "",
	"s3.region":            "us-east-1",
	"s3.access_key_id":     "",
	"s3.secret_access_key": "",
	"s3.bucket_name":       "fittracker-exports",
	"s3.use_ssl":           true,
	"s3.url_expiry":        "15m",

	"jwt.secret":     "change-me",
	"jwt.expiration": "1h",

	"log.level":  "info",
	"log.file":   "",
	"log.json":   false,
	"log.stdout": true,

	"metrics.enabled": true,
	"metrics.path":    "/metrics",
}

// LoadConfig reads config.yaml from path (when present), then environment
// variables such as STORE_BACKEND or JWT_SECRET, then the defaults.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	// server.address -> SERVER_ADDRESS
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendMongo, BackendProxy:
	default:
		return fmt.Errorf("invalid store.backend %q: expected %s, %s or %s", c.Store.Backend, BackendMemory, BackendMongo, BackendProxy)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must not be empty")
	}
	if c.Store.Backend == BackendProxy && c.Proxy.BaseURL == "" {
		return errors.New("proxy.base_url is required for the proxy backend")
	}
	if c.S3.Enabled && c.S3.BucketName == "" {
		return errors.New("s3.bucket_name is required when s3 is enabled")
	}
	return nil
}
