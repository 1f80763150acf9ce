package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Redis    Redis          `mapstructure:"redis"`
	Stream   Stream         `mapstructure:"stream"`
	Sweep    Sweep          `mapstructure:"sweep"`
	Audio    Audio          `mapstructure:"audio"`
	Desktop  Desktop        `mapstructure:"desktop"`
	Settings Settings       `mapstructure:"settings"`
	Retry    retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Redis holds connection parameters for the settings storage.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Stream holds the upstream notification stream configuration.
type Stream struct {
	URL            string        `mapstructure:"url"`             // websocket endpoint pushing notification frames
	ReconnectPause time.Duration `mapstructure:"reconnect_pause"` // flat delay between reconnect attempts
}

// Sweep holds the scheduled-notification sweep configuration.
type Sweep struct {
	Interval time.Duration `mapstructure:"interval"` // how often due pending notifications are promoted
}

// Audio holds the alert tone configuration.
type Audio struct {
	SoundFile string `mapstructure:"sound_file"` // path to the notification tone
}

// Desktop holds desktop alert configuration.
type Desktop struct {
	Icon string `mapstructure:"icon"` // icon shown on desktop alerts
}

// Settings holds the durable user-settings blob location.
type Settings struct {
	Key string `mapstructure:"key"` // fixed storage key for the settings blob
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"stream.url": "STREAM_URL",

		"server.http_port": "HTTP_PORT",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
