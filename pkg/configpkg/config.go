// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	RedisHost       string        `mapstructure:"REDIS_HOST"`
	RedisPort       int           `mapstructure:"REDIS_PORT"`
	ReadInterval    time.Duration `mapstructure:"READ_INTERVAL"` // consumer-group poll interval; only the projector uses it
	PendingInterval time.Duration `mapstructure:"PENDING_INTERVAL"`
	StreamName      string        `mapstructure:"STREAM_NAME"`
	ListenPort      int           `mapstructure:"LISTEN_PORT"`
	MongoURI        string        `mapstructure:"MONGO_URI"`
	MongoDatabase   string        `mapstructure:"MONGO_DATABASE"`
	MongoCollection string        `mapstructure:"MONGO_COLLECTION"`
	Environement    string        `mapstructure:"GO_ENV"`
}

// RedisAddr returns the host:port address of the configured Redis instance.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("READ_INTERVAL", 10*time.Second)
	viper.SetDefault("PENDING_INTERVAL", 30*time.Second)
	viper.SetDefault("STREAM_NAME", "accountStream")
	viper.SetDefault("LISTEN_PORT", 8444)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "ledger")
	viper.SetDefault("MONGO_COLLECTION", "accounts")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, fmt.Errorf("configpkg: read config: %w", err)
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, fmt.Errorf("configpkg: unmarshal config: %w", err)
	}

	return c, nil
}
