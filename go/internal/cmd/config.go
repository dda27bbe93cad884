package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sportzhq/sportz/go/internal/realtime"
	"gopkg.in/yaml.v3"
)

// Config holds optional service tuning loaded from CONFIG_PATH. Every field
// has a sensible default so the file can be absent entirely.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Realtime struct {
		WriteTimeoutSec int   `yaml:"write_timeout_sec"`
		ReadTimeoutSec  int   `yaml:"read_timeout_sec"`
		PingIntervalSec int   `yaml:"ping_interval_sec"`
		MaxMessageSize  int64 `yaml:"max_message_size"`
		SendBufferSize  int   `yaml:"send_buffer_size"`
	} `yaml:"realtime"`
	Nats struct {
		Enabled  bool   `yaml:"enabled"`
		URL      string `yaml:"url"`
		Stream   string `yaml:"stream"`
		Consumer string `yaml:"consumer"`
		Subject  string `yaml:"subject"`
	} `yaml:"nats"`
}

func loadConfig() (*Config, error) {
	var config Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if config.Server.Port == "" {
		config.Server.Port = getEnv("PORT", "3000")
	}

	return &config, nil
}

func (c *Config) realtimeConfig() realtime.Config {
	cfg := realtime.DefaultConfig()

	if c.Realtime.WriteTimeoutSec > 0 {
		cfg.ConnectionConfig.WriteTimeout = time.Duration(c.Realtime.WriteTimeoutSec) * time.Second
	}
	if c.Realtime.ReadTimeoutSec > 0 {
		cfg.ConnectionConfig.ReadTimeout = time.Duration(c.Realtime.ReadTimeoutSec) * time.Second
	}
	if c.Realtime.PingIntervalSec > 0 {
		cfg.ConnectionConfig.PingInterval = time.Duration(c.Realtime.PingIntervalSec) * time.Second
	}
	if c.Realtime.MaxMessageSize > 0 {
		cfg.ConnectionConfig.MaxMessageSize = c.Realtime.MaxMessageSize
	}
	if c.Realtime.SendBufferSize > 0 {
		cfg.ConnectionConfig.SendBufferSize = c.Realtime.SendBufferSize
	}

	cfg.ConsumeExternal = c.Nats.Enabled
	if c.Nats.URL != "" {
		cfg.JetStreamConfig.URL = c.Nats.URL
	}
	if c.Nats.Stream != "" {
		cfg.JetStreamConfig.StreamName = c.Nats.Stream
	}
	if c.Nats.Consumer != "" {
		cfg.JetStreamConfig.ConsumerName = c.Nats.Consumer
	}
	if c.Nats.Subject != "" {
		cfg.JetStreamConfig.SubjectFilter = c.Nats.Subject
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
