package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	envServerAddress   = "SERVER_ADDRESS"
	envLogLevel        = "LOG_LEVEL"
	envMaxUploadBytes  = "MAX_UPLOAD_BYTES"
	envScanDelay       = "SCAN_DELAY"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultLogLevel        = "info"
	defaultMaxUploadBytes  = 10 << 20
	defaultScanDelay       = 500 * time.Millisecond
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	ServerAddress   string
	LogLevel        string
	MaxUploadBytes  int64 // лимит на размер изображения для скана
	ScanDelay       time.Duration
	ShutdownTimeout time.Duration
}

// Default возвращает конфиг со значениями по умолчанию
func Default() *Config {
	return &Config{
		ServerAddress:   defaultServerAddress,
		LogLevel:        defaultLogLevel,
		MaxUploadBytes:  defaultMaxUploadBytes,
		ScanDelay:       defaultScanDelay,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// NewConfig: значения по умолчанию -> флаги -> переменные окружения
func NewConfig() (*Config, error) {
	cfg := Default()

	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg.ApplyEnv()
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.ServerAddress, "server-address", c.ServerAddress, "Server address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.Int64Var(&c.MaxUploadBytes, "max-upload-bytes", c.MaxUploadBytes, "Max size of an uploaded image")
	fs.DurationVar(&c.ScanDelay, "scan-delay", c.ScanDelay, "Delay before decoding an uploaded image")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "Graceful shutdown timeout")
}

func (c *Config) ApplyEnv() {
	c.applyEnv(envServerAddress, &c.ServerAddress)
	c.applyEnv(envLogLevel, &c.LogLevel)
	c.applyEnvInt64(envMaxUploadBytes, &c.MaxUploadBytes)
	c.applyEnvDuration(envScanDelay, &c.ScanDelay)
	c.applyEnvDuration(envShutdownTimeout, &c.ShutdownTimeout)
}

// Finalize нормализует адрес и проверяет значения
func (c *Config) Finalize() error {
	c.normalizeServerAddress()

	if c.ServerAddress == "" {
		return errors.New("server address cannot be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if c.ScanDelay < 0 {
		return fmt.Errorf("scan delay cannot be negative, got %s", c.ScanDelay)
	}
	return nil
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvInt64(key string, target *int64) {
	if val, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			*target = n
		}
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}
