// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

// Options holds the configuration values for the server.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"address"`

	// DatabaseDSN holds the database connection string. Empty keeps the
	// evaluation log in memory.
	DatabaseDSN string `json:"database_dsn"`

	// LogLevel is the minimum zap level ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level"`

	// Retention is how long evaluation records are kept.
	Retention Duration `json:"retention"`

	// CleanupInterval is how often expired evaluation records are purged.
	CleanupInterval Duration `json:"cleanup_interval"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// Duration is a time.Duration that decodes from JSON strings such as "720h".
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a Go duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalJSON encodes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Defaults returns the built-in option values.
func Defaults() *Options {
	return &Options{
		Port:            "localhost:8080",
		LogLevel:        "info",
		Retention:       Duration{30 * 24 * time.Hour},
		CleanupInterval: Duration{time.Hour},
		Config:          "config.json",
	}
}

// Parse reads the process flags, the optional JSON config file and the
// environment, in that order of increasing precedence. It returns an error
// when the config file or an environment value cannot be parsed.
func Parse() (*Options, error) {
	return ParseArgs(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

// ParseArgs is Parse over an explicit flag set and argument list.
func ParseArgs(fs *flag.FlagSet, args []string) (*Options, error) {
	options := Defaults()

	fs.StringVar(&options.Port, "a", options.Port, "run on ip:port server")
	fs.StringVar(&options.DatabaseDSN, "d", options.DatabaseDSN, "db address")
	fs.StringVar(&options.LogLevel, "l", options.LogLevel, "log level")
	fs.DurationVar(&options.Retention.Duration, "retention", options.Retention.Duration, "how long evaluation records are kept")
	fs.DurationVar(&options.CleanupInterval.Duration, "cleanup", options.CleanupInterval.Duration, "evaluation cleanup interval")
	fs.StringVar(&options.Config, "config", options.Config, "path to config file")
	fs.StringVar(&options.Config, "c", options.Config, "path to config file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Flags given explicitly win over the config file.
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			fromFile := *options
			if err := json.Unmarshal(data, &fromFile); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
			mergeFile(options, &fromFile, explicit)
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}
	if retention := os.Getenv("RETENTION"); retention != "" {
		v, err := time.ParseDuration(retention)
		if err != nil {
			return nil, fmt.Errorf("invalid RETENTION: %w", err)
		}
		options.Retention.Duration = v
	}
	if interval := os.Getenv("CLEANUP_INTERVAL"); interval != "" {
		v, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: %w", err)
		}
		options.CleanupInterval.Duration = v
	}

	if options.Retention.Duration <= 0 || options.CleanupInterval.Duration <= 0 {
		return nil, fmt.Errorf("retention and cleanup interval must be positive")
	}

	return options, nil
}

func mergeFile(dst, file *Options, explicit map[string]bool) {
	if !explicit["a"] {
		dst.Port = file.Port
	}
	if !explicit["d"] {
		dst.DatabaseDSN = file.DatabaseDSN
	}
	if !explicit["l"] {
		dst.LogLevel = file.LogLevel
	}
	if !explicit["retention"] {
		dst.Retention = file.Retention
	}
	if !explicit["cleanup"] {
		dst.CleanupInterval = file.CleanupInterval
	}
}
