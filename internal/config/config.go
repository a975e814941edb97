/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the settings shared by the commands from the
// environment and an optional env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cogniteo/idp-sdk-go/internal/logging"
	"github.com/cogniteo/idp-sdk-go/pkg/cognito"
)

// Environment variables read by Load.
const (
	EnvFile         = "IDP_ENV_FILE"
	EnvRegion       = "IDP_REGION"
	EnvProfile      = "IDP_PROFILE"
	EnvEndpoint     = "IDP_ENDPOINT"
	EnvUserPoolID   = "IDP_USER_POOL_ID"
	EnvUserPoolName = "IDP_USER_POOL_NAME"
	EnvMaxAttempts  = "IDP_MAX_ATTEMPTS"
	EnvCacheTTL     = "IDP_CACHE_TTL"
	EnvLogLevel     = "IDP_LOG_LEVEL"
	EnvLogFormat    = "IDP_LOG_FORMAT"
)

// DefaultEnvFile is loaded when IDP_ENV_FILE is unset. A missing file is not
// an error.
const DefaultEnvFile = ".env"

// Config holds the settings of a user pool client.
type Config struct {
	Region       string
	Profile      string
	Endpoint     string
	UserPoolID   string
	UserPoolName string
	MaxAttempts  int
	CacheTTL     time.Duration
	LogLevel     string
	LogFormat    string
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and builds a Config from the IDP_*
// variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	maxAttempts, err := getEnvInt(EnvMaxAttempts, 0)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration(EnvCacheTTL, cognito.DefaultPoolIDTTL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Region:       getEnv(EnvRegion, ""),
		Profile:      getEnv(EnvProfile, ""),
		Endpoint:     getEnv(EnvEndpoint, ""),
		UserPoolID:   getEnv(EnvUserPoolID, ""),
		UserPoolName: getEnv(EnvUserPoolName, ""),
		MaxAttempts:  maxAttempts,
		CacheTTL:     cacheTTL,
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogFormat:    getEnv(EnvLogFormat, "console"),
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if c.UserPoolID != "" && c.UserPoolName != "" {
		errs = append(errs, errors.New("user pool ID and user pool name are mutually exclusive"))
	}
	if c.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("max attempts must not be negative, got %d", c.MaxAttempts))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("cache TTL must not be negative, got %s", c.CacheTTL))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// LoggingOptions returns the logger settings of c.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, Format: c.LogFormat}
}

// AWSOptions returns the client settings of c. The pool name is resolved by
// the caller.
func (c *Config) AWSOptions(log logr.Logger, reg prometheus.Registerer) cognito.Options {
	return cognito.Options{
		Region:      c.Region,
		Profile:     c.Profile,
		Endpoint:    c.Endpoint,
		MaxAttempts: c.MaxAttempts,
		UserPoolID:  c.UserPoolID,
		CacheTTL:    c.CacheTTL,
		Registerer:  reg,
		Logger:      log,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return i, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
