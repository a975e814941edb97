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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/cognito"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvRegion, EnvProfile, EnvEndpoint, EnvUserPoolID, EnvUserPoolName,
		EnvMaxAttempts, EnvCacheTTL, EnvLogLevel, EnvLogFormat,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		CacheTTL:  cognito.DefaultPoolIDTTL,
		LogLevel:  "info",
		LogFormat: "console",
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRegion, "eu-west-1")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"IDP_REGION=us-east-1\n"+
			"IDP_USER_POOL_NAME=customers\n"+
			"IDP_MAX_ATTEMPTS=5\n"+
			"IDP_CACHE_TTL=30s\n"+
			"IDP_LOG_FORMAT=json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region, "the environment wins over the env file")
	assert.Equal(t, "customers", cfg.UserPoolName)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "max attempts", key: EnvMaxAttempts, value: "many"},
		{name: "cache ttl", key: EnvCacheTTL, value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "debug", LogFormat: "json"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "pool id and name",
			mutate:  func(c *Config) { c.UserPoolID, c.UserPoolName = "us-east-1_A", "a" },
			wantErr: "mutually exclusive",
		},
		{
			name:    "negative attempts",
			mutate:  func(c *Config) { c.MaxAttempts = -1 },
			wantErr: "max attempts",
		},
		{
			name:    "log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: `unknown log level "loud"`,
		},
		{
			name:    "log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: `unknown log format "xml"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAWSOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := &Config{
		Region:      "us-east-1",
		Profile:     "dev",
		Endpoint:    "http://localhost:9229",
		UserPoolID:  "us-east-1_A",
		MaxAttempts: 3,
		CacheTTL:    time.Minute,
	}

	opts := cfg.AWSOptions(logr.Discard(), reg)
	assert.Equal(t, "us-east-1", opts.Region)
	assert.Equal(t, "dev", opts.Profile)
	assert.Equal(t, "http://localhost:9229", opts.Endpoint)
	assert.Equal(t, "us-east-1_A", opts.UserPoolID)
	assert.Equal(t, 3, opts.MaxAttempts)
	assert.Equal(t, time.Minute, opts.CacheTTL)
	assert.Same(t, reg, opts.Registerer)
}

func TestLoggingOptions(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	opts := cfg.LoggingOptions()
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "json", opts.Format)
	assert.Nil(t, opts.Output)
}
