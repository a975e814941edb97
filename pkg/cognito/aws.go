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

// Package cognito implements the user pool API on top of Amazon Cognito.
package cognito

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-logr/logr"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// DefaultPoolIDTTL is how long a resolved user pool name is cached when
// Options.CacheTTL is zero.
const DefaultPoolIDTTL = 10 * time.Minute

// listUserPoolsPageSize is the largest page ListUserPools accepts.
const listUserPoolsPageSize = 60

// Options configure an AWSClient.
type Options struct {
	// Region overrides the region of the shared configuration.
	Region string
	// Profile selects a shared configuration profile.
	Profile string
	// Endpoint overrides the service endpoint, e.g. for a local emulator.
	Endpoint string
	// MaxAttempts bounds the retries of a request; zero keeps the SDK default.
	MaxAttempts int
	// UserPoolID is applied to every input that has an empty UserPoolId.
	UserPoolID string
	// CacheTTL is how long resolved pool names are remembered by the client.
	CacheTTL time.Duration
	// Registerer receives the client metrics. A private registry is used
	// when nil.
	Registerer prometheus.Registerer
	Logger     logr.Logger
}

// AWSClient implements the userpool.Client interface for AWS Cognito
type AWSClient struct {
	cognito CognitoAPI
	log     logr.Logger
	metrics *metrics

	// poolIDs maps lowercased pool names to IDs seen through cognito.
	poolIDs *gocache.Cache

	mu         sync.RWMutex
	userPoolID string
}

var _ userpool.Client = (*AWSClient)(nil)

// NewAWSClient creates a new AWS Cognito client from the default credential
// chain.
func NewAWSClient(ctx context.Context, opts Options) (*AWSClient, error) {
	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	cognito := cognitoidentityprovider.NewFromConfig(cfg, func(o *cognitoidentityprovider.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewAWSClientFromAPI(cognito, opts)
}

// NewAWSClientByName creates a new AWS Cognito client whose default user pool
// is the pool called userPoolName.
func NewAWSClientByName(ctx context.Context, userPoolName string, opts Options) (*AWSClient, error) {
	if userPoolName == "" {
		return nil, fmt.Errorf("userPoolName cannot be empty")
	}

	c, err := NewAWSClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := c.UseUserPoolName(ctx, userPoolName); err != nil {
		return nil, err
	}
	return c, nil
}

// NewAWSClientFromAPI creates a client sending requests through api. The
// connection settings of opts are ignored.
func NewAWSClientFromAPI(api CognitoAPI, opts Options) (*AWSClient, error) {
	if api == nil {
		return nil, fmt.Errorf("cognito API cannot be nil")
	}

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultPoolIDTTL
	}

	return &AWSClient{
		cognito:    api,
		log:        opts.Logger.WithName("cognito"),
		metrics:    m,
		poolIDs:    gocache.New(ttl, time.Minute),
		userPoolID: opts.UserPoolID,
	}, nil
}

func loadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.MaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.MaxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

// UserPoolID returns the pool applied to inputs without one.
func (c *AWSClient) UserPoolID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userPoolID
}

// UseUserPoolName resolves userPoolName and makes it the default pool.
// Requests already in flight keep the pool they started with.
func (c *AWSClient) UseUserPoolName(ctx context.Context, userPoolName string) error {
	id, err := c.ResolveUserPoolID(ctx, userPoolName)
	if err != nil {
		return fmt.Errorf("failed to find user pool by name %s: %w", userPoolName, err)
	}
	c.mu.Lock()
	c.userPoolID = id
	c.mu.Unlock()
	return nil
}

// ResolveUserPoolID returns the ID of the pool called userPoolName. Names
// match case-insensitively and results are cached.
func (c *AWSClient) ResolveUserPoolID(ctx context.Context, userPoolName string) (string, error) {
	key := strings.ToLower(userPoolName)
	if id, ok := c.poolIDs.Get(key); ok {
		return id.(string), nil
	}

	id, err := findUserPoolIDByName(ctx, c, userPoolName)
	if err != nil {
		return "", err
	}
	c.poolIDs.SetDefault(key, id)
	return id, nil
}

// findUserPoolIDByName finds a user pool ID by its name
func findUserPoolIDByName(ctx context.Context, pools userpool.PoolManager, userPoolName string) (string, error) {
	input := new(model.ListUserPoolsInput).SetMaxResults(listUserPoolsPageSize)
	for {
		output, err := pools.ListUserPools(ctx, input)
		if err != nil {
			return "", fmt.Errorf("failed to list user pools: %w", err)
		}

		for _, userPool := range output.UserPools {
			if strings.EqualFold(userPool.GetName(), userPoolName) && userPool.GetId() != "" {
				return userPool.GetId(), nil
			}
		}

		if output.GetNextToken() == "" {
			break
		}
		input.SetNextToken(output.GetNextToken())
	}

	return "", fmt.Errorf("user pool with name %s: %w", userPoolName, userpool.ErrPoolNotFound)
}
