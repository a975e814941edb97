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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/internal/config"
	"github.com/cogniteo/idp-sdk-go/pkg/cognito"
	"github.com/cogniteo/idp-sdk-go/pkg/cognito/mocks"
)

const testPoolID = "us-east-1_ABC123"

type testCLI struct {
	*cli
	api    *mocks.MockCognitoAPI
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opts   cognito.Options
}

func newTestCLI(t *testing.T, stdin string, mutate ...func(*config.Config)) *testCLI {
	t.Helper()
	cfg := &config.Config{
		Region:     "us-east-1",
		UserPoolID: testPoolID,
		CacheTTL:   time.Minute,
		LogLevel:   "info",
		LogFormat:  "console",
	}
	for _, fn := range mutate {
		fn(cfg)
	}
	tc := &testCLI{
		api:    mocks.NewMockCognitoAPI(t),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	tc.cli = newCLI(cfg, strings.NewReader(stdin), tc.stdout, tc.stderr,
		func(_ context.Context, opts cognito.Options) (*cognito.AWSClient, error) {
			tc.opts = opts
			return cognito.NewAWSClientFromAPI(tc.api, opts)
		})
	return tc
}

func TestRun_Operations(t *testing.T) {
	tc := newTestCLI(t, "")
	require.NoError(t, tc.run(context.Background(), []string{"operations"}))

	lines := strings.Split(strings.TrimSpace(tc.stdout.String()), "\n")
	assert.Equal(t, operationNames(), lines)
}

func TestRun_Invoke(t *testing.T) {
	tc := newTestCLI(t, "Username: jane\n")
	tc.api.On("AdminGetUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminGetUserInput) bool {
		return aws.ToString(in.UserPoolId) == testPoolID && aws.ToString(in.Username) == "jane"
	})).Return(&cognitoidentityprovider.AdminGetUserOutput{
		Username:   aws.String("jane"),
		UserStatus: types.UserStatusType("CONFIRMED"),
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"invoke", "AdminGetUser"}))
	assert.JSONEq(t, `{"Username": "jane", "Enabled": false, "UserStatus": "CONFIRMED"}`, tc.stdout.String())
}

func TestRun_InvokeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"UserPoolId": "eu-west-1_OTHER", "Username": "jane"}`), 0o600))

	tc := newTestCLI(t, "")
	tc.api.On("AdminDeleteUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserInput) bool {
		return aws.ToString(in.UserPoolId) == "eu-west-1_OTHER"
	})).Return(&cognitoidentityprovider.AdminDeleteUserOutput{}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"invoke", "AdminDeleteUser", "--input", path, "-o", "yaml"}))
	assert.Equal(t, "{}\n", tc.stdout.String())
}

func TestRun_InvokeRejectsInvalidInput(t *testing.T) {
	tc := newTestCLI(t, "Username: jane\nColour: blue\n")
	err := tc.run(context.Background(), []string{"invoke", "AdminGetUser"})
	assert.ErrorContains(t, err, "failed to decode AdminGetUser input")
}

func TestRun_UsersList(t *testing.T) {
	tc := newTestCLI(t, "")
	tc.api.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUsersInput) bool {
		return aws.ToString(in.Filter) == `email ^= "j"`
	})).Return(&cognitoidentityprovider.ListUsersOutput{
		Users: []types.UserType{
			{
				Username:   aws.String("jane"),
				UserStatus: types.UserStatusType("CONFIRMED"),
				Attributes: []types.AttributeType{{Name: aws.String("email"), Value: aws.String("jane@example.com")}},
			},
		},
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"users", "list", "--filter", `email ^= "j"`}))
	out := tc.stdout.String()
	assert.Contains(t, out, "USERNAME")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "CONFIRMED")
}

func TestRun_UsersDelete(t *testing.T) {
	tc := newTestCLI(t, "")
	tc.api.On("AdminDeleteUser", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "UserNotFoundException", Message: "User does not exist."}).Once()

	assert.NoError(t, tc.run(context.Background(), []string{"users", "delete", "ghost"}))
}

func TestRun_UsersEnsure(t *testing.T) {
	tc := newTestCLI(t, "")
	tc.api.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminCreateUserInput) bool {
		return aws.ToString(in.Username) == "jane" &&
			in.MessageAction == types.MessageActionType("SUPPRESS") &&
			len(in.UserAttributes) == 2 &&
			aws.ToString(in.UserAttributes[0].Name) == "email"
	})).Return(&cognitoidentityprovider.AdminCreateUserOutput{
		User: &types.UserType{Username: aws.String("jane")},
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{
		"users", "ensure", "jane", "-a", "name=Jane", "-a", "email=jane@example.com",
	}))
	assert.YAMLEq(t, "Username: jane\nEnabled: false\n", tc.stdout.String())
}

func TestRun_PoolsResolve(t *testing.T) {
	tc := newTestCLI(t, "")
	tc.api.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_XYZ"), Name: aws.String("Customers")},
		},
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"pools", "resolve", "customers"}))
	assert.Equal(t, "us-east-1_XYZ\n", tc.stdout.String())
}

func TestRun_UserPoolName(t *testing.T) {
	tc := newTestCLI(t, "", func(cfg *config.Config) { cfg.UserPoolID = "" })
	tc.api.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_XYZ"), Name: aws.String("Customers")},
		},
	}, nil).Once()
	tc.api.On("AdminDeleteUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserInput) bool {
		return aws.ToString(in.UserPoolId) == "us-east-1_XYZ"
	})).Return(&cognitoidentityprovider.AdminDeleteUserOutput{}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{
		"--region", "eu-west-1", "--user-pool-name", "Customers", "users", "delete", "jane",
	}))
	assert.Equal(t, "eu-west-1", tc.opts.Region)
}

func TestRun_UserPoolNameFlagOverridesEnvironmentID(t *testing.T) {
	tc := newTestCLI(t, "")
	tc.api.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_XYZ"), Name: aws.String("Customers")},
		},
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"--user-pool-name", "Customers", "pools", "resolve", "Customers"}))
	assert.Empty(t, tc.opts.UserPoolID)
}

func TestRun_UserPoolIDFlagOverridesEnvironmentName(t *testing.T) {
	tc := newTestCLI(t, "Username: jane\n", func(cfg *config.Config) {
		cfg.UserPoolID = ""
		cfg.UserPoolName = "Customers"
	})
	tc.api.On("AdminDeleteUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserInput) bool {
		return aws.ToString(in.UserPoolId) == "eu-west-1_FLAG"
	})).Return(&cognitoidentityprovider.AdminDeleteUserOutput{}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"--user-pool-id", "eu-west-1_FLAG", "invoke", "AdminDeleteUser"}))
	assert.Equal(t, "eu-west-1_FLAG", tc.opts.UserPoolID)
	tc.api.AssertNotCalled(t, "ListUserPools", mock.Anything, mock.Anything)
}

func TestRun_InvalidConfig(t *testing.T) {
	tc := newTestCLI(t, "")
	err := tc.run(context.Background(), []string{"--user-pool-id", "us-east-1_A", "--user-pool-name", "Customers", "operations"})
	assert.ErrorContains(t, err, "mutually exclusive")

	tc = newTestCLI(t, "")
	err = tc.run(context.Background(), []string{"--max-attempts=-1", "operations"})
	assert.ErrorContains(t, err, "max attempts")
}

func TestRun_InvokeOperationNameIgnoresCase(t *testing.T) {
	tc := newTestCLI(t, "Username: jane\n")
	tc.api.On("AdminGetUser", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.AdminGetUserOutput{
		Username: aws.String("jane"),
	}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"invoke", "admingetuser"}))
	assert.Contains(t, tc.stdout.String(), `"Username": "jane"`)
}

func TestRun_InvokeUnknownOperation(t *testing.T) {
	tc := newTestCLI(t, "")
	err := tc.run(context.Background(), []string{"invoke", "DeleteEverything"})
	assert.EqualError(t, err, `unknown operation "DeleteEverything"`)
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idp.prom")
	tc := newTestCLI(t, "Username: jane\n")
	tc.api.On("AdminDeleteUser", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.AdminDeleteUserOutput{}, nil).Once()

	require.NoError(t, tc.run(context.Background(), []string{"--metrics-file", path, "invoke", "AdminDeleteUser"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `idp_client_requests_total{code="OK",operation="AdminDeleteUser"} 1`)
}
