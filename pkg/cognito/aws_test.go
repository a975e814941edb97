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

package cognito

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/cognito/mocks"
	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

const testPoolID = "us-east-1_ABC123"

func newTestClient(t *testing.T) (*AWSClient, *mocks.MockCognitoAPI, *prometheus.Registry) {
	t.Helper()
	mockAPI := mocks.NewMockCognitoAPI(t)
	reg := prometheus.NewRegistry()
	client, err := NewAWSClientFromAPI(mockAPI, Options{
		Region:     "us-east-1",
		UserPoolID: testPoolID,
		Registerer: reg,
	})
	require.NoError(t, err)
	return client, mockAPI, reg
}

func TestAWSClient_AdminCreateUser(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name       string
		input      *model.AdminCreateUserInput
		wantPoolID string
	}{
		{
			name: "default pool is applied",
			input: new(model.AdminCreateUserInput).
				SetUsername("test@example.com").
				SetMessageAction(model.MessageActionTypeSuppress),
			wantPoolID: testPoolID,
		},
		{
			name: "explicit pool wins",
			input: new(model.AdminCreateUserInput).
				SetUserPoolId("eu-west-1_OTHER").
				SetUsername("test@example.com").
				SetMessageAction(model.MessageActionTypeSuppress),
			wantPoolID: "eu-west-1_OTHER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mockAPI, _ := newTestClient(t)
			mockAPI.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminCreateUserInput) bool {
				return aws.ToString(in.UserPoolId) == tt.wantPoolID &&
					aws.ToString(in.Username) == "test@example.com" &&
					in.MessageAction == types.MessageActionTypeSuppress
			})).Return(&cognitoidentityprovider.AdminCreateUserOutput{
				User: &types.UserType{
					Username:       aws.String("test@example.com"),
					Enabled:        true,
					UserStatus:     types.UserStatusTypeForceChangePassword,
					UserCreateDate: aws.Time(created),
					Attributes: []types.AttributeType{
						{Name: aws.String("sub"), Value: aws.String("test-sub-123")},
					},
				},
			}, nil)

			out, err := client.AdminCreateUser(context.Background(), tt.input)
			require.NoError(t, err)

			want := new(model.AdminCreateUserOutput).SetUser(new(model.UserType).
				SetUsername("test@example.com").
				SetEnabled(true).
				SetUserStatus(model.UserStatusTypeForceChangePassword).
				SetUserCreateDate(created).
				SetAttributes([]model.AttributeType{*new(model.AttributeType).SetName("sub").SetValue("test-sub-123")}))
			assert.Empty(t, cmp.Diff(want, out))
		})
	}
}

func TestAWSClient_DefaultPoolDoesNotModifyInput(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("AdminGetUser", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.AdminGetUserOutput{
		Username: aws.String("jdoe"),
	}, nil)

	in := new(model.AdminGetUserInput).SetUsername("jdoe")
	_, err := client.AdminGetUser(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, in.UserPoolId)
}

func TestAWSClient_InvalidInputIsNotSent(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)

	_, err := client.AdminGetUser(context.Background(), new(model.AdminGetUserInput))
	require.Error(t, err)
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "AdminGetUser")
	assert.Contains(t, err.Error(), "Username: Required value")

	_, err = client.ListUserPools(context.Background(), nil)
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)

	mockAPI.AssertNotCalled(t, "AdminGetUser", mock.Anything, mock.Anything)
	assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("AdminGetUser", codeValidationError)))
	assert.Equal(t, 0, testutil.CollectAndCount(client.metrics.duration))
}

func TestAWSClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     string
	}{
		{
			name:     "user not found",
			err:      &types.UserNotFoundException{Message: aws.String("User does not exist.")},
			sentinel: userpool.ErrUserNotFound,
			code:     "UserNotFoundException",
		},
		{
			name:     "username exists",
			err:      &types.UsernameExistsException{Message: aws.String("User already exists")},
			sentinel: userpool.ErrUsernameExists,
			code:     "UsernameExistsException",
		},
		{
			name:     "pool not found",
			err:      &types.ResourceNotFoundException{Message: aws.String("User pool does not exist.")},
			sentinel: userpool.ErrPoolNotFound,
			code:     "ResourceNotFoundException",
		},
		{
			name:     "not authorized",
			err:      &types.NotAuthorizedException{Message: aws.String("Incorrect username or password.")},
			sentinel: userpool.ErrNotAuthorized,
			code:     "NotAuthorizedException",
		},
		{
			name:     "throttled",
			err:      &types.TooManyRequestsException{Message: aws.String("Rate exceeded")},
			sentinel: userpool.ErrThrottled,
			code:     "TooManyRequestsException",
		},
		{
			name:     "generic api error",
			err:      &smithy.GenericAPIError{Code: "InvalidPasswordException", Message: "too short"},
			sentinel: userpool.ErrInvalidParameter,
			code:     "InvalidPasswordException",
		},
		{
			name: "unknown api error",
			err:  &smithy.GenericAPIError{Code: "InternalErrorException"},
			code: "InternalErrorException",
		},
		{
			name: "transport error",
			err:  errors.New("connection refused"),
			code: codeClientError,
		},
		{
			name: "canceled",
			err:  fmt.Errorf("operation error: %w", context.Canceled),
			code: codeCanceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mockAPI, _ := newTestClient(t)
			mockAPI.On("AdminGetUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminGetUserInput")).Return(nil, tt.err)

			out, err := client.AdminGetUser(context.Background(), new(model.AdminGetUserInput).SetUsername("jdoe"))
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			assert.Contains(t, err.Error(), "AdminGetUser: ")
			assert.Equal(t, 1.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("AdminGetUser", tt.code)))
		})
	}
}

func TestAWSClient_Metrics(t *testing.T) {
	client, mockAPI, reg := newTestClient(t)
	mockAPI.On("AdminEnableUser", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.AdminEnableUserOutput{}, nil).Twice()

	in := new(model.AdminEnableUserInput).SetUsername("jdoe")
	for range 2 {
		out, err := client.AdminEnableUser(context.Background(), in)
		require.NoError(t, err)
		assert.NotNil(t, out)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(client.metrics.requests.WithLabelValues("AdminEnableUser", codeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(client.metrics.duration))

	n, err := testutil.GatherAndCount(reg, "idp_client_requests_total", "idp_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAWSClient_NilOutput(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("DeleteUserPool", mock.Anything, mock.Anything).Return(nil, nil)

	out, err := client.DeleteUserPool(context.Background(), new(model.DeleteUserPoolInput))
	require.NoError(t, err)
	assert.Equal(t, &model.DeleteUserPoolOutput{}, out)
}

func TestNewAWSClientFromAPI(t *testing.T) {
	_, err := NewAWSClientFromAPI(nil, Options{})
	require.Error(t, err)

	reg := prometheus.NewRegistry()
	first, err := NewAWSClientFromAPI(mocks.NewMockCognitoAPI(t), Options{Registerer: reg})
	require.NoError(t, err)
	second, err := NewAWSClientFromAPI(mocks.NewMockCognitoAPI(t), Options{Registerer: reg})
	require.NoError(t, err, "a second client on the same registry reuses the collectors")
	assert.Same(t, first.metrics.requests, second.metrics.requests)
	first.poolIDs.SetDefault("pool", "us-east-1_TTL")
	item, ok := first.poolIDs.Items()["pool"]
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultPoolIDTTL), time.Unix(0, item.Expiration), time.Minute)
	assert.Empty(t, first.UserPoolID())
}

func TestFindUserPoolIDByName(t *testing.T) {
	page1 := &cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_AAA"), Name: aws.String("first-pool")},
		},
		NextToken: aws.String("next"),
	}
	page2 := &cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_BBB"), Name: aws.String("Second-Pool")},
		},
	}

	tests := []struct {
		name      string
		poolName  string
		want      string
		expectErr error
	}{
		{name: "first page", poolName: "first-pool", want: "us-east-1_AAA"},
		{name: "second page, case insensitive", poolName: "second-pool", want: "us-east-1_BBB"},
		{name: "missing", poolName: "third-pool", expectErr: userpool.ErrPoolNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mockAPI, _ := newTestClient(t)
			mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUserPoolsInput) bool {
				return in.NextToken == nil && aws.ToInt32(in.MaxResults) == 60
			})).Return(page1, nil)
			mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUserPoolsInput) bool {
				return aws.ToString(in.NextToken) == "next"
			})).Return(page2, nil).Maybe()

			got, err := findUserPoolIDByName(context.Background(), client, tt.poolName)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAWSClient_ResolveUserPoolIDIsCached(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{
			{Id: aws.String("us-east-1_CACHED"), Name: aws.String("cached-pool")},
		},
	}, nil).Once()

	for _, name := range []string{"cached-pool", "CACHED-POOL"} {
		id, err := client.ResolveUserPoolID(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, "us-east-1_CACHED", id)
	}

	require.NoError(t, client.UseUserPoolName(context.Background(), "cached-pool"))
	assert.Equal(t, "us-east-1_CACHED", client.UserPoolID())
}

func TestAWSClient_ResolveUserPoolIDPerClient(t *testing.T) {
	newClient := func(profile, id string) (*AWSClient, *mocks.MockCognitoAPI) {
		mockAPI := mocks.NewMockCognitoAPI(t)
		mockAPI.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
			UserPools: []types.UserPoolDescriptionType{{Id: aws.String(id), Name: aws.String("app")}},
		}, nil).Once()
		client, err := NewAWSClientFromAPI(mockAPI, Options{Region: "eu-west-1", Profile: profile})
		require.NoError(t, err)
		return client, mockAPI
	}
	clientA, apiA := newClient("account-a", "eu-west-1_ACCOUNTA")
	clientB, apiB := newClient("account-b", "eu-west-1_ACCOUNTB")

	require.NoError(t, clientA.UseUserPoolName(context.Background(), "app"))
	require.NoError(t, clientB.UseUserPoolName(context.Background(), "app"))

	assert.Equal(t, "eu-west-1_ACCOUNTA", clientA.UserPoolID())
	assert.Equal(t, "eu-west-1_ACCOUNTB", clientB.UserPoolID())
	apiA.AssertNumberOfCalls(t, "ListUserPools", 1)
	apiB.AssertNumberOfCalls(t, "ListUserPools", 1)
}

func TestAWSClient_UseUserPoolNameConcurrent(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{{Id: aws.String("us-east-1_SWITCHED"), Name: aws.String("other")}},
	}, nil).Once()
	mockAPI.On("AdminGetUser", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.AdminGetUserOutput{}, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.AdminGetUser(context.Background(), new(model.AdminGetUserInput).SetUsername("jane"))
			assert.NoError(t, err)
		}()
	}
	require.NoError(t, client.UseUserPoolName(context.Background(), "other"))
	wg.Wait()

	assert.Equal(t, "us-east-1_SWITCHED", client.UserPoolID())
}

func TestAWSClient_UseUserPoolNameNotFound(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUserPools", mock.Anything, mock.Anything).Return(&cognitoidentityprovider.ListUserPoolsOutput{}, nil)

	err := client.UseUserPoolName(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, userpool.ErrPoolNotFound)
	assert.Equal(t, testPoolID, client.UserPoolID())
}

func TestNewAWSClientByName_EmptyName(t *testing.T) {
	client, err := NewAWSClientByName(context.Background(), "", Options{})
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestWithDefaultPool(t *testing.T) {
	in := new(model.DescribeUserPoolInput)
	got := withDefaultPool(in, testPoolID)
	assert.Equal(t, testPoolID, got.GetUserPoolId())
	assert.Nil(t, in.UserPoolId)

	own := new(model.DescribeUserPoolInput).SetUserPoolId("mine")
	assert.Same(t, own, withDefaultPool(own, testPoolID))
	assert.Same(t, in, withDefaultPool(in, ""))

	var none *model.DescribeUserPoolInput
	assert.Nil(t, withDefaultPool(none, testPoolID))
}
