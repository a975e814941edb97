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
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

func TestListAllUsers(t *testing.T) {
	m := newTestMockClient(t, "u1", "u2", "u3", "u4", "u5")

	users, err := ListAllUsers(context.Background(), m, new(model.ListUsersInput).SetUserPoolId(testPoolID).SetLimit(2))
	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "u5", users[4].GetUsername())

	_, err = ListAllUsers(context.Background(), m, nil)
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
}

func TestListAllUserPools(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUserPoolsInput) bool {
		return in.NextToken == nil
	})).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{{Id: aws.String("us-east-1_A"), Name: aws.String("a")}},
		NextToken: aws.String("t1"),
	}, nil)
	mockAPI.On("ListUserPools", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUserPoolsInput) bool {
		return aws.ToString(in.NextToken) == "t1"
	})).Return(&cognitoidentityprovider.ListUserPoolsOutput{
		UserPools: []types.UserPoolDescriptionType{{Id: aws.String("us-east-1_B"), Name: aws.String("b")}},
	}, nil)

	pools, err := ListAllUserPools(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "us-east-1_B", pools[1].GetId())
}

func TestListAllUserPools_Error(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUserPools", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	pools, err := ListAllUserPools(context.Background(), client)
	require.Error(t, err)
	assert.Nil(t, pools)
	assert.Contains(t, err.Error(), "failed to list user pools")
}

func TestEnsureUser(t *testing.T) {
	m := newTestMockClient(t, "existing")
	ctx := context.Background()

	created, err := EnsureUser(ctx, m, new(model.AdminCreateUserInput).SetUserPoolId(testPoolID).SetUsername("fresh"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", created.GetUsername())

	existing, err := EnsureUser(ctx, m, new(model.AdminCreateUserInput).SetUserPoolId(testPoolID).SetUsername("existing"))
	require.NoError(t, err)
	assert.Equal(t, "existing", existing.GetUsername())
	assert.Equal(t, "existing@example.com", attributeValue(existing, "email"))

	_, err = EnsureUser(ctx, m, new(model.AdminCreateUserInput).SetUsername("no-pool"))
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
}

func TestEnsureUser_AWS(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("AdminCreateUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminCreateUserInput")).
		Return(nil, &types.UsernameExistsException{Message: aws.String("User already exists")})
	mockAPI.On("AdminGetUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminGetUserInput) bool {
		return aws.ToString(in.UserPoolId) == testPoolID && aws.ToString(in.Username) == "test@example.com"
	})).Return(&cognitoidentityprovider.AdminGetUserOutput{
		Username: aws.String("test@example.com"),
		Enabled:  true,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String("test@example.com")},
		},
	}, nil)

	user, err := EnsureUser(context.Background(), client, new(model.AdminCreateUserInput).SetUsername("test@example.com"))
	require.NoError(t, err)
	assert.Equal(t, userpool.User{Username: "test@example.com", Email: "test@example.com", Enabled: true}, userpool.UserFromModel(user))
}

func TestDeleteUserIfExists(t *testing.T) {
	m := newTestMockClient(t, "jdoe")
	ctx := context.Background()
	in := new(model.AdminDeleteUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe")

	require.NoError(t, DeleteUserIfExists(ctx, m, in))
	require.NoError(t, DeleteUserIfExists(ctx, m, in), "deleting a missing user is not an error")

	err := DeleteUserIfExists(ctx, m, new(model.AdminDeleteUserInput).SetUsername("jdoe"))
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
}
