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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

func newTestMockClient(t *testing.T, usernames ...string) *MockClient {
	t.Helper()
	m := NewMockClient()
	m.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	for _, name := range usernames {
		_, err := m.AdminCreateUser(context.Background(), new(model.AdminCreateUserInput).
			SetUserPoolId(testPoolID).
			SetUsername(name).
			AppendUserAttributes(*new(model.AttributeType).SetName("email").SetValue(name + "@example.com")))
		require.NoError(t, err)
	}
	return m
}

func TestMockClient_AdminCreateUser(t *testing.T) {
	m := newTestMockClient(t)
	ctx := context.Background()

	out, err := m.AdminCreateUser(ctx, new(model.AdminCreateUserInput).
		SetUserPoolId(testPoolID).
		SetUsername("jdoe").
		AppendUserAttributes(*new(model.AttributeType).SetName("email").SetValue("jdoe@example.com")))
	require.NoError(t, err)

	user := out.GetUser()
	assert.Equal(t, "jdoe", user.GetUsername())
	assert.True(t, user.GetEnabled())
	assert.Equal(t, model.UserStatusTypeForceChangePassword, user.GetUserStatus())
	assert.NotEmpty(t, attributeValue(user, "sub"))
	assert.Equal(t, "jdoe", userpool.UserFromModel(user).Username)
	assert.Equal(t, "jdoe@example.com", userpool.UserFromModel(user).Email)

	_, err = m.AdminCreateUser(ctx, new(model.AdminCreateUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	assert.ErrorIs(t, err, userpool.ErrUsernameExists)

	_, err = m.AdminCreateUser(ctx, new(model.AdminCreateUserInput).SetUsername("jdoe"))
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)

	_, err = m.AdminCreateUser(ctx, nil)
	assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
}

func TestMockClient_ReturnsCopies(t *testing.T) {
	m := newTestMockClient(t, "jdoe")
	ctx := context.Background()
	get := new(model.AdminGetUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe")

	out, err := m.AdminGetUser(ctx, get)
	require.NoError(t, err)
	out.UserAttributes[0].SetValue("changed@example.com")

	again, err := m.AdminGetUser(ctx, get)
	require.NoError(t, err)
	assert.Equal(t, "jdoe@example.com", again.UserAttributes[0].GetValue())
}

func TestMockClient_UpdateEnableDisableDelete(t *testing.T) {
	m := newTestMockClient(t, "jdoe")
	ctx := context.Background()

	_, err := m.AdminUpdateUserAttributes(ctx, new(model.AdminUpdateUserAttributesInput).
		SetUserPoolId(testPoolID).
		SetUsername("jdoe").
		SetUserAttributes([]model.AttributeType{
			*new(model.AttributeType).SetName("email").SetValue("new@example.com"),
			*new(model.AttributeType).SetName("name").SetValue("John"),
		}))
	require.NoError(t, err)

	_, err = m.AdminDisableUser(ctx, new(model.AdminDisableUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)

	out, err := m.AdminGetUser(ctx, new(model.AdminGetUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)
	assert.False(t, out.GetEnabled())
	assert.Len(t, out.UserAttributes, 3)
	user := userFromGetOutput(out)
	assert.Equal(t, "new@example.com", attributeValue(user, "email"))
	assert.Equal(t, "John", attributeValue(user, "name"))

	_, err = m.AdminEnableUser(ctx, new(model.AdminEnableUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)
	out, err = m.AdminGetUser(ctx, new(model.AdminGetUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)
	assert.True(t, out.GetEnabled())

	_, err = m.AdminDeleteUser(ctx, new(model.AdminDeleteUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)
	_, err = m.AdminDeleteUser(ctx, new(model.AdminDeleteUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	assert.ErrorIs(t, err, userpool.ErrUserNotFound)
	_, err = m.AdminEnableUser(ctx, new(model.AdminEnableUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	assert.ErrorIs(t, err, userpool.ErrUserNotFound)
}

func TestMockClient_ListUsers(t *testing.T) {
	m := newTestMockClient(t, "carol", "alice", "bob", "alan")
	ctx := context.Background()
	_, err := m.AdminDisableUser(ctx, new(model.AdminDisableUserInput).SetUserPoolId(testPoolID).SetUsername("bob"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		input     *model.ListUsersInput
		want      []string
		wantToken string
		expectErr bool
	}{
		{
			name:  "all users sorted",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID),
			want:  []string{"alan", "alice", "bob", "carol"},
		},
		{
			name:      "first page",
			input:     new(model.ListUsersInput).SetUserPoolId(testPoolID).SetLimit(3),
			want:      []string{"alan", "alice", "bob"},
			wantToken: "3",
		},
		{
			name:  "last page",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetLimit(3).SetPaginationToken("3"),
			want:  []string{"carol"},
		},
		{
			name:  "prefix filter on username",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`username ^= "al"`),
			want:  []string{"alan", "alice"},
		},
		{
			name:  "exact filter on attribute",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`email = "bob@example.com"`),
			want:  []string{"bob"},
		},
		{
			name:  "status is the enabled state",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`status = "Disabled"`),
			want:  []string{"bob"},
		},
		{
			name:  "enabled users",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`status = "Enabled"`),
			want:  []string{"alan", "alice", "carol"},
		},
		{
			name:  "user status",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`cognito:user_status = "FORCE_CHANGE_PASSWORD"`),
			want:  []string{"alan", "alice", "bob", "carol"},
		},
		{
			name:  "no match",
			input: new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`cognito:user_status = "CONFIRMED"`),
			want:  []string{},
		},
		{
			name:      "bad filter",
			input:     new(model.ListUsersInput).SetUserPoolId(testPoolID).SetFilter(`email`),
			expectErr: true,
		},
		{
			name:      "bad token",
			input:     new(model.ListUsersInput).SetUserPoolId(testPoolID).SetPaginationToken("abc"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := m.ListUsers(ctx, tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, userpool.ErrInvalidParameter)
				return
			}
			require.NoError(t, err)

			got := []string{}
			for _, u := range out.Users {
				got = append(got, u.GetUsername())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantToken, out.GetPaginationToken())
		})
	}
}

func TestMockClient_ListUsersAttributesToGet(t *testing.T) {
	m := newTestMockClient(t, "alice")

	out, err := m.ListUsers(context.Background(), new(model.ListUsersInput).
		SetUserPoolId(testPoolID).
		SetAttributesToGet([]string{"email"}))
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	assert.Equal(t, []model.AttributeType{*new(model.AttributeType).SetName("email").SetValue("alice@example.com")}, out.Users[0].Attributes)
}

func TestMockClient_SignUp(t *testing.T) {
	m := newTestMockClient(t)
	ctx := context.Background()

	out, err := m.SignUp(ctx, new(model.SignUpInput).
		SetClientId("client123").
		SetUsername("jdoe").
		SetPassword("Secret123!"))
	require.NoError(t, err)
	assert.False(t, out.GetUserConfirmed())
	assert.NotEmpty(t, out.GetUserSub())

	_, err = m.SignUp(ctx, new(model.SignUpInput).SetClientId("client123").SetUsername("jdoe").SetPassword("Secret123!"))
	assert.ErrorIs(t, err, userpool.ErrUsernameExists)

	confirm := new(model.ConfirmSignUpInput).SetClientId("client123").SetUsername("jdoe").SetConfirmationCode("123456")
	_, err = m.ConfirmSignUp(ctx, confirm)
	require.NoError(t, err)

	user, err := m.AdminGetUser(ctx, new(model.AdminGetUserInput).SetUserPoolId(testPoolID).SetUsername("jdoe"))
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusTypeConfirmed, user.GetUserStatus())

	_, err = m.ConfirmSignUp(ctx, confirm)
	assert.ErrorIs(t, err, userpool.ErrNotAuthorized)

	_, err = m.ConfirmSignUp(ctx, new(model.ConfirmSignUpInput).SetClientId("client123").SetUsername("ghost").SetConfirmationCode("123456"))
	assert.ErrorIs(t, err, userpool.ErrUserNotFound)
}
