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

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// ListAllUsers pages through ListUsers starting from in and returns every
// user. A nil in lists the default pool of the client.
func ListAllUsers(ctx context.Context, users userpool.UserManager, in *model.ListUsersInput) ([]model.UserType, error) {
	var req model.ListUsersInput
	if in != nil {
		req = *in
	}

	var all []model.UserType
	for {
		out, err := users.ListUsers(ctx, &req)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		all = append(all, out.Users...)

		if out.GetPaginationToken() == "" {
			return all, nil
		}
		req.PaginationToken = out.PaginationToken
	}
}

// ListAllUserPools pages through ListUserPools and returns every pool.
func ListAllUserPools(ctx context.Context, pools userpool.PoolManager) ([]model.UserPoolDescriptionType, error) {
	req := new(model.ListUserPoolsInput).SetMaxResults(listUserPoolsPageSize)

	var all []model.UserPoolDescriptionType
	for {
		out, err := pools.ListUserPools(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to list user pools: %w", err)
		}
		all = append(all, out.UserPools...)

		if out.GetNextToken() == "" {
			return all, nil
		}
		req.NextToken = out.NextToken
	}
}

// EnsureUser creates the user described by in. When the username is taken the
// existing user is returned instead.
func EnsureUser(ctx context.Context, users userpool.UserManager, in *model.AdminCreateUserInput) (*model.UserType, error) {
	out, err := users.AdminCreateUser(ctx, in)
	if err == nil {
		return out.User, nil
	}
	if !errors.Is(err, userpool.ErrUsernameExists) {
		return nil, fmt.Errorf("failed to create user %s: %w", in.GetUsername(), err)
	}

	existing, err := users.AdminGetUser(ctx, &model.AdminGetUserInput{
		UserPoolId: in.UserPoolId,
		Username:   in.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get existing user %s: %w", in.GetUsername(), err)
	}
	return userFromGetOutput(existing), nil
}

// DeleteUserIfExists deletes a user. A user that does not exist is not an
// error.
func DeleteUserIfExists(ctx context.Context, users userpool.UserManager, in *model.AdminDeleteUserInput) error {
	_, err := users.AdminDeleteUser(ctx, in)
	if err != nil && !errors.Is(err, userpool.ErrUserNotFound) {
		return fmt.Errorf("failed to delete user %s: %w", in.GetUsername(), err)
	}
	return nil
}

func userFromGetOutput(out *model.AdminGetUserOutput) *model.UserType {
	return &model.UserType{
		Username:             out.Username,
		Attributes:           out.UserAttributes,
		UserCreateDate:       out.UserCreateDate,
		UserLastModifiedDate: out.UserLastModifiedDate,
		Enabled:              out.Enabled,
		UserStatus:           out.UserStatus,
		MFAOptions:           out.MFAOptions,
	}
}
