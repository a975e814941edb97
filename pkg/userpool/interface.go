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

// Package userpool defines the operations of a user pool service, grouped by
// concern, and the errors implementations report.
package userpool

import (
	"context"
	"errors"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// Sentinel errors returned by Client implementations. Implementations wrap
// them with the operation that failed; use errors.Is to test for them.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameExists   = errors.New("username already exists")
	ErrPoolNotFound     = errors.New("user pool not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrThrottled        = errors.New("request throttled")
)

// UserManager manages the users of a user pool.
type UserManager interface {
	AdminCreateUser(ctx context.Context, in *model.AdminCreateUserInput) (*model.AdminCreateUserOutput, error)
	AdminGetUser(ctx context.Context, in *model.AdminGetUserInput) (*model.AdminGetUserOutput, error)
	AdminUpdateUserAttributes(ctx context.Context, in *model.AdminUpdateUserAttributesInput) (*model.AdminUpdateUserAttributesOutput, error)
	AdminEnableUser(ctx context.Context, in *model.AdminEnableUserInput) (*model.AdminEnableUserOutput, error)
	AdminDisableUser(ctx context.Context, in *model.AdminDisableUserInput) (*model.AdminDisableUserOutput, error)
	AdminDeleteUser(ctx context.Context, in *model.AdminDeleteUserInput) (*model.AdminDeleteUserOutput, error)
	ListUsers(ctx context.Context, in *model.ListUsersInput) (*model.ListUsersOutput, error)
	SignUp(ctx context.Context, in *model.SignUpInput) (*model.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *model.ConfirmSignUpInput) (*model.ConfirmSignUpOutput, error)
}

// PoolManager manages user pools and their app clients.
type PoolManager interface {
	CreateUserPool(ctx context.Context, in *model.CreateUserPoolInput) (*model.CreateUserPoolOutput, error)
	DescribeUserPool(ctx context.Context, in *model.DescribeUserPoolInput) (*model.DescribeUserPoolOutput, error)
	DeleteUserPool(ctx context.Context, in *model.DeleteUserPoolInput) (*model.DeleteUserPoolOutput, error)
	ListUserPools(ctx context.Context, in *model.ListUserPoolsInput) (*model.ListUserPoolsOutput, error)
	TagResource(ctx context.Context, in *model.TagResourceInput) (*model.TagResourceOutput, error)
	DescribeUserPoolClient(ctx context.Context, in *model.DescribeUserPoolClientInput) (*model.DescribeUserPoolClientOutput, error)
}

// AuthManager runs authentication flows.
type AuthManager interface {
	InitiateAuth(ctx context.Context, in *model.InitiateAuthInput) (*model.InitiateAuthOutput, error)
	AdminInitiateAuth(ctx context.Context, in *model.AdminInitiateAuthInput) (*model.AdminInitiateAuthOutput, error)
	RespondToAuthChallenge(ctx context.Context, in *model.RespondToAuthChallengeInput) (*model.RespondToAuthChallengeOutput, error)
	AdminRespondToAuthChallenge(ctx context.Context, in *model.AdminRespondToAuthChallengeInput) (*model.AdminRespondToAuthChallengeOutput, error)
	ForgotPassword(ctx context.Context, in *model.ForgotPasswordInput) (*model.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, in *model.ConfirmForgotPasswordInput) (*model.ConfirmForgotPasswordOutput, error)
	ChangePassword(ctx context.Context, in *model.ChangePasswordInput) (*model.ChangePasswordOutput, error)
}

// MFAManager configures multi-factor authentication.
type MFAManager interface {
	GetUserPoolMfaConfig(ctx context.Context, in *model.GetUserPoolMfaConfigInput) (*model.GetUserPoolMfaConfigOutput, error)
	SetUserPoolMfaConfig(ctx context.Context, in *model.SetUserPoolMfaConfigInput) (*model.SetUserPoolMfaConfigOutput, error)
	AdminSetUserMFAPreference(ctx context.Context, in *model.AdminSetUserMFAPreferenceInput) (*model.AdminSetUserMFAPreferenceOutput, error)
	AssociateSoftwareToken(ctx context.Context, in *model.AssociateSoftwareTokenInput) (*model.AssociateSoftwareTokenOutput, error)
	VerifySoftwareToken(ctx context.Context, in *model.VerifySoftwareTokenInput) (*model.VerifySoftwareTokenOutput, error)
}

// RiskManager configures advanced security risk handling.
type RiskManager interface {
	DescribeRiskConfiguration(ctx context.Context, in *model.DescribeRiskConfigurationInput) (*model.DescribeRiskConfigurationOutput, error)
	SetRiskConfiguration(ctx context.Context, in *model.SetRiskConfigurationInput) (*model.SetRiskConfigurationOutput, error)
}

// DomainManager manages the hosted UI domains of user pools.
type DomainManager interface {
	CreateUserPoolDomain(ctx context.Context, in *model.CreateUserPoolDomainInput) (*model.CreateUserPoolDomainOutput, error)
	DescribeUserPoolDomain(ctx context.Context, in *model.DescribeUserPoolDomainInput) (*model.DescribeUserPoolDomainOutput, error)
	DeleteUserPoolDomain(ctx context.Context, in *model.DeleteUserPoolDomainInput) (*model.DeleteUserPoolDomainOutput, error)
}

// FederationManager manages identity providers and resource servers.
type FederationManager interface {
	CreateIdentityProvider(ctx context.Context, in *model.CreateIdentityProviderInput) (*model.CreateIdentityProviderOutput, error)
	CreateResourceServer(ctx context.Context, in *model.CreateResourceServerInput) (*model.CreateResourceServerOutput, error)
}

// Client is the full user pool API.
type Client interface {
	UserManager
	PoolManager
	AuthManager
	MFAManager
	RiskManager
	DomainManager
	FederationManager
}

// User is a flattened view of a user, as printed by listings.
type User struct {
	Username string
	Email    string
	Status   model.UserStatusType
	Enabled  bool
}

// UserFromModel flattens u. The email is taken from the email attribute.
func UserFromModel(u *model.UserType) User {
	user := User{
		Username: u.GetUsername(),
		Status:   u.GetUserStatus(),
		Enabled:  u.GetEnabled(),
	}
	for _, a := range u.GetAttributes() {
		if a.GetName() == "email" {
			user.Email = a.GetValue()
		}
	}
	return user
}
