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
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// AdminCreateUser creates a user in a user pool as an administrator.
func (c *AWSClient) AdminCreateUser(ctx context.Context, in *model.AdminCreateUserInput) (*model.AdminCreateUserOutput, error) {
	return invoke(ctx, c, "AdminCreateUser", withDefaultPool(in, c.UserPoolID()),
		adminCreateUserInputToSDK, c.cognito.AdminCreateUser, adminCreateUserOutputFromSDK)
}

// AdminGetUser returns a user of a user pool as an administrator.
func (c *AWSClient) AdminGetUser(ctx context.Context, in *model.AdminGetUserInput) (*model.AdminGetUserOutput, error) {
	return invoke(ctx, c, "AdminGetUser", withDefaultPool(in, c.UserPoolID()),
		adminGetUserInputToSDK, c.cognito.AdminGetUser, adminGetUserOutputFromSDK)
}

// AdminUpdateUserAttributes updates attributes of a user as an administrator.
func (c *AWSClient) AdminUpdateUserAttributes(ctx context.Context, in *model.AdminUpdateUserAttributesInput) (*model.AdminUpdateUserAttributesOutput, error) {
	return invoke(ctx, c, "AdminUpdateUserAttributes", withDefaultPool(in, c.UserPoolID()),
		adminUpdateUserAttributesInputToSDK, c.cognito.AdminUpdateUserAttributes, adminUpdateUserAttributesOutputFromSDK)
}

// AdminEnableUser enables a user as an administrator.
func (c *AWSClient) AdminEnableUser(ctx context.Context, in *model.AdminEnableUserInput) (*model.AdminEnableUserOutput, error) {
	return invoke(ctx, c, "AdminEnableUser", withDefaultPool(in, c.UserPoolID()),
		adminEnableUserInputToSDK, c.cognito.AdminEnableUser, adminEnableUserOutputFromSDK)
}

// AdminDisableUser disables a user as an administrator.
func (c *AWSClient) AdminDisableUser(ctx context.Context, in *model.AdminDisableUserInput) (*model.AdminDisableUserOutput, error) {
	return invoke(ctx, c, "AdminDisableUser", withDefaultPool(in, c.UserPoolID()),
		adminDisableUserInputToSDK, c.cognito.AdminDisableUser, adminDisableUserOutputFromSDK)
}

// AdminDeleteUser deletes a user as an administrator.
func (c *AWSClient) AdminDeleteUser(ctx context.Context, in *model.AdminDeleteUserInput) (*model.AdminDeleteUserOutput, error) {
	return invoke(ctx, c, "AdminDeleteUser", withDefaultPool(in, c.UserPoolID()),
		adminDeleteUserInputToSDK, c.cognito.AdminDeleteUser, adminDeleteUserOutputFromSDK)
}

// ListUsers lists the users of a user pool.
func (c *AWSClient) ListUsers(ctx context.Context, in *model.ListUsersInput) (*model.ListUsersOutput, error) {
	return invoke(ctx, c, "ListUsers", withDefaultPool(in, c.UserPoolID()),
		listUsersInputToSDK, c.cognito.ListUsers, listUsersOutputFromSDK)
}

// SignUp registers a new user through an app client.
func (c *AWSClient) SignUp(ctx context.Context, in *model.SignUpInput) (*model.SignUpOutput, error) {
	return invoke(ctx, c, "SignUp", in,
		signUpInputToSDK, c.cognito.SignUp, signUpOutputFromSDK)
}

// ConfirmSignUp confirms a new user with the code sent to them.
func (c *AWSClient) ConfirmSignUp(ctx context.Context, in *model.ConfirmSignUpInput) (*model.ConfirmSignUpOutput, error) {
	return invoke(ctx, c, "ConfirmSignUp", in,
		confirmSignUpInputToSDK, c.cognito.ConfirmSignUp, confirmSignUpOutputFromSDK)
}

func adminCreateUserInputToSDK(in *model.AdminCreateUserInput) *cognitoidentityprovider.AdminCreateUserInput {
	if in == nil {
		return nil
	}
	out := &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:             in.UserPoolId,
		Username:               in.Username,
		UserAttributes:         convertSlice(in.UserAttributes, attributeToSDK),
		ValidationData:         convertSlice(in.ValidationData, attributeToSDK),
		TemporaryPassword:      in.TemporaryPassword,
		MessageAction:          types.MessageActionType(in.MessageAction),
		DesiredDeliveryMediums: convertEnums[types.DeliveryMediumType](in.DesiredDeliveryMediums),
		ClientMetadata:         maps.Clone(in.ClientMetadata),
	}
	setBool(&out.ForceAliasCreation, in.ForceAliasCreation)
	return out
}

func adminCreateUserOutputFromSDK(in *cognitoidentityprovider.AdminCreateUserOutput) *model.AdminCreateUserOutput {
	if in == nil {
		return nil
	}
	return &model.AdminCreateUserOutput{
		User: userFromSDK(in.User),
	}
}

func adminGetUserInputToSDK(in *model.AdminGetUserInput) *cognitoidentityprovider.AdminGetUserInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: in.UserPoolId,
		Username:   in.Username,
	}
}

func adminGetUserOutputFromSDK(in *cognitoidentityprovider.AdminGetUserOutput) *model.AdminGetUserOutput {
	if in == nil {
		return nil
	}
	return &model.AdminGetUserOutput{
		Username:             in.Username,
		UserAttributes:       convertSlice(in.UserAttributes, attributeFromSDK),
		UserCreateDate:       in.UserCreateDate,
		UserLastModifiedDate: in.UserLastModifiedDate,
		Enabled:              readBool(in.Enabled),
		UserStatus:           model.UserStatusType(in.UserStatus),
		MFAOptions:           convertSlice(in.MFAOptions, mfaOptionFromSDK),
		PreferredMfaSetting:  in.PreferredMfaSetting,
		UserMFASettingList:   slices.Clone(in.UserMFASettingList),
	}
}

func adminUpdateUserAttributesInputToSDK(in *model.AdminUpdateUserAttributesInput) *cognitoidentityprovider.AdminUpdateUserAttributesInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminUpdateUserAttributesInput{
		UserPoolId:     in.UserPoolId,
		Username:       in.Username,
		UserAttributes: convertSlice(in.UserAttributes, attributeToSDK),
		ClientMetadata: maps.Clone(in.ClientMetadata),
	}
}

func adminUpdateUserAttributesOutputFromSDK(*cognitoidentityprovider.AdminUpdateUserAttributesOutput) *model.AdminUpdateUserAttributesOutput {
	return &model.AdminUpdateUserAttributesOutput{}
}

func adminEnableUserInputToSDK(in *model.AdminEnableUserInput) *cognitoidentityprovider.AdminEnableUserInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminEnableUserInput{
		UserPoolId: in.UserPoolId,
		Username:   in.Username,
	}
}

func adminEnableUserOutputFromSDK(*cognitoidentityprovider.AdminEnableUserOutput) *model.AdminEnableUserOutput {
	return &model.AdminEnableUserOutput{}
}

func adminDisableUserInputToSDK(in *model.AdminDisableUserInput) *cognitoidentityprovider.AdminDisableUserInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: in.UserPoolId,
		Username:   in.Username,
	}
}

func adminDisableUserOutputFromSDK(*cognitoidentityprovider.AdminDisableUserOutput) *model.AdminDisableUserOutput {
	return &model.AdminDisableUserOutput{}
}

func adminDeleteUserInputToSDK(in *model.AdminDeleteUserInput) *cognitoidentityprovider.AdminDeleteUserInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: in.UserPoolId,
		Username:   in.Username,
	}
}

func adminDeleteUserOutputFromSDK(*cognitoidentityprovider.AdminDeleteUserOutput) *model.AdminDeleteUserOutput {
	return &model.AdminDeleteUserOutput{}
}

func listUsersInputToSDK(in *model.ListUsersInput) *cognitoidentityprovider.ListUsersInput {
	if in == nil {
		return nil
	}
	out := &cognitoidentityprovider.ListUsersInput{
		UserPoolId:      in.UserPoolId,
		AttributesToGet: slices.Clone(in.AttributesToGet),
		PaginationToken: in.PaginationToken,
		Filter:          in.Filter,
	}
	setInt32(&out.Limit, in.Limit)
	return out
}

func listUsersOutputFromSDK(in *cognitoidentityprovider.ListUsersOutput) *model.ListUsersOutput {
	if in == nil {
		return nil
	}
	return &model.ListUsersOutput{
		Users:           convertSlice(in.Users, userFromSDK),
		PaginationToken: in.PaginationToken,
	}
}

func signUpInputToSDK(in *model.SignUpInput) *cognitoidentityprovider.SignUpInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.SignUpInput{
		ClientId:          in.ClientId,
		SecretHash:        in.SecretHash,
		Username:          in.Username,
		Password:          in.Password,
		UserAttributes:    convertSlice(in.UserAttributes, attributeToSDK),
		ValidationData:    convertSlice(in.ValidationData, attributeToSDK),
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		UserContextData:   userContextDataToSDK(in.UserContextData),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
	}
}

func signUpOutputFromSDK(in *cognitoidentityprovider.SignUpOutput) *model.SignUpOutput {
	if in == nil {
		return nil
	}
	return &model.SignUpOutput{
		UserConfirmed:       readBool(in.UserConfirmed),
		CodeDeliveryDetails: codeDeliveryDetailsFromSDK(in.CodeDeliveryDetails),
		UserSub:             in.UserSub,
	}
}

func confirmSignUpInputToSDK(in *model.ConfirmSignUpInput) *cognitoidentityprovider.ConfirmSignUpInput {
	if in == nil {
		return nil
	}
	out := &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:          in.ClientId,
		SecretHash:        in.SecretHash,
		Username:          in.Username,
		ConfirmationCode:  in.ConfirmationCode,
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		UserContextData:   userContextDataToSDK(in.UserContextData),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
	}
	setBool(&out.ForceAliasCreation, in.ForceAliasCreation)
	return out
}

func confirmSignUpOutputFromSDK(*cognitoidentityprovider.ConfirmSignUpOutput) *model.ConfirmSignUpOutput {
	return &model.ConfirmSignUpOutput{}
}
