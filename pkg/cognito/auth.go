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

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// InitiateAuth starts a sign-in flow through an app client.
func (c *AWSClient) InitiateAuth(ctx context.Context, in *model.InitiateAuthInput) (*model.InitiateAuthOutput, error) {
	return invoke(ctx, c, "InitiateAuth", in,
		initiateAuthInputToSDK, c.cognito.InitiateAuth, initiateAuthOutputFromSDK)
}

// AdminInitiateAuth starts a sign-in flow as an administrator.
func (c *AWSClient) AdminInitiateAuth(ctx context.Context, in *model.AdminInitiateAuthInput) (*model.AdminInitiateAuthOutput, error) {
	return invoke(ctx, c, "AdminInitiateAuth", withDefaultPool(in, c.UserPoolID()),
		adminInitiateAuthInputToSDK, c.cognito.AdminInitiateAuth, adminInitiateAuthOutputFromSDK)
}

// RespondToAuthChallenge answers a challenge of a sign-in flow.
func (c *AWSClient) RespondToAuthChallenge(ctx context.Context, in *model.RespondToAuthChallengeInput) (*model.RespondToAuthChallengeOutput, error) {
	return invoke(ctx, c, "RespondToAuthChallenge", in,
		respondToAuthChallengeInputToSDK, c.cognito.RespondToAuthChallenge, respondToAuthChallengeOutputFromSDK)
}

// AdminRespondToAuthChallenge answers a challenge of a sign-in flow as an administrator.
func (c *AWSClient) AdminRespondToAuthChallenge(ctx context.Context, in *model.AdminRespondToAuthChallengeInput) (*model.AdminRespondToAuthChallengeOutput, error) {
	return invoke(ctx, c, "AdminRespondToAuthChallenge", withDefaultPool(in, c.UserPoolID()),
		adminRespondToAuthChallengeInputToSDK, c.cognito.AdminRespondToAuthChallenge, adminRespondToAuthChallengeOutputFromSDK)
}

// ForgotPassword sends a password reset code to a user.
func (c *AWSClient) ForgotPassword(ctx context.Context, in *model.ForgotPasswordInput) (*model.ForgotPasswordOutput, error) {
	return invoke(ctx, c, "ForgotPassword", in,
		forgotPasswordInputToSDK, c.cognito.ForgotPassword, forgotPasswordOutputFromSDK)
}

// ConfirmForgotPassword sets a new password with a password reset code.
func (c *AWSClient) ConfirmForgotPassword(ctx context.Context, in *model.ConfirmForgotPasswordInput) (*model.ConfirmForgotPasswordOutput, error) {
	return invoke(ctx, c, "ConfirmForgotPassword", in,
		confirmForgotPasswordInputToSDK, c.cognito.ConfirmForgotPassword, confirmForgotPasswordOutputFromSDK)
}

// ChangePassword changes the password of the signed-in user.
func (c *AWSClient) ChangePassword(ctx context.Context, in *model.ChangePasswordInput) (*model.ChangePasswordOutput, error) {
	return invoke(ctx, c, "ChangePassword", in,
		changePasswordInputToSDK, c.cognito.ChangePassword, changePasswordOutputFromSDK)
}

func initiateAuthInputToSDK(in *model.InitiateAuthInput) *cognitoidentityprovider.InitiateAuthInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow:          types.AuthFlowType(in.AuthFlow),
		AuthParameters:    maps.Clone(in.AuthParameters),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
		ClientId:          in.ClientId,
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		UserContextData:   userContextDataToSDK(in.UserContextData),
	}
}

func initiateAuthOutputFromSDK(in *cognitoidentityprovider.InitiateAuthOutput) *model.InitiateAuthOutput {
	if in == nil {
		return nil
	}
	return &model.InitiateAuthOutput{
		ChallengeName:        model.ChallengeNameType(in.ChallengeName),
		Session:              in.Session,
		ChallengeParameters:  maps.Clone(in.ChallengeParameters),
		AuthenticationResult: authenticationResultFromSDK(in.AuthenticationResult),
	}
}

func adminInitiateAuthInputToSDK(in *model.AdminInitiateAuthInput) *cognitoidentityprovider.AdminInitiateAuthInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminInitiateAuthInput{
		UserPoolId:        in.UserPoolId,
		ClientId:          in.ClientId,
		AuthFlow:          types.AuthFlowType(in.AuthFlow),
		AuthParameters:    maps.Clone(in.AuthParameters),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		ContextData:       contextDataToSDK(in.ContextData),
	}
}

func adminInitiateAuthOutputFromSDK(in *cognitoidentityprovider.AdminInitiateAuthOutput) *model.AdminInitiateAuthOutput {
	if in == nil {
		return nil
	}
	return &model.AdminInitiateAuthOutput{
		ChallengeName:        model.ChallengeNameType(in.ChallengeName),
		Session:              in.Session,
		ChallengeParameters:  maps.Clone(in.ChallengeParameters),
		AuthenticationResult: authenticationResultFromSDK(in.AuthenticationResult),
	}
}

func respondToAuthChallengeInputToSDK(in *model.RespondToAuthChallengeInput) *cognitoidentityprovider.RespondToAuthChallengeInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.RespondToAuthChallengeInput{
		ClientId:           in.ClientId,
		ChallengeName:      types.ChallengeNameType(in.ChallengeName),
		Session:            in.Session,
		ChallengeResponses: maps.Clone(in.ChallengeResponses),
		AnalyticsMetadata:  analyticsMetadataToSDK(in.AnalyticsMetadata),
		UserContextData:    userContextDataToSDK(in.UserContextData),
		ClientMetadata:     maps.Clone(in.ClientMetadata),
	}
}

func respondToAuthChallengeOutputFromSDK(in *cognitoidentityprovider.RespondToAuthChallengeOutput) *model.RespondToAuthChallengeOutput {
	if in == nil {
		return nil
	}
	return &model.RespondToAuthChallengeOutput{
		ChallengeName:        model.ChallengeNameType(in.ChallengeName),
		Session:              in.Session,
		ChallengeParameters:  maps.Clone(in.ChallengeParameters),
		AuthenticationResult: authenticationResultFromSDK(in.AuthenticationResult),
	}
}

func adminRespondToAuthChallengeInputToSDK(in *model.AdminRespondToAuthChallengeInput) *cognitoidentityprovider.AdminRespondToAuthChallengeInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminRespondToAuthChallengeInput{
		UserPoolId:         in.UserPoolId,
		ClientId:           in.ClientId,
		ChallengeName:      types.ChallengeNameType(in.ChallengeName),
		ChallengeResponses: maps.Clone(in.ChallengeResponses),
		Session:            in.Session,
		AnalyticsMetadata:  analyticsMetadataToSDK(in.AnalyticsMetadata),
		ContextData:        contextDataToSDK(in.ContextData),
		ClientMetadata:     maps.Clone(in.ClientMetadata),
	}
}

func adminRespondToAuthChallengeOutputFromSDK(in *cognitoidentityprovider.AdminRespondToAuthChallengeOutput) *model.AdminRespondToAuthChallengeOutput {
	if in == nil {
		return nil
	}
	return &model.AdminRespondToAuthChallengeOutput{
		ChallengeName:        model.ChallengeNameType(in.ChallengeName),
		Session:              in.Session,
		ChallengeParameters:  maps.Clone(in.ChallengeParameters),
		AuthenticationResult: authenticationResultFromSDK(in.AuthenticationResult),
	}
}

func forgotPasswordInputToSDK(in *model.ForgotPasswordInput) *cognitoidentityprovider.ForgotPasswordInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.ForgotPasswordInput{
		ClientId:          in.ClientId,
		SecretHash:        in.SecretHash,
		UserContextData:   userContextDataToSDK(in.UserContextData),
		Username:          in.Username,
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
	}
}

func forgotPasswordOutputFromSDK(in *cognitoidentityprovider.ForgotPasswordOutput) *model.ForgotPasswordOutput {
	if in == nil {
		return nil
	}
	return &model.ForgotPasswordOutput{
		CodeDeliveryDetails: codeDeliveryDetailsFromSDK(in.CodeDeliveryDetails),
	}
}

func confirmForgotPasswordInputToSDK(in *model.ConfirmForgotPasswordInput) *cognitoidentityprovider.ConfirmForgotPasswordInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:          in.ClientId,
		SecretHash:        in.SecretHash,
		Username:          in.Username,
		ConfirmationCode:  in.ConfirmationCode,
		Password:          in.Password,
		AnalyticsMetadata: analyticsMetadataToSDK(in.AnalyticsMetadata),
		UserContextData:   userContextDataToSDK(in.UserContextData),
		ClientMetadata:    maps.Clone(in.ClientMetadata),
	}
}

func confirmForgotPasswordOutputFromSDK(*cognitoidentityprovider.ConfirmForgotPasswordOutput) *model.ConfirmForgotPasswordOutput {
	return &model.ConfirmForgotPasswordOutput{}
}

func changePasswordInputToSDK(in *model.ChangePasswordInput) *cognitoidentityprovider.ChangePasswordInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.ChangePasswordInput{
		PreviousPassword: in.PreviousPassword,
		ProposedPassword: in.ProposedPassword,
		AccessToken:      in.AccessToken,
	}
}

func changePasswordOutputFromSDK(*cognitoidentityprovider.ChangePasswordOutput) *model.ChangePasswordOutput {
	return &model.ChangePasswordOutput{}
}
