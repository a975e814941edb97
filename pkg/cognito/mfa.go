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

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// GetUserPoolMfaConfig returns the MFA configuration of a user pool.
func (c *AWSClient) GetUserPoolMfaConfig(ctx context.Context, in *model.GetUserPoolMfaConfigInput) (*model.GetUserPoolMfaConfigOutput, error) {
	return invoke(ctx, c, "GetUserPoolMfaConfig", withDefaultPool(in, c.UserPoolID()),
		getUserPoolMfaConfigInputToSDK, c.cognito.GetUserPoolMfaConfig, getUserPoolMfaConfigOutputFromSDK)
}

// SetUserPoolMfaConfig sets the MFA configuration of a user pool.
func (c *AWSClient) SetUserPoolMfaConfig(ctx context.Context, in *model.SetUserPoolMfaConfigInput) (*model.SetUserPoolMfaConfigOutput, error) {
	return invoke(ctx, c, "SetUserPoolMfaConfig", withDefaultPool(in, c.UserPoolID()),
		setUserPoolMfaConfigInputToSDK, c.cognito.SetUserPoolMfaConfig, setUserPoolMfaConfigOutputFromSDK)
}

// AdminSetUserMFAPreference sets the MFA preference of a user as an administrator.
func (c *AWSClient) AdminSetUserMFAPreference(ctx context.Context, in *model.AdminSetUserMFAPreferenceInput) (*model.AdminSetUserMFAPreferenceOutput, error) {
	return invoke(ctx, c, "AdminSetUserMFAPreference", withDefaultPool(in, c.UserPoolID()),
		adminSetUserMFAPreferenceInputToSDK, c.cognito.AdminSetUserMFAPreference, adminSetUserMFAPreferenceOutputFromSDK)
}

// AssociateSoftwareToken starts the registration of a TOTP authenticator.
func (c *AWSClient) AssociateSoftwareToken(ctx context.Context, in *model.AssociateSoftwareTokenInput) (*model.AssociateSoftwareTokenOutput, error) {
	return invoke(ctx, c, "AssociateSoftwareToken", in,
		associateSoftwareTokenInputToSDK, c.cognito.AssociateSoftwareToken, associateSoftwareTokenOutputFromSDK)
}

// VerifySoftwareToken completes the registration of a TOTP authenticator.
func (c *AWSClient) VerifySoftwareToken(ctx context.Context, in *model.VerifySoftwareTokenInput) (*model.VerifySoftwareTokenOutput, error) {
	return invoke(ctx, c, "VerifySoftwareToken", in,
		verifySoftwareTokenInputToSDK, c.cognito.VerifySoftwareToken, verifySoftwareTokenOutputFromSDK)
}

func getUserPoolMfaConfigInputToSDK(in *model.GetUserPoolMfaConfigInput) *cognitoidentityprovider.GetUserPoolMfaConfigInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.GetUserPoolMfaConfigInput{
		UserPoolId: in.UserPoolId,
	}
}

func getUserPoolMfaConfigOutputFromSDK(in *cognitoidentityprovider.GetUserPoolMfaConfigOutput) *model.GetUserPoolMfaConfigOutput {
	if in == nil {
		return nil
	}
	return &model.GetUserPoolMfaConfigOutput{
		SmsMfaConfiguration:           smsMfaConfigFromSDK(in.SmsMfaConfiguration),
		SoftwareTokenMfaConfiguration: softwareTokenMfaConfigFromSDK(in.SoftwareTokenMfaConfiguration),
		MfaConfiguration:              model.UserPoolMfaType(in.MfaConfiguration),
	}
}

func setUserPoolMfaConfigInputToSDK(in *model.SetUserPoolMfaConfigInput) *cognitoidentityprovider.SetUserPoolMfaConfigInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.SetUserPoolMfaConfigInput{
		UserPoolId:                    in.UserPoolId,
		SmsMfaConfiguration:           smsMfaConfigToSDK(in.SmsMfaConfiguration),
		SoftwareTokenMfaConfiguration: softwareTokenMfaConfigToSDK(in.SoftwareTokenMfaConfiguration),
		MfaConfiguration:              types.UserPoolMfaType(in.MfaConfiguration),
	}
}

func setUserPoolMfaConfigOutputFromSDK(in *cognitoidentityprovider.SetUserPoolMfaConfigOutput) *model.SetUserPoolMfaConfigOutput {
	if in == nil {
		return nil
	}
	return &model.SetUserPoolMfaConfigOutput{
		SmsMfaConfiguration:           smsMfaConfigFromSDK(in.SmsMfaConfiguration),
		SoftwareTokenMfaConfiguration: softwareTokenMfaConfigFromSDK(in.SoftwareTokenMfaConfiguration),
		MfaConfiguration:              model.UserPoolMfaType(in.MfaConfiguration),
	}
}

func adminSetUserMFAPreferenceInputToSDK(in *model.AdminSetUserMFAPreferenceInput) *cognitoidentityprovider.AdminSetUserMFAPreferenceInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AdminSetUserMFAPreferenceInput{
		SMSMfaSettings:           smsMfaSettingsToSDK(in.SMSMfaSettings),
		SoftwareTokenMfaSettings: softwareTokenMfaSettingsToSDK(in.SoftwareTokenMfaSettings),
		Username:                 in.Username,
		UserPoolId:               in.UserPoolId,
	}
}

func adminSetUserMFAPreferenceOutputFromSDK(*cognitoidentityprovider.AdminSetUserMFAPreferenceOutput) *model.AdminSetUserMFAPreferenceOutput {
	return &model.AdminSetUserMFAPreferenceOutput{}
}

func associateSoftwareTokenInputToSDK(in *model.AssociateSoftwareTokenInput) *cognitoidentityprovider.AssociateSoftwareTokenInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.AssociateSoftwareTokenInput{
		AccessToken: in.AccessToken,
		Session:     in.Session,
	}
}

func associateSoftwareTokenOutputFromSDK(in *cognitoidentityprovider.AssociateSoftwareTokenOutput) *model.AssociateSoftwareTokenOutput {
	if in == nil {
		return nil
	}
	return &model.AssociateSoftwareTokenOutput{
		SecretCode: in.SecretCode,
		Session:    in.Session,
	}
}

func verifySoftwareTokenInputToSDK(in *model.VerifySoftwareTokenInput) *cognitoidentityprovider.VerifySoftwareTokenInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.VerifySoftwareTokenInput{
		AccessToken:        in.AccessToken,
		Session:            in.Session,
		UserCode:           in.UserCode,
		FriendlyDeviceName: in.FriendlyDeviceName,
	}
}

func verifySoftwareTokenOutputFromSDK(in *cognitoidentityprovider.VerifySoftwareTokenOutput) *model.VerifySoftwareTokenOutput {
	if in == nil {
		return nil
	}
	return &model.VerifySoftwareTokenOutput{
		Status:  model.VerifySoftwareTokenResponseType(in.Status),
		Session: in.Session,
	}
}
