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
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// setBool stores v in dst, which the SDK declares either as a value or as a
// pointer. A nil v leaves dst untouched.
func setBool[T bool | *bool](dst *T, v *bool) {
	if v == nil {
		return
	}
	switch d := any(dst).(type) {
	case *bool:
		*d = *v
	case **bool:
		*d = aws.Bool(*v)
	}
}

func readBool[T bool | *bool](v T) *bool {
	switch x := any(v).(type) {
	case bool:
		return &x
	case *bool:
		if x == nil {
			return nil
		}
		return aws.Bool(*x)
	}
	return nil
}

func setInt32[T int32 | *int32](dst *T, v *int32) {
	if v == nil {
		return
	}
	switch d := any(dst).(type) {
	case *int32:
		*d = *v
	case **int32:
		*d = aws.Int32(*v)
	}
}

func readInt32[T int32 | *int32](v T) *int32 {
	switch x := any(v).(type) {
	case int32:
		return &x
	case *int32:
		if x == nil {
			return nil
		}
		return aws.Int32(*x)
	}
	return nil
}

// convertEnums converts between the model and SDK flavours of an enum list.
func convertEnums[D, S ~string](in []S) []D {
	if in == nil {
		return nil
	}
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = D(v)
	}
	return out
}

// convertSlice converts a list of structures element by element.
func convertSlice[S, D any](in []S, convert func(*S) *D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, 0, len(in))
	for i := range in {
		out = append(out, *convert(&in[i]))
	}
	return out
}

func attributeToSDK(in *model.AttributeType) *types.AttributeType {
	if in == nil {
		return nil
	}
	return &types.AttributeType{
		Name:  in.Name,
		Value: in.Value,
	}
}

func attributeFromSDK(in *types.AttributeType) *model.AttributeType {
	if in == nil {
		return nil
	}
	return &model.AttributeType{
		Name:  in.Name,
		Value: in.Value,
	}
}

func mfaOptionFromSDK(in *types.MFAOptionType) *model.MFAOptionType {
	if in == nil {
		return nil
	}
	return &model.MFAOptionType{
		DeliveryMedium: model.DeliveryMediumType(in.DeliveryMedium),
		AttributeName:  in.AttributeName,
	}
}

func userFromSDK(in *types.UserType) *model.UserType {
	if in == nil {
		return nil
	}
	return &model.UserType{
		Username:             in.Username,
		Attributes:           convertSlice(in.Attributes, attributeFromSDK),
		UserCreateDate:       in.UserCreateDate,
		UserLastModifiedDate: in.UserLastModifiedDate,
		Enabled:              readBool(in.Enabled),
		UserStatus:           model.UserStatusType(in.UserStatus),
		MFAOptions:           convertSlice(in.MFAOptions, mfaOptionFromSDK),
	}
}

func userPoolDescriptionFromSDK(in *types.UserPoolDescriptionType) *model.UserPoolDescriptionType {
	if in == nil {
		return nil
	}
	return &model.UserPoolDescriptionType{
		Id:               in.Id,
		Name:             in.Name,
		Status:           model.StatusType(in.Status),
		LastModifiedDate: in.LastModifiedDate,
		CreationDate:     in.CreationDate,
	}
}

func passwordPolicyToSDK(in *model.PasswordPolicyType) *types.PasswordPolicyType {
	if in == nil {
		return nil
	}
	out := &types.PasswordPolicyType{}
	setInt32(&out.MinimumLength, in.MinimumLength)
	setBool(&out.RequireUppercase, in.RequireUppercase)
	setBool(&out.RequireLowercase, in.RequireLowercase)
	setBool(&out.RequireNumbers, in.RequireNumbers)
	setBool(&out.RequireSymbols, in.RequireSymbols)
	setInt32(&out.TemporaryPasswordValidityDays, in.TemporaryPasswordValidityDays)
	return out
}

func passwordPolicyFromSDK(in *types.PasswordPolicyType) *model.PasswordPolicyType {
	if in == nil {
		return nil
	}
	return &model.PasswordPolicyType{
		MinimumLength:                 readInt32(in.MinimumLength),
		RequireUppercase:              readBool(in.RequireUppercase),
		RequireLowercase:              readBool(in.RequireLowercase),
		RequireNumbers:                readBool(in.RequireNumbers),
		RequireSymbols:                readBool(in.RequireSymbols),
		TemporaryPasswordValidityDays: readInt32(in.TemporaryPasswordValidityDays),
	}
}

func userPoolPolicyToSDK(in *model.UserPoolPolicyType) *types.UserPoolPolicyType {
	if in == nil {
		return nil
	}
	return &types.UserPoolPolicyType{
		PasswordPolicy: passwordPolicyToSDK(in.PasswordPolicy),
	}
}

func userPoolPolicyFromSDK(in *types.UserPoolPolicyType) *model.UserPoolPolicyType {
	if in == nil {
		return nil
	}
	return &model.UserPoolPolicyType{
		PasswordPolicy: passwordPolicyFromSDK(in.PasswordPolicy),
	}
}

func deviceConfigurationToSDK(in *model.DeviceConfigurationType) *types.DeviceConfigurationType {
	if in == nil {
		return nil
	}
	out := &types.DeviceConfigurationType{}
	setBool(&out.ChallengeRequiredOnNewDevice, in.ChallengeRequiredOnNewDevice)
	setBool(&out.DeviceOnlyRememberedOnUserPrompt, in.DeviceOnlyRememberedOnUserPrompt)
	return out
}

func deviceConfigurationFromSDK(in *types.DeviceConfigurationType) *model.DeviceConfigurationType {
	if in == nil {
		return nil
	}
	return &model.DeviceConfigurationType{
		ChallengeRequiredOnNewDevice:     readBool(in.ChallengeRequiredOnNewDevice),
		DeviceOnlyRememberedOnUserPrompt: readBool(in.DeviceOnlyRememberedOnUserPrompt),
	}
}

func smsConfigurationToSDK(in *model.SmsConfigurationType) *types.SmsConfigurationType {
	if in == nil {
		return nil
	}
	return &types.SmsConfigurationType{
		SnsCallerArn: in.SnsCallerArn,
		ExternalId:   in.ExternalId,
		SnsRegion:    in.SnsRegion,
	}
}

func smsConfigurationFromSDK(in *types.SmsConfigurationType) *model.SmsConfigurationType {
	if in == nil {
		return nil
	}
	return &model.SmsConfigurationType{
		SnsCallerArn: in.SnsCallerArn,
		ExternalId:   in.ExternalId,
		SnsRegion:    in.SnsRegion,
	}
}

func userPoolFromSDK(in *types.UserPoolType) *model.UserPoolType {
	if in == nil {
		return nil
	}
	return &model.UserPoolType{
		Id:                       in.Id,
		Name:                     in.Name,
		Arn:                      in.Arn,
		Policies:                 userPoolPolicyFromSDK(in.Policies),
		Status:                   model.StatusType(in.Status),
		LastModifiedDate:         in.LastModifiedDate,
		CreationDate:             in.CreationDate,
		AutoVerifiedAttributes:   convertEnums[model.VerifiedAttributeType](in.AutoVerifiedAttributes),
		SmsAuthenticationMessage: in.SmsAuthenticationMessage,
		MfaConfiguration:         model.UserPoolMfaType(in.MfaConfiguration),
		DeviceConfiguration:      deviceConfigurationFromSDK(in.DeviceConfiguration),
		EstimatedNumberOfUsers:   readInt32(in.EstimatedNumberOfUsers),
		SmsConfiguration:         smsConfigurationFromSDK(in.SmsConfiguration),
		UserPoolTags:             maps.Clone(in.UserPoolTags),
		Domain:                   in.Domain,
		CustomDomain:             in.CustomDomain,
	}
}

func userPoolClientFromSDK(in *types.UserPoolClientType) *model.UserPoolClientType {
	if in == nil {
		return nil
	}
	return &model.UserPoolClientType{
		UserPoolId:                      in.UserPoolId,
		ClientName:                      in.ClientName,
		ClientId:                        in.ClientId,
		ClientSecret:                    in.ClientSecret,
		LastModifiedDate:                in.LastModifiedDate,
		CreationDate:                    in.CreationDate,
		RefreshTokenValidity:            readInt32(in.RefreshTokenValidity),
		AccessTokenValidity:             readInt32(in.AccessTokenValidity),
		IdTokenValidity:                 readInt32(in.IdTokenValidity),
		ReadAttributes:                  slices.Clone(in.ReadAttributes),
		WriteAttributes:                 slices.Clone(in.WriteAttributes),
		ExplicitAuthFlows:               convertEnums[model.ExplicitAuthFlowsType](in.ExplicitAuthFlows),
		SupportedIdentityProviders:      slices.Clone(in.SupportedIdentityProviders),
		CallbackURLs:                    slices.Clone(in.CallbackURLs),
		LogoutURLs:                      slices.Clone(in.LogoutURLs),
		DefaultRedirectURI:              in.DefaultRedirectURI,
		AllowedOAuthFlows:               convertEnums[model.OAuthFlowType](in.AllowedOAuthFlows),
		AllowedOAuthScopes:              slices.Clone(in.AllowedOAuthScopes),
		AllowedOAuthFlowsUserPoolClient: readBool(in.AllowedOAuthFlowsUserPoolClient),
		PreventUserExistenceErrors:      model.PreventUserExistenceErrorTypes(in.PreventUserExistenceErrors),
		EnableTokenRevocation:           readBool(in.EnableTokenRevocation),
	}
}

func analyticsMetadataToSDK(in *model.AnalyticsMetadataType) *types.AnalyticsMetadataType {
	if in == nil {
		return nil
	}
	return &types.AnalyticsMetadataType{
		AnalyticsEndpointId: in.AnalyticsEndpointId,
	}
}

func userContextDataToSDK(in *model.UserContextDataType) *types.UserContextDataType {
	if in == nil {
		return nil
	}
	return &types.UserContextDataType{
		IpAddress:   in.IpAddress,
		EncodedData: in.EncodedData,
	}
}

func httpHeaderToSDK(in *model.HttpHeader) *types.HttpHeader {
	if in == nil {
		return nil
	}
	return &types.HttpHeader{
		HeaderName:  in.HeaderName,
		HeaderValue: in.HeaderValue,
	}
}

func contextDataToSDK(in *model.ContextDataType) *types.ContextDataType {
	if in == nil {
		return nil
	}
	return &types.ContextDataType{
		IpAddress:   in.IpAddress,
		ServerName:  in.ServerName,
		ServerPath:  in.ServerPath,
		HttpHeaders: convertSlice(in.HttpHeaders, httpHeaderToSDK),
		EncodedData: in.EncodedData,
	}
}

func newDeviceMetadataFromSDK(in *types.NewDeviceMetadataType) *model.NewDeviceMetadataType {
	if in == nil {
		return nil
	}
	return &model.NewDeviceMetadataType{
		DeviceKey:      in.DeviceKey,
		DeviceGroupKey: in.DeviceGroupKey,
	}
}

func authenticationResultFromSDK(in *types.AuthenticationResultType) *model.AuthenticationResultType {
	if in == nil {
		return nil
	}
	return &model.AuthenticationResultType{
		AccessToken:       in.AccessToken,
		ExpiresIn:         readInt32(in.ExpiresIn),
		TokenType:         in.TokenType,
		RefreshToken:      in.RefreshToken,
		IdToken:           in.IdToken,
		NewDeviceMetadata: newDeviceMetadataFromSDK(in.NewDeviceMetadata),
	}
}

func codeDeliveryDetailsFromSDK(in *types.CodeDeliveryDetailsType) *model.CodeDeliveryDetailsType {
	if in == nil {
		return nil
	}
	return &model.CodeDeliveryDetailsType{
		Destination:    in.Destination,
		DeliveryMedium: model.DeliveryMediumType(in.DeliveryMedium),
		AttributeName:  in.AttributeName,
	}
}

func smsMfaConfigToSDK(in *model.SmsMfaConfigType) *types.SmsMfaConfigType {
	if in == nil {
		return nil
	}
	return &types.SmsMfaConfigType{
		SmsAuthenticationMessage: in.SmsAuthenticationMessage,
		SmsConfiguration:         smsConfigurationToSDK(in.SmsConfiguration),
	}
}

func smsMfaConfigFromSDK(in *types.SmsMfaConfigType) *model.SmsMfaConfigType {
	if in == nil {
		return nil
	}
	return &model.SmsMfaConfigType{
		SmsAuthenticationMessage: in.SmsAuthenticationMessage,
		SmsConfiguration:         smsConfigurationFromSDK(in.SmsConfiguration),
	}
}

func softwareTokenMfaConfigToSDK(in *model.SoftwareTokenMfaConfigType) *types.SoftwareTokenMfaConfigType {
	if in == nil {
		return nil
	}
	out := &types.SoftwareTokenMfaConfigType{}
	setBool(&out.Enabled, in.Enabled)
	return out
}

func softwareTokenMfaConfigFromSDK(in *types.SoftwareTokenMfaConfigType) *model.SoftwareTokenMfaConfigType {
	if in == nil {
		return nil
	}
	return &model.SoftwareTokenMfaConfigType{
		Enabled: readBool(in.Enabled),
	}
}

func smsMfaSettingsToSDK(in *model.SMSMfaSettingsType) *types.SMSMfaSettingsType {
	if in == nil {
		return nil
	}
	out := &types.SMSMfaSettingsType{}
	setBool(&out.Enabled, in.Enabled)
	setBool(&out.PreferredMfa, in.PreferredMfa)
	return out
}

func softwareTokenMfaSettingsToSDK(in *model.SoftwareTokenMfaSettingsType) *types.SoftwareTokenMfaSettingsType {
	if in == nil {
		return nil
	}
	out := &types.SoftwareTokenMfaSettingsType{}
	setBool(&out.Enabled, in.Enabled)
	setBool(&out.PreferredMfa, in.PreferredMfa)
	return out
}

func notifyEmailToSDK(in *model.NotifyEmailType) *types.NotifyEmailType {
	if in == nil {
		return nil
	}
	return &types.NotifyEmailType{
		Subject:  in.Subject,
		HtmlBody: in.HtmlBody,
		TextBody: in.TextBody,
	}
}

func notifyEmailFromSDK(in *types.NotifyEmailType) *model.NotifyEmailType {
	if in == nil {
		return nil
	}
	return &model.NotifyEmailType{
		Subject:  in.Subject,
		HtmlBody: in.HtmlBody,
		TextBody: in.TextBody,
	}
}

func notifyConfigurationToSDK(in *model.NotifyConfigurationType) *types.NotifyConfigurationType {
	if in == nil {
		return nil
	}
	return &types.NotifyConfigurationType{
		From:          in.From,
		ReplyTo:       in.ReplyTo,
		SourceArn:     in.SourceArn,
		BlockEmail:    notifyEmailToSDK(in.BlockEmail),
		NoActionEmail: notifyEmailToSDK(in.NoActionEmail),
		MfaEmail:      notifyEmailToSDK(in.MfaEmail),
	}
}

func notifyConfigurationFromSDK(in *types.NotifyConfigurationType) *model.NotifyConfigurationType {
	if in == nil {
		return nil
	}
	return &model.NotifyConfigurationType{
		From:          in.From,
		ReplyTo:       in.ReplyTo,
		SourceArn:     in.SourceArn,
		BlockEmail:    notifyEmailFromSDK(in.BlockEmail),
		NoActionEmail: notifyEmailFromSDK(in.NoActionEmail),
		MfaEmail:      notifyEmailFromSDK(in.MfaEmail),
	}
}

func accountTakeoverActionToSDK(in *model.AccountTakeoverActionType) *types.AccountTakeoverActionType {
	if in == nil {
		return nil
	}
	out := &types.AccountTakeoverActionType{
		EventAction: types.AccountTakeoverEventActionType(in.EventAction),
	}
	setBool(&out.Notify, in.Notify)
	return out
}

func accountTakeoverActionFromSDK(in *types.AccountTakeoverActionType) *model.AccountTakeoverActionType {
	if in == nil {
		return nil
	}
	return &model.AccountTakeoverActionType{
		Notify:      readBool(in.Notify),
		EventAction: model.AccountTakeoverEventActionType(in.EventAction),
	}
}

func accountTakeoverActionsToSDK(in *model.AccountTakeoverActionsType) *types.AccountTakeoverActionsType {
	if in == nil {
		return nil
	}
	return &types.AccountTakeoverActionsType{
		LowAction:    accountTakeoverActionToSDK(in.LowAction),
		MediumAction: accountTakeoverActionToSDK(in.MediumAction),
		HighAction:   accountTakeoverActionToSDK(in.HighAction),
	}
}

func accountTakeoverActionsFromSDK(in *types.AccountTakeoverActionsType) *model.AccountTakeoverActionsType {
	if in == nil {
		return nil
	}
	return &model.AccountTakeoverActionsType{
		LowAction:    accountTakeoverActionFromSDK(in.LowAction),
		MediumAction: accountTakeoverActionFromSDK(in.MediumAction),
		HighAction:   accountTakeoverActionFromSDK(in.HighAction),
	}
}

func accountTakeoverRiskConfigurationToSDK(in *model.AccountTakeoverRiskConfigurationType) *types.AccountTakeoverRiskConfigurationType {
	if in == nil {
		return nil
	}
	return &types.AccountTakeoverRiskConfigurationType{
		NotifyConfiguration: notifyConfigurationToSDK(in.NotifyConfiguration),
		Actions:             accountTakeoverActionsToSDK(in.Actions),
	}
}

func accountTakeoverRiskConfigurationFromSDK(in *types.AccountTakeoverRiskConfigurationType) *model.AccountTakeoverRiskConfigurationType {
	if in == nil {
		return nil
	}
	return &model.AccountTakeoverRiskConfigurationType{
		NotifyConfiguration: notifyConfigurationFromSDK(in.NotifyConfiguration),
		Actions:             accountTakeoverActionsFromSDK(in.Actions),
	}
}

func compromisedCredentialsActionsToSDK(in *model.CompromisedCredentialsActionsType) *types.CompromisedCredentialsActionsType {
	if in == nil {
		return nil
	}
	return &types.CompromisedCredentialsActionsType{
		EventAction: types.CompromisedCredentialsEventActionType(in.EventAction),
	}
}

func compromisedCredentialsActionsFromSDK(in *types.CompromisedCredentialsActionsType) *model.CompromisedCredentialsActionsType {
	if in == nil {
		return nil
	}
	return &model.CompromisedCredentialsActionsType{
		EventAction: model.CompromisedCredentialsEventActionType(in.EventAction),
	}
}

func compromisedCredentialsRiskConfigurationToSDK(in *model.CompromisedCredentialsRiskConfigurationType) *types.CompromisedCredentialsRiskConfigurationType {
	if in == nil {
		return nil
	}
	return &types.CompromisedCredentialsRiskConfigurationType{
		EventFilter: convertEnums[types.EventFilterType](in.EventFilter),
		Actions:     compromisedCredentialsActionsToSDK(in.Actions),
	}
}

func compromisedCredentialsRiskConfigurationFromSDK(in *types.CompromisedCredentialsRiskConfigurationType) *model.CompromisedCredentialsRiskConfigurationType {
	if in == nil {
		return nil
	}
	return &model.CompromisedCredentialsRiskConfigurationType{
		EventFilter: convertEnums[model.EventFilterType](in.EventFilter),
		Actions:     compromisedCredentialsActionsFromSDK(in.Actions),
	}
}

func riskExceptionConfigurationToSDK(in *model.RiskExceptionConfigurationType) *types.RiskExceptionConfigurationType {
	if in == nil {
		return nil
	}
	return &types.RiskExceptionConfigurationType{
		BlockedIPRangeList: slices.Clone(in.BlockedIPRangeList),
		SkippedIPRangeList: slices.Clone(in.SkippedIPRangeList),
	}
}

func riskExceptionConfigurationFromSDK(in *types.RiskExceptionConfigurationType) *model.RiskExceptionConfigurationType {
	if in == nil {
		return nil
	}
	return &model.RiskExceptionConfigurationType{
		BlockedIPRangeList: slices.Clone(in.BlockedIPRangeList),
		SkippedIPRangeList: slices.Clone(in.SkippedIPRangeList),
	}
}

func riskConfigurationFromSDK(in *types.RiskConfigurationType) *model.RiskConfigurationType {
	if in == nil {
		return nil
	}
	return &model.RiskConfigurationType{
		UserPoolId:                              in.UserPoolId,
		ClientId:                                in.ClientId,
		CompromisedCredentialsRiskConfiguration: compromisedCredentialsRiskConfigurationFromSDK(in.CompromisedCredentialsRiskConfiguration),
		AccountTakeoverRiskConfiguration:        accountTakeoverRiskConfigurationFromSDK(in.AccountTakeoverRiskConfiguration),
		RiskExceptionConfiguration:              riskExceptionConfigurationFromSDK(in.RiskExceptionConfiguration),
		LastModifiedDate:                        in.LastModifiedDate,
	}
}

func customDomainConfigToSDK(in *model.CustomDomainConfigType) *types.CustomDomainConfigType {
	if in == nil {
		return nil
	}
	return &types.CustomDomainConfigType{
		CertificateArn: in.CertificateArn,
	}
}

func customDomainConfigFromSDK(in *types.CustomDomainConfigType) *model.CustomDomainConfigType {
	if in == nil {
		return nil
	}
	return &model.CustomDomainConfigType{
		CertificateArn: in.CertificateArn,
	}
}

func domainDescriptionFromSDK(in *types.DomainDescriptionType) *model.DomainDescriptionType {
	if in == nil {
		return nil
	}
	return &model.DomainDescriptionType{
		UserPoolId:             in.UserPoolId,
		AWSAccountId:           in.AWSAccountId,
		Domain:                 in.Domain,
		S3Bucket:               in.S3Bucket,
		CloudFrontDistribution: in.CloudFrontDistribution,
		Version:                in.Version,
		Status:                 model.DomainStatusType(in.Status),
		CustomDomainConfig:     customDomainConfigFromSDK(in.CustomDomainConfig),
	}
}

func identityProviderFromSDK(in *types.IdentityProviderType) *model.IdentityProviderType {
	if in == nil {
		return nil
	}
	return &model.IdentityProviderType{
		UserPoolId:       in.UserPoolId,
		ProviderName:     in.ProviderName,
		ProviderType:     model.IdentityProviderTypeType(in.ProviderType),
		ProviderDetails:  maps.Clone(in.ProviderDetails),
		AttributeMapping: maps.Clone(in.AttributeMapping),
		IdpIdentifiers:   slices.Clone(in.IdpIdentifiers),
		LastModifiedDate: in.LastModifiedDate,
		CreationDate:     in.CreationDate,
	}
}

func resourceServerScopeToSDK(in *model.ResourceServerScopeType) *types.ResourceServerScopeType {
	if in == nil {
		return nil
	}
	return &types.ResourceServerScopeType{
		ScopeName:        in.ScopeName,
		ScopeDescription: in.ScopeDescription,
	}
}

func resourceServerScopeFromSDK(in *types.ResourceServerScopeType) *model.ResourceServerScopeType {
	if in == nil {
		return nil
	}
	return &model.ResourceServerScopeType{
		ScopeName:        in.ScopeName,
		ScopeDescription: in.ScopeDescription,
	}
}

func resourceServerFromSDK(in *types.ResourceServerType) *model.ResourceServerType {
	if in == nil {
		return nil
	}
	return &model.ResourceServerType{
		UserPoolId: in.UserPoolId,
		Identifier: in.Identifier,
		Name:       in.Name,
		Scopes:     convertSlice(in.Scopes, resourceServerScopeFromSDK),
	}
}
