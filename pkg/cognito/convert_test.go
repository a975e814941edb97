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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

func TestBoolAndInt32Helpers(t *testing.T) {
	var value bool
	var ptr *bool
	setBool(&value, aws.Bool(true))
	setBool(&ptr, aws.Bool(true))
	assert.True(t, value)
	require.NotNil(t, ptr)
	assert.True(t, *ptr)

	setBool(&ptr, nil)
	assert.True(t, *ptr, "a nil value leaves the destination untouched")

	assert.Equal(t, aws.Bool(false), readBool(false))
	assert.Nil(t, readBool[*bool](nil))
	assert.Equal(t, aws.Bool(true), readBool(ptr))

	var n int32
	var np *int32
	setInt32(&n, aws.Int32(7))
	setInt32(&np, aws.Int32(8))
	assert.Equal(t, int32(7), n)
	assert.Equal(t, aws.Int32(8), np)
	assert.Equal(t, aws.Int32(7), readInt32(n))
	assert.Nil(t, readInt32[*int32](nil))
}

func TestConvertCollections(t *testing.T) {
	assert.Nil(t, convertEnums[types.EventFilterType]([]model.EventFilterType(nil)))
	assert.Equal(t,
		[]types.EventFilterType{"SIGN_IN", "SIGN_UP"},
		convertEnums[types.EventFilterType]([]model.EventFilterType{model.EventFilterTypeSignIn, "SIGN_UP"}))

	assert.Nil(t, convertSlice([]model.AttributeType(nil), attributeToSDK))
	assert.Equal(t, []types.AttributeType{}, convertSlice([]model.AttributeType{}, attributeToSDK))
}

func TestAWSClient_CreateUserPool(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)

	var sent *cognitoidentityprovider.CreateUserPoolInput
	mockAPI.On("CreateUserPool", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.CreateUserPoolInput")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*cognitoidentityprovider.CreateUserPoolInput)
		}).
		Return(&cognitoidentityprovider.CreateUserPoolOutput{
			UserPool: &types.UserPoolType{
				Id:                     aws.String("us-east-1_NEW"),
				Name:                   aws.String("customers"),
				Status:                 types.StatusType("Enabled"),
				MfaConfiguration:       types.UserPoolMfaType("OPTIONAL"),
				AutoVerifiedAttributes: []types.VerifiedAttributeType{"email"},
				UserPoolTags:           map[string]string{"team": "identity"},
				SmsConfiguration:       &types.SmsConfigurationType{SnsCallerArn: aws.String("arn:aws:iam::123456789012:role/sms")},
			},
		}, nil)

	in := new(model.CreateUserPoolInput).
		SetPoolName("customers").
		SetPolicies(new(model.UserPoolPolicyType).SetPasswordPolicy(new(model.PasswordPolicyType).
			SetMinimumLength(12).
			SetRequireNumbers(true))).
		SetAutoVerifiedAttributes([]model.VerifiedAttributeType{model.VerifiedAttributeTypeEmail}).
		SetMfaConfiguration(model.UserPoolMfaTypeOptional).
		SetUserPoolTags(map[string]string{"team": "identity"})

	out, err := client.CreateUserPool(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "customers", aws.ToString(sent.PoolName))
	assert.Equal(t, types.UserPoolMfaType("OPTIONAL"), sent.MfaConfiguration)
	assert.Equal(t, []types.VerifiedAttributeType{"email"}, sent.AutoVerifiedAttributes)
	assert.Equal(t, map[string]string{"team": "identity"}, sent.UserPoolTags)
	require.NotNil(t, sent.Policies)
	require.NotNil(t, sent.Policies.PasswordPolicy)
	assert.Equal(t, aws.Int32(12), readInt32(sent.Policies.PasswordPolicy.MinimumLength))
	assert.Equal(t, aws.Bool(true), readBool(sent.Policies.PasswordPolicy.RequireNumbers))

	want := new(model.CreateUserPoolOutput).SetUserPool(new(model.UserPoolType).
		SetId("us-east-1_NEW").
		SetName("customers").
		SetStatus(model.StatusTypeEnabled).
		SetMfaConfiguration(model.UserPoolMfaTypeOptional).
		SetAutoVerifiedAttributes([]model.VerifiedAttributeType{model.VerifiedAttributeTypeEmail}).
		SetUserPoolTags(map[string]string{"team": "identity"}).
		SetSmsConfiguration(new(model.SmsConfigurationType).SetSnsCallerArn("arn:aws:iam::123456789012:role/sms")))
	want.UserPool.EstimatedNumberOfUsers = out.UserPool.EstimatedNumberOfUsers
	assert.Empty(t, cmp.Diff(want, out))
}

func TestAWSClient_InitiateAuth(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("InitiateAuth", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.InitiateAuthInput) bool {
		return in.AuthFlow == types.AuthFlowType("USER_PASSWORD_AUTH") &&
			in.AuthParameters["USERNAME"] == "jdoe" &&
			aws.ToString(in.ClientId) == "client123"
	})).Return(&cognitoidentityprovider.InitiateAuthOutput{
		ChallengeName:       types.ChallengeNameType("NEW_PASSWORD_REQUIRED"),
		Session:             aws.String("session-1"),
		ChallengeParameters: map[string]string{"USER_ID_FOR_SRP": "jdoe"},
		AuthenticationResult: &types.AuthenticationResultType{
			AccessToken: aws.String("access"),
			IdToken:     aws.String("id"),
			TokenType:   aws.String("Bearer"),
			NewDeviceMetadata: &types.NewDeviceMetadataType{
				DeviceKey:      aws.String("device"),
				DeviceGroupKey: aws.String("group"),
			},
		},
	}, nil)

	out, err := client.InitiateAuth(context.Background(), new(model.InitiateAuthInput).
		SetAuthFlow(model.AuthFlowTypeUserPasswordAuth).
		SetClientId("client123").
		SetAuthParameters(map[string]string{"USERNAME": "jdoe", "PASSWORD": "secret"}))
	require.NoError(t, err)

	assert.Equal(t, model.ChallengeNameTypeNewPasswordRequired, out.GetChallengeName())
	assert.Equal(t, "session-1", out.GetSession())
	assert.Equal(t, map[string]string{"USER_ID_FOR_SRP": "jdoe"}, out.GetChallengeParameters())
	result := out.GetAuthenticationResult()
	assert.Equal(t, "access", result.GetAccessToken())
	assert.Equal(t, "id", result.GetIdToken())
	assert.Equal(t, "Bearer", result.GetTokenType())
	assert.Equal(t, "group", result.GetNewDeviceMetadata().GetDeviceGroupKey())
}

func TestAWSClient_SetUserPoolMfaConfig(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("SetUserPoolMfaConfig", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.SetUserPoolMfaConfigInput) bool {
		return aws.ToString(in.UserPoolId) == testPoolID &&
			in.MfaConfiguration == types.UserPoolMfaType("OPTIONAL") &&
			in.SoftwareTokenMfaConfiguration != nil &&
			aws.ToBool(readBool(in.SoftwareTokenMfaConfiguration.Enabled))
	})).Return(&cognitoidentityprovider.SetUserPoolMfaConfigOutput{
		MfaConfiguration: types.UserPoolMfaType("OPTIONAL"),
	}, nil)

	out, err := client.SetUserPoolMfaConfig(context.Background(), new(model.SetUserPoolMfaConfigInput).
		SetMfaConfiguration(model.UserPoolMfaTypeOptional).
		SetSoftwareTokenMfaConfiguration(new(model.SoftwareTokenMfaConfigType).SetEnabled(true)))
	require.NoError(t, err)
	assert.Equal(t, model.UserPoolMfaTypeOptional, out.GetMfaConfiguration())
	assert.Nil(t, out.SmsMfaConfiguration)
}

func TestAWSClient_SetRiskConfiguration(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)

	var sent *cognitoidentityprovider.SetRiskConfigurationInput
	mockAPI.On("SetRiskConfiguration", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*cognitoidentityprovider.SetRiskConfigurationInput)
		}).
		Return(&cognitoidentityprovider.SetRiskConfigurationOutput{
			RiskConfiguration: &types.RiskConfigurationType{
				UserPoolId: aws.String(testPoolID),
				CompromisedCredentialsRiskConfiguration: &types.CompromisedCredentialsRiskConfigurationType{
					EventFilter: []types.EventFilterType{"SIGN_IN"},
					Actions: &types.CompromisedCredentialsActionsType{
						EventAction: types.CompromisedCredentialsEventActionType("BLOCK"),
					},
				},
				RiskExceptionConfiguration: &types.RiskExceptionConfigurationType{
					BlockedIPRangeList: []string{"10.0.0.0/8"},
				},
			},
		}, nil)

	in := new(model.SetRiskConfigurationInput).
		SetCompromisedCredentialsRiskConfiguration(new(model.CompromisedCredentialsRiskConfigurationType).
			SetEventFilter([]model.EventFilterType{model.EventFilterTypeSignIn}).
			SetActions(new(model.CompromisedCredentialsActionsType).SetEventAction(model.CompromisedCredentialsEventActionTypeBlock))).
		SetAccountTakeoverRiskConfiguration(new(model.AccountTakeoverRiskConfigurationType).
			SetActions(new(model.AccountTakeoverActionsType).
				SetHighAction(new(model.AccountTakeoverActionType).
					SetNotify(true).
					SetEventAction(model.AccountTakeoverEventActionTypeMfaRequired)))).
		SetRiskExceptionConfiguration(new(model.RiskExceptionConfigurationType).
			SetBlockedIPRangeList([]string{"10.0.0.0/8"}))

	out, err := client.SetRiskConfiguration(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, sent)
	high := sent.AccountTakeoverRiskConfiguration.Actions.HighAction
	require.NotNil(t, high)
	assert.Equal(t, types.AccountTakeoverEventActionType("MFA_REQUIRED"), high.EventAction)
	assert.Equal(t, aws.Bool(true), readBool(high.Notify))
	assert.Nil(t, sent.AccountTakeoverRiskConfiguration.Actions.LowAction)
	assert.Equal(t, []types.EventFilterType{"SIGN_IN"}, sent.CompromisedCredentialsRiskConfiguration.EventFilter)

	want := new(model.SetRiskConfigurationOutput).SetRiskConfiguration(new(model.RiskConfigurationType).
		SetUserPoolId(testPoolID).
		SetCompromisedCredentialsRiskConfiguration(in.CompromisedCredentialsRiskConfiguration).
		SetRiskExceptionConfiguration(in.RiskExceptionConfiguration))
	assert.Empty(t, cmp.Diff(want, out))
}

func TestAWSClient_InvalidNestedInput(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)

	in := new(model.SetRiskConfigurationInput).
		SetAccountTakeoverRiskConfiguration(new(model.AccountTakeoverRiskConfigurationType))
	_, err := client.SetRiskConfiguration(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccountTakeoverRiskConfiguration.Actions: Required value")
	mockAPI.AssertNotCalled(t, "SetRiskConfiguration", mock.Anything, mock.Anything)
}

func TestAWSClient_DescribeUserPoolDomain(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("DescribeUserPoolDomain", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.DescribeUserPoolDomainInput")).
		Return(&cognitoidentityprovider.DescribeUserPoolDomainOutput{
			DomainDescription: &types.DomainDescriptionType{
				UserPoolId:             aws.String(testPoolID),
				Domain:                 aws.String("auth-example"),
				CloudFrontDistribution: aws.String("d111111abcdef8.cloudfront.net"),
				Status:                 types.DomainStatusType("ACTIVE"),
				CustomDomainConfig: &types.CustomDomainConfigType{
					CertificateArn: aws.String("arn:aws:acm:us-east-1:123456789012:certificate/abc"),
				},
			},
		}, nil)

	out, err := client.DescribeUserPoolDomain(context.Background(), new(model.DescribeUserPoolDomainInput).SetDomain("auth-example"))
	require.NoError(t, err)

	want := new(model.DescribeUserPoolDomainOutput).SetDomainDescription(new(model.DomainDescriptionType).
		SetUserPoolId(testPoolID).
		SetDomain("auth-example").
		SetCloudFrontDistribution("d111111abcdef8.cloudfront.net").
		SetStatus(model.DomainStatusTypeActive).
		SetCustomDomainConfig(new(model.CustomDomainConfigType).SetCertificateArn("arn:aws:acm:us-east-1:123456789012:certificate/abc")))
	assert.Empty(t, cmp.Diff(want, out))
}

func TestAWSClient_Federation(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("CreateIdentityProvider", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.CreateIdentityProviderInput) bool {
		return in.ProviderType == types.IdentityProviderTypeType("OIDC") &&
			in.ProviderDetails["issuer"] == "https://issuer.example.com"
	})).Return(&cognitoidentityprovider.CreateIdentityProviderOutput{
		IdentityProvider: &types.IdentityProviderType{
			UserPoolId:      aws.String(testPoolID),
			ProviderName:    aws.String("corp-oidc"),
			ProviderType:    types.IdentityProviderTypeType("OIDC"),
			ProviderDetails: map[string]string{"issuer": "https://issuer.example.com"},
			IdpIdentifiers:  []string{"corp"},
		},
	}, nil)
	mockAPI.On("CreateResourceServer", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.CreateResourceServerInput) bool {
		return len(in.Scopes) == 1 && aws.ToString(in.Scopes[0].ScopeName) == "read"
	})).Return(&cognitoidentityprovider.CreateResourceServerOutput{
		ResourceServer: &types.ResourceServerType{
			Identifier: aws.String("https://api.example.com"),
			Name:       aws.String("api"),
			Scopes: []types.ResourceServerScopeType{
				{ScopeName: aws.String("read"), ScopeDescription: aws.String("Read access")},
			},
		},
	}, nil)

	idp, err := client.CreateIdentityProvider(context.Background(), new(model.CreateIdentityProviderInput).
		SetProviderName("corp-oidc").
		SetProviderType(model.IdentityProviderTypeTypeOidc).
		SetProviderDetails(map[string]string{"issuer": "https://issuer.example.com"}).
		SetIdpIdentifiers([]string{"corp"}))
	require.NoError(t, err)
	assert.Equal(t, model.IdentityProviderTypeTypeOidc, idp.GetIdentityProvider().GetProviderType())
	assert.Equal(t, []string{"corp"}, idp.GetIdentityProvider().GetIdpIdentifiers())

	rs, err := client.CreateResourceServer(context.Background(), new(model.CreateResourceServerInput).
		SetIdentifier("https://api.example.com").
		SetName("api").
		SetScopes([]model.ResourceServerScopeType{
			*new(model.ResourceServerScopeType).SetScopeName("read").SetScopeDescription("Read access"),
		}))
	require.NoError(t, err)
	require.Len(t, rs.GetResourceServer().GetScopes(), 1)
	assert.Equal(t, "Read access", rs.GetResourceServer().GetScopes()[0].GetScopeDescription())
}

func TestAWSClient_ListUsers(t *testing.T) {
	client, mockAPI, _ := newTestClient(t)
	mockAPI.On("ListUsers", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.ListUsersInput) bool {
		return aws.ToString(in.Filter) == `email ^= "j"` && aws.ToInt32(in.Limit) == 10
	})).Return(&cognitoidentityprovider.ListUsersOutput{
		Users: []types.UserType{
			{Username: aws.String("jdoe"), Enabled: true, UserStatus: types.UserStatusType("CONFIRMED")},
			{Username: aws.String("jroe"), Enabled: false, UserStatus: types.UserStatusType("UNCONFIRMED")},
		},
		PaginationToken: aws.String("page-2"),
	}, nil)

	out, err := client.ListUsers(context.Background(), new(model.ListUsersInput).
		SetFilter(`email ^= "j"`).
		SetLimit(10))
	require.NoError(t, err)

	require.Len(t, out.Users, 2)
	assert.Equal(t, "jdoe", out.Users[0].GetUsername())
	assert.True(t, out.Users[0].GetEnabled())
	assert.Equal(t, model.UserStatusTypeUnconfirmed, out.Users[1].GetUserStatus())
	require.NotNil(t, out.Users[1].Enabled)
	assert.False(t, *out.Users[1].Enabled)
	assert.Equal(t, "page-2", out.GetPaginationToken())
}
