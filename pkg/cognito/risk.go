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

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

// DescribeRiskConfiguration returns the risk configuration of a user pool or app client.
func (c *AWSClient) DescribeRiskConfiguration(ctx context.Context, in *model.DescribeRiskConfigurationInput) (*model.DescribeRiskConfigurationOutput, error) {
	return invoke(ctx, c, "DescribeRiskConfiguration", withDefaultPool(in, c.UserPoolID()),
		describeRiskConfigurationInputToSDK, c.cognito.DescribeRiskConfiguration, describeRiskConfigurationOutputFromSDK)
}

// SetRiskConfiguration sets the risk configuration of a user pool or app client.
func (c *AWSClient) SetRiskConfiguration(ctx context.Context, in *model.SetRiskConfigurationInput) (*model.SetRiskConfigurationOutput, error) {
	return invoke(ctx, c, "SetRiskConfiguration", withDefaultPool(in, c.UserPoolID()),
		setRiskConfigurationInputToSDK, c.cognito.SetRiskConfiguration, setRiskConfigurationOutputFromSDK)
}

func describeRiskConfigurationInputToSDK(in *model.DescribeRiskConfigurationInput) *cognitoidentityprovider.DescribeRiskConfigurationInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DescribeRiskConfigurationInput{
		UserPoolId: in.UserPoolId,
		ClientId:   in.ClientId,
	}
}

func describeRiskConfigurationOutputFromSDK(in *cognitoidentityprovider.DescribeRiskConfigurationOutput) *model.DescribeRiskConfigurationOutput {
	if in == nil {
		return nil
	}
	return &model.DescribeRiskConfigurationOutput{
		RiskConfiguration: riskConfigurationFromSDK(in.RiskConfiguration),
	}
}

func setRiskConfigurationInputToSDK(in *model.SetRiskConfigurationInput) *cognitoidentityprovider.SetRiskConfigurationInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.SetRiskConfigurationInput{
		UserPoolId:                              in.UserPoolId,
		ClientId:                                in.ClientId,
		CompromisedCredentialsRiskConfiguration: compromisedCredentialsRiskConfigurationToSDK(in.CompromisedCredentialsRiskConfiguration),
		AccountTakeoverRiskConfiguration:        accountTakeoverRiskConfigurationToSDK(in.AccountTakeoverRiskConfiguration),
		RiskExceptionConfiguration:              riskExceptionConfigurationToSDK(in.RiskExceptionConfiguration),
	}
}

func setRiskConfigurationOutputFromSDK(in *cognitoidentityprovider.SetRiskConfigurationOutput) *model.SetRiskConfigurationOutput {
	if in == nil {
		return nil
	}
	return &model.SetRiskConfigurationOutput{
		RiskConfiguration: riskConfigurationFromSDK(in.RiskConfiguration),
	}
}
