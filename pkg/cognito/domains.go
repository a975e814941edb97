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

// CreateUserPoolDomain creates a prefix or custom domain for a user pool.
func (c *AWSClient) CreateUserPoolDomain(ctx context.Context, in *model.CreateUserPoolDomainInput) (*model.CreateUserPoolDomainOutput, error) {
	return invoke(ctx, c, "CreateUserPoolDomain", withDefaultPool(in, c.UserPoolID()),
		createUserPoolDomainInputToSDK, c.cognito.CreateUserPoolDomain, createUserPoolDomainOutputFromSDK)
}

// DescribeUserPoolDomain returns a user pool domain.
func (c *AWSClient) DescribeUserPoolDomain(ctx context.Context, in *model.DescribeUserPoolDomainInput) (*model.DescribeUserPoolDomainOutput, error) {
	return invoke(ctx, c, "DescribeUserPoolDomain", in,
		describeUserPoolDomainInputToSDK, c.cognito.DescribeUserPoolDomain, describeUserPoolDomainOutputFromSDK)
}

// DeleteUserPoolDomain deletes a user pool domain.
func (c *AWSClient) DeleteUserPoolDomain(ctx context.Context, in *model.DeleteUserPoolDomainInput) (*model.DeleteUserPoolDomainOutput, error) {
	return invoke(ctx, c, "DeleteUserPoolDomain", withDefaultPool(in, c.UserPoolID()),
		deleteUserPoolDomainInputToSDK, c.cognito.DeleteUserPoolDomain, deleteUserPoolDomainOutputFromSDK)
}

func createUserPoolDomainInputToSDK(in *model.CreateUserPoolDomainInput) *cognitoidentityprovider.CreateUserPoolDomainInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.CreateUserPoolDomainInput{
		Domain:             in.Domain,
		UserPoolId:         in.UserPoolId,
		CustomDomainConfig: customDomainConfigToSDK(in.CustomDomainConfig),
	}
}

func createUserPoolDomainOutputFromSDK(in *cognitoidentityprovider.CreateUserPoolDomainOutput) *model.CreateUserPoolDomainOutput {
	if in == nil {
		return nil
	}
	return &model.CreateUserPoolDomainOutput{
		CloudFrontDomain: in.CloudFrontDomain,
	}
}

func describeUserPoolDomainInputToSDK(in *model.DescribeUserPoolDomainInput) *cognitoidentityprovider.DescribeUserPoolDomainInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DescribeUserPoolDomainInput{
		Domain: in.Domain,
	}
}

func describeUserPoolDomainOutputFromSDK(in *cognitoidentityprovider.DescribeUserPoolDomainOutput) *model.DescribeUserPoolDomainOutput {
	if in == nil {
		return nil
	}
	return &model.DescribeUserPoolDomainOutput{
		DomainDescription: domainDescriptionFromSDK(in.DomainDescription),
	}
}

func deleteUserPoolDomainInputToSDK(in *model.DeleteUserPoolDomainInput) *cognitoidentityprovider.DeleteUserPoolDomainInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DeleteUserPoolDomainInput{
		Domain:     in.Domain,
		UserPoolId: in.UserPoolId,
	}
}

func deleteUserPoolDomainOutputFromSDK(*cognitoidentityprovider.DeleteUserPoolDomainOutput) *model.DeleteUserPoolDomainOutput {
	return &model.DeleteUserPoolDomainOutput{}
}
