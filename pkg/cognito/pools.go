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

// CreateUserPool creates a user pool.
func (c *AWSClient) CreateUserPool(ctx context.Context, in *model.CreateUserPoolInput) (*model.CreateUserPoolOutput, error) {
	return invoke(ctx, c, "CreateUserPool", in,
		createUserPoolInputToSDK, c.cognito.CreateUserPool, createUserPoolOutputFromSDK)
}

// DescribeUserPool returns the configuration of a user pool.
func (c *AWSClient) DescribeUserPool(ctx context.Context, in *model.DescribeUserPoolInput) (*model.DescribeUserPoolOutput, error) {
	return invoke(ctx, c, "DescribeUserPool", withDefaultPool(in, c.UserPoolID()),
		describeUserPoolInputToSDK, c.cognito.DescribeUserPool, describeUserPoolOutputFromSDK)
}

// DeleteUserPool deletes a user pool.
func (c *AWSClient) DeleteUserPool(ctx context.Context, in *model.DeleteUserPoolInput) (*model.DeleteUserPoolOutput, error) {
	return invoke(ctx, c, "DeleteUserPool", withDefaultPool(in, c.UserPoolID()),
		deleteUserPoolInputToSDK, c.cognito.DeleteUserPool, deleteUserPoolOutputFromSDK)
}

// ListUserPools lists the user pools of the account.
func (c *AWSClient) ListUserPools(ctx context.Context, in *model.ListUserPoolsInput) (*model.ListUserPoolsOutput, error) {
	return invoke(ctx, c, "ListUserPools", in,
		listUserPoolsInputToSDK, c.cognito.ListUserPools, listUserPoolsOutputFromSDK)
}

// TagResource attaches tags to a user pool.
func (c *AWSClient) TagResource(ctx context.Context, in *model.TagResourceInput) (*model.TagResourceOutput, error) {
	return invoke(ctx, c, "TagResource", in,
		tagResourceInputToSDK, c.cognito.TagResource, tagResourceOutputFromSDK)
}

// DescribeUserPoolClient returns the configuration of an app client.
func (c *AWSClient) DescribeUserPoolClient(ctx context.Context, in *model.DescribeUserPoolClientInput) (*model.DescribeUserPoolClientOutput, error) {
	return invoke(ctx, c, "DescribeUserPoolClient", withDefaultPool(in, c.UserPoolID()),
		describeUserPoolClientInputToSDK, c.cognito.DescribeUserPoolClient, describeUserPoolClientOutputFromSDK)
}

func createUserPoolInputToSDK(in *model.CreateUserPoolInput) *cognitoidentityprovider.CreateUserPoolInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.CreateUserPoolInput{
		PoolName:                 in.PoolName,
		Policies:                 userPoolPolicyToSDK(in.Policies),
		AutoVerifiedAttributes:   convertEnums[types.VerifiedAttributeType](in.AutoVerifiedAttributes),
		SmsAuthenticationMessage: in.SmsAuthenticationMessage,
		MfaConfiguration:         types.UserPoolMfaType(in.MfaConfiguration),
		DeviceConfiguration:      deviceConfigurationToSDK(in.DeviceConfiguration),
		SmsConfiguration:         smsConfigurationToSDK(in.SmsConfiguration),
		UserPoolTags:             maps.Clone(in.UserPoolTags),
	}
}

func createUserPoolOutputFromSDK(in *cognitoidentityprovider.CreateUserPoolOutput) *model.CreateUserPoolOutput {
	if in == nil {
		return nil
	}
	return &model.CreateUserPoolOutput{
		UserPool: userPoolFromSDK(in.UserPool),
	}
}

func describeUserPoolInputToSDK(in *model.DescribeUserPoolInput) *cognitoidentityprovider.DescribeUserPoolInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DescribeUserPoolInput{
		UserPoolId: in.UserPoolId,
	}
}

func describeUserPoolOutputFromSDK(in *cognitoidentityprovider.DescribeUserPoolOutput) *model.DescribeUserPoolOutput {
	if in == nil {
		return nil
	}
	return &model.DescribeUserPoolOutput{
		UserPool: userPoolFromSDK(in.UserPool),
	}
}

func deleteUserPoolInputToSDK(in *model.DeleteUserPoolInput) *cognitoidentityprovider.DeleteUserPoolInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DeleteUserPoolInput{
		UserPoolId: in.UserPoolId,
	}
}

func deleteUserPoolOutputFromSDK(*cognitoidentityprovider.DeleteUserPoolOutput) *model.DeleteUserPoolOutput {
	return &model.DeleteUserPoolOutput{}
}

func listUserPoolsInputToSDK(in *model.ListUserPoolsInput) *cognitoidentityprovider.ListUserPoolsInput {
	if in == nil {
		return nil
	}
	out := &cognitoidentityprovider.ListUserPoolsInput{
		NextToken: in.NextToken,
	}
	setInt32(&out.MaxResults, in.MaxResults)
	return out
}

func listUserPoolsOutputFromSDK(in *cognitoidentityprovider.ListUserPoolsOutput) *model.ListUserPoolsOutput {
	if in == nil {
		return nil
	}
	return &model.ListUserPoolsOutput{
		UserPools: convertSlice(in.UserPools, userPoolDescriptionFromSDK),
		NextToken: in.NextToken,
	}
}

func tagResourceInputToSDK(in *model.TagResourceInput) *cognitoidentityprovider.TagResourceInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.TagResourceInput{
		ResourceArn: in.ResourceArn,
		Tags:        maps.Clone(in.Tags),
	}
}

func tagResourceOutputFromSDK(*cognitoidentityprovider.TagResourceOutput) *model.TagResourceOutput {
	return &model.TagResourceOutput{}
}

func describeUserPoolClientInputToSDK(in *model.DescribeUserPoolClientInput) *cognitoidentityprovider.DescribeUserPoolClientInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.DescribeUserPoolClientInput{
		UserPoolId: in.UserPoolId,
		ClientId:   in.ClientId,
	}
}

func describeUserPoolClientOutputFromSDK(in *cognitoidentityprovider.DescribeUserPoolClientOutput) *model.DescribeUserPoolClientOutput {
	if in == nil {
		return nil
	}
	return &model.DescribeUserPoolClientOutput{
		UserPoolClient: userPoolClientFromSDK(in.UserPoolClient),
	}
}
