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

// CreateIdentityProvider adds a federated identity provider to a user pool.
func (c *AWSClient) CreateIdentityProvider(ctx context.Context, in *model.CreateIdentityProviderInput) (*model.CreateIdentityProviderOutput, error) {
	return invoke(ctx, c, "CreateIdentityProvider", withDefaultPool(in, c.UserPoolID()),
		createIdentityProviderInputToSDK, c.cognito.CreateIdentityProvider, createIdentityProviderOutputFromSDK)
}

// CreateResourceServer adds an OAuth resource server with custom scopes to a user pool.
func (c *AWSClient) CreateResourceServer(ctx context.Context, in *model.CreateResourceServerInput) (*model.CreateResourceServerOutput, error) {
	return invoke(ctx, c, "CreateResourceServer", withDefaultPool(in, c.UserPoolID()),
		createResourceServerInputToSDK, c.cognito.CreateResourceServer, createResourceServerOutputFromSDK)
}

func createIdentityProviderInputToSDK(in *model.CreateIdentityProviderInput) *cognitoidentityprovider.CreateIdentityProviderInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.CreateIdentityProviderInput{
		UserPoolId:       in.UserPoolId,
		ProviderName:     in.ProviderName,
		ProviderType:     types.IdentityProviderTypeType(in.ProviderType),
		ProviderDetails:  maps.Clone(in.ProviderDetails),
		AttributeMapping: maps.Clone(in.AttributeMapping),
		IdpIdentifiers:   slices.Clone(in.IdpIdentifiers),
	}
}

func createIdentityProviderOutputFromSDK(in *cognitoidentityprovider.CreateIdentityProviderOutput) *model.CreateIdentityProviderOutput {
	if in == nil {
		return nil
	}
	return &model.CreateIdentityProviderOutput{
		IdentityProvider: identityProviderFromSDK(in.IdentityProvider),
	}
}

func createResourceServerInputToSDK(in *model.CreateResourceServerInput) *cognitoidentityprovider.CreateResourceServerInput {
	if in == nil {
		return nil
	}
	return &cognitoidentityprovider.CreateResourceServerInput{
		UserPoolId: in.UserPoolId,
		Identifier: in.Identifier,
		Name:       in.Name,
		Scopes:     convertSlice(in.Scopes, resourceServerScopeToSDK),
	}
}

func createResourceServerOutputFromSDK(in *cognitoidentityprovider.CreateResourceServerOutput) *model.CreateResourceServerOutput {
	if in == nil {
		return nil
	}
	return &model.CreateResourceServerOutput{
		ResourceServer: resourceServerFromSDK(in.ResourceServer),
	}
}
