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

package main

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"sigs.k8s.io/yaml"

	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// strictJSON rejects members the request type does not have.
var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// operation is one API call that can be sent by name.
type operation struct {
	name     string
	newInput func() any
	call     func(ctx context.Context, c userpool.Client, in any) (any, error)
}

func newOperation[I, O any](name string, method func(userpool.Client, context.Context, *I) (*O, error)) operation {
	return operation{
		name:     name,
		newInput: func() any { return new(I) },
		call: func(ctx context.Context, c userpool.Client, in any) (any, error) {
			return method(c, ctx, in.(*I))
		},
	}
}

var operations = []operation{
	newOperation("AdminCreateUser", userpool.Client.AdminCreateUser),
	newOperation("AdminGetUser", userpool.Client.AdminGetUser),
	newOperation("AdminUpdateUserAttributes", userpool.Client.AdminUpdateUserAttributes),
	newOperation("AdminEnableUser", userpool.Client.AdminEnableUser),
	newOperation("AdminDisableUser", userpool.Client.AdminDisableUser),
	newOperation("AdminDeleteUser", userpool.Client.AdminDeleteUser),
	newOperation("ListUsers", userpool.Client.ListUsers),
	newOperation("SignUp", userpool.Client.SignUp),
	newOperation("ConfirmSignUp", userpool.Client.ConfirmSignUp),
	newOperation("CreateUserPool", userpool.Client.CreateUserPool),
	newOperation("DescribeUserPool", userpool.Client.DescribeUserPool),
	newOperation("DeleteUserPool", userpool.Client.DeleteUserPool),
	newOperation("ListUserPools", userpool.Client.ListUserPools),
	newOperation("TagResource", userpool.Client.TagResource),
	newOperation("DescribeUserPoolClient", userpool.Client.DescribeUserPoolClient),
	newOperation("InitiateAuth", userpool.Client.InitiateAuth),
	newOperation("AdminInitiateAuth", userpool.Client.AdminInitiateAuth),
	newOperation("RespondToAuthChallenge", userpool.Client.RespondToAuthChallenge),
	newOperation("AdminRespondToAuthChallenge", userpool.Client.AdminRespondToAuthChallenge),
	newOperation("ForgotPassword", userpool.Client.ForgotPassword),
	newOperation("ConfirmForgotPassword", userpool.Client.ConfirmForgotPassword),
	newOperation("ChangePassword", userpool.Client.ChangePassword),
	newOperation("GetUserPoolMfaConfig", userpool.Client.GetUserPoolMfaConfig),
	newOperation("SetUserPoolMfaConfig", userpool.Client.SetUserPoolMfaConfig),
	newOperation("AdminSetUserMFAPreference", userpool.Client.AdminSetUserMFAPreference),
	newOperation("AssociateSoftwareToken", userpool.Client.AssociateSoftwareToken),
	newOperation("VerifySoftwareToken", userpool.Client.VerifySoftwareToken),
	newOperation("DescribeRiskConfiguration", userpool.Client.DescribeRiskConfiguration),
	newOperation("SetRiskConfiguration", userpool.Client.SetRiskConfiguration),
	newOperation("CreateUserPoolDomain", userpool.Client.CreateUserPoolDomain),
	newOperation("DescribeUserPoolDomain", userpool.Client.DescribeUserPoolDomain),
	newOperation("DeleteUserPoolDomain", userpool.Client.DeleteUserPoolDomain),
	newOperation("CreateIdentityProvider", userpool.Client.CreateIdentityProvider),
	newOperation("CreateResourceServer", userpool.Client.CreateResourceServer),
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.name)
	}
	slices.Sort(names)
	return names
}

// lookupOperation finds an operation by name, ignoring case.
func lookupOperation(name string) (operation, bool) {
	i := slices.IndexFunc(operations, func(op operation) bool {
		return strings.EqualFold(op.name, name)
	})
	if i < 0 {
		return operation{}, false
	}
	return operations[i], true
}

// decodeInput parses a JSON or YAML request document for op. An empty
// document yields an empty request.
func decodeInput(op operation, data []byte) (any, error) {
	in := op.newInput()
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s input: %w", op.name, err)
	}
	if err := strictJSON.Unmarshal(j, in); err != nil {
		return nil, fmt.Errorf("failed to decode %s input: %w", op.name, err)
	}
	return in, nil
}

// encodeOutput renders v as indented JSON or as YAML.
func encodeOutput(v any, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(v)
	case "json":
		b, err := strictJSON.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
