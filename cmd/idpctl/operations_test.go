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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

func TestOperations(t *testing.T) {
	names := operationNames()
	assert.Len(t, names, 34)
	assert.IsNonDecreasing(t, names)

	seen := map[string]bool{}
	for _, op := range operations {
		assert.False(t, seen[op.name], "duplicate operation %s", op.name)
		seen[op.name] = true
		assert.NotNil(t, op.newInput(), op.name)
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := lookupOperation("admingetuser")
	require.True(t, ok)
	assert.Equal(t, "AdminGetUser", op.name)
	assert.IsType(t, &model.AdminGetUserInput{}, op.newInput())

	_, ok = lookupOperation("DeleteEverything")
	assert.False(t, ok)
}

func TestDecodeInput(t *testing.T) {
	op, ok := lookupOperation("AdminCreateUser")
	require.True(t, ok)

	tests := []struct {
		name    string
		data    string
		want    *model.AdminCreateUserInput
		wantErr string
	}{
		{
			name: "yaml",
			data: "Username: jane\nMessageAction: SUPPRESS\nUserAttributes:\n- Name: email\n  Value: jane@example.com\n",
			want: new(model.AdminCreateUserInput).
				SetUsername("jane").
				SetMessageAction(model.MessageActionTypeSuppress).
				AppendUserAttributes(*new(model.AttributeType).SetName("email").SetValue("jane@example.com")),
		},
		{
			name: "json",
			data: `{"Username": "jane", "ForceAliasCreation": true}`,
			want: new(model.AdminCreateUserInput).SetUsername("jane").SetForceAliasCreation(true),
		},
		{
			name: "empty document",
			data: "  \n",
			want: &model.AdminCreateUserInput{},
		},
		{
			name:    "unknown member",
			data:    "Username: jane\nNickname: j\n",
			wantErr: "failed to decode AdminCreateUser input",
		},
		{
			name:    "malformed",
			data:    "Username: [jane",
			wantErr: "failed to parse AdminCreateUser input",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeInput(op, []byte(tt.data))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.(*model.AdminCreateUserInput)), "got %v", got)
		})
	}
}

func TestEncodeOutput(t *testing.T) {
	out := new(model.AdminGetUserOutput).SetUsername("jane").SetEnabled(true)

	b, err := encodeOutput(out, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Username": "jane", "Enabled": true}`, string(b))
	assert.True(t, b[len(b)-1] == '\n')

	b, err = encodeOutput(out, "yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, "Username: jane\nEnabled: true\n", string(b))

	_, err = encodeOutput(out, "xml")
	assert.Error(t, err)
}
