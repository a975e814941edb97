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

package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attr(name, value string) AttributeType {
	return *new(AttributeType).SetName(name).SetValue(value)
}

func TestSettersChain(t *testing.T) {
	in := new(AdminCreateUserInput)
	got := in.SetUserPoolId("us-east-1_Example1").
		SetUsername("alice").
		SetForceAliasCreation(false).
		SetMessageAction(MessageActionTypeSuppress).
		AppendDesiredDeliveryMediums(DeliveryMediumTypeEmail)

	assert.Same(t, in, got)
	assert.Equal(t, "us-east-1_Example1", in.GetUserPoolId())
	assert.Equal(t, "alice", in.GetUsername())
	require.NotNil(t, in.ForceAliasCreation)
	assert.False(t, in.GetForceAliasCreation())
	assert.Equal(t, MessageActionTypeSuppress, in.GetMessageAction())
	assert.Equal(t, []DeliveryMediumType{DeliveryMediumTypeEmail}, in.GetDesiredDeliveryMediums())
}

func TestGettersOnAbsentMembers(t *testing.T) {
	var nilInput *ListUsersInput
	assert.Equal(t, "", nilInput.GetUserPoolId())
	assert.Equal(t, int32(0), nilInput.GetLimit())
	assert.Nil(t, nilInput.GetAttributesToGet())

	u := new(UserType)
	assert.False(t, u.GetEnabled())
	assert.True(t, u.GetUserCreateDate().IsZero())
	assert.Equal(t, UserStatusType(""), u.GetUserStatus())
	assert.Nil(t, new(CreateUserPoolInput).GetPolicies())
}

func TestSetCopiesCollections(t *testing.T) {
	attrs := []AttributeType{attr("email", "a@example.com")}
	tags := map[string]string{"team": "identity"}

	in := new(AdminUpdateUserAttributesInput).SetUserAttributes(attrs)
	pool := new(CreateUserPoolInput).SetUserPoolTags(tags)

	attrs[0] = attr("phone_number", "+100")
	tags["team"] = "other"

	assert.Equal(t, "email", in.UserAttributes[0].GetName())
	assert.Equal(t, "identity", pool.GetUserPoolTags()["team"])
}

func TestAppendExtendsList(t *testing.T) {
	in := new(AdminUpdateUserAttributesInput).
		AppendUserAttributes(attr("email", "a@example.com")).
		AppendUserAttributes(attr("name", "Alice"), attr("locale", "en"))

	names := make([]string, 0, len(in.UserAttributes))
	for _, a := range in.UserAttributes {
		names = append(names, a.GetName())
	}
	assert.Equal(t, []string{"email", "name", "locale"}, names)
}

func TestAddEntry(t *testing.T) {
	in := new(AdminCreateUserInput)
	require.NoError(t, in.AddClientMetadataEntry("source", "import"))
	require.NoError(t, in.AddClientMetadataEntry("batch", "7"))

	err := in.AddClientMetadataEntry("source", "api")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Contains(t, err.Error(), "ClientMetadata")
	assert.Contains(t, err.Error(), `"source"`)
	assert.Equal(t, map[string]string{"source": "import", "batch": "7"}, in.GetClientMetadata())

	assert.Same(t, in, in.ClearClientMetadataEntries())
	assert.Nil(t, in.ClientMetadata)
	assert.True(t, in.Equal(new(AdminCreateUserInput)))

	require.NoError(t, in.AddClientMetadataEntry("source", "api"))
	assert.Equal(t, "api", in.GetClientMetadata()["source"])
}

func TestString(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)

	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{
			name: "nil",
			in:   (*AttributeType)(nil),
			want: "<nil>",
		},
		{
			name: "empty",
			in:   new(AdminEnableUserOutput),
			want: "{}",
		},
		{
			name: "sensitive value redacted",
			in:   new(AttributeType).SetName("email").SetValue("alice@example.com"),
			want: "{Name: email,Value: *** Sensitive Data Redacted ***}",
		},
		{
			name: "map keys sorted",
			in: new(AdminCreateUserInput).
				SetUserPoolId("us-east-1_Example1").
				SetUsername("alice").
				SetDesiredDeliveryMediums([]DeliveryMediumType{DeliveryMediumTypeSms, DeliveryMediumTypeEmail}).
				SetClientMetadata(map[string]string{"b": "2", "a": "1"}),
			want: "{UserPoolId: us-east-1_Example1,Username: *** Sensitive Data Redacted ***," +
				"DesiredDeliveryMediums: [SMS, EMAIL],ClientMetadata: {a=1, b=2}}",
		},
		{
			name: "nested values",
			in: new(UserType).
				SetAttributes([]AttributeType{attr("email", "a@example.com")}).
				SetUserCreateDate(created).
				SetEnabled(true).
				SetUserStatus(UserStatusTypeConfirmed),
			want: "{Attributes: [{Name: email,Value: *** Sensitive Data Redacted ***}]," +
				"UserCreateDate: 2024-01-02T03:04:05.0000006Z,Enabled: true,UserStatus: CONFIRMED}",
		},
		{
			name: "nested structure",
			in: new(UserPoolPolicyType).
				SetPasswordPolicy(new(PasswordPolicyType).SetMinimumLength(8).SetRequireSymbols(false)),
			want: "{PasswordPolicy: {MinimumLength: 8,RequireSymbols: false}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestStringNeverLeaksSensitiveMembers(t *testing.T) {
	in := new(AdminInitiateAuthInput).
		SetClientId("client1").
		SetAuthFlow(AuthFlowTypeAdminUserPasswordAuth).
		SetAuthParameters(map[string]string{"USERNAME": "alice", "PASSWORD": "hunter2"})

	s := in.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "AuthParameters: *** Sensitive Data Redacted ***")
}

func TestEqual(t *testing.T) {
	base := func() *UserType {
		return new(UserType).
			SetUsername("alice").
			SetAttributes([]AttributeType{attr("email", "a@example.com")}).
			SetEnabled(true)
	}

	tests := []struct {
		name string
		a, b *UserType
		want bool
	}{
		{name: "both nil", want: true},
		{name: "nil and empty", b: new(UserType), want: false},
		{name: "same members", a: base(), b: base(), want: true},
		{name: "different scalar", a: base(), b: base().SetEnabled(false), want: false},
		{name: "absent and set scalar", a: base(), b: base().SetUserStatus(UserStatusTypeConfirmed), want: false},
		{name: "different nested value", a: base(), b: base().SetAttributes([]AttributeType{attr("email", "b@example.com")}), want: false},
		{name: "nil and empty list", a: new(UserType), b: new(UserType).SetAttributes([]AttributeType{}), want: false},
		{
			name: "same instant in another zone",
			a:    new(UserType).SetUserCreateDate(fixtureTime),
			b:    new(UserType).SetUserCreateDate(fixtureTime.In(time.FixedZone("CET", 3600))),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestHashDistinguishesMembers(t *testing.T) {
	a := new(AttributeType).SetName("ab")
	b := new(AttributeType).SetValue("ab")
	c := new(AttributeType).SetName("a").SetValue("b")

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.NotEqual(t, new(ListUsersInput).Hash(), new(ListUsersInput).SetAttributesToGet([]string{}).Hash())

	m1 := new(TagResourceInput).SetTags(map[string]string{"a": "1", "b": "2"})
	m2 := new(TagResourceInput).SetTags(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, m1.Hash(), m2.Hash())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Validator
		wantErr []string
	}{
		{
			name: "valid",
			in: new(AdminCreateUserInput).
				SetUserPoolId("us-east-1_Example1").
				SetUsername("alice").
				AppendUserAttributes(attr("email", "a@example.com")),
		},
		{
			name:    "missing required members",
			in:      new(AdminCreateUserInput),
			wantErr: []string{"UserPoolId: Required value", "Username: Required value"},
		},
		{
			name:    "pattern mismatch",
			in:      new(AdminGetUserInput).SetUserPoolId("not a pool").SetUsername("alice"),
			wantErr: []string{`UserPoolId: Invalid value: "not a pool": must match pattern`},
		},
		{
			name:    "sensitive value not echoed",
			in:      new(AdminGetUserInput).SetUserPoolId("us-east-1_Example1").SetUsername(strings.Repeat("a", 129)),
			wantErr: []string{`Username: Invalid value: "*** Sensitive Data Redacted ***": must be at most 128 characters`},
		},
		{
			name:    "unknown enum value",
			in:      new(AdminCreateUserInput).SetUserPoolId("us-east-1_Example1").SetUsername("alice").SetMessageAction("LOUD"),
			wantErr: []string{`MessageAction: Unsupported value: "LOUD"`},
		},
		{
			name: "list element path",
			in: new(AdminUpdateUserAttributesInput).
				SetUserPoolId("us-east-1_Example1").
				SetUsername("alice").
				AppendUserAttributes(*new(AttributeType).SetValue("x")),
			wantErr: []string{"UserAttributes[0].Name: Required value"},
		},
		{
			name: "nested range",
			in: new(CreateUserPoolInput).
				SetPoolName("example-pool").
				SetPolicies(new(UserPoolPolicyType).SetPasswordPolicy(new(PasswordPolicyType).SetMinimumLength(5))),
			wantErr: []string{"Policies.PasswordPolicy.MinimumLength: Invalid value: 5: must be greater than or equal to 6"},
		},
		{
			name: "too many items",
			in: new(RiskExceptionConfigurationType).
				SetBlockedIPRangeList(make([]string, 201)),
			wantErr: []string{"BlockedIPRangeList: Too many"},
		},
		{
			name: "nested required enum",
			in: new(AccountTakeoverActionsType).
				SetHighAction(new(AccountTakeoverActionType).SetNotify(true)),
			wantErr: []string{"HighAction.EventAction: Required value"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestJSONUsesMemberNames(t *testing.T) {
	in := new(AdminGetUserInput).SetUserPoolId("us-east-1_Example1").SetUsername("alice")

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"UserPoolId":"us-east-1_Example1","Username":"alice"}`, string(b))

	var out AdminGetUserInput
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, in.Equal(&out))
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []UserPoolMfaType{"OFF", "ON", "OPTIONAL"}, UserPoolMfaType("").Values())
	assert.Contains(t, AuthFlowType("").Values(), AuthFlowTypeUserSrpAuth)
	assert.Len(t, IdentityProviderTypeTypeOidc.Values(), 6)
}
