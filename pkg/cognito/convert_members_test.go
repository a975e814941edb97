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
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// operationConverters lists every request and response converter.
var operationConverters = []any{
	adminCreateUserInputToSDK,
	adminCreateUserOutputFromSDK,
	adminDeleteUserInputToSDK,
	adminDeleteUserOutputFromSDK,
	adminDisableUserInputToSDK,
	adminDisableUserOutputFromSDK,
	adminEnableUserInputToSDK,
	adminEnableUserOutputFromSDK,
	adminGetUserInputToSDK,
	adminGetUserOutputFromSDK,
	adminInitiateAuthInputToSDK,
	adminInitiateAuthOutputFromSDK,
	adminRespondToAuthChallengeInputToSDK,
	adminRespondToAuthChallengeOutputFromSDK,
	adminSetUserMFAPreferenceInputToSDK,
	adminSetUserMFAPreferenceOutputFromSDK,
	adminUpdateUserAttributesInputToSDK,
	adminUpdateUserAttributesOutputFromSDK,
	associateSoftwareTokenInputToSDK,
	associateSoftwareTokenOutputFromSDK,
	changePasswordInputToSDK,
	changePasswordOutputFromSDK,
	confirmForgotPasswordInputToSDK,
	confirmForgotPasswordOutputFromSDK,
	confirmSignUpInputToSDK,
	confirmSignUpOutputFromSDK,
	createIdentityProviderInputToSDK,
	createIdentityProviderOutputFromSDK,
	createResourceServerInputToSDK,
	createResourceServerOutputFromSDK,
	createUserPoolDomainInputToSDK,
	createUserPoolDomainOutputFromSDK,
	createUserPoolInputToSDK,
	createUserPoolOutputFromSDK,
	deleteUserPoolDomainInputToSDK,
	deleteUserPoolDomainOutputFromSDK,
	deleteUserPoolInputToSDK,
	deleteUserPoolOutputFromSDK,
	describeRiskConfigurationInputToSDK,
	describeRiskConfigurationOutputFromSDK,
	describeUserPoolClientInputToSDK,
	describeUserPoolClientOutputFromSDK,
	describeUserPoolDomainInputToSDK,
	describeUserPoolDomainOutputFromSDK,
	describeUserPoolInputToSDK,
	describeUserPoolOutputFromSDK,
	forgotPasswordInputToSDK,
	forgotPasswordOutputFromSDK,
	getUserPoolMfaConfigInputToSDK,
	getUserPoolMfaConfigOutputFromSDK,
	initiateAuthInputToSDK,
	initiateAuthOutputFromSDK,
	listUserPoolsInputToSDK,
	listUserPoolsOutputFromSDK,
	listUsersInputToSDK,
	listUsersOutputFromSDK,
	respondToAuthChallengeInputToSDK,
	respondToAuthChallengeOutputFromSDK,
	setRiskConfigurationInputToSDK,
	setRiskConfigurationOutputFromSDK,
	setUserPoolMfaConfigInputToSDK,
	setUserPoolMfaConfigOutputFromSDK,
	signUpInputToSDK,
	signUpOutputFromSDK,
	tagResourceInputToSDK,
	tagResourceOutputFromSDK,
	verifySoftwareTokenInputToSDK,
	verifySoftwareTokenOutputFromSDK,
}

var memberTime = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

// fillMembers sets every exported member reachable from v to a non-zero value.
func fillMembers(v reflect.Value, depth int) {
	if depth > 8 {
		return
	}
	switch v.Kind() {
	case reflect.Pointer:
		v.Set(reflect.New(v.Type().Elem()))
		fillMembers(v.Elem(), depth+1)
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(time.Time{}) {
			v.Set(reflect.ValueOf(memberTime))
			return
		}
		for i := range v.NumField() {
			if f := v.Field(i); f.CanSet() {
				fillMembers(f, depth+1)
			}
		}
	case reflect.Slice:
		v.Set(reflect.MakeSlice(v.Type(), 1, 1))
		fillMembers(v.Index(0), depth+1)
	case reflect.Map:
		m := reflect.MakeMap(v.Type())
		key := reflect.New(v.Type().Key()).Elem()
		elem := reflect.New(v.Type().Elem()).Elem()
		fillMembers(key, depth+1)
		fillMembers(elem, depth+1)
		m.SetMapIndex(key, elem)
		v.Set(m)
	case reflect.String:
		v.SetString("value")
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int32, reflect.Int64:
		v.SetInt(1)
	}
}

// zeroMembers returns the members of src left zero in dst, matched by name.
func zeroMembers(path string, src, dst reflect.Value) []string {
	for src.Kind() == reflect.Pointer || dst.Kind() == reflect.Pointer {
		if src.Kind() == reflect.Pointer {
			if src.IsNil() {
				return nil
			}
			src = src.Elem()
		}
		if dst.Kind() == reflect.Pointer {
			if dst.IsNil() {
				return []string{path}
			}
			dst = dst.Elem()
		}
	}

	if !src.IsValid() || src.IsZero() {
		return nil
	}

	switch {
	case src.Kind() == reflect.Struct && dst.Kind() == reflect.Struct && src.Type() != reflect.TypeOf(time.Time{}):
		var missing []string
		for i := range src.NumField() {
			field := src.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			if _, ok := dst.Type().FieldByName(field.Name); !ok {
				continue
			}
			missing = append(missing, zeroMembers(path+"."+field.Name, src.Field(i), dst.FieldByName(field.Name))...)
		}
		return missing
	case src.Kind() == reflect.Slice && dst.Kind() == reflect.Slice:
		if dst.Len() == 0 {
			return []string{path}
		}
		return zeroMembers(path+"[0]", src.Index(0), dst.Index(0))
	}
	if dst.IsZero() {
		return []string{path}
	}
	return nil
}

func TestOperationConvertersKeepEveryMember(t *testing.T) {
	for _, conv := range operationConverters {
		fn := reflect.ValueOf(conv)
		in := fn.Type().In(0)
		name := in.Elem().Name()

		t.Run(strings.TrimPrefix(in.String(), "*"), func(t *testing.T) {
			src := reflect.New(in.Elem())
			fillMembers(src.Elem(), 0)

			out := fn.Call([]reflect.Value{src})[0]
			require.False(t, out.IsNil())
			assert.Empty(t, zeroMembers(name, src, out), "members lost in conversion")
		})
	}
	assert.Len(t, operationConverters, 68, "an input and an output converter per operation")
}
