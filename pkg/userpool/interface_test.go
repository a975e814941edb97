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

package userpool

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
)

func TestUserFromModel(t *testing.T) {
	u := new(model.UserType).
		SetUsername("alice").
		SetEnabled(true).
		SetUserStatus(model.UserStatusTypeConfirmed).
		AppendAttributes(
			*new(model.AttributeType).SetName("sub").SetValue("1234"),
			*new(model.AttributeType).SetName("email").SetValue("alice@example.com"),
		)

	assert.Equal(t, User{
		Username: "alice",
		Email:    "alice@example.com",
		Status:   model.UserStatusTypeConfirmed,
		Enabled:  true,
	}, UserFromModel(u))

	assert.Equal(t, User{}, UserFromModel(nil))
}
