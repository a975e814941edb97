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
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// defaultListUsersLimit is the page size of ListUsers when Limit is unset.
const defaultListUsersLimit = 60

// MockClient implements the userpool.UserManager interface for testing.
// Users are kept in memory, keyed by username, regardless of the pool named
// in a request.
type MockClient struct {
	mu    sync.Mutex
	users map[string]*model.UserType
	now   func() time.Time
}

var _ userpool.UserManager = (*MockClient)(nil)

// NewMockClient creates a new mock client for testing
func NewMockClient() *MockClient {
	return &MockClient{
		users: make(map[string]*model.UserType),
		now:   time.Now,
	}
}

func checkInput[T any, P interface {
	*T
	model.Validator
}](op string, in P) error {
	if in == nil {
		return fmt.Errorf("%s: %w: input cannot be nil", op, userpool.ErrInvalidParameter)
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, userpool.ErrInvalidParameter, err)
	}
	return nil
}

// newUser stores a user and returns it. The caller holds m.mu.
func (m *MockClient) newUser(username string, attrs []model.AttributeType, status model.UserStatusType) *model.UserType {
	now := m.now()
	attrs = append(slices.Clone(attrs), *new(model.AttributeType).SetName("sub").SetValue(uuid.NewString()))
	user := new(model.UserType).
		SetUsername(username).
		SetAttributes(attrs).
		SetUserCreateDate(now).
		SetUserLastModifiedDate(now).
		SetEnabled(true).
		SetUserStatus(status)
	m.users[username] = user
	return user
}

// AdminCreateUser creates a user with a temporary password status.
func (m *MockClient) AdminCreateUser(_ context.Context, in *model.AdminCreateUserInput) (*model.AdminCreateUserOutput, error) {
	if err := checkInput("AdminCreateUser", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[in.GetUsername()]; exists {
		return nil, fmt.Errorf("AdminCreateUser: %w: %s", userpool.ErrUsernameExists, in.GetUsername())
	}
	user := m.newUser(in.GetUsername(), in.UserAttributes, model.UserStatusTypeForceChangePassword)
	return new(model.AdminCreateUserOutput).SetUser(copyUser(user)), nil
}

// AdminGetUser returns a stored user.
func (m *MockClient) AdminGetUser(_ context.Context, in *model.AdminGetUserInput) (*model.AdminGetUserOutput, error) {
	if err := checkInput("AdminGetUser", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.lookup("AdminGetUser", in.GetUsername())
	if err != nil {
		return nil, err
	}
	u := copyUser(user)
	return &model.AdminGetUserOutput{
		Username:             u.Username,
		UserAttributes:       u.Attributes,
		UserCreateDate:       u.UserCreateDate,
		UserLastModifiedDate: u.UserLastModifiedDate,
		Enabled:              u.Enabled,
		UserStatus:           u.UserStatus,
		MFAOptions:           u.MFAOptions,
	}, nil
}

// AdminUpdateUserAttributes replaces the named attributes of a user and
// adds the ones it does not have yet.
func (m *MockClient) AdminUpdateUserAttributes(_ context.Context, in *model.AdminUpdateUserAttributesInput) (*model.AdminUpdateUserAttributesOutput, error) {
	if err := checkInput("AdminUpdateUserAttributes", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.lookup("AdminUpdateUserAttributes", in.GetUsername())
	if err != nil {
		return nil, err
	}
	for _, attr := range in.UserAttributes {
		i := slices.IndexFunc(user.Attributes, func(a model.AttributeType) bool {
			return a.GetName() == attr.GetName()
		})
		if i < 0 {
			user.Attributes = append(user.Attributes, attr)
			continue
		}
		user.Attributes[i].Value = attr.Value
	}
	user.SetUserLastModifiedDate(m.now())
	return &model.AdminUpdateUserAttributesOutput{}, nil
}

// AdminEnableUser enables a user.
func (m *MockClient) AdminEnableUser(_ context.Context, in *model.AdminEnableUserInput) (*model.AdminEnableUserOutput, error) {
	if err := checkInput("AdminEnableUser", in); err != nil {
		return nil, err
	}
	if err := m.setEnabled("AdminEnableUser", in.GetUsername(), true); err != nil {
		return nil, err
	}
	return &model.AdminEnableUserOutput{}, nil
}

// AdminDisableUser disables a user.
func (m *MockClient) AdminDisableUser(_ context.Context, in *model.AdminDisableUserInput) (*model.AdminDisableUserOutput, error) {
	if err := checkInput("AdminDisableUser", in); err != nil {
		return nil, err
	}
	if err := m.setEnabled("AdminDisableUser", in.GetUsername(), false); err != nil {
		return nil, err
	}
	return &model.AdminDisableUserOutput{}, nil
}

func (m *MockClient) setEnabled(op, username string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.lookup(op, username)
	if err != nil {
		return err
	}
	user.SetEnabled(enabled).SetUserLastModifiedDate(m.now())
	return nil
}

// AdminDeleteUser removes a user from the mock store
func (m *MockClient) AdminDeleteUser(_ context.Context, in *model.AdminDeleteUserInput) (*model.AdminDeleteUserOutput, error) {
	if err := checkInput("AdminDeleteUser", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.lookup("AdminDeleteUser", in.GetUsername()); err != nil {
		return nil, err
	}
	delete(m.users, in.GetUsername())
	return &model.AdminDeleteUserOutput{}, nil
}

// ListUsers returns users ordered by username. The pagination token is the
// offset of the next page. Filter supports `name = "value"` and
// `name ^= "prefix"`.
func (m *MockClient) ListUsers(_ context.Context, in *model.ListUsersInput) (*model.ListUsersOutput, error) {
	if err := checkInput("ListUsers", in); err != nil {
		return nil, err
	}
	match, err := parseFilter(in.GetFilter())
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w: %w", userpool.ErrInvalidParameter, err)
	}

	offset := 0
	if token := in.GetPaginationToken(); token != "" {
		offset, err = strconv.Atoi(token)
		if err != nil || offset < 0 {
			return nil, fmt.Errorf("ListUsers: %w: bad pagination token %q", userpool.ErrInvalidParameter, token)
		}
	}
	limit := int(in.GetLimit())
	if limit == 0 {
		limit = defaultListUsersLimit
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var names []string
	for name, user := range m.users {
		if match(user) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	out := &model.ListUsersOutput{Users: []model.UserType{}}
	end := min(offset+limit, len(names))
	for _, name := range names[min(offset, end):end] {
		user := copyUser(m.users[name])
		if len(in.AttributesToGet) > 0 {
			user.Attributes = slices.DeleteFunc(user.Attributes, func(a model.AttributeType) bool {
				return !slices.Contains(in.AttributesToGet, a.GetName())
			})
		}
		out.AppendUsers(*user)
	}
	if end < len(names) {
		out.SetPaginationToken(strconv.Itoa(end))
	}
	return out, nil
}

// SignUp registers an unconfirmed user.
func (m *MockClient) SignUp(_ context.Context, in *model.SignUpInput) (*model.SignUpOutput, error) {
	if err := checkInput("SignUp", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[in.GetUsername()]; exists {
		return nil, fmt.Errorf("SignUp: %w: %s", userpool.ErrUsernameExists, in.GetUsername())
	}
	user := m.newUser(in.GetUsername(), in.UserAttributes, model.UserStatusTypeUnconfirmed)
	return new(model.SignUpOutput).
		SetUserConfirmed(false).
		SetUserSub(attributeValue(user, "sub")), nil
}

// ConfirmSignUp confirms a user registered by SignUp. Any code is accepted.
func (m *MockClient) ConfirmSignUp(_ context.Context, in *model.ConfirmSignUpInput) (*model.ConfirmSignUpOutput, error) {
	if err := checkInput("ConfirmSignUp", in); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, err := m.lookup("ConfirmSignUp", in.GetUsername())
	if err != nil {
		return nil, err
	}
	if user.GetUserStatus() != model.UserStatusTypeUnconfirmed {
		return nil, fmt.Errorf("ConfirmSignUp: %w: user %s is %s", userpool.ErrNotAuthorized, in.GetUsername(), user.GetUserStatus())
	}
	user.SetUserStatus(model.UserStatusTypeConfirmed).SetUserLastModifiedDate(m.now())
	return &model.ConfirmSignUpOutput{}, nil
}

func (m *MockClient) lookup(op, username string) (*model.UserType, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, fmt.Errorf("%s: %w: %s", op, userpool.ErrUserNotFound, username)
	}
	return user, nil
}

// copyUser returns a copy of u that shares no attribute storage with it.
func copyUser(u *model.UserType) *model.UserType {
	cp := *u
	cp.Attributes = slices.Clone(u.Attributes)
	cp.MFAOptions = slices.Clone(u.MFAOptions)
	return &cp
}

func attributeValue(u *model.UserType, name string) string {
	for _, a := range u.GetAttributes() {
		if a.GetName() == name {
			return a.GetValue()
		}
	}
	return ""
}

// parseFilter compiles a ListUsers filter. username, status (Enabled or
// Disabled) and cognito:user_status are matched against the user itself.
func parseFilter(filter string) (func(*model.UserType) bool, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return func(*model.UserType) bool { return true }, nil
	}

	prefix := true
	name, value, ok := strings.Cut(filter, "^=")
	if !ok {
		prefix = false
		name, value, ok = strings.Cut(filter, "=")
	}
	name = strings.TrimSpace(name)
	value, err := strconv.Unquote(strings.TrimSpace(value))
	if !ok || name == "" || err != nil {
		return nil, fmt.Errorf("unsupported filter %q", filter)
	}

	return func(u *model.UserType) bool {
		var got string
		switch name {
		case "username":
			got = u.GetUsername()
		case "status":
			got = "Disabled"
			if u.GetEnabled() {
				got = "Enabled"
			}
		case "cognito:user_status":
			got = string(u.GetUserStatus())
		default:
			got = attributeValue(u, name)
		}
		if prefix {
			return strings.HasPrefix(got, value)
		}
		return got == value
	}, nil
}
