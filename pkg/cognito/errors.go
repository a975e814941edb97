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
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// Result codes recorded for requests that did not get an API error code.
const (
	codeOK              = "OK"
	codeValidationError = "ValidationError"
	codeCanceled        = "Canceled"
	codeClientError     = "ClientError"
)

// sentinels maps API error codes to the errors of package userpool.
var sentinels = map[string]error{
	"UserNotFoundException":     userpool.ErrUserNotFound,
	"UsernameExistsException":   userpool.ErrUsernameExists,
	"ResourceNotFoundException": userpool.ErrPoolNotFound,
	"NotAuthorizedException":    userpool.ErrNotAuthorized,
	"InvalidParameterException": userpool.ErrInvalidParameter,
	"InvalidPasswordException":  userpool.ErrInvalidParameter,
	"TooManyRequestsException":  userpool.ErrThrottled,
	"LimitExceededException":    userpool.ErrThrottled,
}

// errorCode returns the code err is counted under.
func errorCode(err error) string {
	if err == nil {
		return codeOK
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return codeCanceled
	}
	return codeClientError
}

// mapError wraps err with the operation name and, when its API error code is
// known, with the matching userpool sentinel.
func mapError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if sentinel, ok := sentinels[apiErr.ErrorCode()]; ok {
			return fmt.Errorf("%s: %w: %w", op, sentinel, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
