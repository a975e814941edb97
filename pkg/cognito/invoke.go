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
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/cogniteo/idp-sdk-go/pkg/model"
	"github.com/cogniteo/idp-sdk-go/pkg/userpool"
)

// invoke validates in, sends it through send and converts the reply. Every
// attempt is counted in the client metrics.
func invoke[IT, SI, SO, O any, I interface {
	*IT
	model.Validator
}](
	ctx context.Context,
	c *AWSClient,
	op string,
	in I,
	toSDK func(I) *SI,
	send func(context.Context, *SI, ...func(*cognitoidentityprovider.Options)) (*SO, error),
	fromSDK func(*SO) *O,
) (*O, error) {
	if in == nil {
		c.metrics.requests.WithLabelValues(op, codeValidationError).Inc()
		return nil, fmt.Errorf("%s: %w: input cannot be nil", op, userpool.ErrInvalidParameter)
	}
	if err := in.Validate(); err != nil {
		c.metrics.requests.WithLabelValues(op, codeValidationError).Inc()
		c.log.V(1).Info("rejected invalid input", "operation", op, "error", err.Error())
		return nil, fmt.Errorf("%s: %w: %w", op, userpool.ErrInvalidParameter, err)
	}

	start := time.Now()
	out, err := send(ctx, toSDK(in))
	elapsed := time.Since(start)

	code := errorCode(err)
	c.metrics.observe(op, code, elapsed)
	if err != nil {
		c.log.Error(err, "request failed", "operation", op, "code", code, "duration", elapsed)
		return nil, mapError(op, err)
	}
	c.log.V(1).Info("request succeeded", "operation", op, "duration", elapsed)

	if out == nil {
		return new(O), nil
	}
	return fromSDK(out), nil
}

// withDefaultPool returns in, or a copy of it carrying id when in has no
// user pool of its own.
func withDefaultPool[T any, P interface {
	*T
	GetUserPoolId() string
	SetUserPoolId(string) *T
}](in P, id string) P {
	if in == nil || id == "" || in.GetUserPoolId() != "" {
		return in
	}
	cp := *in
	p := P(&cp)
	p.SetUserPoolId(id)
	return p
}
