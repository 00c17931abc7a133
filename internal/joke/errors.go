// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package joke

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

var (
	ErrUnknownModel     = errors.New("unknown model")
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrEmptyResponse    = errors.New("no text in model response")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrAWS              = errors.New("AWS error")
)

// Friendly maps an invocation error to a sentinel with a hint the user can
// act on. The original error stays reachable through errors.As.
func Friendly(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException":
			return fmt.Errorf("%w: check your AWS permissions for Bedrock: %w", ErrAccessDenied, err)
		case "ValidationException":
			return fmt.Errorf("%w: check the model availability in your region: %w", ErrInvalidRequest, err)
		default:
			return fmt.Errorf("%w: %s: %w", ErrAWS, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("unexpected error: %w", err)
}

// ErrorCode returns the AWS API error code within err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
