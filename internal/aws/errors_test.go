// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials/ssocreds"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code + " message", Fault: smithy.FaultClient}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"API error", apiError("InvalidAccessKeyId"), "InvalidAccessKeyId"},
		{"wrapped API error", fmt.Errorf("put: %w", apiError("ExpiredToken")), "ExpiredToken"},
		{"expired SSO token", &ssocreds.InvalidTokenError{Err: errors.New("token expired")}, CodeSSOSessionExpired},
		{"plain error", errors.New("plain error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "AccessDenied message", ErrorMessage(apiError("AccessDenied")))
	assert.Equal(t, "plain error", ErrorMessage(errors.New("plain error")))
}

func TestIsInvalidCredentials(t *testing.T) {
	codes := []string{CodeInvalidAccessKeyID, CodeInvalidToken}

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"InvalidAccessKeyId", apiError("InvalidAccessKeyId"), true},
		{"InvalidToken", fmt.Errorf("upload: %w", apiError("InvalidToken")), true},
		{"code not in set", apiError("ExpiredToken"), false},
		{"AccessDenied", apiError("AccessDenied"), false},
		{"plain error with code in message", errors.New("upload failed: InvalidAccessKeyId"), true},
		{"plain error", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInvalidCredentials(tt.err, codes...))
		})
	}
}
