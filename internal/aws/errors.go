// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/credentials/ssocreds"
	"github.com/aws/smithy-go"
)

// Error codes that mean the caller's credentials are wrong or stale.
const (
	CodeInvalidAccessKeyID = "InvalidAccessKeyId"
	CodeInvalidToken       = "InvalidToken"
	CodeExpiredToken       = "ExpiredToken"

	// CodeSSOSessionExpired is not sent by S3. ErrorCode reports it when the
	// SDK could not use the cached SSO token.
	CodeSSOSessionExpired = "SSOSessionExpired"
)

// ErrorCode returns the API error code carried by err, or "" if there is none.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	var tokenErr *ssocreds.InvalidTokenError
	if errors.As(err, &tokenErr) {
		return CodeSSOSessionExpired
	}
	return ""
}

// ErrorMessage returns the API error message, falling back to err.Error().
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}

// IsInvalidCredentials reports whether err carries one of codes. Errors that
// lost their type on the way up (e.g. flattened into a string by a wrapper)
// are matched on their message.
func IsInvalidCredentials(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	code := ErrorCode(err)
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	if code != "" {
		return false
	}
	msg := err.Error()
	for _, c := range codes {
		if strings.Contains(msg, c) {
			return true
		}
	}
	return false
}
