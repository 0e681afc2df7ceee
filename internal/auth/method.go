// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"errors"
	"fmt"
	"strings"

	awsx "github.com/staranto/s3push/internal/aws"
)

// ErrInvalidChoice is returned when a menu answer or flag value does not name
// a known option.
var ErrInvalidChoice = errors.New("invalid choice")

// Method is a login method. The values match the menu numbers.
type Method int

const (
	SSO Method = iota + 1
	AccessKey
	SessionToken
)

// Methods lists the login methods in menu order.
var Methods = []Method{SSO, AccessKey, SessionToken}

func (m Method) String() string {
	switch m {
	case SSO:
		return "AWS SSO"
	case AccessKey:
		return "AWS access key"
	case SessionToken:
		return "AWS session token"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Name is the flag spelling of m.
func (m Method) Name() string {
	switch m {
	case SSO:
		return "sso"
	case AccessKey:
		return "access-key"
	case SessionToken:
		return "session-token"
	}
	return ""
}

// RecoverableCodes are the API error codes that send m back through
// configuration instead of failing outright.
func (m Method) RecoverableCodes() []string {
	switch m {
	case SSO:
		return []string{awsx.CodeInvalidAccessKeyID, awsx.CodeExpiredToken, awsx.CodeSSOSessionExpired}
	case AccessKey:
		return []string{awsx.CodeInvalidAccessKeyID}
	case SessionToken:
		return []string{awsx.CodeInvalidAccessKeyID, awsx.CodeInvalidToken, awsx.CodeExpiredToken}
	}
	return nil
}

// ParseMethod accepts a menu number or a flag name.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "sso":
		return SSO, nil
	case "2", "access-key", "accesskey", "key":
		return AccessKey, nil
	case "3", "session-token", "sessiontoken", "token":
		return SessionToken, nil
	}
	return 0, fmt.Errorf("%w %q: enter 1 for AWS SSO, 2 for AWS access key or 3 for AWS session token",
		ErrInvalidChoice, s)
}

// OS selects the shell syntax used in remediation instructions.
type OS int

const (
	Linux OS = iota + 1
	MacOS
	Windows
)

// OSes lists the operating systems in menu order.
var OSes = []OS{Linux, MacOS, Windows}

func (o OS) String() string {
	switch o {
	case Linux:
		return "Linux"
	case MacOS:
		return "MacOS"
	case Windows:
		return "Windows"
	}
	return fmt.Sprintf("OS(%d)", int(o))
}

// ParseOS accepts a menu number or a name.
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "linux":
		return Linux, nil
	case "2", "macos", "mac", "darwin":
		return MacOS, nil
	case "3", "windows", "win":
		return Windows, nil
	}
	return 0, fmt.Errorf("%w %q: enter 1 for Linux, 2 for MacOS, or 3 for Windows", ErrInvalidChoice, s)
}
