// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package auth turns the user's login choice into AWS credentials and an S3
// client. SSO and access-key setup is delegated to the aws CLI; session
// tokens are read from the environment.
package auth
