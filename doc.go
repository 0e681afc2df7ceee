// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// s3push is the main package for the s3push command line tool. It pushes a
// local folder to an S3 bucket after logging in with AWS SSO, a static access
// key or a session token.
package main
