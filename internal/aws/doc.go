// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package aws wraps the AWS SDK pieces s3push needs: config loading, S3 client
// construction, inspection of the shared config and credentials files, and
// classification of credential errors.
package aws
