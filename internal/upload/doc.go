// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package upload plans and performs the transfer of a local directory tree to
// an S3 prefix, one PutObject per file, in walk order.
package upload
