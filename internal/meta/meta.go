// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"io"

	"github.com/staranto/s3push/internal/config"
)

// Meta are the meta-options that are available to the push action.
type Meta struct {
	Args   []string
	Config config.Type

	// Stdin and Stdout back the interactive console. Nil means the process
	// streams.
	Stdin  io.Reader
	Stdout io.Writer
}
