// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/s3push/internal/auth"
	"github.com/staranto/s3push/internal/command"
	"github.com/staranto/s3push/internal/upload"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"canceled", upload.ErrCanceled, exitOK},
		{"upload rerun", fmt.Errorf("%w: 2 of 5 files uploaded", upload.ErrRerun), exitRerun},
		{"login rerun", auth.ErrRerun, exitRerun},
		{"bad menu choice", fmt.Errorf("%w \"7\"", auth.ErrInvalidChoice), exitInit},
		{"no bucket", command.ErrNoBucket, exitInit},
		{"usage", fmt.Errorf("%w: flag provided but not defined: -nope", command.ErrUsage), exitInit},
		{"empty folder", fmt.Errorf("%w in the local folder: /tmp/x", upload.ErrNoFiles), exitFatal},
		{"other", errors.New("boom"), exitFatal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
