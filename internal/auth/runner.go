// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/apex/log"
)

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with the terminal attached, so interactive tools
// such as `aws configure sso` can prompt the user. Nil streams default to the
// process's own.
type ExecRunner struct {
	// Input, when set, supplies stdin at run time and wins over Stdin. The
	// console uses it to pass on answers it has already read ahead.
	Input interface{ Stdin() io.Reader }

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found on PATH, install it and retry: %w", name, err)
	}

	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	log.Debugf("running %s", cmdline)

	c := exec.CommandContext(ctx, name, args...)
	c.Stdin, c.Stdout, c.Stderr = r.Stdin, r.Stdout, r.Stderr
	if r.Input != nil {
		c.Stdin = r.Input.Stdin()
	}
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if err := c.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cmdline, err)
	}
	return nil
}
