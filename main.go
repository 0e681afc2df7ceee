// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"
	"github.com/joho/godotenv"

	"github.com/staranto/s3push/internal/auth"
	"github.com/staranto/s3push/internal/command"
	mylog "github.com/staranto/s3push/internal/log"
	"github.com/staranto/s3push/internal/upload"
	"github.com/staranto/s3push/internal/version"
)

const (
	exitOK    = 0
	exitInit  = 1
	exitFatal = 2
	exitRerun = 3
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	// A .env in the working directory seeds the environment but never
	// overrides it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		return exitInit
	}

	args := os.Args

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return exitOK
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInit
	}

	return exitCode(app.Run(ctx, args))
}

// exitCode maps the outcome of a run onto the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, upload.ErrCanceled):
		return exitOK
	case errors.Is(err, upload.ErrRerun), errors.Is(err, auth.ErrRerun):
		log.Debugf("rerun required: %v", err)
		return exitRerun
	case errors.Is(err, command.ErrUsage),
		errors.Is(err, command.ErrNoBucket),
		errors.Is(err, auth.ErrInvalidChoice):
		fmt.Fprintln(os.Stderr, err)
		return exitInit
	}
	fmt.Fprintln(os.Stderr, err)
	return exitFatal
}
