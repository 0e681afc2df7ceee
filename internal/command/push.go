// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/s3push/internal/auth"
	"github.com/staranto/s3push/internal/config"
	"github.com/staranto/s3push/internal/console"
	"github.com/staranto/s3push/internal/meta"
	"github.com/staranto/s3push/internal/upload"
)

// ErrNoBucket is returned when no flag, env var or config key names a bucket.
var ErrNoBucket = errors.New("no S3 bucket configured, set bucket in s3push.yaml or pass --bucket")

// PushAction logs in, builds the client, plans the upload and runs it.
func PushAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	bucket := cmd.String("bucket")
	if bucket == "" {
		return ErrNoBucket
	}

	color := cmd.Bool("color")
	if !cmd.IsSet("color") {
		color = console.IsTerminal()
	}
	con := newConsole(m, color)
	resolver := newResolver(m, cmd, con)

	method, err := loginMethod(cmd, resolver)
	if err != nil {
		return err
	}

	creds, err := resolver.Resolve(ctx, method)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"method":  creds.Method.Name(),
		"profile": creds.Profile,
		"region":  creds.Region,
	}).Debug("resolved credentials")

	client, err := auth.NewClient(ctx, creds, cmd.String("endpoint"), resolver.ClientOptions()...)
	if err != nil {
		return err
	}

	prefix := cmd.String("s3-folder")
	folder := cmd.String("folder")
	con.Warn("Using S3 bucket folder: %s", prefix)
	con.Warn("Using local folder: %s", folder)

	items, err := upload.Plan(folder, prefix)
	if err != nil {
		return err
	}

	uploader := &upload.Uploader{
		Client:  client,
		Bucket:  bucket,
		Console: con,
		Recover: auth.Recovery{Resolver: resolver, Creds: creds},
	}
	return uploader.Run(ctx, items, cmd.Bool("yes"))
}

func newConsole(m meta.Meta, color bool) *console.Console {
	if m.Stdin == nil || m.Stdout == nil {
		return console.Std(color)
	}
	return console.New(m.Stdin, m.Stdout, color)
}

func newResolver(m meta.Meta, cmd *cli.Command, con *console.Console) *auth.Resolver {
	settings := config.GetSettings()

	r := &auth.Resolver{
		Console:         con,
		Runner:          auth.ExecRunner{Input: con, Stdout: m.Stdout, Stderr: os.Stderr},
		Profile:         cmd.String("profile"),
		Region:          cmd.String("region"),
		AccessKeyID:     settings.AccessKeyID,
		SecretAccessKey: settings.SecretAccessKey,
	}

	// Already checked by OSValidator.
	if o := cmd.String("os"); o != "" {
		r.OS, _ = auth.ParseOS(o)
	}
	return r
}

func loginMethod(cmd *cli.Command, r *auth.Resolver) (auth.Method, error) {
	if login := cmd.String("login"); login != "" {
		return auth.ParseMethod(login)
	}
	return r.SelectMethod()
}
