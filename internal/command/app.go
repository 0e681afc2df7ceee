// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/s3push/internal/config"
	"github.com/staranto/s3push/internal/meta"
)

// ErrUsage marks errors in the command line itself, such as an unknown flag
// or a value a validator rejected.
var ErrUsage = errors.New("invalid usage")

// InitApp loads the config file and builds the s3push command. A missing
// config file is fine; one that cannot be read or parsed is not.
func InitApp(_ context.Context, args []string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNoConfig) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Debugf("%v", err)
	}

	return NewApp(meta.Meta{
		Args:   args,
		Config: cfg,
	}), nil
}

// NewApp builds the root command around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "s3push",
		Usage:     "push a local folder to an S3 bucket",
		UsageText: "s3push [--login sso|access-key|session-token] [--bucket NAME] [--s3-folder PREFIX] [--folder DIR]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(NewPushFlags(m.Config.Source),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "s3push version info",
				HideDefault: true,
			},
		),
		Action: PushAction,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}
