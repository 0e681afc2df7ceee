// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewPushFlags builds the flag set for the root command. path is the config
// file backing the flags; it may be empty.
func NewPushFlags(path string) []cli.Flag {
	return []cli.Flag{
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "bucket",
			Aliases: []string{"b"},
			Usage:   "S3 bucket to push to",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("S3PUSH_BUCKET"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}, "bucket", "AWS_S3_BUCKET_NAME"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "s3-folder",
			Aliases: []string{"p"},
			Usage:   "key prefix the local folder is pushed under",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("S3PUSH_PREFIX"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}, "prefix", "AWS_BUCKET_TARGET_FOLDER"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "folder",
			Aliases: []string{"f"},
			Usage:   "local folder to push",
			Sources: cli.NewValueSourceChain(),
			Value:   ".",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}, "folder"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region of the bucket",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}, "region", "AWS_REGION"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS SSO profile to use or create",
			Sources: cli.NewValueSourceChain(),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}, "sso_profile", "AWS_SSO_PROFILE"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "login",
			Aliases: []string{"l"},
			Usage:   "login method (sso, access-key, session-token). Prompts when empty",
			Sources: cli.NewValueSourceChain(),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, LoginValidator)
			},
		}, "login"),
		ValueChainFlagFromConfigFile(path, &cli.StringFlag{
			Name:    "os",
			Usage:   "shell syntax for session token instructions (linux, macos, windows)",
			Sources: cli.NewValueSourceChain(),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, OSValidator)
			},
		}, "os"),
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3-compatible endpoint URL",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("S3PUSH_ENDPOINT"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "yes",
			Aliases:     []string{"y"},
			Usage:       "push without asking for confirmation",
			HideDefault: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
	}
}

// ValueChainFlagFromConfigFile appends a config file source for each key to
// the flag's Sources chain. Earlier keys win.
func ValueChainFlagFromConfigFile(path string, flag *cli.StringFlag, keys ...string) *cli.StringFlag {
	if path == "" {
		return flag
	}
	for _, key := range keys {
		src := yaml.YAML(key, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}
	return flag
}
