// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/staranto/s3push/internal/aws"
)

// DefaultRegion is used when neither flags, config nor the SDK chain name a
// region.
const DefaultRegion = "us-east-1"

// Options maps the credentials onto AWS config load options.
func (c Credentials) Options() []awsx.Option {
	var opts []awsx.Option
	if c.Region != "" {
		opts = append(opts, awsx.WithRegion(c.Region))
	}
	switch c.Method {
	case SSO:
		opts = append(opts, awsx.WithProfile(c.Profile))
	case AccessKey:
		opts = append(opts, awsx.WithStaticCredentials(c.AccessKeyID, c.SecretAccessKey, ""))
	case SessionToken:
		opts = append(opts, awsx.WithStaticCredentials(c.AccessKeyID, c.SecretAccessKey, c.SessionToken))
	}
	return opts
}

// ClientOptions points the SDK at the shared files the resolver inspected, so
// a profile found by the SSO flow is the one the client loads.
func (r *Resolver) ClientOptions() []awsx.Option {
	configFile, _ := r.configPath()
	credentialsFile, _ := r.credentialsPath()
	return []awsx.Option{awsx.WithSharedFiles(configFile, credentialsFile)}
}

// NewClient builds an S3 client for creds. endpoint, when set, points the
// client at an S3-compatible service.
func NewClient(ctx context.Context, creds Credentials, endpoint string, extra ...awsx.Option) (*s3.Client, error) {
	cfg, err := awsx.LoadAWSConfig(ctx, append(creds.Options(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for %s: %w", creds.Method, err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	var optFns []func(*s3.Options)
	if endpoint != "" {
		optFns = append(optFns, awsx.WithEndpoint(endpoint))
	}
	return awsx.NewS3(cfg, optFns...), nil
}
