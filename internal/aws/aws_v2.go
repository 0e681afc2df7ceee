// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile         string
	region          string
	static          *credentials.StaticCredentialsProvider
	configFiles     []string
	credentialFiles []string
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithStaticCredentials pins the credentials to a fixed key pair. token is
// empty for long-lived access keys.
func WithStaticCredentials(accessKeyID, secretAccessKey, token string) Option {
	return func(o *options) {
		p := credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, token)
		o.static = &p
	}
}

// WithSharedFiles replaces the shared config and credentials file locations.
// Empty arguments keep the SDK defaults.
func WithSharedFiles(configFile, credentialsFile string) Option {
	return func(o *options) {
		if configFile != "" {
			o.configFiles = []string{configFile}
		}
		if credentialsFile != "" {
			o.credentialFiles = []string{credentialsFile}
		}
	}
}

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region and credentials without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.static != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(*o.static))
	}
	if len(o.configFiles) > 0 {
		loadOpts = append(loadOpts, config.WithSharedConfigFiles(o.configFiles))
	}
	if len(o.credentialFiles) > 0 {
		loadOpts = append(loadOpts, config.WithSharedCredentialsFiles(o.credentialFiles))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// WithEndpoint points the S3 client at an S3-compatible endpoint, such as
// MinIO or LocalStack. Path-style addressing is forced since those rarely
// serve virtual-hosted buckets.
func WithEndpoint(url string) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.BaseEndpoint = awsv2.String(url)
		o.UsePathStyle = true
	}
}
