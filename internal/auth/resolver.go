// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"

	awsx "github.com/staranto/s3push/internal/aws"
	"github.com/staranto/s3push/internal/console"
)

// ErrRerun means the user has been told how to fix their credentials and has
// to run s3push again.
var ErrRerun = errors.New("credentials need attention, rerun when done")

// Credentials is the outcome of a login. Which fields are set depends on
// Method: SSO carries only Profile, the key methods carry the key material.
type Credentials struct {
	Method          Method
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Region          string
	OS              OS
}

// Resolver walks the user through one login method.
type Resolver struct {
	Console *console.Console
	Runner  Runner

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// Profile is the SSO profile to use or create.
	Profile string
	Region  string

	// OS skips the OS menu of the session-token flow when set.
	OS OS

	// Fallback keys for the access-key flow, used when the credentials file
	// has none.
	AccessKeyID     string
	SecretAccessKey string

	// KeySection is the credentials file section holding access keys.
	// Defaults to "default".
	KeySection string

	// Shared file locations. Empty means the SDK defaults.
	ConfigFile      string
	CredentialsFile string
}

// SelectMethod presents the login menu and parses the answer.
func (r *Resolver) SelectMethod() (Method, error) {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = m.String()
	}
	choice, err := r.Console.Choose("Select your login method:", names)
	if err != nil {
		return 0, err
	}
	return ParseMethod(choice)
}

// Resolve runs the flow for method and returns the resulting credentials.
func (r *Resolver) Resolve(ctx context.Context, method Method) (Credentials, error) {
	r.Console.Warn("Logging in with %s...", method)
	log.WithField("method", method.Name()).Debug("resolving credentials")

	switch method {
	case SSO:
		return r.resolveSSO(ctx)
	case AccessKey:
		return r.resolveAccessKey(ctx)
	case SessionToken:
		return r.resolveSessionToken()
	}
	return Credentials{}, fmt.Errorf("%w: login method %d", ErrInvalidChoice, int(method))
}

func (r *Resolver) resolveSSO(ctx context.Context) (Credentials, error) {
	if r.Profile == "" {
		return Credentials{}, errors.New("no SSO profile configured, set sso_profile or pass --profile")
	}

	path, err := r.configPath()
	if err != nil {
		return Credentials{}, err
	}

	has, err := awsx.HasProfile(path, r.Profile)
	if err != nil {
		return Credentials{}, err
	}

	if has {
		r.Console.Warn("Profile '%s' already exists in the AWS CLI config.", r.Profile)
	} else {
		if !awsx.FileExists(path) {
			r.Console.Warn("AWS CLI configuration does not exist. Initiating AWS SSO configuration...")
		} else {
			r.Console.Warn("Profile '%s' not found in %s. Initiating AWS SSO configuration...", r.Profile, path)
		}
		if err := r.configureSSO(ctx); err != nil {
			return Credentials{}, err
		}

		// The CLI lets the user type a different profile name.
		if has, err = awsx.HasProfile(path, r.Profile); err != nil {
			return Credentials{}, err
		} else if !has {
			return Credentials{}, fmt.Errorf("profile '%s' is still missing from %s", r.Profile, path)
		}
	}

	return Credentials{Method: SSO, Profile: r.Profile, Region: r.Region}, nil
}

func (r *Resolver) resolveAccessKey(ctx context.Context) (Credentials, error) {
	path, err := r.credentialsPath()
	if err != nil {
		return Credentials{}, err
	}

	if !awsx.FileExists(path) {
		r.Console.Warn("AWS CLI configuration does not exist. Initiating AWS access key configuration...")
		if err := r.configureKeys(ctx); err != nil {
			return Credentials{}, err
		}
	}

	section := r.KeySection
	if section == "" {
		section = "default"
	}

	var id, secret string
	if awsx.FileExists(path) {
		if id, secret, err = awsx.StaticKeys(path, section); err != nil {
			return Credentials{}, err
		}
	}
	if id == "" || secret == "" {
		log.Debugf("no key pair in [%s] of %s, using configured keys", section, path)
		id, secret = r.AccessKeyID, r.SecretAccessKey
	}
	if id == "" || secret == "" {
		return Credentials{}, fmt.Errorf("no access key found in [%s] of %s, run 'aws configure'", section, path)
	}

	return Credentials{
		Method:          AccessKey,
		AccessKeyID:     id,
		SecretAccessKey: secret,
		Region:          r.Region,
	}, nil
}

func (r *Resolver) resolveSessionToken() (Credentials, error) {
	osChoice := r.OS
	if osChoice == 0 {
		names := make([]string, len(OSes))
		for i, o := range OSes {
			names[i] = o.String()
		}
		choice, err := r.Console.Choose("Select your OS:", names)
		if err != nil {
			return Credentials{}, err
		}
		if osChoice, err = ParseOS(choice); err != nil {
			return Credentials{}, err
		}
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	creds := Credentials{
		Method:          SessionToken,
		AccessKeyID:     getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    getenv("AWS_SESSION_TOKEN"),
		Region:          r.Region,
		OS:              osChoice,
	}

	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" || creds.SessionToken == "" {
		r.printExportInstructions(osChoice)
		r.Console.Info("After configuring the environment variables, you can rerun the s3push command.")
		return Credentials{}, ErrRerun
	}

	r.Console.Success("Environment variables are set.")
	return creds, nil
}

func (r *Resolver) configureSSO(ctx context.Context) error {
	if err := r.Runner.Run(ctx, "aws", "configure", "sso", "--profile", r.Profile); err != nil {
		return fmt.Errorf("error configuring AWS SSO: %w", err)
	}
	r.Console.Success("AWS SSO profile '%s' configured successfully.", r.Profile)
	return nil
}

func (r *Resolver) configureKeys(ctx context.Context) error {
	if err := r.Runner.Run(ctx, "aws", "configure"); err != nil {
		return fmt.Errorf("error configuring AWS access key: %w", err)
	}
	r.Console.Success("AWS access key configured successfully.")
	return nil
}

func (r *Resolver) configPath() (string, error) {
	if r.ConfigFile != "" {
		return r.ConfigFile, nil
	}
	return awsx.ConfigPath()
}

func (r *Resolver) credentialsPath() (string, error) {
	if r.CredentialsFile != "" {
		return r.CredentialsFile, nil
	}
	return awsx.CredentialsPath()
}
