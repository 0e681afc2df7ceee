// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"

	awsx "github.com/staranto/s3push/internal/aws"
)

var sessionVars = []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN"}

// Remediate runs the one configuration step that fixes stale credentials for
// creds.Method and tells the user to rerun. It never retries the upload.
func (r *Resolver) Remediate(ctx context.Context, creds Credentials) error {
	switch creds.Method {
	case SSO:
		r.Console.Warn("AWS SSO credentials are invalid or expired. Initiating AWS SSO configuration...")
		if err := r.configureSSO(ctx); err != nil {
			return err
		}
		r.Console.Info("You can rerun the s3push command.")
	case AccessKey:
		r.Console.Error("Error connecting to AWS: The AWS Access Key Id you provided is invalid.")
		r.Console.Warn("Initiating new AWS access key configuration...")
		if err := r.configureKeys(ctx); err != nil {
			return err
		}
		r.Console.Info("You can rerun the s3push command.")
	case SessionToken:
		r.printExportInstructions(creds.OS)
		r.Console.Info("After configuring the environment variables, you can rerun the s3push command.")
	}
	return nil
}

func (r *Resolver) printExportInstructions(o OS) {
	r.Console.Info("Please configure the following environment variables by executing the following command:")
	switch o {
	case Windows:
		for _, v := range sessionVars {
			r.Console.Warn("SET %s=****", v)
		}
		r.Console.Info("If using PowerShell execute this:")
		for _, v := range sessionVars {
			r.Console.Warn(`$Env:%s="****"`, v)
		}
	default:
		for _, v := range sessionVars {
			r.Console.Warn(`export %s="****"`, v)
		}
	}
}

// Recovery binds a Resolver to the credentials in use so an uploader can
// classify and remediate failures without knowing about login methods.
type Recovery struct {
	Resolver *Resolver
	Creds    Credentials
}

// Recoverable reports whether err is one of the credential errors the login
// method knows how to fix.
func (rc Recovery) Recoverable(err error) bool {
	return awsx.IsInvalidCredentials(err, rc.Creds.Method.RecoverableCodes()...)
}

func (rc Recovery) Remediate(ctx context.Context) error {
	return rc.Resolver.Remediate(ctx, rc.Creds)
}
