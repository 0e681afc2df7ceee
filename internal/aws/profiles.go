// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"gopkg.in/ini.v1"
)

// ConfigPath returns the path to the AWS config file.
// Respects AWS_CONFIG_FILE, falls back to ~/.aws/config.
func ConfigPath() (string, error) {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".aws", "config"), nil
}

// CredentialsPath returns the path to the AWS credentials file.
// Respects AWS_SHARED_CREDENTIALS_FILE, falls back to ~/.aws/credentials.
func CredentialsPath() (string, error) {
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".aws", "credentials"), nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// configSectionName maps a profile name to its section in the config file,
// where every profile but "default" is written as "profile xxx".
func configSectionName(profile string) string {
	if profile == "default" {
		return "default"
	}
	return "profile " + profile
}

// HasProfile reports whether the config file at path defines profile. A
// missing file is not an error; it simply has no profiles.
func HasProfile(path, profile string) (bool, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to parse aws config %s: %w", path, err)
	}
	return cfg.HasSection(configSectionName(profile)), nil
}

// StaticKeys returns the access key pair stored under section in the
// credentials file at path. Either value may be empty.
func StaticKeys(path, section string) (accessKeyID, secretAccessKey string, err error) {
	creds, err := ini.Load(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse aws credentials %s: %w", path, err)
	}

	sec, err := creds.GetSection(section)
	if err != nil {
		log.Debugf("no [%s] section in %s", section, path)
		return "", "", nil
	}

	return sec.Key("aws_access_key_id").String(), sec.Key("aws_secret_access_key").String(), nil
}
