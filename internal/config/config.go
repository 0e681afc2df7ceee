// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file searched for in the standard
// locations.
const FileName = "s3push.yaml"

type Type struct {
	Source string
	Data   map[string]interface{}
}

// Settings holds the keys that have no flag of their own. Everything else
// reaches the command through its flag sources.
type Settings struct {
	AccessKeyID     string
	SecretAccessKey string
}

var Config Type

// ErrNoConfig means none of the standard locations holds a config file.
var ErrNoConfig = errors.New("no config file found in standard locations")

// aliases maps each key to the upper-case name used by older config files.
var aliases = map[string]string{
	"region":            "AWS_REGION",
	"bucket":            "AWS_S3_BUCKET_NAME",
	"prefix":            "AWS_BUCKET_TARGET_FOLDER",
	"sso_profile":       "AWS_SSO_PROFILE",
	"access_key_id":     "AWS_ACCESS_KEY_ID",
	"secret_access_key": "AWS_SECRET_ACCESS_KEY",
}

func Load() (Type, error) {
	path, err := getConfigPath()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the map using a dotted key path, falling back to the key's
// legacy alias.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if alias, ok := aliases[kspec]; ok {
		candidateKeys = append(candidateKeys, alias)
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		success := true
		for _, k := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[k]
			if !ok || current == nil {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// GetSettings reads the static key pair. Missing keys are left empty.
func GetSettings() Settings {
	str := func(key string) string {
		s, _ := GetString(key, "")
		return s
	}
	return Settings{
		AccessKeyID:     str("access_key_id"),
		SecretAccessKey: str("secret_access_key"),
	}
}

func getConfigPath() (string, error) {
	if explicit := os.Getenv("S3PUSH_CFG"); explicit != "" {
		fileInfo, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("S3PUSH_CFG points to a directory: %s", explicit)
		}
		return explicit, nil
	}

	cwd, _ := os.Getwd()
	var candidates []string = []string{
		cwd,
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", ErrNoConfig
}
