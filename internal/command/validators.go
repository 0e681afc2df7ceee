// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"strings"

	"github.com/staranto/s3push/internal/auth"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

// LoginValidator accepts an empty value, which means prompt.
func LoginValidator(value any) error {
	if value.(string) == "" {
		return nil
	}
	_, err := auth.ParseMethod(value.(string))
	return err
}

func OSValidator(value any) error {
	if value.(string) == "" {
		return nil
	}
	_, err := auth.ParseOS(value.(string))
	return err
}
