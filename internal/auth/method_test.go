// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"1", SSO, false},
		{" 2 ", AccessKey, false},
		{"3", SessionToken, false},
		{"sso", SSO, false},
		{"Access-Key", AccessKey, false},
		{"session-token", SessionToken, false},
		{"4", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		in      string
		want    OS
		wantErr bool
	}{
		{"1", Linux, false},
		{"2", MacOS, false},
		{"darwin", MacOS, false},
		{"3", Windows, false},
		{"Windows", Windows, false},
		{"0", 0, true},
		{"beos", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOS(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethod_Names(t *testing.T) {
	for _, m := range Methods {
		parsed, err := ParseMethod(m.Name())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.NotEmpty(t, m.RecoverableCodes())
	}
	assert.Equal(t, "AWS SSO", SSO.String())
	assert.Equal(t, "Method(9)", Method(9).String())
	assert.Nil(t, Method(9).RecoverableCodes())
}
