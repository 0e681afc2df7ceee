// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, false), &out
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  2 \n", "2"},
		{"end of input", "", ""},
		{"no trailing newline", "3", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			got, err := c.Prompt("Pick: ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Pick:")
		})
	}
}

func TestChoose(t *testing.T) {
	c, out := newTestConsole("1\n")

	got, err := c.Choose("Select your OS:", []string{"Linux", "MacOS", "Windows"})
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	text := out.String()
	assert.Contains(t, text, "Select your OS:")
	assert.Contains(t, text, "1. Linux")
	assert.Contains(t, text, "2. MacOS")
	assert.Contains(t, text, "3. Windows")
}

func TestChoose_TitleIsNotAFormat(t *testing.T) {
	c, out := newTestConsole("1\n")
	_, err := c.Choose("Pick 100% of %s:", []string{"a"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Pick 100% of %s:")
	assert.NotContains(t, out.String(), "%!")
}

func TestStdin_HandsOverReadAhead(t *testing.T) {
	c, _ := newTestConsole("2\nAKIDEXAMPLE\nsecret\n")
	got, err := c.Prompt("Pick: ")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	rest, err := io.ReadAll(c.Stdin())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE\nsecret\n", string(rest))
}

func TestStdin_NothingBuffered(t *testing.T) {
	in := strings.NewReader("x\n")
	c := New(in, io.Discard, false)
	assert.Same(t, in, c.Stdin())
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Yes\n", true},
		{"yes\n", true},
		{"y\n", true},
		{" YES \n", true},
		{"No\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			c, out := newTestConsole(tt.input)
			got, err := c.Confirm("Push?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Push?")
		})
	}
}

func TestTable(t *testing.T) {
	c, out := newTestConsole("")
	c.Table([]string{"LOCAL", "S3"}, [][]string{
		{"/tmp/a.txt", "s3://bkt/a.txt"},
		{"/tmp/b/c.txt", "s3://bkt/b/c.txt"},
	})

	text := out.String()
	assert.Contains(t, text, "LOCAL")
	assert.Contains(t, text, "s3://bkt/a.txt")
	assert.Contains(t, text, "/tmp/b/c.txt")
}

func TestTable_NoRows(t *testing.T) {
	c, out := newTestConsole("")
	c.Table([]string{"LOCAL"}, nil)
	assert.Empty(t, out.String())
}

func TestMessages(t *testing.T) {
	c, out := newTestConsole("")
	c.Info("info %d", 1)
	c.Warn("warn")
	c.Error("error")
	c.Success("done")
	c.Plain("plain %s", "line")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	for i, want := range []string{"info 1", "warn", "error", "done", "plain line"} {
		assert.Equal(t, want, strings.TrimSpace(lines[i]))
	}
}
