// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package console holds the user-facing side of s3push: coloured notices,
// numbered menus, yes/no prompts and the upload plan table.
package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Console reads answers from In and writes everything else to Out.
type Console struct {
	In    *bufio.Reader
	raw   io.Reader
	Out   io.Writer
	Color bool

	info    lipgloss.Style
	notice  lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
}

// New returns a Console over in and out.
func New(in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{
		In:    bufio.NewReader(in),
		raw:   in,
		Out:   out,
		Color: color,
	}
	c.info = lipgloss.NewStyle()
	c.notice = lipgloss.NewStyle()
	c.failure = lipgloss.NewStyle()
	c.success = lipgloss.NewStyle()
	if color {
		c.info = c.info.Foreground(lipgloss.Color("14"))
		c.notice = c.notice.Foreground(lipgloss.Color("11"))
		c.failure = c.failure.Foreground(lipgloss.Color("9"))
		c.success = c.success.Foreground(lipgloss.Color("10"))
	}
	return c
}

// Std returns a Console bound to the process's stdin and stdout.
func Std(color bool) *Console {
	return New(os.Stdin, os.Stdout, color)
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.Out, c.info.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.Out, c.notice.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.Out, c.failure.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.Out, c.success.Render(fmt.Sprintf(format, args...)))
}

// Plain writes a line without styling.
func (c *Console) Plain(format string, args ...any) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Prompt prints question and returns the trimmed answer. End of input is
// treated as an empty answer.
func (c *Console) Prompt(question string) (string, error) {
	fmt.Fprint(c.Out, c.info.Render(question))
	line, err := c.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.Out)
	}
	return strings.TrimSpace(line), nil
}

// Stdin hands the console's input to a child process. Anything already read
// ahead into In goes first. With nothing buffered the underlying reader is
// returned as is, so a terminal stays an *os.File.
func (c *Console) Stdin() io.Reader {
	n := c.In.Buffered()
	if n == 0 {
		return c.raw
	}
	pending := make([]byte, n)
	_, _ = io.ReadFull(c.In, pending)
	return io.MultiReader(bytes.NewReader(pending), c.raw)
}

// Choose prints a numbered menu and returns whatever the user typed.
// Validation is left to the caller.
func (c *Console) Choose(title string, options []string) (string, error) {
	c.Info("%s", title)
	for i, o := range options {
		c.Plain("%d. %s", i+1, o)
	}
	return c.Prompt("Enter the number of your choice: ")
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) confirm.
func (c *Console) Confirm(question string) (bool, error) {
	fmt.Fprint(c.Out, c.info.Render(question+" (")+c.success.Render("Yes")+"/"+
		c.failure.Render("No")+c.info.Render("): "))
	line, err := c.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
