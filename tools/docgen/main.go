// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen reads docs/commands/*.md and writes, for each page:
//   - docs/man/share/man1/<page>.1 via md2man
//   - docs/tldr/<page>.md from the summary and the Examples block

const project = "https://github.com/staranto/s3push"

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	for _, d := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			fatalf("creating output dir %s: %v", d, err)
		}
	}

	pages, err := filepath.Glob(filepath.Join(commandsDir, "*.md"))
	if err != nil {
		fatalf("listing %s: %v", commandsDir, err)
	}
	if len(pages) == 0 {
		fatalf("no command markdown found under %s", commandsDir)
	}

	for _, inPath := range pages {
		raw, err := os.ReadFile(inPath)
		if err != nil {
			fatalf("reading %s: %v", inPath, err)
		}
		page := pageName(filepath.Base(inPath))

		manPath := filepath.Join(manOutDir, page+".1")
		if err := writeFileIfChanged(manPath, md2man.Render(raw), writeOnlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", page, err)
		}

		tldr := buildTLDR(page, summary(string(raw)), examples(string(raw)))
		tldrPath := filepath.Join(tldrOutDir, page+".md")
		if err := writeFileIfChanged(tldrPath, []byte(tldr), writeOnlyIfChanged); err != nil {
			fatalf("writing TLDR for %s: %v", page, err)
		}
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

// pageName maps s3push.md to s3push and anything else to s3push-<name>.
func pageName(file string) string {
	name := strings.TrimSuffix(file, ".md")
	if name == "s3push" {
		return name
	}
	return "s3push-" + name
}

func writeFileIfChanged(path string, content []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, content, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, content, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)) {
		return nil
	}
	return os.WriteFile(path, content, 0o644)
}

var (
	h1Re      = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	sectionRe = regexp.MustCompile(`(?m)^##\s+(.+)$`)
)

// section returns the body of the "## name" section, or "".
func section(md, name string) string {
	locs := sectionRe.FindAllStringSubmatchIndex(md, -1)
	for i, loc := range locs {
		if !strings.EqualFold(strings.TrimSpace(md[loc[2]:loc[3]]), name) {
			continue
		}
		end := len(md)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		return md[loc[1]:end]
	}
	return ""
}

// summary is the first paragraph of the Description section, falling back to
// the title.
func summary(md string) string {
	var b strings.Builder
	for _, ln := range strings.Split(section(md, "Description"), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if b.Len() > 0 {
				break
			}
			continue
		}
		b.WriteString(ln)
		b.WriteString(" ")
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		return s
	}
	if m := h1Re.FindStringSubmatch(md); m != nil {
		return strings.TrimSpace(m[1]) + "."
	}
	return ""
}

type example struct {
	Desc string
	Cmd  string
}

// examples reads "# description" / command pairs from the first fenced block
// of the Examples section.
func examples(md string) []example {
	body := section(md, "Examples")
	parts := strings.SplitN(body, "```", 3)
	if len(parts) < 3 {
		return nil
	}

	// Skip the info string, such as "sh", on the opening fence line.
	code := parts[1]
	if nl := strings.Index(code, "\n"); nl >= 0 {
		code = code[nl+1:]
	}

	var exs []example
	desc := ""
	for _, ln := range strings.Split(code, "\n") {
		s := strings.TrimSpace(ln)
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(page, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# " + page + "\n\n")
	if short == "" {
		short = page
	}
	b.WriteString("> " + short + "\n")
	b.WriteString("> More information: " + project + ".\n\n")

	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: strings.ReplaceAll(page, "-", " ") + " --help"}}
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + ex.Cmd + "`\n")
	}
	return b.String()
}
