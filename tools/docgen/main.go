// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docgen renders docs/commands/<cmd>.md into a man page under
// docs/man/share/man1 and a tldr page under docs/tldr. The tldr pages are
// what `witty <cmd> --tldr` shows.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

const (
	binName = "witty"
	repoURL = "https://github.com/staranto/wittygo"
)

// Section labels recognised in a command page. Each sits alone on a line.
const (
	secShort    = "short description"
	secExamples = "quick examples"
	secFlags    = "flags and related docs"
)

func main() {
	root := flag.String("root", ".", "repo root")
	onlyIfChanged := flag.Bool("only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(*root, *onlyIfChanged)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("generated docs for %d commands\n", n)
}

// generate renders every docs/commands/*.md under root and returns how many
// commands were processed.
func generate(root string, onlyIfChanged bool) (int, error) {
	src := filepath.Join(root, "docs", "commands")
	manDir := filepath.Join(root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(root, "docs", "tldr")

	pages, err := filepath.Glob(filepath.Join(src, "*.md"))
	if err != nil {
		return 0, err
	}
	if len(pages) == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", src)
	}

	for _, dir := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	for i, path := range pages {
		raw, err := os.ReadFile(path)
		if err != nil {
			return i, err
		}
		cmd := strings.TrimSuffix(filepath.Base(path), ".md")
		name := binName + "-" + cmd

		if err := write(filepath.Join(manDir, name+".1"), md2man.Render(raw), onlyIfChanged); err != nil {
			return i, fmt.Errorf("man page for %s: %w", cmd, err)
		}

		tldr := parsePage(string(raw)).tldr(cmd)
		if err := write(filepath.Join(tldrDir, name+".md"), []byte(tldr), onlyIfChanged); err != nil {
			return i, fmt.Errorf("tldr page for %s: %w", cmd, err)
		}
	}
	return len(pages), nil
}

// write skips the write when the file already holds the same content,
// ignoring surrounding whitespace.
func write(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		if old, err := os.ReadFile(path); err == nil && bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)) {
			return nil
		}
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec
}

type example struct {
	Desc string
	Cmd  string
}

// page is the part of a command doc the tldr page is built from.
type page struct {
	Title    string
	Short    string
	Examples []example
}

// parsePage walks the markdown once, tracking the current section. The
// short description is its first paragraph; examples come from the first
// fenced block of the examples section, a `# ...` line naming the command
// that follows it.
func parsePage(md string) page {
	var (
		p       page
		section string
		inFence bool
		fenced  bool
		desc    string
		short   []string
	)

	for _, line := range strings.Split(strings.ReplaceAll(md, "\r", ""), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			if !inFence && section == secExamples {
				fenced = true
			}
			continue
		}

		if inFence {
			if section != secExamples || fenced || trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "#") {
				desc = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
				continue
			}
			if desc == "" {
				desc = "Example"
			}
			p.Examples = append(p.Examples, example{Desc: desc, Cmd: trimmed})
			desc = ""
			continue
		}

		switch label := strings.ToLower(trimmed); {
		case p.Title == "" && strings.HasPrefix(trimmed, "# "):
			p.Title = strings.TrimSpace(trimmed[2:])
		case label == secShort || label == secExamples || label == secFlags:
			section = label
		case section == secShort && trimmed != "" && p.Short == "":
			short = append(short, trimmed)
		case section == secShort && trimmed == "" && len(short) > 0:
			p.Short = strings.Join(short, " ")
		}
	}

	if p.Short == "" && len(short) > 0 {
		p.Short = strings.Join(short, " ")
	}
	if p.Short == "" && p.Title != "" {
		p.Short = p.Title + "."
	}
	return p
}

// tldr renders p in tldr-pages format.
func (p page) tldr(cmd string) string {
	var b strings.Builder

	summary := p.Short
	if summary == "" {
		summary = binName + " " + cmd
	}
	fmt.Fprintf(&b, "# %s-%s\n\n> %s\n> More information: %s.\n", binName, cmd, summary, repoURL)

	examples := p.Examples
	if len(examples) == 0 {
		examples = []example{{Desc: "Show help for the command", Cmd: binName + " " + cmd + " --help"}}
	}
	for _, ex := range examples {
		fmt.Fprintf(&b, "\n- %s:\n\n`%s`\n", ex.Desc, strings.Join(strings.Fields(ex.Cmd), " "))
	}
	return b.String()
}
