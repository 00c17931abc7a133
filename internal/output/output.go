// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/wittygo/internal/config"
)

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the valid --output values.
var Formats = []string{FormatText, FormatPlain, FormatJSON, FormatYAML}

// Piece is one generated limerick or joke.
type Piece struct {
	Kind     string `json:"kind" yaml:"kind"`
	Topic    string `json:"topic" yaml:"topic"`
	Text     string `json:"text" yaml:"text"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Style    string `json:"style,omitempty" yaml:"style,omitempty"`
	Archived string `json:"archived,omitempty" yaml:"archived,omitempty"`
}

// Options tune the text format.
type Options struct {
	Color bool
	Width int
}

const defaultWidth = 80

// TerminalWidth returns the width of f when it is a terminal, else 80.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Write renders p to w in format.
func Write(w io.Writer, p Piece, format string, opts Options) error {
	switch format {
	case FormatJSON:
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", p.Kind, err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", p.Kind, err)
		}
		_, err = fmt.Fprint(w, "---\n"+string(b))
		return err
	case FormatPlain:
		_, err := fmt.Fprintln(w, p.Text)
		return err
	case FormatText, "":
		_, err := fmt.Fprintln(w, Box(p, opts))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Box renders the heading and a rounded border around the text.
func Box(p Piece, opts Options) string {
	heading := Heading(p)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	head := lipgloss.NewStyle()

	if opts.Color {
		title, border := getColors("colors")
		box = box.BorderForeground(lipgloss.Color(border))
		head = head.Bold(true).Foreground(lipgloss.Color(title))
	}

	// Width excludes the border; lipgloss wraps within it by display cells.
	if opts.Width > 4 { //nolint:mnd
		box = box.Width(opts.Width - 2) //nolint:mnd
	}

	log.Debugf("box width %d, color %v", opts.Width, opts.Color)
	return "\n" + head.Render(heading) + "\n" + box.Render(p.Text)
}

// Heading is the line printed above a boxed piece.
func Heading(p Piece) string {
	switch p.Kind {
	case "joke":
		style := p.Style
		if style == "" {
			style = "witty"
		}
		return fmt.Sprintf("📜 Your %s joke about '%s':", style, p.Topic)
	default:
		return fmt.Sprintf("📜 Here's your %s about '%s':", p.Kind, p.Topic)
	}
}

// getColors returns configured colors for the heading and border.
func getColors(key string) (title string, border string) {
	title, _ = config.GetString(key+".title", "#f6be00")
	border, _ = config.GetString(key+".border", "#00c8f0")
	return
}
