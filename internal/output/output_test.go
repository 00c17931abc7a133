// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var piece = Piece{
	Kind:   "limerick",
	Topic:  "cat",
	Text:   "line one\nline two",
	Source: "enhanced",
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, piece, FormatPlain, Options{}))
	assert.Equal(t, "line one\nline two\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, piece, FormatJSON, Options{}))
	var got Piece
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, piece, got)
	assert.NotContains(t, buf.String(), "archived")

	buf.Reset()
	require.NoError(t, Write(&buf, piece, FormatYAML, Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "---\n"))
	got = Piece{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, piece, got)

	assert.Error(t, Write(&buf, piece, "raw", Options{}))
}

func TestBox(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, piece, FormatText, Options{}))
	out := buf.String()

	assert.Contains(t, out, "Here's your limerick about 'cat':")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line two")
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "📜 Your dad joke about 'tea':", Heading(Piece{Kind: "joke", Topic: "tea", Style: "dad"}))
	assert.Equal(t, "📜 Your witty joke about 'tea':", Heading(Piece{Kind: "joke", Topic: "tea"}))
}

func TestBoxWrapsMultiByteText(t *testing.T) {
	text := strings.Repeat("é", 40) + " café crème brûlée 🎭🎭🎭"
	out := Box(Piece{Kind: "joke", Topic: "café", Text: text}, Options{Width: 20})

	require.True(t, utf8.ValidString(out))
	assert.Equal(t, strings.Count(text, "é"), strings.Count(out, "é")-strings.Count("café", "é"))
	assert.Equal(t, 3, strings.Count(out, "🎭"))

	for _, line := range strings.Split(out, "\n")[2:] {
		assert.LessOrEqual(t, lipgloss.Width(line), 20, line)
	}
}

func TestTerminalWidth(t *testing.T) {
	assert.Equal(t, 80, TerminalWidth(nil))
}
