// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package ui holds the small terminal widgets used by interactive commands.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc", "b", "q", "ctrl+c"), key.WithHelp("b/esc", "back")),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f6be00"))
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Picker is a single-choice list. Items may also be chosen by number.
type Picker struct {
	title   string
	items   []string
	current int
	cursor  int
	chosen  int
	done    bool
}

// NewPicker returns a Picker with the cursor on current.
func NewPicker(title string, items []string, current int) Picker {
	if current < 0 || current >= len(items) {
		current = 0
	}
	return Picker{title: title, items: items, current: current, cursor: current, chosen: -1}
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(km, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(km, keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(km, keys.Choose):
		p.chosen, p.done = p.cursor, true
		return p, tea.Quit
	case key.Matches(km, keys.Back):
		p.done = true
		return p, tea.Quit
	default:
		if n, err := strconv.Atoi(km.String()); err == nil && n >= 1 && n <= len(p.items) {
			p.cursor = n - 1
			p.chosen, p.done = n-1, true
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p Picker) View() string {
	if p.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")
	for i, item := range p.items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == p.current {
			line = currentStyle.Render(line + " (current)")
		}
		if i == p.cursor {
			b.WriteString(cursorStyle.Render("→ ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString(helpStyle.Render(strings.Join([]string{
		keys.Up.Help().Key + " " + keys.Up.Help().Desc,
		keys.Down.Help().Key + " " + keys.Down.Help().Desc,
		keys.Choose.Help().Key + " " + keys.Choose.Help().Desc,
		keys.Back.Help().Key + " " + keys.Back.Help().Desc,
	}, " • ")))
	return b.String()
}

// Choice returns the selected index, or false when the picker was left
// without choosing.
func (p Picker) Choice() (int, bool) {
	return p.chosen, p.chosen >= 0
}

// Pick runs a Picker on in/out until the user chooses or backs out.
func Pick(title string, items []string, current int, in io.Reader, out io.Writer) (int, bool, error) {
	prog := tea.NewProgram(NewPicker(title, items, current), tea.WithInput(in), tea.WithOutput(out))
	m, err := prog.Run()
	if err != nil {
		return -1, false, fmt.Errorf("picker failed: %w", err)
	}
	idx, ok := m.(Picker).Choice()
	return idx, ok, nil
}
