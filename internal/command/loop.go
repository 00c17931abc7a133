// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
)

const rule = "─"

// Session is an interactive read-generate loop over In and Out. Handle is
// called with each non-empty topic. Settings, when set, is offered at the
// follow-up prompt.
type Session struct {
	In  io.Reader
	Out io.Writer

	Banner   string
	Prompt   func() string
	FollowUp string
	Goodbye  string
	// ErrorLabel prefixes a failed Handle, as in "Error generating limerick".
	ErrorLabel string

	Handle   func(ctx context.Context, s *Session, topic string) error
	Settings func(ctx context.Context, s *Session) error

	scanner *bufio.Scanner
}

// IsQuit reports whether s is one of the words that end a session.
func IsQuit(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// Ask prints prompt and reads one trimmed line. It returns false at end of
// input.
func (s *Session) Ask(prompt string) (string, bool) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.In)
	}
	fmt.Fprint(s.Out, prompt)
	if !s.scanner.Scan() {
		fmt.Fprintln(s.Out)
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// Printf writes to the session output.
func (s *Session) Printf(format string, a ...any) {
	fmt.Fprintf(s.Out, format, a...)
}

// Run loops until a quit word, end of input or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	if s.Banner != "" {
		fmt.Fprintln(s.Out, s.Banner)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.Out, "\n"+strings.Repeat(rule, 50)) //nolint:mnd

		topic, ok := s.Ask(s.Prompt())
		if !ok || IsQuit(topic) {
			s.bye()
			return nil
		}
		if topic == "" {
			fmt.Fprintln(s.Out, "❌ Please enter a valid topic!")
			continue
		}

		if err := s.Handle(ctx, s, topic); err != nil {
			log.WithError(err).Debug("handle failed")
			fmt.Fprintf(s.Out, "❌ %s: %v\n", s.ErrorLabel, err)
		}

		fmt.Fprintln(s.Out, "\n🤔 What would you like to do next?")
		choice, ok := s.Ask(s.FollowUp)
		if !ok || IsQuit(choice) {
			s.bye()
			return nil
		}
		if strings.EqualFold(choice, "settings") && s.Settings != nil {
			if err := s.Settings(ctx, s); err != nil {
				fmt.Fprintf(s.Out, "❌ %v\n", err)
			}
		}
	}
}

func (s *Session) bye() {
	if s.Goodbye != "" {
		fmt.Fprintln(s.Out, "\n"+s.Goodbye)
	}
}
