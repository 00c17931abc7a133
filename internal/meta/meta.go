// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/staranto/wittygo/internal/config"
)

// Meta are the meta-options that are available on all commands. Stdin and
// Stdout are the streams interactive sessions read and write.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Stdin   io.Reader
	Stdout  io.Writer
}
