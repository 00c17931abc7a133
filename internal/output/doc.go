// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders generated pieces as a boxed banner, plain text,
// JSON or YAML.
package output
