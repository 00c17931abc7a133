// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package limerick builds limericks by drawing random words from category
// word banks and substituting them into fixed multi-line templates. Two
// generator variants share the same template, word bank and resolver code.
package limerick
