// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/wittygo/internal/config"
)

func TestMangleArguments(t *testing.T) {
	t.Setenv("WITTY_CFG", "internal/config/testdata/topics.yaml")
	_, err := config.Load()
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "set expanded in place",
			args: []string{"witty", "joke", "@dad", "tea"},
			want: []string{"witty", "joke", "--style", "dad", "--temperature", "0.9", "tea"},
		},
		{
			name: "set after flags",
			args: []string{"witty", "joke", "-o", "plain", "@dad"},
			want: []string{"witty", "joke", "-o", "plain", "--style", "dad", "--temperature", "0.9"},
		},
		{
			name: "unknown set dropped",
			args: []string{"witty", "joke", "@nope", "tea"},
			want: []string{"witty", "joke", "tea"},
		},
		{
			name: "no set and no defaults",
			args: []string{"witty", "limerick", "cat"},
			want: []string{"witty", "limerick", "cat"},
		},
		{
			name: "help wins",
			args: []string{"witty", "joke", "@dad", "-h"},
			want: []string{"witty", "joke", "--help"},
		},
		{
			name: "bare at is a topic",
			args: []string{"witty", "limerick", "@"},
			want: []string{"witty", "limerick", "@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mangleArguments(tt.args))
		})
	}
}
