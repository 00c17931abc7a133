// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws loads AWS SDK v2 configuration and builds the Bedrock, STS and
// S3 clients used by the joke, setup and archive commands.
package aws
