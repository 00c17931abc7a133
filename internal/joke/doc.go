// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package joke asks a Bedrock-hosted model for a joke about a topic. It owns
// the prompt, the per-model request bodies and response parsing; the AWS
// client is injected.
package joke
