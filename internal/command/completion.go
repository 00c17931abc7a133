// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/wittygo/internal/meta"
)

const bashCompletionScript = `# bash completion for witty
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_witty()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "limerick joke setup completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --no-color --output -o --archive -a --tldr"
    local aws="--profile --region -r --max-attempts"

    case "$cmd" in
        limerick)
            local opts="$common $aws --variant --seed --count -n --history"
            ;;
        joke)
            local opts="$common $aws --model -m --style -s --max-tokens --temperature --top-p"
            ;;
        setup)
            local opts="$aws --regions --cache-hours --tldr"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text plain json yaml" -- "$cur") )
            return 0
            ;;
        --variant)
            COMPREPLY=( $(compgen -W "enhanced classic" -- "$cur") )
            return 0
            ;;
        --style|-s)
            COMPREPLY=( $(compgen -W "pun dad witty silly observational wordplay" -- "$cur") )
            return 0
            ;;
        --model|-m)
            COMPREPLY=( $(compgen -W "anthropic.claude-3-haiku-20240307-v1:0 anthropic.claude-3-sonnet-20240229-v1:0 amazon.titan-text-express-v1" -- "$cur") )
            return 0
            ;;
        --archive|-a)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _witty witty
`

const zshCompletionScript = `#compdef witty

_witty() {
  local -a cmds
  cmds=(
    'limerick:generate limericks from templates'
    'joke:generate jokes with an AWS Bedrock model'
    'setup:check AWS credentials and Bedrock model access'
    'completion:generate shell completion script'
  )

  local -a common aws
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text plain json yaml)'
  '(-a --archive)'{-a,--archive}'[archive destination]:dest:_directories'
  '--tldr[show tldr page]'
  )
  aws=(
  '--profile[AWS profile]:profile'
  '(-r --region)'{-r,--region}'[AWS region]:region'
  '--max-attempts[attempts per request]:n'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'witty commands' cmds
    return
  fi

  case $words[2] in
    limerick)
      _arguments -C $common $aws \
        '--variant[generator variant]:variant:(enhanced classic)' \
        '--seed[random seed]:seed' \
        '(-n --count)'{-n,--count}'[limericks per topic]:count' \
        '--history[combinations to avoid]:n' \
        '*:topic'
      ;;
    joke)
      _arguments -C $common $aws \
        '(-m --model)'{-m,--model}'[model id]:model:(anthropic.claude-3-haiku-20240307-v1\:0 anthropic.claude-3-sonnet-20240229-v1\:0 amazon.titan-text-express-v1)' \
        '(-s --style)'{-s,--style}'[joke style]:style:(pun dad witty silly observational wordplay)' \
        '--max-tokens[max tokens]:n' \
        '--temperature[sampling temperature]:t' \
        '--top-p[nucleus probability]:p' \
        '*:topic'
      ;;
    setup)
      _arguments -C $aws \
        '*--regions[regions to check]:region' \
        '--cache-hours[probe cache lifetime]:hours' \
        '--tldr[show tldr page]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _witty witty
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	out := GetMeta(cmd).Stdout
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletionScript)
	case "zsh":
		fmt.Fprint(out, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(out, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(out, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: witty completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "witty completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
