// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for vox.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/voxlay/vox-tui/internal/config"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Model string
	Theme string
	Quiet bool

	// Command-specific
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `vox - VOXLAY chat assistant for the terminal

Usage:
  vox                      Start TUI (default)
  vox chat                 Interactive chat in the shell
  vox config [show|path]   Configuration
  vox version              Show version information
  vox help                 Show this help

Flags:
  -m, --model NAME   Use a specific model for this session
  --theme NAME       Theme override (dark, light, ghost)
  -q, --quiet        Minimal output

Interactive commands (during vox chat):
  /help              Show available commands
  /clear             Clear conversation history
  /history           Show conversation history
  /model [name]      Show or switch model
  /quit              Exit chat

Environment:
  VOX_CONFIG         Path to config file (default ~/.vox/config.toml)
  VOX_THEME          Theme override
  VOX_MODEL          Model override
`

// Parse reads os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, Args) {
	args := Args{}
	cmd := CmdTUI
	positional := make([]string, 0, len(argv))

	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "-m" || a == "--model":
			if i+1 < len(argv) {
				i++
				args.Model = argv[i]
			}
		case strings.HasPrefix(a, "--model="):
			args.Model = strings.TrimPrefix(a, "--model=")
		case a == "--theme":
			if i+1 < len(argv) {
				i++
				args.Theme = argv[i]
			}
		case strings.HasPrefix(a, "--theme="):
			args.Theme = strings.TrimPrefix(a, "--theme=")
		case a == "-q" || a == "--quiet":
			args.Quiet = true
		case a == "-h" || a == "--help":
			return CmdHelp, args
		default:
			positional = append(positional, a)
		}
	}

	if len(positional) == 0 {
		return cmd, args
	}

	switch positional[0] {
	case "chat":
		cmd = CmdChat
	case "config":
		cmd = CmdConfig
	case "version", "-V", "--version":
		cmd = CmdVersion
	case "help":
		cmd = CmdHelp
	default:
		fmt.Fprintf(os.Stderr, "vox: unknown command %q\n\n%s", positional[0], usageText)
		os.Exit(2)
	}

	if len(positional) > 1 {
		args.Subcommand = positional[1]
		args.Raw = positional[2:]
	}
	return cmd, args
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersionCommand prints build information.
func HandleVersionCommand() {
	fmt.Printf("vox %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// HandleConfigCommand implements "vox config [show|path]".
func HandleConfigCommand(args Args) error {
	switch args.Subcommand {
	case "", "show":
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		fmt.Printf("theme:            %s\n", cfg.UI.Theme)
		fmt.Printf("model:            %s\n", cfg.Chat.DefaultModel)
		fmt.Printf("show timestamps:  %t\n", cfg.UI.ShowTimestamps)
		fmt.Printf("compact sidebar:  %t\n", cfg.UI.CompactSidebar)
		fmt.Printf("seed demo data:   %t\n", cfg.UI.SeedDemoData)
		fmt.Printf("reply delay:      %dms (+%dms jitter)\n", cfg.Chat.ReplyDelayMs, cfg.Chat.ReplyJitterMs)
		fmt.Printf("profile:          %s <%s>\n", cfg.Profile.Name, cfg.Profile.Email)
		return nil

	case "path":
		path, err := config.Path()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		fmt.Println(path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand %q (want show or path)", args.Subcommand)
	}
}
