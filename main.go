// vox TUI - A terminal interface for the VOXLAY chat assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voxlay/vox-tui/internal/cli"
	"github.com/voxlay/vox-tui/internal/config"
	"github.com/voxlay/vox-tui/internal/controller"
	"github.com/voxlay/vox-tui/internal/projects"
	"github.com/voxlay/vox-tui/internal/responder"
	"github.com/voxlay/vox-tui/internal/snippets"
	"github.com/voxlay/vox-tui/internal/store"
	"github.com/voxlay/vox-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdChat:
		if err := cli.HandleChatCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "vox: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfigCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "vox: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersionCommand()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// runTUI wires application state and runs the Bubble Tea program.
func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vox: load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnvOverrides()
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.Model != "" {
		cfg.Chat.DefaultModel = args.Model
	}
	cfg.Validate()

	chats := store.New()
	library := snippets.NewLibrary()
	projs := projects.NewList()
	if cfg.UI.SeedDemoData {
		chats.SeedDemo()
		library.SeedDemo()
		projs.SeedDemo()
	}

	base, jitter := cfg.ReplyDelay()
	ctrl := controller.New(chats, responder.New(responder.WithDelay(base, jitter)))

	m := chat.New(cfg, ctrl, library, projs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Reload config when it changes on disk.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path, err := config.Path(); err == nil {
		go func() {
			_ = config.Watch(ctx, path, func(next *config.Config) {
				p.Send(chat.ConfigReloaded(next))
			})
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vox: %v\n", err)
		os.Exit(1)
	}
}
