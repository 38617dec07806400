// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseArgsDefaultsToTUI(t *testing.T) {
	cmd, args := parseArgs(nil)
	if cmd != CmdTUI {
		t.Fatalf("cmd = %v, want CmdTUI", cmd)
	}
	if args.Model != "" || args.Theme != "" || args.Quiet {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestParseArgsCommands(t *testing.T) {
	cases := []struct {
		argv []string
		want Command
	}{
		{[]string{"chat"}, CmdChat},
		{[]string{"config"}, CmdConfig},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"--help"}, CmdHelp},
	}
	for _, tc := range cases {
		cmd, _ := parseArgs(tc.argv)
		if cmd != tc.want {
			t.Errorf("parseArgs(%v) = %v, want %v", tc.argv, cmd, tc.want)
		}
	}
}

func TestParseArgsFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"--model", "VOX v-3", "--theme=ghost", "-q", "chat"})
	if cmd != CmdChat {
		t.Fatalf("cmd = %v, want CmdChat", cmd)
	}
	if args.Model != "VOX v-3" {
		t.Errorf("Model = %q", args.Model)
	}
	if args.Theme != "ghost" {
		t.Errorf("Theme = %q", args.Theme)
	}
	if !args.Quiet {
		t.Error("Quiet not set")
	}
}

func TestParseArgsSubcommand(t *testing.T) {
	_, args := parseArgs([]string{"config", "path"})
	if args.Subcommand != "path" {
		t.Fatalf("Subcommand = %q, want %q", args.Subcommand, "path")
	}
}
