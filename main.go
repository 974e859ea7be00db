// lendbench - a terminal workbench for AI-assisted loan underwriting.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/lendbench-tui/internal/api"
	"github.com/jeranaias/lendbench-tui/internal/cli"
	"github.com/jeranaias/lendbench-tui/internal/config"
	"github.com/jeranaias/lendbench-tui/internal/logging"
	"github.com/jeranaias/lendbench-tui/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.ParseArgs(os.Args[1:])

	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if args.Backend != "" {
		cfg.Server.BaseURL = args.Backend
	}

	// Best effort: lumberjack opens the file lazily, so an unwritable
	// path degrades to dropped log lines rather than a startup failure.
	logging.Init(cfg.Logging, cfg.LogPath())
	defer logging.Sync()

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout(),
	})

	switch cmd {
	case cli.CmdTUI:
		runTUI(cfg, client)
	case cli.CmdChat:
		exitOnError(cli.RunChat(args, cfg, client))
	case cli.CmdSeed:
		exitOnError(cli.RunSeed(args, cfg, client))
	case cli.CmdStatus:
		exitOnError(cli.RunStatus(args, cfg, client))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

func runTUI(cfg *config.Config, client *api.Client) {
	logging.L().Info("starting workbench",
		zap.String("version", Version),
		zap.String("backend", cfg.Server.BaseURL))

	program := tea.NewProgram(
		app.New(client, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		logging.L().Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
