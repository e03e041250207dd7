// Copyright 2026 The Clinicboard Authors
// SPDX-License-Identifier: Apache-2.0

// clinicboard is a terminal dashboard for a clinic scheduling server.
// It polls the server's REST API for appointments, patients, rooms,
// and users, renders them as filterable tables, and supports creating
// and deleting records from within the TUI.
//
// The server address comes from, in increasing precedence: the
// built-in default (http://localhost:8000), the YAML config file
// named by CLINICBOARD_CONFIG, the CLINICBOARD_API_URL environment
// variable (also read from a local .env file), and the --api-url
// flag.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/clinicboard/clinicboard/lib/clinicclient"
	"github.com/clinicboard/clinicboard/lib/clinicui"
	"github.com/clinicboard/clinicboard/lib/config"
	"github.com/clinicboard/clinicboard/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var apiURL string
	var themePath string
	var logOutput string
	var pollSeconds int

	flagSet := pflag.NewFlagSet("clinicboard", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (default: $CLINICBOARD_CONFIG)")
	flagSet.StringVar(&apiURL, "api-url", "", "scheduling API base URL (overrides config and environment)")
	flagSet.StringVar(&themePath, "theme", "", "path to a JSONC theme override file")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.IntVar(&pollSeconds, "poll-interval", 0, "seconds between refresh cycles (overrides config)")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other arguments.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("clinicboard")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	// A local .env can supply CLINICBOARD_API_URL for development
	// setups. Absence is not an error.
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if envURL := os.Getenv("CLINICBOARD_API_URL"); envURL != "" {
		cfg.API.BaseURL = envURL
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if pollSeconds > 0 {
		cfg.Poll.IntervalSeconds = pollSeconds
	}
	if themePath != "" {
		cfg.ThemeFile = themePath
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	theme := clinicui.DefaultTheme
	if cfg.ThemeFile != "" {
		theme, err = clinicui.LoadTheme(cfg.ThemeFile)
		if err != nil {
			return err
		}
	}

	// Logging cannot go to stderr: the alt screen owns the terminal.
	// Records go to the --log-output file when given, otherwise they
	// are dropped.
	logWriter := io.Writer(io.Discard)
	if cfg.LogOutput != "" {
		logFile, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log output: %w", err)
		}
		defer logFile.Close()
		logWriter = logFile
	}
	logger := slog.New(slog.NewJSONHandler(logWriter, nil))

	client, err := clinicclient.New(clinicclient.ClientConfig{
		BaseURL:        cfg.API.BaseURL,
		RequestTimeout: cfg.RequestTimeout(),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	model := clinicui.NewModel(clinicui.ModelConfig{
		Backend:      client,
		Theme:        theme,
		Keys:         clinicui.DefaultKeyMap,
		Logger:       logger,
		PollInterval: cfg.PollInterval(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Clinicboard — terminal dashboard for clinic scheduling.

Polls the scheduling API every few seconds and renders appointments,
patients, rooms, and users as filterable tables. Records can be
created (n) and deleted (d) from within the dashboard; a failed fetch
keeps the previous data on screen rather than blanking the table.

Usage:
  clinicboard [flags]

Examples:
  # Connect to the default server on localhost:8000
  clinicboard

  # Connect to a remote server with a 5 second poll interval
  clinicboard --api-url https://clinic.example.org --poll-interval 5

  # Capture background logs for debugging
  clinicboard --log-output /tmp/clinicboard.log

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
