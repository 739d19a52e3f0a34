// Package main provides the prashikshan binary entry point.
// Prashikshan is the command-line client for the Prashikshan internship
// platform: browse internships, apply, keep a logbook that syncs when the
// network allows, and administer the platform.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "prashikshan"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Prashikshan internship platform client",
		Long: `Prashikshan is the command-line client for the Prashikshan
internship platform.

It provides:
- Internship browsing, posting, and applications
- An offline-first logbook with queued drafts that sync automatically
- Notifications, analytics, and platform administration

Credentials are stored locally; expired sessions refresh transparently.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.logLevel)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&opts.apiURL, "api-url", "", "Backend base URL (overrides config)")
	pf.StringVar(&opts.dataDir, "data-dir", "", "Local state directory (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		loginCmd(opts),
		logoutCmd(opts),
		registerCmd(opts),
		whoamiCmd(opts),
		internshipsCmd(opts),
		applicationsCmd(opts),
		logbookCmd(opts),
		notificationsCmd(opts),
		adminCmd(opts),
		dashboardCmd(opts),
		collegesCmd(opts),
		creditsCmd(opts),
		reportsCmd(opts),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

func configureLogging(logLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
