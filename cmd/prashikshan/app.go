package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/config"
	"github.com/prashikshan/prashikshan-cli/outbox"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/session"
	"github.com/prashikshan/prashikshan-cli/status"
)

// globalOptions holds the root persistent flags.
type globalOptions struct {
	configPath string
	apiURL     string
	dataDir    string
	logLevel   string
}

// app wires the config, session, API client, and draft outbox for one
// command invocation.
type app struct {
	cfg      *config.Config
	sess     *session.Store
	client   *api.Client
	outbox   *outbox.Manager
	conv     *render.Converter
	metrics  *api.Metrics
	registry *prometheus.Registry
}

// newApp builds the application from config layered under flag overrides.
func newApp(opts *globalOptions) (*app, error) {
	var cfg *config.Config
	var err error

	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.NewLoader(slog.Default()).Load()
	}
	if err != nil {
		return nil, err
	}

	// Flag overrides take precedence over everything
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}
	if cfg.Data.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Data.Dir = filepath.Join(home, config.DefaultDataDir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sess, err := session.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := api.NewMetrics(registry)

	client, err := api.NewClient(cfg.API.BaseURL, sess,
		api.WithMetrics(metrics),
		api.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		return nil, err
	}

	manager, err := outbox.NewManager(cfg.Data.Dir, client, outbox.WithMetrics(metrics))
	if err != nil {
		return nil, fmt.Errorf("open draft outbox: %w", err)
	}

	return &app{
		cfg:      cfg,
		sess:     sess,
		client:   client,
		outbox:   manager,
		conv:     render.NewConverter(),
		metrics:  metrics,
		registry: registry,
	}, nil
}

// requireAuth fails fast when no session is stored, before any request is
// attempted.
func (a *app) requireAuth() error {
	if !a.sess.IsAuthenticated() {
		return fmt.Errorf("not signed in; run `%s login` first", appName)
	}
	return nil
}

// viewerRole returns the signed-in user's role, defaulting to student.
func (a *app) viewerRole() status.Role {
	if user := a.sess.User(); user != nil {
		return status.Role(user.Role)
	}
	return status.RoleStudent
}

// promptSecret reads a value from stdin when it was not passed as a flag.
func promptSecret(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

// expiryOf returns the session's token expiry when one is recorded.
func expiryOf(a *app) *time.Time {
	if t, ok := a.sess.ExpiresAt(); ok {
		return &t
	}
	return nil
}

func strFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
