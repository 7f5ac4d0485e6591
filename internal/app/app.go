package app

import (
	"context"
	"fmt"
	"time"

	"github.com/lubu-ai/soletrack/internal/api"
	"github.com/lubu-ai/soletrack/internal/cache"
	"github.com/lubu-ai/soletrack/internal/config"
	"github.com/lubu-ai/soletrack/internal/logging"
	"github.com/lubu-ai/soletrack/internal/settings"
	"github.com/lubu-ai/soletrack/internal/store"
	"github.com/lubu-ai/soletrack/internal/ui"
)

// Options configure the soletrack application.
type Options struct {
	ConfigPath string
	Endpoint   string // overrides the configured endpoint URL
	Verbose    bool
}

// Run wires the components and drives the TUI until the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}

	closeLog := logging.Setup(cfg.DataDir, opts.Verbose)
	defer closeLog()

	client, err := api.NewClient(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init endpoint client: %w", err)
	}

	st := store.New(client, cache.New(cfg.DataDir), settings.New(cfg.DataDir), store.NewNotifier())

	// Populate from cache and remote before the UI starts.
	st.Initialize(ctx)

	if client.Configured() {
		StartConnectivityWatcher(ctx, st, cfg.Endpoint, time.Duration(cfg.PollSeconds)*time.Second)
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Store:   st,
	})
}
