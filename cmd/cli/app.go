package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/config"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/notifier"
	"github.com/mauv0809/fighter-franchise/internal/notifier/slack"
	"github.com/mauv0809/fighter-franchise/internal/venue"
	"github.com/prometheus/client_golang/prometheus"
)

// app holds the stores a command works with. publisher and notifier may be
// set before open to replace the configured ones.
type app struct {
	out       io.Writer
	json      bool
	athletes  *athlete.Store
	venues    *venue.Store
	ledger    *finance.Store
	coord     *finance.Coordinator
	publisher events.Publisher
	notifier  notifier.Notifier
	closers   []io.Closer
}

func (a *app) open(ctx context.Context, out io.Writer, opts *rootOptions) error {
	cfg := config.LoadClient()
	if opts.apiURL != "" {
		cfg.APIBaseURL = opts.apiURL
	}
	a.out = out
	a.json = opts.json

	m := metrics.NewService(prometheus.NewRegistry())
	transport := api.NewClient(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout}, m)
	log.Debug("Using franchise API", "url", cfg.APIBaseURL, "timeout", cfg.APITimeout)

	a.athletes = athlete.NewStore(transport, m)
	a.venues = venue.NewStore(transport, m)
	a.ledger = finance.NewStore(transport, m)

	if a.publisher == nil {
		a.publisher = a.openPublisher(ctx, cfg)
	}
	if a.notifier == nil {
		a.notifier = openNotifier(cfg, m)
	}
	a.coord = finance.NewCoordinator(a.athletes, a.ledger, a.publisher, a.notifier, m)
	return nil
}

func (a *app) openPublisher(ctx context.Context, cfg config.ClientConfig) events.Publisher {
	if cfg.ProjectID == "" {
		return events.Nop{}
	}
	client, err := events.New(ctx, cfg.ProjectID, cfg.Topic)
	if err != nil {
		log.Warn("Transaction events disabled", "error", err)
		return events.Nop{}
	}
	a.closers = append(a.closers, client)
	return client
}

func openNotifier(cfg config.ClientConfig, m metrics.Metrics) notifier.Notifier {
	if !cfg.Slack.Enabled() {
		return notifier.Nop{}
	}
	return slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, m)
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			log.Warn("Failed to close client", "error", err)
		}
	}
	a.closers = nil
}
