package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/customer"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Registry        *registry.Registry
	EventBus        eventbus.Bus
	Metrics         metrics.Collector
	MetricsRegistry *prometheus.Registry
	Logger          *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	CustomerService *customer.Service
	AccountService  *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NoOpCollector{}
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.CustomerService = customer.NewService(deps.Registry, deps.EventBus, deps.Logger)
	app.AccountService = account.NewService(deps.Registry, deps.EventBus, deps.Logger)
	return app
}
