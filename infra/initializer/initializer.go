package initializer

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/eventbus"
	promcollector "github.com/amirasaad/ledger/pkg/metrics/prometheus"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	defaults, err := accountDefaults(cfg.Bank)
	if err != nil {
		return nil, fmt.Errorf("failed to build account defaults: %w", err)
	}
	deps.Registry = registry.New(defaults)
	logger.Debug("Registry initialized",
		"branch", defaults.Branch,
		"timezone", defaults.Location.String(),
		"daily_transaction_limit", defaults.DailyTransactionLimit,
	)

	deps.EventBus = eventbus.NewSimpleEventBus(logger)

	namespace := "ledger"
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}
	collector := promcollector.NewPrometheusCollector(namespace)
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := collector.Register(reg); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	deps.Metrics = collector
	deps.MetricsRegistry = reg

	return deps, nil
}

// accountDefaults translates the bank section into the rules every checking
// account is opened with.
func accountDefaults(cfg *config.Bank) (registry.AccountDefaults, error) {
	if cfg == nil {
		cfg = &config.Bank{
			BranchCode:            account.DefaultBranch,
			WithdrawalLimit:       "500.00",
			DailyWithdrawalLimit:  account.DefaultMaxDailyWithdrawals,
			DailyTransactionLimit: 10,
			Timezone:              "America/Sao_Paulo",
		}
	}
	limit, err := money.Parse(cfg.WithdrawalLimit, money.DefaultCurrency)
	if err != nil {
		return registry.AccountDefaults{}, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return registry.AccountDefaults{}, err
	}
	return registry.AccountDefaults{
		Branch:   cfg.BranchCode,
		Currency: money.DefaultCurrency,
		Policy: account.CheckingPolicy{
			MaxAmount:           limit,
			MaxDailyWithdrawals: cfg.DailyWithdrawalLimit,
		},
		DailyTransactionLimit: cfg.DailyTransactionLimit,
		Location:              loc,
		Clock:                 time.Now,
	}, nil
}
