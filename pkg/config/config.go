package config

// Log configures the charmbracelet logger. Level follows charmbracelet/log:
// -4 debug, 0 info, 4 warn, 8 error.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
	Output     string `envconfig:"OUTPUT" default:"stderr"`
}

// Bank holds the rules every checking account is opened with.
type Bank struct {
	BranchCode            string `envconfig:"BRANCH_CODE" default:"0001"`
	WithdrawalLimit       string `envconfig:"WITHDRAWAL_LIMIT" default:"500.00"`
	DailyWithdrawalLimit  int    `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"3"`
	DailyTransactionLimit int    `envconfig:"DAILY_TRANSACTION_LIMIT" default:"10"`
	Timezone              string `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`
}

// Metrics configures the optional Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr      string `envconfig:"ADDR" default:""`
	Namespace string `envconfig:"NAMESPACE" default:"ledger"`
}

type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG"`
	Bank    *Bank    `envconfig:"BANK"`
	Metrics *Metrics `envconfig:"METRICS"`
}
