package configs

// Billing holds click pricing and the exhaustion sweep schedule.
type Billing struct {
	// DefaultCPC is charged when a billing request names no cost per click.
	DefaultCPC int64 `env:"DEFAULT_CPC" envDefault:"1000"`
	// SweepSchedule is a standard cron expression. Empty disables the sweep.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"*/5 * * * *"`
}
