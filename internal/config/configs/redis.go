package configs

import "time"

// Redis configures the dashboard cache. An empty URL selects the in-memory
// cache.
type Redis struct {
	URL      string        `env:"URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}
