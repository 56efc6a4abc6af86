package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jeju-ads/internal/config/configs"
)

const applicationName = "jeju-ads"

// NewPostgresPool opens a pool for cfg and verifies it with a ping bounded
// to five seconds. The caller closes the pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	// billing transactions hold row locks briefly; recycle idle conns sooner
	poolConf.MaxConnIdleTime = 5 * time.Minute
	if _, ok := poolConf.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConf.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
