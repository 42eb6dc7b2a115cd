package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
)

type Redis struct {
	addr     string
	password string `masq:"secret"`
	db       int64
}

func (x *Redis) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for the branch lock and delivery dedupe (host:port). In-process locking is used if empty",
			Category:    "Redis",
			Destination: &x.addr,
			Sources:     cli.EnvVars("REFACTO_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Redis",
			Destination: &x.password,
			Sources:     cli.EnvVars("REFACTO_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Redis",
			Destination: &x.db,
			Sources:     cli.EnvVars("REFACTO_REDIS_DB"),
		},
	}
}

func (x *Redis) Enabled() bool {
	return x.addr != ""
}

// NewClient connects and pings Redis. It returns nil when no address is set.
func (x *Redis) NewClient(ctx context.Context) (*redis.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     x.addr,
		Password: x.password,
		DB:       int(x.db),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", x.addr))
	}

	return client, nil
}

func (x *Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Addr", x.addr),
		slog.Int("Password.len", len(x.password)),
		slog.Int64("DB", x.db),
	)
}
