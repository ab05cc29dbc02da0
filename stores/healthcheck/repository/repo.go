package repository

import (
	"time"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/database/pgclient"
	hcdomain "github.com/bearhustle/goapi/domain/healthcheck"
)

type impl struct {
	pgClient *pgclient.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(pgClient *pgclient.Client) hcdomain.HealthCheckRepo {
	return &impl{
		pgClient: pgClient,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.pgClient.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping postgres error")
		return err
	}
	return nil
}
