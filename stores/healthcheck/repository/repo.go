package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/database/mongoclient"
	hcdomain "github.com/otccloak/goapi/domain/healthcheck"
)

type impl struct {
	mgoClient *mongoclient.Client
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(mgoClient *mongoclient.Client) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}
