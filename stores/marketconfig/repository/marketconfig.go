package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/marketconfig"
	"github.com/otccloak/goapi/service/query"
)

const configKey = "config"

type doc struct {
	Key    string              `bson:"key"`
	Config marketconfig.Config `bson:"config"`
}

type impl struct {
	q query.Mongo
}

func NewMarketConfigRepo(q query.Mongo) marketconfig.Repo {
	return &impl{q}
}

func (im *impl) Get(ctx ctx.Ctx) (*marketconfig.Config, error) {
	res := doc{}
	err := im.q.FindOne(ctx, domain.TableMarketConfig, bson.M{"key": configKey}, &res)
	if err == query.ErrNotFound {
		return marketconfig.Default(), nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res.Config, nil
}

func (im *impl) Set(ctx ctx.Ctx, cfg *marketconfig.Config) error {
	err := im.q.Upsert(ctx, domain.TableMarketConfig, bson.M{"key": configKey}, &doc{Key: configKey, Config: *cfg})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": *cfg,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
