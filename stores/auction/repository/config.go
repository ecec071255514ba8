package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/service/query"
)

const configKey = "auction"

type configDoc struct {
	Key    string         `bson:"key"`
	Config auction.Config `bson:"config"`
}

type configImpl struct {
	q query.Mongo
}

func NewAuctionConfigRepo(q query.Mongo) auction.ConfigRepo {
	return &configImpl{q}
}

func (im *configImpl) Get(ctx ctx.Ctx) (*auction.Config, error) {
	res := configDoc{}
	err := im.q.FindOne(ctx, domain.TableAuctionConfig, bson.M{"key": configKey}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res.Config, nil
}

func (im *configImpl) Upsert(ctx ctx.Ctx, cfg *auction.Config) error {
	err := im.q.Upsert(ctx, domain.TableAuctionConfig, bson.M{"key": configKey}, &configDoc{Key: configKey, Config: *cfg})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": *cfg,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
