package repository

import (
	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/listing"
	"github.com/otccloak/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const listingIdCounterKey = "listingId"

type counter struct {
	Key string `bson:"key"`
	Seq uint64 `bson:"seq"`
}

type idRepo struct {
	q query.Mongo
}

// NewListingIdRepo allocates ids from an atomically incremented counter
// document. The first id handed out is 1; ids are never reused.
func NewListingIdRepo(q query.Mongo) listing.IdRepo {
	return &idRepo{q}
}

func (im *idRepo) Next(ctx ctx.Ctx) (uint64, error) {
	res := counter{}
	err := im.q.Increment(ctx, domain.TableCounters, bson.M{"key": listingIdCounterKey}, &res, "seq", int64(1))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"key": listingIdCounterKey,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return res.Seq, nil
}
