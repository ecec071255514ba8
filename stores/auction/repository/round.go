package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/service/query"
)

// contributionDoc adds the derived participant key so the (round, userKey)
// pair can serve as the upsert selector for mirrored rows.
type contributionDoc struct {
	UserKey              string `bson:"userKey"`
	auction.Contribution `bson:",inline"`
}

type roundImpl struct {
	q query.Mongo
}

func NewRoundRepo(q query.Mongo) auction.RoundRepo {
	return &roundImpl{q}
}

func (im *roundImpl) FindByRound(ctx ctx.Ctx, round uint32) ([]*auction.Contribution, error) {
	docs := []*contributionDoc{}
	err := im.q.Search(ctx, domain.TableAuctionRounds, 0, 0, "userKey", bson.M{"round": round}, &docs)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"round": round,
		}).Error("failed to q.Search")
		return nil, err
	}

	res := make([]*auction.Contribution, 0, len(docs))
	for _, d := range docs {
		c := d.Contribution
		res = append(res, &c)
	}
	return res, nil
}

func (im *roundImpl) BulkUpsert(ctx ctx.Ctx, contributions []*auction.Contribution) error {
	if len(contributions) == 0 {
		return nil
	}

	ops := make([]query.UpsertOp, 0, len(contributions))
	for _, c := range contributions {
		ops = append(ops, query.UpsertOp{
			Selector: bson.M{"round": c.Round, "userKey": c.User.Key()},
			Updater:  &contributionDoc{UserKey: c.User.Key(), Contribution: *c},
		})
	}

	if _, _, err := im.q.BulkUpsert(ctx, domain.TableAuctionRounds, ops); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"count": len(ops),
		}).Error("failed to q.BulkUpsert")
		return err
	}
	return nil
}
