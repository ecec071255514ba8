package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/trade"
	"github.com/otccloak/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func NewTradeRepo(q query.Mongo) trade.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(options trade.FindAllOptions) bson.M {
	query := bson.M{}

	if options.Buyer != nil {
		query["buyer"] = options.Buyer.ToLower()
	}

	if options.ListingId != nil {
		query["listingId"] = *options.ListingId
	}

	return query
}

func (im *impl) Insert(ctx ctx.Ctx, t *trade.Trade) error {
	if err := im.q.Insert(ctx, domain.TableTrades, t); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"trade": *t,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...trade.FindAllOptionsFunc) ([]*trade.Trade, error) {
	options, err := trade.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := im.makeQuery(options)

	offset := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	limit := 0
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "-executedAt"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*trade.Trade{}
	err = im.q.Search(ctx, domain.TableTrades, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(ctx ctx.Ctx) (int, error) {
	cnt, err := im.q.Count(ctx, domain.TableTrades, bson.M{})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
