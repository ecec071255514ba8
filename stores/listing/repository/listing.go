package repository

import (
	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/listing"
	"github.com/otccloak/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &impl{q}
}

func (im *impl) makeQuery(options listing.FindAllOptions) bson.M {
	query := bson.M{}

	if options.Seller != nil {
		query["seller"] = options.Seller.ToLower()
	}

	return query
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	options, err := listing.GetFindAllOptions(opts...)
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

	sort := "id"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	err = im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id uint64) (*listing.Listing, error) {
	res := listing.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"id": id}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *impl) Create(ctx ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(ctx, domain.TableListings, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *l,
		}).Error("failed to q.Insert")
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (im *impl) Reduce(ctx ctx.Ctx, id uint64, delta money.Money) error {
	cur, err := im.FindOne(ctx, id)
	if err != nil {
		return err
	}

	remaining := cur.Quantity.Sub(delta)

	switch remaining.Cmp(money.Zero(remaining.Symbol)) {
	case -1:
		return domain.ErrBadParamInput
	case 0:
		return im.Remove(ctx, id)
	default:
		err := im.q.Patch(ctx, domain.TableListings, bson.M{"id": id}, bson.M{"quantity": remaining})
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to q.Patch")
			return err
		}
		return nil
	}
}

func (im *impl) Remove(ctx ctx.Ctx, id uint64) error {
	err := im.q.Remove(ctx, domain.TableListings, bson.M{"id": id})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}
