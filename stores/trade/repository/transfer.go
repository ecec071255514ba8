package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/trade"
	"github.com/otccloak/goapi/service/query"
)

type transferImpl struct {
	q query.Mongo
}

// NewTransferRepo stores outbound settlement instructions. Instructions are
// written inside the same transaction as the mutation that produced them and
// drained by the ledger collaborator.
func NewTransferRepo(q query.Mongo) trade.TransferRepo {
	return &transferImpl{q}
}

func (im *transferImpl) Insert(ctx ctx.Ctx, t *trade.Transfer) error {
	if err := im.q.Insert(ctx, domain.TableTransfers, t); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": *t,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *transferImpl) FindPending(ctx ctx.Ctx, limit int32) ([]*trade.Transfer, error) {
	res := []*trade.Transfer{}
	err := im.q.Search(ctx, domain.TableTransfers, 0, int(limit), "createdAt", bson.M{"status": trade.TransferStatusPending}, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *transferImpl) MarkSent(ctx ctx.Ctx, id string) error {
	err := im.q.Patch(ctx, domain.TableTransfers, bson.M{"id": id}, bson.M{"status": trade.TransferStatusSent})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}
