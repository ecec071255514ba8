package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/otccloak/goapi/base/ctx"
	bctx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/domain/listing"
	"github.com/otccloak/goapi/domain/trade"
	"github.com/otccloak/goapi/service/query"
)

const memoCancelled = "otc: listing cancelled"

type ListingUseCaseCfg struct {
	ListingRepo  listing.Repo
	IdRepo       listing.IdRepo
	TradeRepo    trade.Repo
	TransferRepo trade.TransferRepo
	Oracle       auction.Oracle
	Query        query.Mongo

	// OfferedContract is the token contract cancellation refunds go through.
	OfferedContract domain.AccountName

	// Now is for tests. Defaults to time.Now.
	Now func() time.Time
}

type impl struct {
	listingRepo     listing.Repo
	idRepo          listing.IdRepo
	tradeRepo       trade.Repo
	transferRepo    trade.TransferRepo
	oracle          auction.Oracle
	q               query.Mongo
	offeredContract domain.AccountName
	now             func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		listingRepo:     cfg.ListingRepo,
		idRepo:          cfg.IdRepo,
		tradeRepo:       cfg.TradeRepo,
		transferRepo:    cfg.TransferRepo,
		oracle:          cfg.Oracle,
		q:               cfg.Query,
		offeredContract: cfg.OfferedContract,
		now:             now,
	}
}

func (im *impl) Create(ctx ctx.Ctx, seller domain.AccountName, quantity, minPrice money.Money, premiumBps uint16) (*listing.Listing, error) {
	if !quantity.IsPositive() || !minPrice.IsPositive() {
		return nil, domain.ErrBadParamInput
	}

	id, err := im.idRepo.Next(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to idRepo.Next")
		return nil, err
	}

	l := &listing.Listing{
		Id:         id,
		Seller:     seller,
		Quantity:   quantity,
		MinPrice:   minPrice,
		PremiumBps: premiumBps,
		CreatedAt:  im.now(),
	}
	if err := im.listingRepo.Create(ctx, l); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *l,
		}).Error("failed to listingRepo.Create")
		return nil, err
	}
	return l, nil
}

func (im *impl) Cancel(ctx ctx.Ctx, seller domain.AccountName, id uint64) error {
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !l.Seller.Equals(seller) {
		return domain.ErrUnauthorized
	}

	refund := &trade.Transfer{
		Id:        uuid.NewString(),
		Contract:  im.offeredContract,
		To:        l.Seller,
		Quantity:  l.Quantity,
		Memo:      memoCancelled,
		Status:    trade.TransferStatusPending,
		CreatedAt: im.now(),
	}

	err = im.q.RunWithTransaction(ctx, func(ctx bctx.Ctx) error {
		if err := im.listingRepo.Remove(ctx, id); err != nil {
			return err
		}
		return im.transferRepo.Insert(ctx, refund)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to commit cancellation")
		return err
	}
	return nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.listingRepo.FindAll(ctx, opts...)
}

func (im *impl) GetPriceReport(ctx ctx.Ctx, id uint64) (*listing.PriceReport, error) {
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	oraclePrice, err := im.oracle.CurrentPrice(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to oracle.CurrentPrice")
		return nil, err
	}

	otcPrice := trade.OTCPrice(oraclePrice, l.PremiumBps)
	active := otcPrice.IsPositive() && otcPrice.Cmp(l.MinPrice) >= 0

	return &listing.PriceReport{
		ListingId:    l.Id,
		Seller:       l.Seller,
		Available:    l.Quantity.String(),
		AuctionPrice: oraclePrice.String(),
		OtcPrice:     otcPrice.String(),
		MinPrice:     l.MinPrice.String(),
		PremiumBps:   l.PremiumBps,
		Active:       active,
	}, nil
}

func (im *impl) Stats(ctx ctx.Ctx) (*listing.Stats, error) {
	snapshot, err := im.oracle.Snapshot(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to oracle.Snapshot")
		return nil, err
	}

	listings, err := im.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tradeCount, err := im.tradeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &listing.Stats{
		AuctionPrice:   snapshot.Price.String(),
		CurrentRound:   snapshot.CurrentRound,
		NumberOfRounds: snapshot.NumberOfRounds,
		TotalListings:  len(listings),
		TotalTrades:    tradeCount,
	}

	sellers := map[domain.AccountName]struct{}{}
	totalListed := money.Zero(money.CloakSymbol)
	var minOtc, maxOtc *money.Money
	for _, l := range listings {
		sellers[l.Seller] = struct{}{}
		totalListed = totalListed.Add(l.Quantity)

		otcPrice := trade.OTCPrice(snapshot.Price, l.PremiumBps)
		if !otcPrice.IsPositive() || otcPrice.Cmp(l.MinPrice) < 0 {
			stats.FrozenListings++
			continue
		}
		stats.ActiveListings++
		if minOtc == nil || otcPrice.Cmp(*minOtc) < 0 {
			p := otcPrice
			minOtc = &p
		}
		if maxOtc == nil || otcPrice.Cmp(*maxOtc) > 0 {
			p := otcPrice
			maxOtc = &p
		}
	}
	stats.UniqueSellers = len(sellers)
	stats.TotalListed = totalListed.String()
	if minOtc != nil {
		stats.MinOtcPrice = minOtc.String()
	}
	if maxOtc != nil {
		stats.MaxOtcPrice = maxOtc.String()
	}

	return stats, nil
}
