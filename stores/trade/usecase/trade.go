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
	"github.com/otccloak/goapi/domain/marketconfig"
	"github.com/otccloak/goapi/domain/trade"
	"github.com/otccloak/goapi/service/query"
)

const (
	memoPurchase = "otc: purchase"
	memoProceeds = "otc: sale proceeds"
	memoFeeBurn  = "otc: fee burn"
	memoRefund   = "otc: refund excess"
)

type TradeUseCaseCfg struct {
	TradeRepo        trade.Repo
	TransferRepo     trade.TransferRepo
	ListingRepo      listing.Repo
	MarketConfigRepo marketconfig.Repo
	Oracle           auction.Oracle
	Query            query.Mongo

	// OfferedContract and PaymentContract are the token contracts the
	// settlement instructions are addressed to.
	OfferedContract domain.AccountName
	PaymentContract domain.AccountName

	// Now is for tests. Defaults to time.Now.
	Now func() time.Time
}

type impl struct {
	tradeRepo        trade.Repo
	transferRepo     trade.TransferRepo
	listingRepo      listing.Repo
	marketConfigRepo marketconfig.Repo
	oracle           auction.Oracle
	q                query.Mongo
	offeredContract  domain.AccountName
	paymentContract  domain.AccountName
	now              func() time.Time
}

func New(cfg *TradeUseCaseCfg) trade.UseCase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		tradeRepo:        cfg.TradeRepo,
		transferRepo:     cfg.TransferRepo,
		listingRepo:      cfg.ListingRepo,
		marketConfigRepo: cfg.MarketConfigRepo,
		oracle:           cfg.Oracle,
		q:                cfg.Query,
		offeredContract:  cfg.OfferedContract,
		paymentContract:  cfg.PaymentContract,
		now:              now,
	}
}

func (im *impl) Execute(ctx ctx.Ctx, buyer domain.AccountName, payment money.Money, listingId uint64) (*trade.Receipt, error) {
	l, err := im.listingRepo.FindOne(ctx, listingId)
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

	cfg, err := im.marketConfigRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to marketConfigRepo.Get")
		return nil, err
	}

	quote, err := trade.ComputeQuote(payment, l.Quantity, l.MinPrice, l.PremiumBps, cfg.FeeBps, oraclePrice)
	if err != nil {
		return nil, err
	}

	now := im.now()
	t := &trade.Trade{
		ListingId:  l.Id,
		Buyer:      buyer,
		Seller:     l.Seller,
		Payment:    payment,
		OtcPrice:   quote.OtcPrice,
		Fill:       quote.Fill,
		Fee:        quote.Fee,
		Proceeds:   quote.Proceeds,
		Refund:     quote.Refund,
		ExecutedAt: now,
	}

	transfers := []*trade.Transfer{
		im.makeTransfer(im.offeredContract, buyer, quote.BuyerReceives, memoPurchase, now),
		im.makeTransfer(im.paymentContract, l.Seller, quote.Proceeds, memoProceeds, now),
	}
	if quote.Fee.IsPositive() {
		transfers = append(transfers, im.makeTransfer(im.offeredContract, domain.BurnAccount, quote.Fee, memoFeeBurn, now))
	}
	if quote.Refund.IsPositive() {
		transfers = append(transfers, im.makeTransfer(im.paymentContract, buyer, quote.Refund, memoRefund, now))
	}

	err = im.q.RunWithTransaction(ctx, func(ctx bctx.Ctx) error {
		if err := im.listingRepo.Reduce(ctx, l.Id, quote.Fill); err != nil {
			return err
		}
		if err := im.tradeRepo.Insert(ctx, t); err != nil {
			return err
		}
		for _, transfer := range transfers {
			if err := im.transferRepo.Insert(ctx, transfer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.Id,
			"buyer":     buyer,
		}).Error("failed to commit trade")
		return nil, err
	}

	return &trade.Receipt{Trade: t, Transfers: transfers}, nil
}

func (im *impl) makeTransfer(contract, to domain.AccountName, quantity money.Money, memo string, now time.Time) *trade.Transfer {
	return &trade.Transfer{
		Id:        uuid.NewString(),
		Contract:  contract,
		To:        to,
		Quantity:  quantity,
		Memo:      memo,
		Status:    trade.TransferStatusPending,
		CreatedAt: now,
	}
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...trade.FindAllOptionsFunc) ([]*trade.Trade, error) {
	return im.tradeRepo.FindAll(ctx, opts...)
}

func (im *impl) PendingTransfers(ctx ctx.Ctx, limit int32) ([]*trade.Transfer, error) {
	return im.transferRepo.FindPending(ctx, limit)
}

func (im *impl) MarkTransferSent(ctx ctx.Ctx, id string) error {
	if err := im.transferRepo.MarkSent(ctx, id); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to transferRepo.MarkSent")
		return err
	}
	return nil
}
