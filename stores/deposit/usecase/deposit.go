package usecase

import (
	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/deposit"
	"github.com/otccloak/goapi/domain/listing"
	"github.com/otccloak/goapi/domain/marketconfig"
	"github.com/otccloak/goapi/domain/trade"
)

type DepositUseCaseCfg struct {
	ListingUseCase   listing.UseCase
	TradeUseCase     trade.UseCase
	MarketConfigRepo marketconfig.Repo

	// MarketAccount is the ledger account deposits are addressed to.
	MarketAccount   domain.AccountName
	OfferedContract domain.AccountName
	PaymentContract domain.AccountName
}

type impl struct {
	listingUseCase   listing.UseCase
	tradeUseCase     trade.UseCase
	marketConfigRepo marketconfig.Repo
	marketAccount    domain.AccountName
	offeredContract  domain.AccountName
	paymentContract  domain.AccountName
}

func New(cfg *DepositUseCaseCfg) deposit.UseCase {
	return &impl{
		listingUseCase:   cfg.ListingUseCase,
		tradeUseCase:     cfg.TradeUseCase,
		marketConfigRepo: cfg.MarketConfigRepo,
		marketAccount:    cfg.MarketAccount,
		offeredContract:  cfg.OfferedContract,
		paymentContract:  cfg.PaymentContract,
	}
}

func (im *impl) Handle(ctx ctx.Ctx, notice *deposit.TransferNotice) error {
	// outbound settlements and transfers to third parties are not deposits
	if !notice.To.Equals(im.marketAccount) || notice.From.Equals(im.marketAccount) {
		return nil
	}

	if !notice.Quantity.IsPositive() {
		return domain.ErrBadParamInput
	}

	cfg, err := im.marketConfigRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to marketConfigRepo.Get")
		return err
	}
	if cfg.Paused {
		return domain.ErrPaused
	}

	switch {
	case notice.Token.Equals(im.offeredContract) && notice.Quantity.Symbol == money.CloakSymbol:
		return im.handleList(ctx, notice)
	case notice.Token.Equals(im.paymentContract) && notice.Quantity.Symbol == money.TlosSymbol:
		return im.handleBuy(ctx, notice)
	default:
		return domain.ErrUnsupportedAsset
	}
}

func (im *impl) handleList(ctx ctx.Ctx, notice *deposit.TransferNotice) error {
	intent, err := deposit.ParseListMemo(notice.Memo)
	if err != nil {
		return err
	}

	if _, err := im.listingUseCase.Create(ctx, notice.From, notice.Quantity, intent.MinPrice, intent.PremiumBps); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": notice.From,
		}).Error("failed to listingUseCase.Create")
		return err
	}
	return nil
}

func (im *impl) handleBuy(ctx ctx.Ctx, notice *deposit.TransferNotice) error {
	intent, err := deposit.ParseBuyMemo(notice.Memo)
	if err != nil {
		return err
	}

	if _, err := im.tradeUseCase.Execute(ctx, notice.From, notice.Quantity, intent.ListingId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"buyer":     notice.From,
			"listingId": intent.ListingId,
		}).Error("failed to tradeUseCase.Execute")
		return err
	}
	return nil
}
