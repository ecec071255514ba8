package trade

import (
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

const bpsDenominator = int64(10000)

// OTCPrice applies the seller's premium (basis points) on top of the
// auction-derived price. A zero oracle price stays zero.
func OTCPrice(oraclePrice money.Money, premiumBps uint16) money.Money {
	if oraclePrice.IsZero() {
		return money.Zero(oraclePrice.Symbol)
	}
	amount := money.MulDiv(oraclePrice.Amount, bpsDenominator+int64(premiumBps), bpsDenominator)
	return money.New(amount, oraclePrice.Symbol)
}

// Quote is the pure outcome of pricing a payment against a listing.
// All quotients are floor-truncated, which biases every residual unit
// toward the payer: buyerReceives+fee never exceeds fill, and proceeds
// never exceed what fill is worth at the otc price.
type Quote struct {
	OtcPrice      money.Money
	Fill          money.Money
	Fee           money.Money
	BuyerReceives money.Money
	Proceeds      money.Money
	Refund        money.Money
}

// ComputeQuote decides the fill for a payment against a listing with
// `available` inventory, the seller's floor and premium, and the market
// fee. The fee is taken from the offered-asset side: the seller is paid
// for the full filled quantity, the buyer receives fill minus fee.
func ComputeQuote(payment money.Money, available, minPrice money.Money, premiumBps, feeBps uint16, oraclePrice money.Money) (*Quote, error) {
	otcPrice := OTCPrice(oraclePrice, premiumBps)

	if otcPrice.Cmp(minPrice) < 0 {
		return nil, domain.ErrListingFrozen
	}
	if !otcPrice.IsPositive() {
		return nil, domain.ErrNoPrice
	}

	requested := money.MulDiv(payment.Amount, money.Scale, otcPrice.Amount)

	fill := requested
	refund := int64(0)
	if requested > available.Amount {
		fill = available.Amount
		cost := money.MulDiv(fill, otcPrice.Amount, money.Scale)
		refund = payment.Amount - cost
		if refund < 0 {
			// cost of the clamped fill can never exceed the payment
			return nil, domain.ErrInternalServerError
		}
	}

	if fill == 0 {
		return nil, domain.ErrAmountTooSmall
	}

	fee := money.MulDiv(fill, int64(feeBps), bpsDenominator)
	buyerReceives := fill - fee
	if buyerReceives == 0 {
		return nil, domain.ErrAmountTooSmall
	}

	proceeds := money.MulDiv(fill, otcPrice.Amount, money.Scale)

	return &Quote{
		OtcPrice:      otcPrice,
		Fill:          money.New(fill, available.Symbol),
		Fee:           money.New(fee, available.Symbol),
		BuyerReceives: money.New(buyerReceives, available.Symbol),
		Proceeds:      money.New(proceeds, payment.Symbol),
		Refund:        money.New(refund, payment.Symbol),
	}, nil
}
