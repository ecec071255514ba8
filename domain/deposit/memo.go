package deposit

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

const (
	listMemoPrefix = "list:"
	buyMemoPrefix  = "buy:"

	maxPremiumBps = 10000
)

// ListIntent is a parsed `list:<min_price>:<premium_bps>` memo.
type ListIntent struct {
	MinPrice   money.Money
	PremiumBps uint16
}

// BuyIntent is a parsed `buy:<listing_id>` memo.
type BuyIntent struct {
	ListingId uint64
}

// ParseListMemo parses `list:<min_price>:<premium_bps>`. The price is a
// plain decimal string in payment-asset units with at most 4 fractional
// digits; the premium is an unsigned integer number of basis points, at
// most 10000. Every failure wraps domain.ErrMalformedMemo.
func ParseListMemo(memo string) (*ListIntent, error) {
	if !strings.HasPrefix(memo, listMemoPrefix) {
		return nil, xerrors.Errorf("expected list:<min_price>:<premium_bps>: %w", domain.ErrMalformedMemo)
	}

	rest := memo[len(listMemoPrefix):]
	sep := strings.IndexByte(rest, ':')
	if sep < 0 {
		return nil, xerrors.Errorf("missing premium separator: %w", domain.ErrMalformedMemo)
	}

	priceStr := rest[:sep]
	bpsStr := rest[sep+1:]
	if bpsStr == "" {
		return nil, xerrors.Errorf("premium is missing: %w", domain.ErrMalformedMemo)
	}

	minPrice, err := money.ParseAmount(priceStr, money.TlosSymbol)
	if err != nil {
		return nil, xerrors.Errorf("invalid min price %q: %w", priceStr, domain.ErrMalformedMemo)
	}
	if !minPrice.IsPositive() {
		return nil, xerrors.Errorf("min price must be positive: %w", domain.ErrMalformedMemo)
	}

	bps, err := strconv.ParseUint(bpsStr, 10, 64)
	if err != nil {
		return nil, xerrors.Errorf("invalid premium %q: %w", bpsStr, domain.ErrMalformedMemo)
	}
	if bps > maxPremiumBps {
		return nil, xerrors.Errorf("premium cannot exceed %d: %w", maxPremiumBps, domain.ErrMalformedMemo)
	}

	return &ListIntent{MinPrice: minPrice, PremiumBps: uint16(bps)}, nil
}

// ParseBuyMemo parses `buy:<listing_id>`. Every failure wraps
// domain.ErrMalformedMemo.
func ParseBuyMemo(memo string) (*BuyIntent, error) {
	if !strings.HasPrefix(memo, buyMemoPrefix) {
		return nil, xerrors.Errorf("expected buy:<listing_id>: %w", domain.ErrMalformedMemo)
	}

	id, err := strconv.ParseUint(memo[len(buyMemoPrefix):], 10, 64)
	if err != nil {
		return nil, xerrors.Errorf("invalid listing id: %w", domain.ErrMalformedMemo)
	}

	return &BuyIntent{ListingId: id}, nil
}
