package deposit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

func TestParseListMemo(t *testing.T) {
	cases := []struct {
		name    string
		memo    string
		want    *ListIntent
		wantErr bool
	}{
		{
			name: "full precision price",
			memo: "list:520.0000:400",
			want: &ListIntent{MinPrice: money.New(5200000, money.TlosSymbol), PremiumBps: 400},
		},
		{
			name: "integer price and zero premium",
			memo: "list:1:0",
			want: &ListIntent{MinPrice: money.New(10000, money.TlosSymbol), PremiumBps: 0},
		},
		{
			name: "short fraction is right padded",
			memo: "list:0.05:10000",
			want: &ListIntent{MinPrice: money.New(500, money.TlosSymbol), PremiumBps: 10000},
		},
		{name: "missing prefix", memo: "520.0000:400", wantErr: true},
		{name: "wrong prefix case", memo: "LIST:520.0000:400", wantErr: true},
		{name: "missing separator", memo: "list:520.0000", wantErr: true},
		{name: "empty price", memo: "list::400", wantErr: true},
		{name: "empty premium", memo: "list:520.0000:", wantErr: true},
		{name: "zero price", memo: "list:0.0000:400", wantErr: true},
		{name: "negative price", memo: "list:-1:400", wantErr: true},
		{name: "too many decimals", memo: "list:520.00001:400", wantErr: true},
		{name: "premium overflow", memo: "list:520.0000:10001", wantErr: true},
		{name: "premium not a number", memo: "list:520.0000:4x0", wantErr: true},
		{name: "price not a number", memo: "list:52o:400", wantErr: true},
		{name: "empty memo", memo: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseListMemo(c.memo)
		if c.wantErr {
			require.ErrorIs(t, err, domain.ErrMalformedMemo, c.name)
			continue
		}
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got, c.name)
	}
}

func TestParseBuyMemo(t *testing.T) {
	cases := []struct {
		name    string
		memo    string
		want    *BuyIntent
		wantErr bool
	}{
		{name: "simple", memo: "buy:7", want: &BuyIntent{ListingId: 7}},
		{name: "large id", memo: "buy:18446744073709551615", want: &BuyIntent{ListingId: 18446744073709551615}},
		{name: "missing prefix", memo: "7", wantErr: true},
		{name: "empty id", memo: "buy:", wantErr: true},
		{name: "negative id", memo: "buy:-1", wantErr: true},
		{name: "not a number", memo: "buy:seven", wantErr: true},
		{name: "list memo", memo: "list:1:0", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseBuyMemo(c.memo)
		if c.wantErr {
			require.ErrorIs(t, err, domain.ErrMalformedMemo, c.name)
			continue
		}
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got, c.name)
	}
}
