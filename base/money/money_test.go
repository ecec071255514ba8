package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "integer", input: "500", want: 5000000},
		{name: "full precision", input: "500.0000", want: 5000000},
		{name: "partial precision", input: "0.05", want: 500},
		{name: "fraction only", input: ".5", want: 5000},
		{name: "trailing dot", input: "12.", want: 120000},
		{name: "zero", input: "0", want: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "lone dot", input: ".", wantErr: true},
		{name: "too many decimals", input: "1.00001", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "plus sign", input: "+1", wantErr: true},
		{name: "letters", input: "12a", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
		{name: "thousands separator", input: "1,000", wantErr: true},
		{name: "overflow", input: "9223372036854775807", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseAmount(c.input, TlosSymbol)
		if c.wantErr {
			require.Error(t, err, c.name)
			continue
		}
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, got.Amount, c.name)
		require.Equal(t, TlosSymbol, got.Symbol, c.name)
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("1000.0000 CLOAK")
	require.NoError(t, err)
	require.Equal(t, New(10000000, CloakSymbol), m)

	_, err = Parse("1000.0000")
	require.Error(t, err)

	_, err = Parse("1000.0000 CLOAK extra")
	require.Error(t, err)
}

func TestString(t *testing.T) {
	require.Equal(t, "500.0000 TLOS", New(5000000, TlosSymbol).String())
	require.Equal(t, "0.0001 CLOAK", New(1, CloakSymbol).String())
	require.Equal(t, "0.0000 TLOS", Zero(TlosSymbol).String())
}

func TestMulDiv(t *testing.T) {
	// plain
	require.Equal(t, int64(6), MulDiv(3, 4, 2))
	// floors toward zero
	require.Equal(t, int64(1), MulDiv(1, 3, 2))
	// the intermediate product exceeds int64
	require.Equal(t, int64(math.MaxInt64), MulDiv(math.MaxInt64, 10000, 10000))
	require.Equal(t, int64(922337203685477), MulDiv(math.MaxInt64, 1, 10000))
}

func TestCmp(t *testing.T) {
	a := New(100, TlosSymbol)
	b := New(200, TlosSymbol)
	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(a))
}

func TestAddSub(t *testing.T) {
	a := New(150, TlosSymbol)
	b := New(50, TlosSymbol)
	require.Equal(t, New(200, TlosSymbol), a.Add(b))
	require.Equal(t, New(100, TlosSymbol), a.Sub(b))
}
