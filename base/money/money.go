package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Precision is the decimal precision shared by every asset on the market.
// Both the offered asset and the payment asset use 4 decimals, so one
// integer unit represents 0.0001 of the asset.
const Precision = 4

// Scale is 10^Precision.
const Scale = int64(10000)

const (
	CloakSymbol = "CLOAK"
	TlosSymbol  = "TLOS"
)

// Money is a fixed-point amount of a single asset. Amount is the raw
// integer value scaled by Scale.
type Money struct {
	Amount int64  `json:"amount" bson:"amount"`
	Symbol string `json:"symbol" bson:"symbol"`
}

func New(amount int64, symbol string) Money {
	return Money{Amount: amount, Symbol: symbol}
}

func Zero(symbol string) Money {
	return Money{Amount: 0, Symbol: symbol}
}

// ParseAmount converts a plain decimal string like "500.0000" into Money.
// At most Precision fractional digits are accepted and the conversion is
// exact. Signs, thousands separators and exponents are rejected.
func ParseAmount(s, symbol string) (Money, error) {
	if s == "" {
		return Money{}, xerrors.New("empty amount")
	}
	if strings.Count(s, ".") > 1 {
		return Money{}, xerrors.Errorf("invalid amount %q: multiple dots", s)
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	if intPart == "" && fracPart == "" {
		return Money{}, xerrors.Errorf("invalid amount %q", s)
	}
	if len(fracPart) > Precision {
		return Money{}, xerrors.Errorf("invalid amount %q: precision exceeds %d decimals", s, Precision)
	}

	var amount int64
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return Money{}, xerrors.Errorf("invalid amount %q: unexpected character %q", s, r)
		}
		d := int64(r - '0')
		if amount > (1<<63-1-d)/10 {
			return Money{}, xerrors.Errorf("invalid amount %q: overflow", s)
		}
		amount = amount*10 + d
	}

	frac := int64(0)
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return Money{}, xerrors.Errorf("invalid amount %q: unexpected character %q", s, r)
		}
		frac = frac*10 + int64(r-'0')
	}
	for i := len(fracPart); i < Precision; i++ {
		frac *= 10
	}

	if amount > ((1<<63-1)-frac)/Scale {
		return Money{}, xerrors.Errorf("invalid amount %q: overflow", s)
	}
	return Money{Amount: amount*Scale + frac, Symbol: symbol}, nil
}

// Parse converts a quantity string like "500.0000 TLOS" into Money.
func Parse(s string) (Money, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 || parts[1] == "" {
		return Money{}, xerrors.Errorf("invalid quantity %q: expected \"<amount> <symbol>\"", s)
	}
	return ParseAmount(parts[0], parts[1])
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// Cmp compares two amounts of the same symbol, returning -1, 0 or 1.
func (m Money) Cmp(o Money) int {
	switch {
	case m.Amount < o.Amount:
		return -1
	case m.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Sub returns m - o. Both operands must carry the same symbol.
func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount - o.Amount, Symbol: m.Symbol}
}

// Add returns m + o. Both operands must carry the same symbol.
func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Symbol: m.Symbol}
}

// Decimal returns the display value, e.g. 5000000 -> 500.0000.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -Precision)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(Precision), m.Symbol)
}

// MulDiv computes a*b/div with a double-width intermediate, truncating the
// quotient toward zero. div must not be zero.
func MulDiv(a, b, div int64) int64 {
	res := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	res.Quo(res, big.NewInt(div))
	return res.Int64()
}
