package auction

import (
	"encoding/hex"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

// Config mirrors the auction contract's configuration singleton. It is
// read-only for this service; the mirror worker keeps it current.
type Config struct {
	StartTime        int64              `json:"startTime" bson:"startTime"`
	RoundDurationSec uint32             `json:"roundDurationSec" bson:"roundDurationSec"`
	NumberOfRounds   uint16             `json:"numberOfRounds" bson:"numberOfRounds"`
	TokensPerRound   money.Money        `json:"tokensPerRound" bson:"tokensPerRound"`
	TokenContract    domain.AccountName `json:"tokenContract" bson:"tokenContract"`
	MinContribution  money.Money        `json:"minContribution" bson:"minContribution"`
	StakeRate        uint8              `json:"stakeRate" bson:"stakeRate"`
}

// Participant identifies a contributor either by a named ledger account or
// by an opaque byte identity (blinded participation). Exactly one of the
// two fields is set.
type Participant struct {
	Account domain.AccountName `json:"account,omitempty" bson:"account,omitempty"`
	Opaque  []byte             `json:"opaque,omitempty" bson:"opaque,omitempty"`
}

// Key derives the row key: the account name when present, otherwise the
// hex form of the first 8 bytes of the opaque identity.
func (p Participant) Key() string {
	if !p.Account.IsEmpty() {
		return string(p.Account)
	}
	b := p.Opaque
	if len(b) > 8 {
		b = b[:8]
	}
	return hex.EncodeToString(b)
}

// Contribution is one participant's raw contribution within a round.
// Amount is in raw payment-asset units.
type Contribution struct {
	Round   uint32      `json:"round" bson:"round"`
	User    Participant `json:"user" bson:"user"`
	Amount  int64       `json:"amount" bson:"amount"`
	Claimed bool        `json:"claimed" bson:"claimed"`
}

// Snapshot is the oracle's observable state for read surfaces. Rounds are
// -1 while undefined (auction not started / no completed round).
type Snapshot struct {
	Price          money.Money `json:"price"`
	CurrentRound   int32       `json:"currentRound"`
	PricedRound    int32       `json:"pricedRound"`
	NumberOfRounds uint16      `json:"numberOfRounds"`
}

type ConfigRepo interface {
	Get(ctx ctx.Ctx) (*Config, error)
	Upsert(ctx ctx.Ctx, cfg *Config) error
}

type RoundRepo interface {
	FindByRound(ctx ctx.Ctx, round uint32) ([]*Contribution, error)
	BulkUpsert(ctx ctx.Ctx, contributions []*Contribution) error
}

// Mirror copies the auction contract's tables into local storage so the
// oracle never reads the chain on the request path.
type Mirror interface {
	SyncOnce(ctx ctx.Ctx) error
}

// Oracle derives the live unit price of the offered asset from the most
// recently completed auction round.
type Oracle interface {
	// CurrentPrice returns the payment-asset price of 1.0000 offered asset.
	// A zero amount is a valid "no tradable price" state, not an error.
	CurrentPrice(ctx ctx.Ctx) (money.Money, error)
	Snapshot(ctx ctx.Ctx) (*Snapshot, error)
}
