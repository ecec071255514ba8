package usecase

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/service/telos"
)

const (
	auctionCfgTable = "auctioncfg"
	auctionTable    = "auction"

	// roundPageSize bounds one get_table_rows page while draining a round.
	roundPageSize = 500
)

type MirrorCfg struct {
	Telos      telos.Client
	ConfigRepo auction.ConfigRepo
	RoundRepo  auction.RoundRepo

	// Contract is the auction contract account whose tables are mirrored.
	Contract domain.AccountName

	// Now is for tests. Defaults to time.Now.
	Now func() time.Time
}

type mirror struct {
	telos      telos.Client
	configRepo auction.ConfigRepo
	roundRepo  auction.RoundRepo
	contract   domain.AccountName
	now        func() time.Time
}

func NewMirror(cfg *MirrorCfg) auction.Mirror {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &mirror{
		telos:      cfg.Telos,
		configRepo: cfg.ConfigRepo,
		roundRepo:  cfg.RoundRepo,
		contract:   cfg.Contract,
		now:        now,
	}
}

// auctionCfgRow is the on-chain auctioncfg row in its json form.
type auctionCfgRow struct {
	StartBlockTime   uint32 `json:"start_block_time"`
	RoundDurationSec uint32 `json:"round_duration_sec"`
	NumberOfRounds   uint16 `json:"number_of_rounds"`
	TokensPerRound   string `json:"tokens_per_round"`
	TokenContract    string `json:"token_contract"`
	MinContribution  struct {
		Quantity string `json:"quantity"`
		Contract string `json:"contract"`
	} `json:"min_contribution"`
	StakeRate uint8 `json:"stake_rate"`
}

// auctionRow is one contribution row. User is an abi variant, either
// ["name","<account>"] or ["bytes","<hex>"].
type auctionRow struct {
	User    []json.RawMessage `json:"user"`
	Amount  int64             `json:"amount"`
	Claimed bool              `json:"claimed"`
}

func (im *mirror) SyncOnce(ctx ctx.Ctx) error {
	cfg, err := im.syncConfig(ctx)
	if err != nil {
		return err
	}

	rounds := im.roundsToSync(cfg)
	if len(rounds) == 0 {
		return nil
	}

	b := goroutines.NewBatch(4, goroutines.WithBatchSize(len(rounds)))
	defer b.Close()
	for _, round := range rounds {
		r := round
		b.Queue(func() (interface{}, error) {
			return nil, im.syncRound(ctx, r)
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			err = ret.Error()
		}
	}
	return err
}

func (im *mirror) syncConfig(ctx ctx.Ctx) (*auction.Config, error) {
	resp, err := im.telos.GetTableRows(ctx, &telos.GetTableRowsRequest{
		Code:  string(im.contract),
		Scope: string(im.contract),
		Table: auctionCfgTable,
		Limit: 1,
		Json:  true,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Rows) == 0 {
		return nil, xerrors.Errorf("%s table is empty on %s", auctionCfgTable, im.contract)
	}

	row := &auctionCfgRow{}
	if err := json.Unmarshal(resp.Rows[0], row); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}

	tokensPerRound, err := money.Parse(row.TokensPerRound)
	if err != nil {
		return nil, err
	}
	minContribution, err := money.Parse(row.MinContribution.Quantity)
	if err != nil {
		return nil, err
	}

	cfg := &auction.Config{
		StartTime:        int64(row.StartBlockTime),
		RoundDurationSec: row.RoundDurationSec,
		NumberOfRounds:   row.NumberOfRounds,
		TokensPerRound:   tokensPerRound,
		TokenContract:    domain.AccountName(row.TokenContract),
		MinContribution:  minContribution,
		StakeRate:        row.StakeRate,
	}
	if err := im.configRepo.Upsert(ctx, cfg); err != nil {
		ctx.WithField("err", err).Error("failed to configRepo.Upsert")
		return nil, err
	}
	return cfg, nil
}

// roundsToSync picks the rounds worth refreshing: the round whose sum
// prices the market and the round currently accepting contributions.
func (im *mirror) roundsToSync(cfg *auction.Config) []uint32 {
	if cfg.RoundDurationSec == 0 || cfg.NumberOfRounds == 0 {
		return nil
	}

	now := im.now().Unix()
	if now < cfg.StartTime {
		return nil
	}

	last := uint32(cfg.NumberOfRounds) - 1
	current := uint32((now - cfg.StartTime) / int64(cfg.RoundDurationSec))
	if current > last {
		current = last
	}
	if current == 0 {
		return []uint32{0}
	}
	return []uint32{current - 1, current}
}

func (im *mirror) syncRound(ctx ctx.Ctx, round uint32) error {
	contributions := []*auction.Contribution{}
	lowerBound := ""
	for {
		resp, err := im.telos.GetTableRows(ctx, &telos.GetTableRowsRequest{
			Code:       string(im.contract),
			Scope:      strconv.FormatUint(uint64(round), 10),
			Table:      auctionTable,
			LowerBound: lowerBound,
			Limit:      roundPageSize,
			Json:       true,
		})
		if err != nil {
			return err
		}

		for _, raw := range resp.Rows {
			row := &auctionRow{}
			if err := json.Unmarshal(raw, row); err != nil {
				ctx.WithField("err", err).Error("json.Unmarshal failed")
				return err
			}
			user, err := parseParticipant(row.User)
			if err != nil {
				ctx.WithFields(log.Fields{
					"err":   err,
					"round": round,
				}).Error("failed to parseParticipant")
				return err
			}
			contributions = append(contributions, &auction.Contribution{
				Round:   round,
				User:    user,
				Amount:  row.Amount,
				Claimed: row.Claimed,
			})
		}

		if !resp.More {
			break
		}
		lowerBound = resp.NextKey
	}

	if err := im.roundRepo.BulkUpsert(ctx, contributions); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"round": round,
		}).Error("failed to roundRepo.BulkUpsert")
		return err
	}
	return nil
}

// parseParticipant decodes the abi variant user field.
func parseParticipant(v []json.RawMessage) (auction.Participant, error) {
	if len(v) != 2 {
		return auction.Participant{}, xerrors.Errorf("invalid user variant: %d elements", len(v))
	}

	var tag string
	if err := json.Unmarshal(v[0], &tag); err != nil {
		return auction.Participant{}, err
	}

	switch tag {
	case "name":
		var account string
		if err := json.Unmarshal(v[1], &account); err != nil {
			return auction.Participant{}, err
		}
		return auction.Participant{Account: domain.AccountName(account)}, nil
	case "bytes":
		var encoded string
		if err := json.Unmarshal(v[1], &encoded); err != nil {
			return auction.Participant{}, err
		}
		opaque, err := hex.DecodeString(encoded)
		if err != nil {
			return auction.Participant{}, err
		}
		return auction.Participant{Opaque: opaque}, nil
	default:
		return auction.Participant{}, xerrors.Errorf("invalid user variant tag %q", tag)
	}
}
