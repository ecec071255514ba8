package usecase

import (
	"strconv"
	"time"

	"github.com/coocood/freecache"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
)

const (
	roundSumCacheSize = 512 * 1024
	roundSumCacheTtl  = 60 // seconds, bounds staleness while the mirror catches up
)

type OracleCfg struct {
	ConfigRepo auction.ConfigRepo
	RoundRepo  auction.RoundRepo

	// Now is for tests. Defaults to time.Now.
	Now func() time.Time
}

type impl struct {
	configRepo auction.ConfigRepo
	roundRepo  auction.RoundRepo
	cache      *freecache.Cache
	now        func() time.Time
}

func NewOracle(cfg *OracleCfg) auction.Oracle {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		configRepo: cfg.ConfigRepo,
		roundRepo:  cfg.RoundRepo,
		cache:      freecache.NewCache(roundSumCacheSize),
		now:        now,
	}
}

func (im *impl) CurrentPrice(ctx ctx.Ctx) (money.Money, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err == domain.ErrNotFound {
		return money.Money{}, domain.ErrOracleUnavailable
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to configRepo.Get")
		return money.Money{}, err
	}
	return im.price(ctx, cfg)
}

func (im *impl) Snapshot(ctx ctx.Ctx) (*auction.Snapshot, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err == domain.ErrNotFound {
		return nil, domain.ErrOracleUnavailable
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to configRepo.Get")
		return nil, err
	}

	price, err := im.price(ctx, cfg)
	if err != nil {
		return nil, err
	}

	snapshot := &auction.Snapshot{
		Price:          price,
		CurrentRound:   -1,
		PricedRound:    -1,
		NumberOfRounds: cfg.NumberOfRounds,
	}

	current, ok := im.currentRound(cfg)
	if !ok {
		return snapshot, nil
	}
	if current > int64(cfg.NumberOfRounds) {
		current = int64(cfg.NumberOfRounds)
	}
	snapshot.CurrentRound = int32(current)
	if priced, ok := pricedRound(cfg, current); ok {
		snapshot.PricedRound = int32(priced)
	}
	return snapshot, nil
}

// currentRound returns the 0-based round index holding the current time,
// unclamped. ok is false before the auction starts.
func (im *impl) currentRound(cfg *auction.Config) (int64, bool) {
	now := im.now().Unix()
	if now < cfg.StartTime || cfg.RoundDurationSec == 0 {
		return 0, false
	}
	return (now - cfg.StartTime) / int64(cfg.RoundDurationSec), true
}

// pricedRound is the most recently completed round, clamped to the final
// round so the closing price persists after the auction ends.
func pricedRound(cfg *auction.Config, current int64) (int64, bool) {
	if current == 0 {
		return 0, false
	}
	priced := current - 1
	if last := int64(cfg.NumberOfRounds) - 1; priced > last {
		priced = last
	}
	if priced < 0 {
		return 0, false
	}
	return priced, true
}

func (im *impl) price(ctx ctx.Ctx, cfg *auction.Config) (money.Money, error) {
	zero := money.Zero(money.TlosSymbol)

	if cfg.RoundDurationSec == 0 {
		return money.Money{}, domain.ErrOracleMisconfigured
	}

	current, ok := im.currentRound(cfg)
	if !ok {
		return zero, nil
	}
	priced, ok := pricedRound(cfg, current)
	if !ok {
		return zero, nil
	}

	sum, err := im.roundSum(ctx, uint32(priced))
	if err != nil {
		return money.Money{}, err
	}
	if sum == 0 {
		return zero, nil
	}

	if cfg.TokensPerRound.Amount <= 0 {
		return money.Money{}, domain.ErrOracleMisconfigured
	}

	return money.New(money.MulDiv(sum, money.Scale, cfg.TokensPerRound.Amount), money.TlosSymbol), nil
}

func (im *impl) roundSum(ctx ctx.Ctx, round uint32) (int64, error) {
	key := []byte("roundSum:" + strconv.FormatUint(uint64(round), 10))
	if cached, err := im.cache.Get(key); err == nil {
		if sum, err := strconv.ParseInt(string(cached), 10, 64); err == nil {
			return sum, nil
		}
	}

	contributions, err := im.roundRepo.FindByRound(ctx, round)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"round": round,
		}).Error("failed to roundRepo.FindByRound")
		return 0, err
	}

	sum := int64(0)
	for _, c := range contributions {
		sum += c.Amount
	}

	if err := im.cache.Set(key, []byte(strconv.FormatInt(sum, 10)), roundSumCacheTtl); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"round": round,
		}).Warn("failed to cache round sum")
	}
	return sum, nil
}
