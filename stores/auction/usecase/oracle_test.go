package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/domain/auction/mocks"
)

var mockCtx = ctx.Background()

const (
	startTime = int64(1700000000)
	duration  = uint32(86400)
)

type testsuite struct {
	suite.Suite
	mockConfigRepo *mocks.ConfigRepo
	mockRoundRepo  *mocks.RoundRepo
	now            time.Time
	subject        auction.Oracle
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockConfigRepo = &mocks.ConfigRepo{}
	t.mockRoundRepo = &mocks.RoundRepo{}
	t.subject = NewOracle(&OracleCfg{
		ConfigRepo: t.mockConfigRepo,
		RoundRepo:  t.mockRoundRepo,
		Now:        func() time.Time { return t.now },
	})
}

func (t *testsuite) config() *auction.Config {
	return &auction.Config{
		StartTime:        startTime,
		RoundDurationSec: duration,
		NumberOfRounds:   60,
		TokensPerRound:   money.New(1000, money.CloakSymbol),
	}
}

// atRound positions the clock in the middle of the given 0-based round.
func (t *testsuite) atRound(round int64) {
	t.now = time.Unix(startTime+round*int64(duration)+int64(duration)/2, 0)
}

func (t *testsuite) TestNoConfig() {
	t.mockConfigRepo.On("Get", mockCtx).Return(nil, domain.ErrNotFound)

	_, err := t.subject.CurrentPrice(mockCtx)
	t.ErrorIs(err, domain.ErrOracleUnavailable)

	_, err = t.subject.Snapshot(mockCtx)
	t.ErrorIs(err, domain.ErrOracleUnavailable)
}

func (t *testsuite) TestBeforeStart() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.now = time.Unix(startTime-1, 0)

	price, err := t.subject.CurrentPrice(mockCtx)
	t.NoError(err)
	t.Equal(money.Zero(money.TlosSymbol), price)

	snapshot, err := t.subject.Snapshot(mockCtx)
	t.NoError(err)
	t.Equal(int32(-1), snapshot.CurrentRound)
	t.Equal(int32(-1), snapshot.PricedRound)
}

func (t *testsuite) TestFirstRoundHasNoPrice() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.atRound(0)

	price, err := t.subject.CurrentPrice(mockCtx)
	t.NoError(err)
	t.Equal(money.Zero(money.TlosSymbol), price)
}

func (t *testsuite) TestPricesPreviousRound() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.mockRoundRepo.On("FindByRound", mockCtx, uint32(3)).Return([]*auction.Contribution{
		{Round: 3, User: auction.Participant{Account: "alice"}, Amount: 200000},
		{Round: 3, User: auction.Participant{Opaque: []byte{1, 2, 3, 4, 5, 6, 7, 8}}, Amount: 300000},
	}, nil)
	t.atRound(4)

	// 500000 * 10000 / 1000 = 500.0000 per token
	price, err := t.subject.CurrentPrice(mockCtx)
	t.NoError(err)
	t.Equal(money.New(5000000, money.TlosSymbol), price)

	snapshot, err := t.subject.Snapshot(mockCtx)
	t.NoError(err)
	t.Equal(int32(4), snapshot.CurrentRound)
	t.Equal(int32(3), snapshot.PricedRound)
	t.Equal(uint16(60), snapshot.NumberOfRounds)
}

func (t *testsuite) TestRoundSumIsCached() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.mockRoundRepo.On("FindByRound", mockCtx, uint32(3)).Return([]*auction.Contribution{
		{Round: 3, User: auction.Participant{Account: "alice"}, Amount: 500000},
	}, nil).Once()
	t.atRound(4)

	for i := 0; i < 3; i++ {
		price, err := t.subject.CurrentPrice(mockCtx)
		t.NoError(err)
		t.Equal(money.New(5000000, money.TlosSymbol), price)
	}
	t.mockRoundRepo.AssertNumberOfCalls(t.T(), "FindByRound", 1)
}

func (t *testsuite) TestClampsToFinalRound() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.mockRoundRepo.On("FindByRound", mockCtx, uint32(59)).Return([]*auction.Contribution{
		{Round: 59, User: auction.Participant{Account: "bob"}, Amount: 1000000},
	}, nil)

	// long after the auction has ended, the final round's price persists
	t.atRound(1000)

	price, err := t.subject.CurrentPrice(mockCtx)
	t.NoError(err)
	t.Equal(money.New(10000000, money.TlosSymbol), price)

	snapshot, err := t.subject.Snapshot(mockCtx)
	t.NoError(err)
	t.Equal(int32(60), snapshot.CurrentRound)
	t.Equal(int32(59), snapshot.PricedRound)
}

func (t *testsuite) TestEmptyRoundHasNoPrice() {
	t.mockConfigRepo.On("Get", mockCtx).Return(t.config(), nil)
	t.mockRoundRepo.On("FindByRound", mockCtx, uint32(0)).Return([]*auction.Contribution{}, nil)
	t.atRound(1)

	price, err := t.subject.CurrentPrice(mockCtx)
	t.NoError(err)
	t.Equal(money.Zero(money.TlosSymbol), price)
}

func (t *testsuite) TestZeroTokensPerRound() {
	cfg := t.config()
	cfg.TokensPerRound = money.Zero(money.CloakSymbol)
	t.mockConfigRepo.On("Get", mockCtx).Return(cfg, nil)
	t.mockRoundRepo.On("FindByRound", mockCtx, uint32(0)).Return([]*auction.Contribution{
		{Round: 0, User: auction.Participant{Account: "alice"}, Amount: 100},
	}, nil)
	t.atRound(1)

	_, err := t.subject.CurrentPrice(mockCtx)
	t.ErrorIs(err, domain.ErrOracleMisconfigured)
}
