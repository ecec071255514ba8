package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain/auction"
	"github.com/otccloak/goapi/domain/auction/mocks"
	"github.com/otccloak/goapi/service/telos"
	mockTelos "github.com/otccloak/goapi/service/telos/mocks"
)

const auctionContract = "thezeosalias"

type mirrorsuite struct {
	suite.Suite
	mockTelos      *mockTelos.Client
	mockConfigRepo *mocks.ConfigRepo
	mockRoundRepo  *mocks.RoundRepo
	now            time.Time
	subject        auction.Mirror
}

func TestMirror(t *testing.T) {
	suite.Run(t, new(mirrorsuite))
}

func (t *mirrorsuite) SetupTest() {
	t.mockTelos = &mockTelos.Client{}
	t.mockConfigRepo = &mocks.ConfigRepo{}
	t.mockRoundRepo = &mocks.RoundRepo{}
	t.subject = NewMirror(&MirrorCfg{
		Telos:      t.mockTelos,
		ConfigRepo: t.mockConfigRepo,
		RoundRepo:  t.mockRoundRepo,
		Contract:   auctionContract,
		Now:        func() time.Time { return t.now },
	})
}

func rows(ss ...string) []json.RawMessage {
	res := make([]json.RawMessage, len(ss))
	for i, s := range ss {
		res[i] = json.RawMessage(s)
	}
	return res
}

const cfgRowJson = `{
	"start_block_time": 1700000000,
	"round_duration_sec": 86400,
	"number_of_rounds": 60,
	"tokens_per_round": "1000.0000 CLOAK",
	"token_contract": "thezeostoken",
	"min_contribution": {"quantity": "5.0000 TLOS", "contract": "eosio.token"},
	"stake_rate": 10
}`

func (t *mirrorsuite) expectConfig() {
	t.mockTelos.On("GetTableRows", mockCtx, &telos.GetTableRowsRequest{
		Code:  auctionContract,
		Scope: auctionContract,
		Table: "auctioncfg",
		Limit: 1,
		Json:  true,
	}).Return(&telos.GetTableRowsResponse{Rows: rows(cfgRowJson)}, nil)
	t.mockConfigRepo.On("Upsert", mockCtx, &auction.Config{
		StartTime:        startTime,
		RoundDurationSec: duration,
		NumberOfRounds:   60,
		TokensPerRound:   money.New(10000000, money.CloakSymbol),
		TokenContract:    "thezeostoken",
		MinContribution:  money.New(50000, money.TlosSymbol),
		StakeRate:        10,
	}).Return(nil)
}

func (t *mirrorsuite) roundRequest(scope, lowerBound string) *telos.GetTableRowsRequest {
	return &telos.GetTableRowsRequest{
		Code:       auctionContract,
		Scope:      scope,
		Table:      "auction",
		LowerBound: lowerBound,
		Limit:      roundPageSize,
		Json:       true,
	}
}

func (t *mirrorsuite) TestSyncsConfigAndBothRounds() {
	t.now = time.Unix(startTime+4*int64(duration)+100, 0)
	t.expectConfig()

	t.mockTelos.On("GetTableRows", mockCtx, t.roundRequest("3", "")).Return(&telos.GetTableRowsResponse{
		Rows: rows(
			`{"user": ["name", "alice"], "amount": 200000, "claimed": false}`,
			`{"user": ["bytes", "deadbeef"], "amount": 300000, "claimed": true}`,
		),
	}, nil)
	t.mockTelos.On("GetTableRows", mockCtx, t.roundRequest("4", "")).Return(&telos.GetTableRowsResponse{
		Rows: rows(`{"user": ["name", "bob"], "amount": 50000, "claimed": false}`),
	}, nil)

	t.mockRoundRepo.On("BulkUpsert", mockCtx, []*auction.Contribution{
		{Round: 3, User: auction.Participant{Account: "alice"}, Amount: 200000},
		{Round: 3, User: auction.Participant{Opaque: []byte{0xde, 0xad, 0xbe, 0xef}}, Amount: 300000, Claimed: true},
	}).Return(nil)
	t.mockRoundRepo.On("BulkUpsert", mockCtx, []*auction.Contribution{
		{Round: 4, User: auction.Participant{Account: "bob"}, Amount: 50000},
	}).Return(nil)

	t.NoError(t.subject.SyncOnce(mockCtx))
	t.mockRoundRepo.AssertNumberOfCalls(t.T(), "BulkUpsert", 2)
}

func (t *mirrorsuite) TestPaginatesThroughRound() {
	t.now = time.Unix(startTime+100, 0) // round 0, only round 0 to sync
	t.expectConfig()

	t.mockTelos.On("GetTableRows", mockCtx, t.roundRequest("0", "")).Return(&telos.GetTableRowsResponse{
		Rows:    rows(`{"user": ["name", "alice"], "amount": 100000, "claimed": false}`),
		More:    true,
		NextKey: "3773252682502521856",
	}, nil)
	t.mockTelos.On("GetTableRows", mockCtx, t.roundRequest("0", "3773252682502521856")).Return(&telos.GetTableRowsResponse{
		Rows: rows(`{"user": ["name", "bob"], "amount": 200000, "claimed": false}`),
	}, nil)

	t.mockRoundRepo.On("BulkUpsert", mockCtx, []*auction.Contribution{
		{Round: 0, User: auction.Participant{Account: "alice"}, Amount: 100000},
		{Round: 0, User: auction.Participant{Account: "bob"}, Amount: 200000},
	}).Return(nil)

	t.NoError(t.subject.SyncOnce(mockCtx))
}

func (t *mirrorsuite) TestBeforeStartSyncsConfigOnly() {
	t.now = time.Unix(startTime-100, 0)
	t.expectConfig()

	t.NoError(t.subject.SyncOnce(mockCtx))
	t.mockRoundRepo.AssertNotCalled(t.T(), "BulkUpsert")
}

func (t *mirrorsuite) TestEmptyConfigTable() {
	t.mockTelos.On("GetTableRows", mockCtx, mock.Anything).Return(&telos.GetTableRowsResponse{}, nil)

	t.Error(t.subject.SyncOnce(mockCtx))
	t.mockConfigRepo.AssertNotCalled(t.T(), "Upsert")
}
