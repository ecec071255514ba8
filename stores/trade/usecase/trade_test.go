package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	mockAuction "github.com/otccloak/goapi/domain/auction/mocks"
	"github.com/otccloak/goapi/domain/listing"
	mockListing "github.com/otccloak/goapi/domain/listing/mocks"
	"github.com/otccloak/goapi/domain/marketconfig"
	mockMarketconfig "github.com/otccloak/goapi/domain/marketconfig/mocks"
	"github.com/otccloak/goapi/domain/trade"
	mockTrade "github.com/otccloak/goapi/domain/trade/mocks"
	mockQuery "github.com/otccloak/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

func tlos(amount int64) money.Money {
	return money.New(amount, money.TlosSymbol)
}

func cloak(amount int64) money.Money {
	return money.New(amount, money.CloakSymbol)
}

type testsuite struct {
	suite.Suite
	mockTradeRepo    *mockTrade.Repo
	mockTransferRepo *mockTrade.TransferRepo
	mockListingRepo  *mockListing.Repo
	mockConfigRepo   *mockMarketconfig.Repo
	mockOracle       *mockAuction.Oracle
	mockQuery        *mockQuery.Mongo
	now              time.Time
	subject          *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockTradeRepo = &mockTrade.Repo{}
	t.mockTransferRepo = &mockTrade.TransferRepo{}
	t.mockListingRepo = &mockListing.Repo{}
	t.mockConfigRepo = &mockMarketconfig.Repo{}
	t.mockOracle = &mockAuction.Oracle{}
	t.mockQuery = &mockQuery.Mongo{}
	t.now = time.Unix(1700000000, 0).UTC()
	t.subject = New(&TradeUseCaseCfg{
		TradeRepo:        t.mockTradeRepo,
		TransferRepo:     t.mockTransferRepo,
		ListingRepo:      t.mockListingRepo,
		MarketConfigRepo: t.mockConfigRepo,
		Oracle:           t.mockOracle,
		Query:            t.mockQuery,
		OfferedContract:  "cloak.token",
		PaymentContract:  "eosio.token",
		Now:              func() time.Time { return t.now },
	}).(*impl)
}

// runTransaction makes the mocked transaction invoke its callback.
func (t *testsuite) runTransaction() {
	t.mockQuery.On("RunWithTransaction", mockCtx, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		run := args.Get(1).(func(ctx.Ctx) error)
		t.NoError(run(mockCtx))
	})
}

func (t *testsuite) listing() *listing.Listing {
	return &listing.Listing{
		Id:         7,
		Seller:     "carol",
		Quantity:   cloak(100000), // 10.0000 CLOAK
		MinPrice:   tlos(5200000), // 520.0000 TLOS
		PremiumBps: 400,
		CreatedAt:  t.now,
	}
}

func (t *testsuite) TestExecuteFullFill() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(t.listing(), nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)
	t.mockConfigRepo.On("Get", mockCtx).Return(&marketconfig.Config{FeeBps: 100}, nil)
	t.mockListingRepo.On("Reduce", mockCtx, uint64(7), cloak(100000)).Return(nil)
	t.mockTradeRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.mockTransferRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.runTransaction()

	// 10 CLOAK at 520.0000 costs 5200.0000; pay 6000.0000 -> clamp + refund
	receipt, err := t.subject.Execute(mockCtx, "alice", tlos(60000000), 7)
	t.NoError(err)

	t.Equal(cloak(100000), receipt.Trade.Fill)
	t.Equal(tlos(5200000), receipt.Trade.OtcPrice)
	t.Equal(cloak(1000), receipt.Trade.Fee)
	t.Equal(tlos(52000000), receipt.Trade.Proceeds)
	t.Equal(tlos(8000000), receipt.Trade.Refund)
	t.Equal(domain.AccountName("carol"), receipt.Trade.Seller)

	// purchase, proceeds, fee burn and refund instructions
	t.Len(receipt.Transfers, 4)
	byMemo := map[string]*trade.Transfer{}
	for _, tr := range receipt.Transfers {
		t.NotEmpty(tr.Id)
		t.Equal(trade.TransferStatusPending, tr.Status)
		byMemo[tr.Memo] = tr
	}

	t.Equal(domain.AccountName("alice"), byMemo["otc: purchase"].To)
	t.Equal(cloak(99000), byMemo["otc: purchase"].Quantity)
	t.Equal(domain.AccountName("cloak.token"), byMemo["otc: purchase"].Contract)

	t.Equal(domain.AccountName("carol"), byMemo["otc: sale proceeds"].To)
	t.Equal(tlos(52000000), byMemo["otc: sale proceeds"].Quantity)
	t.Equal(domain.AccountName("eosio.token"), byMemo["otc: sale proceeds"].Contract)

	t.Equal(domain.BurnAccount, byMemo["otc: fee burn"].To)
	t.Equal(cloak(1000), byMemo["otc: fee burn"].Quantity)

	t.Equal(domain.AccountName("alice"), byMemo["otc: refund excess"].To)
	t.Equal(tlos(8000000), byMemo["otc: refund excess"].Quantity)

	t.mockTransferRepo.AssertNumberOfCalls(t.T(), "Insert", 4)
}

func (t *testsuite) TestExecutePartialFillNoFee() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(t.listing(), nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)
	t.mockConfigRepo.On("Get", mockCtx).Return(marketconfig.Default(), nil)
	t.mockListingRepo.On("Reduce", mockCtx, uint64(7), cloak(10000)).Return(nil)
	t.mockTradeRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.mockTransferRepo.On("Insert", mockCtx, mock.Anything).Return(nil)
	t.runTransaction()

	// 520.0000 buys exactly 1 CLOAK out of 10
	receipt, err := t.subject.Execute(mockCtx, "alice", tlos(5200000), 7)
	t.NoError(err)

	t.Equal(cloak(10000), receipt.Trade.Fill)
	t.Equal(cloak(0), receipt.Trade.Fee)
	t.Equal(tlos(5200000), receipt.Trade.Proceeds)
	t.Equal(tlos(0), receipt.Trade.Refund)

	// no fee, no refund: only purchase and proceeds instructions
	t.Len(receipt.Transfers, 2)
}

func (t *testsuite) TestExecuteListingNotFound() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(404)).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Execute(mockCtx, "alice", tlos(5200000), 404)
	t.ErrorIs(err, domain.ErrNotFound)
	t.mockQuery.AssertNotCalled(t.T(), "RunWithTransaction")
}

func (t *testsuite) TestExecuteFrozenListing() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(t.listing(), nil)
	// otc = 400.0000 * 1.04 = 416.0000 < 520.0000 floor
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(4000000), nil)
	t.mockConfigRepo.On("Get", mockCtx).Return(marketconfig.Default(), nil)

	_, err := t.subject.Execute(mockCtx, "alice", tlos(5200000), 7)
	t.ErrorIs(err, domain.ErrListingFrozen)
	t.mockQuery.AssertNotCalled(t.T(), "RunWithTransaction")
}

func (t *testsuite) TestExecuteAmountTooSmall() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(t.listing(), nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)
	t.mockConfigRepo.On("Get", mockCtx).Return(marketconfig.Default(), nil)

	_, err := t.subject.Execute(mockCtx, "alice", tlos(1), 7)
	t.ErrorIs(err, domain.ErrAmountTooSmall)
	t.mockQuery.AssertNotCalled(t.T(), "RunWithTransaction")
}

func (t *testsuite) TestExecuteRollsBackOnInsertFailure() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(t.listing(), nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)
	t.mockConfigRepo.On("Get", mockCtx).Return(marketconfig.Default(), nil)
	t.mockListingRepo.On("Reduce", mockCtx, uint64(7), mock.Anything).Return(nil)
	t.mockTradeRepo.On("Insert", mockCtx, mock.Anything).Return(domain.ErrInternalServerError)
	t.mockQuery.On("RunWithTransaction", mockCtx, mock.Anything).Return(domain.ErrInternalServerError).Run(func(args mock.Arguments) {
		run := args.Get(1).(func(ctx.Ctx) error)
		t.ErrorIs(run(mockCtx), domain.ErrInternalServerError)
	})

	_, err := t.subject.Execute(mockCtx, "alice", tlos(5200000), 7)
	t.ErrorIs(err, domain.ErrInternalServerError)
	t.mockTransferRepo.AssertNotCalled(t.T(), "Insert")
}
