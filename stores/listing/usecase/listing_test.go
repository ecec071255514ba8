package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	mockAuction "github.com/otccloak/goapi/domain/auction/mocks"
	"github.com/otccloak/goapi/domain/listing"
	mockListing "github.com/otccloak/goapi/domain/listing/mocks"
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
	mockListingRepo  *mockListing.Repo
	mockIdRepo       *mockListing.IdRepo
	mockTradeRepo    *mockTrade.Repo
	mockTransferRepo *mockTrade.TransferRepo
	mockOracle       *mockAuction.Oracle
	mockQuery        *mockQuery.Mongo
	now              time.Time
	subject          *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockListingRepo = &mockListing.Repo{}
	t.mockIdRepo = &mockListing.IdRepo{}
	t.mockTradeRepo = &mockTrade.Repo{}
	t.mockTransferRepo = &mockTrade.TransferRepo{}
	t.mockOracle = &mockAuction.Oracle{}
	t.mockQuery = &mockQuery.Mongo{}
	t.now = time.Unix(1700000000, 0).UTC()
	t.subject = New(&ListingUseCaseCfg{
		ListingRepo:     t.mockListingRepo,
		IdRepo:          t.mockIdRepo,
		TradeRepo:       t.mockTradeRepo,
		TransferRepo:    t.mockTransferRepo,
		Oracle:          t.mockOracle,
		Query:           t.mockQuery,
		OfferedContract: "cloak.token",
		Now:             func() time.Time { return t.now },
	}).(*impl)
}

func (t *testsuite) runTransaction() {
	t.mockQuery.On("RunWithTransaction", mockCtx, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		run := args.Get(1).(func(ctx.Ctx) error)
		t.NoError(run(mockCtx))
	})
}

func (t *testsuite) TestCreate() {
	want := &listing.Listing{
		Id:         42,
		Seller:     "carol",
		Quantity:   cloak(100000),
		MinPrice:   tlos(5200000),
		PremiumBps: 400,
		CreatedAt:  t.now,
	}
	t.mockIdRepo.On("Next", mockCtx).Return(uint64(42), nil)
	t.mockListingRepo.On("Create", mockCtx, want).Return(nil)

	l, err := t.subject.Create(mockCtx, "carol", cloak(100000), tlos(5200000), 400)
	t.NoError(err)
	t.Equal(want, l)
}

func (t *testsuite) TestCreateRejectsNonPositiveAmounts() {
	_, err := t.subject.Create(mockCtx, "carol", cloak(0), tlos(5200000), 400)
	t.ErrorIs(err, domain.ErrBadParamInput)

	_, err = t.subject.Create(mockCtx, "carol", cloak(100000), tlos(0), 400)
	t.ErrorIs(err, domain.ErrBadParamInput)

	t.mockIdRepo.AssertNotCalled(t.T(), "Next")
}

func (t *testsuite) TestCancel() {
	l := &listing.Listing{Id: 7, Seller: "carol", Quantity: cloak(30000)}
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(l, nil)
	t.mockListingRepo.On("Remove", mockCtx, uint64(7)).Return(nil)
	t.mockTransferRepo.On("Insert", mockCtx, mock.MatchedBy(func(tr *trade.Transfer) bool {
		return tr.To == "carol" &&
			tr.Quantity == cloak(30000) &&
			tr.Contract == "cloak.token" &&
			tr.Memo == "otc: listing cancelled" &&
			tr.Status == trade.TransferStatusPending
	})).Return(nil)
	t.runTransaction()

	t.NoError(t.subject.Cancel(mockCtx, "carol", 7))
	t.mockTransferRepo.AssertNumberOfCalls(t.T(), "Insert", 1)
}

func (t *testsuite) TestCancelNotSeller() {
	l := &listing.Listing{Id: 7, Seller: "carol", Quantity: cloak(30000)}
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(l, nil)

	t.ErrorIs(t.subject.Cancel(mockCtx, "mallory", 7), domain.ErrUnauthorized)
	t.mockQuery.AssertNotCalled(t.T(), "RunWithTransaction")
}

func (t *testsuite) TestCancelNotFound() {
	t.mockListingRepo.On("FindOne", mockCtx, uint64(404)).Return(nil, domain.ErrNotFound)

	t.ErrorIs(t.subject.Cancel(mockCtx, "carol", 404), domain.ErrNotFound)
}

func (t *testsuite) TestGetPriceReport() {
	l := &listing.Listing{
		Id:         7,
		Seller:     "carol",
		Quantity:   cloak(100000),
		MinPrice:   tlos(5200000),
		PremiumBps: 400,
	}
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(l, nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)

	report, err := t.subject.GetPriceReport(mockCtx, 7)
	t.NoError(err)
	t.Equal(&listing.PriceReport{
		ListingId:    7,
		Seller:       "carol",
		Available:    "10.0000 CLOAK",
		AuctionPrice: "500.0000 TLOS",
		OtcPrice:     "520.0000 TLOS",
		MinPrice:     "520.0000 TLOS",
		PremiumBps:   400,
		Active:       true,
	}, report)
}

func (t *testsuite) TestGetPriceReportFrozen() {
	l := &listing.Listing{
		Id:         7,
		Seller:     "carol",
		Quantity:   cloak(100000),
		MinPrice:   tlos(5200001),
		PremiumBps: 400,
	}
	t.mockListingRepo.On("FindOne", mockCtx, uint64(7)).Return(l, nil)
	t.mockOracle.On("CurrentPrice", mockCtx).Return(tlos(5000000), nil)

	report, err := t.subject.GetPriceReport(mockCtx, 7)
	t.NoError(err)
	t.False(report.Active)
}

func (t *testsuite) TestStats() {
	t.mockOracle.On("Snapshot", mockCtx).Return(&auction.Snapshot{
		Price:          tlos(5000000),
		CurrentRound:   4,
		PricedRound:    3,
		NumberOfRounds: 60,
	}, nil)
	t.mockListingRepo.On("FindAll", mockCtx).Return([]*listing.Listing{
		{Id: 1, Seller: "carol", Quantity: cloak(100000), MinPrice: tlos(5200000), PremiumBps: 400},
		{Id: 2, Seller: "carol", Quantity: cloak(50000), MinPrice: tlos(1), PremiumBps: 0},
		{Id: 3, Seller: "dave", Quantity: cloak(20000), MinPrice: tlos(9990000), PremiumBps: 100},
	}, nil)
	t.mockTradeRepo.On("Count", mockCtx).Return(12, nil)

	stats, err := t.subject.Stats(mockCtx)
	t.NoError(err)
	t.Equal(&listing.Stats{
		AuctionPrice:   "500.0000 TLOS",
		CurrentRound:   4,
		NumberOfRounds: 60,
		TotalListings:  3,
		ActiveListings: 2,
		FrozenListings: 1,
		UniqueSellers:  2,
		TotalListed:    "17.0000 CLOAK",
		MinOtcPrice:    "500.0000 TLOS",
		MaxOtcPrice:    "520.0000 TLOS",
		TotalTrades:    12,
	}, stats)
}
