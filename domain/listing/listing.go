package listing

import (
	"time"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

// Listing is a seller's open offer. Quantity is strictly positive for as
// long as the row exists; a fully consumed listing is erased, never kept
// at zero.
type Listing struct {
	Id         uint64             `json:"id" bson:"id"`
	Seller     domain.AccountName `json:"seller" bson:"seller"`
	Quantity   money.Money        `json:"quantity" bson:"quantity"`
	MinPrice   money.Money        `json:"minPrice" bson:"minPrice"`
	PremiumBps uint16             `json:"premiumBps" bson:"premiumBps"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// PriceReport is the read-only pricing view of a single listing.
type PriceReport struct {
	ListingId    uint64             `json:"listingId"`
	Seller       domain.AccountName `json:"seller"`
	Available    string             `json:"available"`
	AuctionPrice string             `json:"auctionPrice"`
	OtcPrice     string             `json:"otcPrice"`
	MinPrice     string             `json:"minPrice"`
	PremiumBps   uint16             `json:"premiumBps"`
	Active       bool               `json:"active"`
}

// Stats aggregates the whole order book for the statistics view.
type Stats struct {
	AuctionPrice   string `json:"auctionPrice"`
	CurrentRound   int32  `json:"currentRound"`
	NumberOfRounds uint16 `json:"numberOfRounds"`
	TotalListings  int    `json:"totalListings"`
	ActiveListings int    `json:"activeListings"`
	FrozenListings int    `json:"frozenListings"`
	UniqueSellers  int    `json:"uniqueSellers"`
	TotalListed    string `json:"totalListed"`
	MinOtcPrice    string `json:"minOtcPrice"`
	MaxOtcPrice    string `json:"maxOtcPrice"`
	TotalTrades    int    `json:"totalTrades"`
}

type FindAllOptions struct {
	Seller *domain.AccountName
	Offset *int32
	Limit  *int32
	Sort   *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSeller(seller domain.AccountName) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type Repo interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id uint64) (*Listing, error)
	Create(ctx ctx.Ctx, listing *Listing) error
	// Reduce decrements the remaining quantity and erases the row when it
	// reaches zero. Reducing by more than the remaining quantity is an error.
	Reduce(ctx ctx.Ctx, id uint64, delta money.Money) error
	Remove(ctx ctx.Ctx, id uint64) error
}

// IdRepo allocates listing ids. Ids are monotonically increasing, start at
// 1 and are never reused, even after the listing is removed.
type IdRepo interface {
	Next(ctx ctx.Ctx) (uint64, error)
}

type UseCase interface {
	Create(ctx ctx.Ctx, seller domain.AccountName, quantity, minPrice money.Money, premiumBps uint16) (*Listing, error)
	Cancel(ctx ctx.Ctx, seller domain.AccountName, id uint64) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	GetPriceReport(ctx ctx.Ctx, id uint64) (*PriceReport, error)
	Stats(ctx ctx.Ctx) (*Stats, error)
}
