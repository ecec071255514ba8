package trade

import (
	"time"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

type TransferStatus string

const (
	TransferStatusPending TransferStatus = "pending"
	TransferStatusSent    TransferStatus = "sent"
)

// Transfer is an outbound settlement instruction. Instructions are written
// to the outbox inside the same transaction as the state mutation that
// produced them; the ledger collaborator drains and executes them.
type Transfer struct {
	Id        string             `json:"id" bson:"id"`
	Contract  domain.AccountName `json:"contract" bson:"contract"`
	To        domain.AccountName `json:"to" bson:"to"`
	Quantity  money.Money        `json:"quantity" bson:"quantity"`
	Memo      string             `json:"memo" bson:"memo"`
	Status    TransferStatus     `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Trade records one executed buy against a listing.
type Trade struct {
	ListingId  uint64             `json:"listingId" bson:"listingId"`
	Buyer      domain.AccountName `json:"buyer" bson:"buyer"`
	Seller     domain.AccountName `json:"seller" bson:"seller"`
	Payment    money.Money        `json:"payment" bson:"payment"`
	OtcPrice   money.Money        `json:"otcPrice" bson:"otcPrice"`
	Fill       money.Money        `json:"fill" bson:"fill"`
	Fee        money.Money        `json:"fee" bson:"fee"`
	Proceeds   money.Money        `json:"proceeds" bson:"proceeds"`
	Refund     money.Money        `json:"refund" bson:"refund"`
	ExecutedAt time.Time          `json:"executedAt" bson:"executedAt"`
}

// Receipt is the full outcome of one execution.
type Receipt struct {
	Trade     *Trade      `json:"trade"`
	Transfers []*Transfer `json:"transfers"`
}

type FindAllOptions struct {
	Buyer     *domain.AccountName
	ListingId *uint64
	Offset    *int32
	Limit     *int32
	Sort      *string
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

func WithBuyer(buyer domain.AccountName) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func WithListingId(id uint64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &id
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
	Insert(ctx ctx.Ctx, trade *Trade) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Trade, error)
	Count(ctx ctx.Ctx) (int, error)
}

type TransferRepo interface {
	Insert(ctx ctx.Ctx, transfer *Transfer) error
	FindPending(ctx ctx.Ctx, limit int32) ([]*Transfer, error)
	MarkSent(ctx ctx.Ctx, id string) error
}

type UseCase interface {
	// Execute fills the buyer's payment against the listing at the current
	// oracle-derived price. Either every mutation and settlement
	// instruction commits, or none do.
	Execute(ctx ctx.Ctx, buyer domain.AccountName, payment money.Money, listingId uint64) (*Receipt, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Trade, error)
	// PendingTransfers returns the oldest undelivered settlement
	// instructions for the ledger collaborator to execute.
	PendingTransfers(ctx ctx.Ctx, limit int32) ([]*Transfer, error)
	MarkTransferSent(ctx ctx.Ctx, id string) error
}
