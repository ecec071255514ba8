package deposit

import (
	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
)

// TransferNotice is an inbound transfer notification pushed by the ledger
// collaborator. Token names the contract the transfer happened on.
type TransferNotice struct {
	Token    domain.AccountName `json:"token"`
	From     domain.AccountName `json:"from"`
	To       domain.AccountName `json:"to"`
	Quantity money.Money        `json:"quantity"`
	Memo     string             `json:"memo"`
}

// UseCase routes deposits to listing creation or trade execution based on
// the deposited asset and the memo grammar. Transfers not addressed to the
// marketplace account, or sent by it, are ignored.
type UseCase interface {
	Handle(ctx ctx.Ctx, notice *TransferNotice) error
}
