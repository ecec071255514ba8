package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/base/money"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/deposit"
)

type handler struct {
	deposit deposit.UseCase
}

func New(e *echo.Echo, _deposit deposit.UseCase) {
	h := &handler{_deposit}
	e.POST("/transfers", h.postTransfer)
}

// postTransfer ingests one transfer notification pushed by the ledger
// collaborator. Quantity arrives in ledger form, e.g. "520.0000 TLOS".
func (h *handler) postTransfer(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Token    domain.AccountName `json:"token"`
		From     domain.AccountName `json:"from"`
		To       domain.AccountName `json:"to"`
		Quantity string             `json:"quantity"`
		Memo     string             `json:"memo"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	quantity, err := money.Parse(p.Quantity)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid quantity")
	}

	notice := &deposit.TransferNotice{
		Token:    p.Token,
		From:     p.From,
		To:       p.To,
		Quantity: quantity,
		Memo:     p.Memo,
	}
	if err := h.deposit.Handle(ctx, notice); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "accepted")
}
