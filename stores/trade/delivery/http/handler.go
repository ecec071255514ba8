package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/domain"
	dTrade "github.com/otccloak/goapi/domain/trade"
	authMiddleware "github.com/otccloak/goapi/stores/auth/delivery/http/middleware"
)

const defaultSettlementBatch = int32(100)

type handler struct {
	trade dTrade.UseCase
}

func New(e *echo.Echo, _trade dTrade.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{_trade}
	e.GET("/trades", h.getTrades)
	g := e.Group("/settlements", am.Auth(), am.IsOwner())
	g.GET("/pending", h.getPending)
	g.POST("/:id/sent", h.markSent)
}

func (h *handler) getTrades(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Buyer     *domain.AccountName `query:"buyer"`
		ListingId *uint64             `query:"listingId"`
		Offset    int32               `query:"offset"`
		Limit     int32               `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dTrade.FindAllOptionsFunc{
		dTrade.WithPagination(p.Offset, p.Limit),
	}
	if p.Buyer != nil {
		opts = append(opts, dTrade.WithBuyer(*p.Buyer))
	}
	if p.ListingId != nil {
		opts = append(opts, dTrade.WithListingId(*p.ListingId))
	}

	res, err := h.trade.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

// getPending hands the ledger collaborator the oldest undelivered
// settlement instructions.
func (h *handler) getPending(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Limit int32 `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.Limit <= 0 {
		p.Limit = defaultSettlementBatch
	}

	res, err := h.trade.PendingTransfers(ctx, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) markSent(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id := _ctx.Param("id")
	if id == "" {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid transfer id")
	}

	if err := h.trade.MarkTransferSent(ctx, id); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "sent")
}
