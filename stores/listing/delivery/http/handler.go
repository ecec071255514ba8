package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/auction"
	dListing "github.com/otccloak/goapi/domain/listing"
	mmiddleware "github.com/otccloak/goapi/middleware"
	authMiddleware "github.com/otccloak/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing dListing.UseCase
	oracle  auction.Oracle
}

func New(e *echo.Echo, _listing dListing.UseCase, _oracle auction.Oracle, am *authMiddleware.AuthMiddleware) {
	h := &handler{_listing, _oracle}
	g := e.Group("/listings")
	g.GET("", h.getListings)
	g.GET("/:id/price", h.getListingPrice)
	g.DELETE("/:id", h.cancelListing, am.Auth())
	e.GET("/price", h.getPrice, mmiddleware.CacheHttp(10*time.Second))
	e.GET("/stats", h.getStats, mmiddleware.CacheHttp(30*time.Second))
}

func (h *handler) getListings(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		Seller *domain.AccountName `query:"seller"`
		Offset int32               `query:"offset"`
		Limit  int32               `query:"limit"`
		Sort   *string             `query:"sort"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []dListing.FindAllOptionsFunc{
		dListing.WithPagination(p.Offset, p.Limit),
	}
	if p.Seller != nil {
		opts = append(opts, dListing.WithSeller(*p.Seller))
	}
	if p.Sort != nil {
		opts = append(opts, dListing.WithSort(*p.Sort))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) getListingPrice(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	id, err := strconv.ParseUint(_ctx.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	res, err := h.listing.GetPriceReport(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) cancelListing(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	account := _ctx.Get("account").(domain.AccountName)

	id, err := strconv.ParseUint(_ctx.Param("id"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid listing id")
	}

	if err := h.listing.Cancel(ctx, account, id); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "cancelled")
}

func (h *handler) getPrice(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	snapshot, err := h.oracle.Snapshot(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}

	res := struct {
		Price          string `json:"price"`
		CurrentRound   int32  `json:"currentRound"`
		PricedRound    int32  `json:"pricedRound"`
		NumberOfRounds uint16 `json:"numberOfRounds"`
	}{
		Price:          snapshot.Price.String(),
		CurrentRound:   snapshot.CurrentRound,
		PricedRound:    snapshot.PricedRound,
		NumberOfRounds: snapshot.NumberOfRounds,
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getStats(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	res, err := h.listing.Stats(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}
