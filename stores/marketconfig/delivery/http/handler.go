package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/domain/marketconfig"
	authMiddleware "github.com/otccloak/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketconfig marketconfig.UseCase
}

func New(e *echo.Echo, _marketconfig marketconfig.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{_marketconfig}
	g := e.Group("/config")
	g.GET("", h.getConfig)
	g.PUT("", h.putConfig, am.Auth(), am.IsOwner())
}

func (h *handler) getConfig(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	res, err := h.marketconfig.Get(ctx)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}

func (h *handler) putConfig(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		FeeBps uint16 `json:"feeBps"`
		Paused bool   `json:"paused"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.marketconfig.Set(ctx, p.FeeBps, p.Paused)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
	}
}
