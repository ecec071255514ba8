package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/token", handler.token)
}

func (h *authHandler) token(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Account domain.AccountName `json:"account"`
		ApiKey  string             `json:"apiKey"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if tkn, err := h.auth.SignToken(ctx, p.Account, p.ApiKey); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}
