package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/delivery"
	"github.com/otccloak/goapi/domain"
)

type AuthMiddleware struct {
	auth  domain.AuthUsecase
	owner domain.AccountName
}

func New(auth domain.AuthUsecase, owner domain.AccountName) *AuthMiddleware {
	return &AuthMiddleware{
		auth:  auth,
		owner: owner.ToLower(),
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// IsOwner restricts a route to the marketplace owner account. It must sit
// behind Auth, which stores the verified account on the request.
func (m *AuthMiddleware) IsOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := c.Get("account").(domain.AccountName)

			if !account.Equals(m.owner) {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require owner privilege")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if account, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("account", domain.AccountName(account))
		return true, nil
	}
}
