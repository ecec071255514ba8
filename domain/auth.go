package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/otccloak/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Account string `json:"account"`
	jwt.StandardClaims
}

// AuthUsecase issues and validates tokens proving a ledger account's
// identity. Proof of key ownership happens on the external identity
// collaborator; this layer only maps a verified account to a session token.
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, account AccountName, apiKey string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (string, error)
}
