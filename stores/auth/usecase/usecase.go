package usecase

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/domain"
)

type impl struct {
	jwtSecret []byte
	apiKeys   map[domain.AccountName]string
}

// New builds the auth usecase. apiKeys maps ledger accounts to the api key
// each account authenticates with.
func New(jwtSecret string, apiKeys map[string]string) domain.AuthUsecase {
	keys := make(map[domain.AccountName]string, len(apiKeys))
	for account, key := range apiKeys {
		keys[domain.AccountName(account).ToLower()] = key
	}
	return &impl{
		jwtSecret: []byte(jwtSecret),
		apiKeys:   keys,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, account domain.AccountName, apiKey string) (string, error) {
	want, ok := im.apiKeys[account.ToLower()]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(apiKey)) != 1 {
		return "", domain.ErrUnauthorized
	}

	claims := domain.JwtCustomClaims{
		Account: string(account.ToLower()),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Account, nil
	}

	return "", domain.ErrUnauthorized
}
