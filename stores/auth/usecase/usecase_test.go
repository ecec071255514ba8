package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", map[string]string{"carol": "carol-key"})

	tkn, err := u.SignToken(ctx, "carol", "carol-key")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	account, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "carol", account)
}

func TestSignTokenRejectsBadKey(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", map[string]string{"carol": "carol-key"})

	_, err := u.SignToken(ctx, "carol", "wrong-key")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = u.SignToken(ctx, "unknown", "carol-key")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	ctx := ctx.Background()
	issuer := usecase.New("jwt-secret", map[string]string{"carol": "carol-key"})
	verifier := usecase.New("other-secret", nil)

	tkn, err := issuer.SignToken(ctx, "carol", "carol-key")
	assert.NoError(t, err)

	_, err = verifier.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
