package usecase

import (
	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/base/log"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/marketconfig"
)

type impl struct {
	repo marketconfig.Repo
}

func New(repo marketconfig.Repo) marketconfig.UseCase {
	return &impl{repo}
}

func (im *impl) Get(ctx ctx.Ctx) (*marketconfig.Config, error) {
	cfg, err := im.repo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to repo.Get")
		return nil, err
	}
	return cfg, nil
}

func (im *impl) Set(ctx ctx.Ctx, feeBps uint16, paused bool) (*marketconfig.Config, error) {
	if feeBps > marketconfig.MaxFeeBps {
		return nil, domain.ErrBadParamInput
	}

	cfg := &marketconfig.Config{FeeBps: feeBps, Paused: paused}
	if err := im.repo.Set(ctx, cfg); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": *cfg,
		}).Error("failed to repo.Set")
		return nil, err
	}
	return cfg, nil
}
