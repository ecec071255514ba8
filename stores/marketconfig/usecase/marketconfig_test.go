package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/otccloak/goapi/base/ctx"
	"github.com/otccloak/goapi/domain"
	"github.com/otccloak/goapi/domain/marketconfig"
	"github.com/otccloak/goapi/domain/marketconfig/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockRepo *mocks.Repo
	subject  *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mocks.Repo{}
	t.subject = &impl{repo: t.mockRepo}
}

func (t *testsuite) TestGet() {
	want := &marketconfig.Config{FeeBps: 25, Paused: false}
	t.mockRepo.On("Get", mockCtx).Return(want, nil)

	cfg, err := t.subject.Get(mockCtx)
	t.NoError(err)
	t.Equal(want, cfg)
}

func (t *testsuite) TestSet() {
	want := &marketconfig.Config{FeeBps: 1000, Paused: true}
	t.mockRepo.On("Set", mockCtx, want).Return(nil)

	cfg, err := t.subject.Set(mockCtx, 1000, true)
	t.NoError(err)
	t.Equal(want, cfg)
}

func (t *testsuite) TestSetRejectsFeeAboveCap() {
	_, err := t.subject.Set(mockCtx, marketconfig.MaxFeeBps+1, false)
	t.ErrorIs(err, domain.ErrBadParamInput)
	t.mockRepo.AssertNotCalled(t.T(), "Set")
}
