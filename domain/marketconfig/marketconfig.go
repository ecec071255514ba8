package marketconfig

import (
	"github.com/otccloak/goapi/base/ctx"
)

// MaxFeeBps caps the marketplace fee at 10%.
const MaxFeeBps = uint16(1000)

// Config is the marketplace's configuration singleton. It is replaced
// wholesale on every update, never partially merged.
type Config struct {
	FeeBps uint16 `json:"feeBps" bson:"feeBps"`
	Paused bool   `json:"paused" bson:"paused"`
}

// Default is the value observed before the singleton is ever set.
func Default() *Config {
	return &Config{FeeBps: 0, Paused: false}
}

type Repo interface {
	// Get returns the stored config, or the default when none was set.
	Get(ctx ctx.Ctx) (*Config, error)
	Set(ctx ctx.Ctx, cfg *Config) error
}

type UseCase interface {
	Get(ctx ctx.Ctx) (*Config, error)
	Set(ctx ctx.Ctx, feeBps uint16, paused bool) (*Config, error)
}
