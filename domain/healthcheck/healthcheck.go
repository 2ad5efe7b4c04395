package healthcheck

import (
	"github.com/x-xyz/xionmarket/base/ctx"
)

// Status is reported by a passing check.
type Status struct {
	Height uint64 `json:"height"`
	// Records is false when no record store is configured
	Records bool `json:"records"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingDB reports false without error when there is no db to ping
	PingDB(context ctx.Ctx) (bool, error)
	PingChain(context ctx.Ctx) (uint64, error)
}
