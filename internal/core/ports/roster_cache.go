package ports

import (
	"context"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// RosterCache holds the read-mostly reference data (technicians, services)
// between remote fetches. A cache failure is never fatal: callers fall back
// to the remote API.
type RosterCache interface {
	// GetTechnicians returns the cached roster; ok is false on a miss.
	GetTechnicians(ctx context.Context) (techs []domain.Technician, ok bool, err error)
	SetTechnicians(ctx context.Context, techs []domain.Technician) error
	GetServices(ctx context.Context) (services []domain.Service, ok bool, err error)
	SetServices(ctx context.Context, services []domain.Service) error
	// Invalidate drops both cached lists, forcing the next read to refetch.
	Invalidate(ctx context.Context) error
}
