package ports

import (
	"context"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// ScheduleInput carries one scheduling submission. Confirm acknowledges the
// short-appointment/many-services soft guard; destructive operations carry
// their own confirmation flag on the call.
type ScheduleInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string
	Date        string
	StartTime   string
	EndTime     string
	NailTechID  *int64
	ServiceIDs  []int64
	Confirm     bool
}

// ServiceGroup is a category bucket of offerable services, in roster order.
type ServiceGroup struct {
	Category string
	Services []domain.Service
}

// ScheduleOptions is the form metadata for a scheduling client: the
// technician roster and the offerable services, grouped by category and
// narrowed to the selected technician's qualification set when one is given.
type ScheduleOptions struct {
	Technicians []domain.Technician
	Groups      []ServiceGroup
}

// ScheduleService defines the appointment-scheduling workflow.
type ScheduleService interface {
	Create(ctx context.Context, in ScheduleInput) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, in ScheduleInput) (*domain.Appointment, error)
	// Delete is destructive and requires confirm to be true.
	Delete(ctx context.Context, id int64, confirm bool) error
	// SetCompleted flips the completion flag; the remote response, when
	// present, is authoritative over the requested flag.
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Appointment, error)
	Options(ctx context.Context, nailTechID *int64) (*ScheduleOptions, error)
}
