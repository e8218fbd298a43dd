package ports

import (
	"context"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// AppointmentPayload carries the write-side appointment fields exactly as
// the remote API expects them: flat ids, no embedded objects.
type AppointmentPayload struct {
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	NailTechID  *int64  `json:"nailTechId"`
	ServiceIDs  []int64 `json:"serviceIds"`
}

// UpstreamPinger reports whether the remote API is reachable. Used by the
// readiness probe, which must stay cheap for the upstream: probes run
// frequently and must not fetch collections.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

// SalonRepository is the port to the remote persistence REST API. All data
// this service serves ultimately lives behind it; the service itself owns
// no database.
type SalonRepository interface {
	ListTechnicians(ctx context.Context) ([]domain.Technician, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	// ListAppointments returns the collection in server order, which the
	// caller must preserve (sorted server-side by date).
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, p AppointmentPayload) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, p AppointmentPayload) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) error
	// SetCompleted sets the completion flag. The returned appointment is the
	// remote's authoritative view; nil when the remote answered with an
	// empty body.
	SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Appointment, error)
}
