package ports

import (
	"context"
	"time"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// WeekViewInput selects the week window containing Date and the role the
// rendering is redacted for.
type WeekViewInput struct {
	Date time.Time
	Role domain.Role
}

// TechnicianSummary is the availability-pill entry for a day.
type TechnicianSummary struct {
	ID   int64
	Name string
}

// AppointmentCard is one appointment as a given role is allowed to see it.
// For viewers the primary line is the technician (or a generic placeholder)
// and the secondary line is suppressed along with all mutation controls.
type AppointmentCard struct {
	ID            int64
	PrimaryLine   string
	SecondaryLine string
	StartTime     string
	EndTime       string
	Completed     bool
	CanEdit       bool
	CanDelete     bool
	CanToggle     bool
}

// DayCell is one rendered day of the week window.
type DayCell struct {
	Date                 string
	DayNumber            int
	Weekday              string
	WeekdayShort         string
	AvailableTechnicians []TechnicianSummary
	Appointments         []AppointmentCard
}

// WeekView is the Sunday-anchored 7-day window.
type WeekView struct {
	Start     string
	End       string
	Days      []DayCell
	CanCreate bool
}

// CalendarService composes the week window, the appointment collection, the
// availability index, and the role into the rendered calendar.
type CalendarService interface {
	WeekView(ctx context.Context, in WeekViewInput) (*WeekView, error)
	// Refresh reloads technicians, services, and appointments from the
	// remote API, keeping availability and offerable-service data current
	// after roster or price-list changes elsewhere.
	Refresh(ctx context.Context) error
}
