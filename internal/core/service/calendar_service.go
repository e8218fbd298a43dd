package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

// viewerPlaceholder is shown to viewers as the primary line of an
// unassigned appointment: the slot is taken, nothing else is disclosed.
const viewerPlaceholder = "Busy"

// CalendarService composes the week window, the availability index, the
// appointment store, and the resolved role into the rendered weekly grid.
type CalendarService struct {
	repo   ports.SalonRepository
	roster *RosterService
	store  *AppointmentStore
	log    zerolog.Logger
}

func NewCalendarService(repo ports.SalonRepository, roster *RosterService, store *AppointmentStore, log zerolog.Logger) *CalendarService {
	return &CalendarService{repo: repo, roster: roster, store: store, log: log}
}

// WeekView renders the Sunday-anchored window containing in.Date, redacted
// for in.Role. A roster fetch failure degrades to empty availability and
// unresolved technician names rather than failing the view.
func (s *CalendarService) WeekView(ctx context.Context, in ports.WeekViewInput) (*ports.WeekView, error) {
	start := domain.StartOfWeek(in.Date)
	days := domain.WeekDays(start)

	techs, err := s.roster.Technicians(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("technician roster unavailable, rendering without availability")
		techs = nil
	}
	services, err := s.roster.Services(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("price list unavailable, rendering without service names")
		services = nil
	}

	techByID := make(map[int64]domain.Technician, len(techs))
	for _, t := range techs {
		techByID[t.ID] = t
	}
	svcByID := make(map[int64]domain.Service, len(services))
	for _, svc := range services {
		svcByID[svc.ID] = svc
	}

	view := &ports.WeekView{
		Start:     domain.DayKey(start),
		End:       domain.DayKey(days[6]),
		Days:      make([]ports.DayCell, 0, len(days)),
		CanCreate: in.Role.CanManage(),
	}

	for _, day := range days {
		key := domain.DayKey(day)
		cell := ports.DayCell{
			Date:         key,
			DayNumber:    day.Day(),
			Weekday:      domain.WeekdayName(day),
			WeekdayShort: day.Format("Mon"),
		}
		for _, t := range AvailableTechnicians(day, techs) {
			cell.AvailableTechnicians = append(cell.AvailableTechnicians, ports.TechnicianSummary{ID: t.ID, Name: t.Name})
		}
		for _, a := range s.store.DayBucket(key) {
			cell.Appointments = append(cell.Appointments, buildCard(a, in.Role, techByID, svcByID))
		}
		view.Days = append(view.Days, cell)
	}
	return view, nil
}

// Refresh reloads technicians, services, and appointments from the remote
// API. Load failures are logged and leave the affected collection at its
// previous value; a degraded calendar is acceptable, an error page is not.
func (s *CalendarService) Refresh(ctx context.Context) error {
	s.roster.Invalidate(ctx)

	if _, err := s.roster.Technicians(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to reload technicians")
	}
	if _, err := s.roster.Services(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to reload services")
	}

	appointments, err := s.repo.ListAppointments(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to reload appointments")
		return nil
	}
	s.store.ReplaceAll(appointments)
	s.log.Info().Int("appointments", len(appointments)).Msg("collections reloaded")
	return nil
}

// buildCard applies the role-based redaction rules to one appointment.
func buildCard(a domain.Appointment, role domain.Role, techByID map[int64]domain.Technician, svcByID map[int64]domain.Service) ports.AppointmentCard {
	techName := a.EmbeddedTechnicianName()
	if techName == "" && a.NailTechID != nil {
		if t, ok := techByID[*a.NailTechID]; ok {
			techName = t.Name
		}
	}

	card := ports.AppointmentCard{
		ID:        a.ID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Completed: a.Completed,
	}

	if !role.CanManage() {
		// Viewers see only that the slot is taken and by which technician.
		card.PrimaryLine = techName
		if card.PrimaryLine == "" {
			card.PrimaryLine = viewerPlaceholder
		}
		return card
	}

	names := a.EmbeddedServiceNames()
	if names == nil {
		for _, id := range a.ServiceIDs {
			if svc, ok := svcByID[id]; ok {
				names = append(names, svc.Name)
			}
		}
	}

	card.PrimaryLine = a.DisplayClientName()
	card.SecondaryLine = strings.Join(names, ", ")
	if techName != "" {
		if card.SecondaryLine != "" {
			card.SecondaryLine += " • " + techName
		} else {
			card.SecondaryLine = techName
		}
	}
	card.CanEdit = true
	card.CanToggle = true
	card.CanDelete = role.CanDelete()
	return card
}
