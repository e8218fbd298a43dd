package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/getnaildla/salon-frontdesk/internal/api/metrics"
	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

// Soft-guard thresholds for the data-entry heuristic: a submission booking
// more than manyServicesThreshold services into at most
// shortAppointmentMinutes is held for an explicit confirmation. These are
// not a business rule; the user may override.
const (
	shortAppointmentMinutes = 60
	manyServicesThreshold   = 3
)

// ScheduleService implements the appointment-scheduling workflow: field
// validation, technician-scoped service filtering, the short-appointment
// confirmation heuristic, and the write-through to the remote API with the
// local collection reconciled only after a confirmed remote result.
type ScheduleService struct {
	repo   ports.SalonRepository
	roster *RosterService
	store  *AppointmentStore
	log    zerolog.Logger
}

func NewScheduleService(repo ports.SalonRepository, roster *RosterService, store *AppointmentStore, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, roster: roster, store: store, log: log}
}

func (s *ScheduleService) Create(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
	payload, err := s.buildPayload(ctx, in)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateAppointment(ctx, *payload)
	if err != nil {
		s.log.Error().Err(err).Str("client", in.ClientName).Msg("failed to create appointment")
		return nil, err
	}

	s.store.Upsert(*created)
	metrics.AppointmentsSavedTotal.WithLabelValues("create").Inc()
	s.log.Info().Int64("appointment_id", created.ID).Str("date", created.Date).Msg("appointment created")
	return created, nil
}

func (s *ScheduleService) Update(ctx context.Context, id int64, in ports.ScheduleInput) (*domain.Appointment, error) {
	payload, err := s.buildPayload(ctx, in)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateAppointment(ctx, id, *payload)
	if err != nil {
		s.log.Error().Err(err).Int64("appointment_id", id).Msg("failed to update appointment")
		return nil, err
	}

	s.store.Upsert(*updated)
	metrics.AppointmentsSavedTotal.WithLabelValues("update").Inc()
	s.log.Info().Int64("appointment_id", updated.ID).Str("date", updated.Date).Msg("appointment updated")
	return updated, nil
}

// Delete is destructive, so it is gated behind an explicit confirmation.
// Unconfirmed calls issue no remote request and leave the collection
// unchanged.
func (s *ScheduleService) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return fmt.Errorf("%w: deleting an appointment must be confirmed", domain.ErrConfirmationRequired)
	}

	if err := s.repo.DeleteAppointment(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("appointment_id", id).Msg("failed to delete appointment")
		return err
	}

	s.store.Remove(id)
	metrics.AppointmentsDeletedTotal.Inc()
	s.log.Info().Int64("appointment_id", id).Msg("appointment deleted")
	return nil
}

// SetCompleted flips the completion flag through the dedicated remote call.
// The merge is not optimistic: it happens only after remote confirmation,
// and the remote response body, when present, wins over the requested flag.
func (s *ScheduleService) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Appointment, error) {
	remote, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		s.log.Error().Err(err).Int64("appointment_id", id).Msg("failed to toggle completion")
		return nil, err
	}

	merged, ok := s.store.ApplyCompletion(id, remote, completed)
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	metrics.CompletionTogglesTotal.WithLabelValues(strconv.FormatBool(completed)).Inc()
	return &merged, nil
}

// Options returns the scheduling form metadata: the technician roster and
// the offerable services grouped by category. With a technician selected
// the offerable set narrows to that technician's qualification set; a
// technician with no qualifications (or an unknown id) offers nothing.
func (s *ScheduleService) Options(ctx context.Context, nailTechID *int64) (*ports.ScheduleOptions, error) {
	techs, err := s.roster.Technicians(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.roster.Services(ctx)
	if err != nil {
		return nil, err
	}

	if nailTechID != nil {
		allowed := qualificationSet(techs, *nailTechID)
		filtered := make([]domain.Service, 0, len(services))
		for _, svc := range services {
			if _, ok := allowed[svc.ID]; ok {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	return &ports.ScheduleOptions{
		Technicians: techs,
		Groups:      groupByCategory(services),
	}, nil
}

// buildPayload runs the submission rules in order: required fields,
// technician-scoped service filtering, the non-empty service set, and the
// duration heuristic. It returns the coerced wire payload, or an error that
// guarantees no remote call was issued.
func (s *ScheduleService) buildPayload(ctx context.Context, in ports.ScheduleInput) (*ports.AppointmentPayload, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, fmt.Errorf("%w: client name, date, start time and end time are required", domain.ErrValidation)
	}

	serviceIDs := in.ServiceIDs
	if in.NailTechID != nil {
		techs, err := s.roster.Technicians(ctx)
		if err != nil {
			return nil, err
		}
		// A submission must never reference a service the assigned
		// technician cannot perform: anything outside the qualification set
		// is silently dropped, not rejected.
		allowed := qualificationSet(techs, *in.NailTechID)
		kept := make([]int64, 0, len(serviceIDs))
		for _, id := range serviceIDs {
			if _, ok := allowed[id]; ok {
				kept = append(kept, id)
			}
		}
		serviceIDs = kept
	}

	if len(serviceIDs) == 0 {
		return nil, fmt.Errorf("%w: select at least one service", domain.ErrValidation)
	}

	if minutes, ok := minutesBetween(in.StartTime, in.EndTime); ok &&
		minutes <= shortAppointmentMinutes && len(serviceIDs) > manyServicesThreshold {
		if !in.Confirm {
			metrics.ConfirmationGateTotal.WithLabelValues("blocked").Inc()
			return nil, fmt.Errorf("%w: several services selected for a short appointment, is the end time correct?", domain.ErrConfirmationRequired)
		}
		metrics.ConfirmationGateTotal.WithLabelValues("overridden").Inc()
	}

	return &ports.AppointmentPayload{
		ClientName:  name,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		NailTechID:  in.NailTechID,
		ServiceIDs:  serviceIDs,
	}, nil
}

func qualificationSet(techs []domain.Technician, nailTechID int64) map[int64]struct{} {
	for _, t := range techs {
		if t.ID == nailTechID {
			return t.QualifiedServiceIDs()
		}
	}
	return nil
}

func groupByCategory(services []domain.Service) []ports.ServiceGroup {
	var groups []ports.ServiceGroup
	index := make(map[string]int)
	for _, svc := range services {
		cat := svc.CategoryOrDefault()
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, ports.ServiceGroup{Category: cat})
		}
		groups[i].Services = append(groups[i].Services, svc)
	}
	return groups
}

// minutesBetween computes end-start in minutes for HH:MM inputs. It reports
// ok=false for unparsable times or a negative span; the duration check is a
// heuristic, never a hard rejection.
func minutesBetween(start, end string) (int, bool) {
	s, okS := parseMinutes(start)
	e, okE := parseMinutes(end)
	if !okS || !okE {
		return 0, false
	}
	d := e - s
	if d < 0 {
		return 0, false
	}
	return d, true
}

func parseMinutes(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
