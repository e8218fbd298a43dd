package service

import (
	"sync"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// AppointmentStore is the in-memory mirror of the remote appointment
// collection. It preserves the server-side ordering (sorted by date) and is
// the only component that mutates the collection, always after a confirmed
// remote result. Handlers run concurrently, so access is mutex-guarded.
type AppointmentStore struct {
	mu           sync.RWMutex
	appointments []domain.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{}
}

// ReplaceAll swaps in a freshly fetched collection, trusting its order.
func (s *AppointmentStore) ReplaceAll(appointments []domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = make([]domain.Appointment, len(appointments))
	copy(s.appointments, appointments)
}

// DayBucket returns the appointments whose date field equals the day key
// exactly. Dates are calendar days, not instants; no timezone conversion.
func (s *AppointmentStore) DayBucket(dayKey string) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bucket []domain.Appointment
	for _, a := range s.appointments {
		if a.Date == dayKey {
			bucket = append(bucket, a)
		}
	}
	return bucket
}

// Upsert replaces the appointment with the same identity in place, keeping
// the collection order; an unknown identity is appended (fresh create).
func (s *AppointmentStore) Upsert(a domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == a.ID {
			s.appointments[i] = a
			return
		}
	}
	s.appointments = append(s.appointments, a)
}

// Remove drops the appointment by identity. Removing an unknown identity is
// a no-op.
func (s *AppointmentStore) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return
		}
	}
}

// ApplyCompletion merges a completion-toggle result. The remote response,
// when present, is authoritative over the locally flipped flag; with an
// empty remote response only the flag is set to the requested value.
func (s *AppointmentStore) ApplyCompletion(id int64, remote *domain.Appointment, completed bool) (domain.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		if remote != nil {
			s.appointments[i] = *remote
		} else {
			s.appointments[i].Completed = completed
		}
		return s.appointments[i], true
	}
	if remote != nil {
		s.appointments = append(s.appointments, *remote)
		return *remote, true
	}
	return domain.Appointment{}, false
}

// Len reports the current collection size.
func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}
