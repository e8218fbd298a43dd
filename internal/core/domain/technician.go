package domain

import "encoding/json"

// Technician is a service provider with a working-day calendar and a set of
// services they are qualified to perform. Owned by the roster management
// system; read-mostly reference data here.
type Technician struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	AvailabilityJSON string    `json:"availabilityJson,omitempty"`
	Services         []Service `json:"services,omitempty"`
}

// Availability decodes the stored weekday-name list ("Monday".."Sunday").
// The serialized form is an opaque value at the storage boundary; malformed
// data decodes to nil, which simply means the technician is never available.
func (t Technician) Availability() []string {
	if t.AvailabilityJSON == "" {
		return nil
	}
	var days []string
	if err := json.Unmarshal([]byte(t.AvailabilityJSON), &days); err != nil {
		return nil
	}
	return days
}

// WorksOn reports whether the technician's availability list contains the
// given weekday name.
func (t Technician) WorksOn(weekday string) bool {
	for _, d := range t.Availability() {
		if d == weekday {
			return true
		}
	}
	return false
}

// QualifiedServiceIDs returns the set of service ids the technician may
// perform. A technician with no declared qualifications offers nothing.
func (t Technician) QualifiedServiceIDs() map[int64]struct{} {
	ids := make(map[int64]struct{}, len(t.Services))
	for _, s := range t.Services {
		ids[s.ID] = struct{}{}
	}
	return ids
}
