package domain

import "errors"

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrValidation = errors.New("validation failed")
var ErrConfirmationRequired = errors.New("confirmation required")
var ErrForbidden = errors.New("access forbidden")
var ErrUpstream = errors.New("upstream request failed")

// Person carries the resolved client object the remote API may embed in an
// appointment response.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Appointment is the core aggregate. Date is a calendar day (YYYY-MM-DD) and
// the times are same-day times of day (HH:MM); none of them are instants, so
// no timezone conversion is ever applied to them.
//
// The remote API returns both flat fields (clientName, nailTechId,
// serviceIds) and, optionally, resolved embedded objects (client, nailTech,
// services). Embedded objects take precedence when present.
type Appointment struct {
	ID          int64       `json:"id"`
	ClientName  string      `json:"clientName"`
	ClientEmail string      `json:"clientEmail,omitempty"`
	ClientPhone string      `json:"clientPhone,omitempty"`
	Date        string      `json:"date"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	NailTechID  *int64      `json:"nailTechId"`
	ServiceIDs  []int64     `json:"serviceIds,omitempty"`
	Completed   bool        `json:"completed"`
	Client      *Person     `json:"client,omitempty"`
	NailTech    *Technician `json:"nailTech,omitempty"`
	Services    []Service   `json:"services,omitempty"`
}

// DisplayClientName prefers the embedded client object over the flat field.
func (a Appointment) DisplayClientName() string {
	if a.Client != nil && a.Client.Name != "" {
		return a.Client.Name
	}
	return a.ClientName
}

// EmbeddedTechnicianName returns the embedded technician's name, or "" when
// the response carried only the flat nailTechId (or no technician at all).
func (a Appointment) EmbeddedTechnicianName() string {
	if a.NailTech != nil {
		return a.NailTech.Name
	}
	return ""
}

// EmbeddedServiceNames returns the names of the embedded service objects in
// their stored order. Empty when the response carried only flat serviceIds.
func (a Appointment) EmbeddedServiceNames() []string {
	if len(a.Services) == 0 {
		return nil
	}
	names := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		names = append(names, s.Name)
	}
	return names
}
