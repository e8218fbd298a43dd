package service

import (
	"time"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// AvailableTechnicians returns the technicians whose stored availability
// list contains date's weekday name, preserving the input order. It is a
// pure function; technicians with malformed availability data are simply
// excluded.
func AvailableTechnicians(date time.Time, techs []domain.Technician) []domain.Technician {
	weekday := domain.WeekdayName(date)
	var available []domain.Technician
	for _, t := range techs {
		if t.WorksOn(weekday) {
			available = append(available, t)
		}
	}
	return available
}
