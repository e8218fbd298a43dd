package handler

import "github.com/getnaildla/salon-frontdesk/internal/core/ports"

type appointmentCardResponse struct {
	ID            int64  `json:"id"`
	PrimaryLine   string `json:"primaryLine"`
	SecondaryLine string `json:"secondaryLine,omitempty"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Completed     bool   `json:"completed"`
	CanEdit       bool   `json:"canEdit"`
	CanDelete     bool   `json:"canDelete"`
	CanToggle     bool   `json:"canToggle"`
}

type dayCellResponse struct {
	Date                 string                     `json:"date"`
	DayNumber            int                        `json:"dayNumber"`
	Weekday              string                     `json:"weekday"`
	WeekdayShort         string                     `json:"weekdayShort"`
	AvailableTechnicians []technicianOptionResponse `json:"availableTechnicians"`
	Appointments         []appointmentCardResponse  `json:"appointments"`
}

type weekViewResponse struct {
	Start     string            `json:"start"`
	End       string            `json:"end"`
	Days      []dayCellResponse `json:"days"`
	CanCreate bool              `json:"canCreate"`
}

func toWeekViewResponse(view *ports.WeekView) weekViewResponse {
	resp := weekViewResponse{
		Start:     view.Start,
		End:       view.End,
		Days:      make([]dayCellResponse, 0, len(view.Days)),
		CanCreate: view.CanCreate,
	}
	for _, day := range view.Days {
		cell := dayCellResponse{
			Date:                 day.Date,
			DayNumber:            day.DayNumber,
			Weekday:              day.Weekday,
			WeekdayShort:         day.WeekdayShort,
			AvailableTechnicians: make([]technicianOptionResponse, 0, len(day.AvailableTechnicians)),
			Appointments:         make([]appointmentCardResponse, 0, len(day.Appointments)),
		}
		for _, t := range day.AvailableTechnicians {
			cell.AvailableTechnicians = append(cell.AvailableTechnicians, technicianOptionResponse{ID: t.ID, Name: t.Name})
		}
		for _, card := range day.Appointments {
			cell.Appointments = append(cell.Appointments, appointmentCardResponse{
				ID:            card.ID,
				PrimaryLine:   card.PrimaryLine,
				SecondaryLine: card.SecondaryLine,
				StartTime:     card.StartTime,
				EndTime:       card.EndTime,
				Completed:     card.Completed,
				CanEdit:       card.CanEdit,
				CanDelete:     card.CanDelete,
				CanToggle:     card.CanToggle,
			})
		}
		resp.Days = append(resp.Days, cell)
	}
	return resp
}
