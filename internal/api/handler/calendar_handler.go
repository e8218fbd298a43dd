package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

// CalendarHandler serves the rendered week view and the manual refresh.
type CalendarHandler struct {
	service ports.CalendarService
}

func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// Week handles GET /v1/calendar/week?date=YYYY-MM-DD. The window is the
// Sunday-anchored week containing the given date, defaulting to today.
//
// @Summary      Weekly calendar view
// @Tags         calendar
// @Produce      json
// @Param        date  query     string  false  "Any date inside the wanted week (YYYY-MM-DD)"
// @Success      200   {object}  weekViewResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/calendar/week [get]
func (h *CalendarHandler) Week(c echo.Context) error {
	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(domain.DayKeyFormat, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		date = parsed
	}

	view, err := h.service.WeekView(c.Request().Context(), ports.WeekViewInput{
		Date: date,
		Role: ctxRole(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWeekViewResponse(view))
}

// Refresh handles POST /v1/refresh: reload technicians, services, and
// appointments from the salon API.
//
// @Summary      Reload roster and appointment data
// @Tags         calendar
// @Security     BearerAuth
// @Success      204
// @Router       /v1/refresh [post]
func (h *CalendarHandler) Refresh(c echo.Context) error {
	if err := h.service.Refresh(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
