package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

// AppointmentHandler handles the scheduling-workflow routes.
type AppointmentHandler struct {
	service ports.ScheduleService
}

func NewAppointmentHandler(service ports.ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments.
//
// @Summary      Schedule a new appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse  "confirmation required"
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	req, err := bindAppointment(c)
	if err != nil {
		return err
	}
	// A fresh form defaults to today; edits preserve their date as-is.
	if req.Date == "" {
		req.Date = domain.DayKey(time.Now())
	}

	created, err := h.service.Create(c.Request().Context(), toScheduleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAppointmentResponse(created))
}

// Update handles PUT /v1/appointments/:id.
//
// @Summary      Edit an existing appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Appointment id"
// @Param        body  body      appointmentRequest  true  "Appointment details"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse  "confirmation required"
// @Router       /v1/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	req, err := bindAppointment(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, toScheduleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(updated))
}

// Delete handles DELETE /v1/appointments/:id?confirm=true. Deleting is
// destructive; without confirm=true the request is answered with the
// confirmation challenge and nothing is issued upstream.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id       path   int     true   "Appointment id"
// @Param        confirm  query  bool    false  "Confirm the cancellation"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "confirmation required"
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	confirm := c.QueryParam("confirm") == "true"

	if err := h.service.Delete(c.Request().Context(), id, confirm); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete handles PUT /v1/appointments/:id/complete.
//
// @Summary      Set the completion flag
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Appointment id"
// @Param        body  body      completionRequest  true  "Desired flag"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/appointments/{id}/complete [put]
func (h *AppointmentHandler) Complete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req completionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	merged, err := h.service.SetCompleted(c.Request().Context(), id, req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(merged))
}

// Options handles GET /v1/schedule/options?nailTechId=N: the scheduling
// form metadata, with the offerable services narrowed to the selected
// technician's qualification set.
//
// @Summary      Scheduling form options
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        nailTechId  query     int  false  "Selected technician"
// @Success      200         {object}  scheduleOptionsResponse
// @Router       /v1/schedule/options [get]
func (h *AppointmentHandler) Options(c echo.Context) error {
	var nailTechID *int64
	if raw := c.QueryParam("nailTechId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid nailTechId")
		}
		nailTechID = &id
	}

	opts, err := h.service.Options(c.Request().Context(), nailTechID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleOptionsResponse(opts))
}

// --- helpers ---

func bindAppointment(c echo.Context) (*appointmentRequest, error) {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	return id, nil
}

func toScheduleInput(req *appointmentRequest) ports.ScheduleInput {
	return ports.ScheduleInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		NailTechID:  req.NailTechID,
		ServiceIDs:  req.ServiceIDs,
		Confirm:     req.Confirm,
	}
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	// The upstream may answer with only embedded objects resolved; those
	// take precedence over the flat fields, same as on the calendar path.
	serviceIDs := a.ServiceIDs
	if len(serviceIDs) == 0 && len(a.Services) > 0 {
		serviceIDs = make([]int64, 0, len(a.Services))
		for _, svc := range a.Services {
			serviceIDs = append(serviceIDs, svc.ID)
		}
	}
	nailTechID := a.NailTechID
	if nailTechID == nil && a.NailTech != nil {
		nailTechID = &a.NailTech.ID
	}

	return appointmentResponse{
		ID:          a.ID,
		ClientName:  a.DisplayClientName(),
		ClientEmail: a.ClientEmail,
		ClientPhone: a.ClientPhone,
		Date:        a.Date,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		NailTechID:  nailTechID,
		ServiceIDs:  serviceIDs,
		Completed:   a.Completed,
	}
}

func toScheduleOptionsResponse(opts *ports.ScheduleOptions) scheduleOptionsResponse {
	resp := scheduleOptionsResponse{
		Technicians: make([]technicianOptionResponse, 0, len(opts.Technicians)),
		Groups:      make([]serviceGroupResponse, 0, len(opts.Groups)),
	}
	for _, t := range opts.Technicians {
		resp.Technicians = append(resp.Technicians, technicianOptionResponse{ID: t.ID, Name: t.Name})
	}
	for _, g := range opts.Groups {
		group := serviceGroupResponse{Category: g.Category}
		for _, s := range g.Services {
			group.Services = append(group.Services, serviceOptionResponse{ID: s.ID, Name: s.Name, Price: s.Price})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp
}
