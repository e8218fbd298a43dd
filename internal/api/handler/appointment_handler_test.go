package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

type stubScheduleService struct {
	createFn       func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error)
	updateFn       func(ctx context.Context, id int64, in ports.ScheduleInput) (*domain.Appointment, error)
	deleteFn       func(ctx context.Context, id int64, confirm bool) error
	setCompletedFn func(ctx context.Context, id int64, completed bool) (*domain.Appointment, error)
	optionsFn      func(ctx context.Context, nailTechID *int64) (*ports.ScheduleOptions, error)
}

func (s *stubScheduleService) Create(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
	return s.createFn(ctx, in)
}

func (s *stubScheduleService) Update(ctx context.Context, id int64, in ports.ScheduleInput) (*domain.Appointment, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubScheduleService) Delete(ctx context.Context, id int64, confirm bool) error {
	return s.deleteFn(ctx, id, confirm)
}

func (s *stubScheduleService) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Appointment, error) {
	return s.setCompletedFn(ctx, id, completed)
}

func (s *stubScheduleService) Options(ctx context.Context, nailTechID *int64) (*ports.ScheduleOptions, error) {
	return s.optionsFn(ctx, nailTechID)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAppointmentHandler_Create_Success(t *testing.T) {
	stub := &stubScheduleService{
		createFn: func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
			if in.ClientName != "Jane Doe" || in.StartTime != "10:00" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Appointment{ID: 7, ClientName: in.ClientName, Date: in.Date, StartTime: in.StartTime, EndTime: in.EndTime, ServiceIDs: in.ServiceIDs}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"clientName":"Jane Doe","date":"2024-03-12","startTime":"10:00","endTime":"11:30","serviceIds":[1,2]}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/appointments", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["clientName"] != "Jane Doe" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAppointmentHandler_Create_EmbeddedObjectsInResponse(t *testing.T) {
	stub := &stubScheduleService{
		createFn: func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
			// The upstream resolved the references and dropped the flat fields.
			return &domain.Appointment{
				ID:        7,
				Date:      in.Date,
				StartTime: in.StartTime,
				EndTime:   in.EndTime,
				Client:    &domain.Person{Name: "Jane Doe"},
				NailTech:  &domain.Technician{ID: 3, Name: "Ana"},
				Services:  []domain.Service{{ID: 1, Name: "Gel Manicure"}, {ID: 2, Name: "Pedicure"}},
			}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"clientName":"Jane Doe","date":"2024-03-12","startTime":"10:00","endTime":"11:30","nailTechId":3,"serviceIds":[1,2]}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/appointments", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp appointmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ClientName != "Jane Doe" {
		t.Fatalf("expected embedded client name, got %q", resp.ClientName)
	}
	if len(resp.ServiceIDs) != 2 || resp.ServiceIDs[0] != 1 || resp.ServiceIDs[1] != 2 {
		t.Fatalf("expected embedded service ids, got %v", resp.ServiceIDs)
	}
	if resp.NailTechID == nil || *resp.NailTechID != 3 {
		t.Fatalf("expected embedded technician id, got %v", resp.NailTechID)
	}
}

func TestAppointmentHandler_Create_DefaultsDateToToday(t *testing.T) {
	var got ports.ScheduleInput
	stub := &stubScheduleService{
		createFn: func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
			got = in
			return &domain.Appointment{ID: 1, ClientName: in.ClientName, Date: in.Date}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"clientName":"Jane","startTime":"10:00","endTime":"11:00","serviceIds":[1]}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Date != domain.DayKey(time.Now()) {
		t.Fatalf("expected today, got %q", got.Date)
	}
}

func TestAppointmentHandler_Create_InvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `not-json`},
		{"missing client name", `{"startTime":"10:00","endTime":"11:00","serviceIds":[1]}`},
		{"no services", `{"clientName":"Jane","startTime":"10:00","endTime":"11:00","serviceIds":[]}`},
		{"bad time format", `{"clientName":"Jane","startTime":"10am","endTime":"11:00","serviceIds":[1]}`},
		{"bad email", `{"clientName":"Jane","clientEmail":"nope","startTime":"10:00","endTime":"11:00","serviceIds":[1]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubScheduleService{
				createFn: func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			handler := NewAppointmentHandler(stub)
			c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", tc.body)

			err := handler.Create(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestAppointmentHandler_Create_ConfirmationPassthrough(t *testing.T) {
	stub := &stubScheduleService{
		createFn: func(ctx context.Context, in ports.ScheduleInput) (*domain.Appointment, error) {
			return nil, domain.ErrConfirmationRequired
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"clientName":"Jane","startTime":"10:00","endTime":"10:30","serviceIds":[1,2,3,4]}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/appointments", body)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("expected confirmation error, got %v", err)
	}
}

func TestAppointmentHandler_Update_InvalidID(t *testing.T) {
	handler := NewAppointmentHandler(&stubScheduleService{})

	c, _ := newTestContext(t, http.MethodPut, "/v1/appointments/abc", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAppointmentHandler_Update_Success(t *testing.T) {
	stub := &stubScheduleService{
		updateFn: func(ctx context.Context, id int64, in ports.ScheduleInput) (*domain.Appointment, error) {
			if id != 42 {
				t.Fatalf("expected id 42, got %d", id)
			}
			return &domain.Appointment{ID: id, ClientName: in.ClientName, Date: in.Date}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := `{"clientName":"Jane","date":"2024-03-12","startTime":"10:00","endTime":"11:00","serviceIds":[1]}`
	c, rec := newTestContext(t, http.MethodPut, "/v1/appointments/42", body)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Delete_ConfirmFlag(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		confirm bool
	}{
		{"confirmed", "/v1/appointments/5?confirm=true", true},
		{"unconfirmed", "/v1/appointments/5", false},
		{"wrong value", "/v1/appointments/5?confirm=yes", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotConfirm bool
			stub := &stubScheduleService{
				deleteFn: func(ctx context.Context, id int64, confirm bool) error {
					gotConfirm = confirm
					return nil
				},
			}
			handler := NewAppointmentHandler(stub)

			c, rec := newTestContext(t, http.MethodDelete, tc.target, "")
			c.SetParamNames("id")
			c.SetParamValues("5")

			if err := handler.Delete(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if gotConfirm != tc.confirm {
				t.Fatalf("expected confirm=%v, got %v", tc.confirm, gotConfirm)
			}
			if rec.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d", rec.Code)
			}
		})
	}
}

func TestAppointmentHandler_Complete(t *testing.T) {
	stub := &stubScheduleService{
		setCompletedFn: func(ctx context.Context, id int64, completed bool) (*domain.Appointment, error) {
			if id != 9 || !completed {
				t.Fatalf("unexpected args: %d %v", id, completed)
			}
			return &domain.Appointment{ID: 9, ClientName: "Jane", Completed: true}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/appointments/9/complete", `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Complete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["completed"] != true {
		t.Fatalf("expected completed true, got %+v", resp)
	}
}

func TestAppointmentHandler_Options(t *testing.T) {
	stub := &stubScheduleService{
		optionsFn: func(ctx context.Context, nailTechID *int64) (*ports.ScheduleOptions, error) {
			if nailTechID == nil || *nailTechID != 3 {
				t.Fatalf("expected nailTechID 3, got %v", nailTechID)
			}
			return &ports.ScheduleOptions{
				Technicians: []domain.Technician{{ID: 3, Name: "Ana"}},
				Groups: []ports.ServiceGroup{
					{Category: "Manicure", Services: []domain.Service{{ID: 1, Name: "Gel Manicure", Price: 45}}},
				},
			}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/schedule/options?nailTechId=3", "")

	if err := handler.Options(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp scheduleOptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Technicians) != 1 || resp.Technicians[0].Name != "Ana" {
		t.Fatalf("unexpected technicians: %+v", resp.Technicians)
	}
	if len(resp.Groups) != 1 || resp.Groups[0].Category != "Manicure" {
		t.Fatalf("unexpected groups: %+v", resp.Groups)
	}
}

func TestAppointmentHandler_Options_InvalidTechID(t *testing.T) {
	handler := NewAppointmentHandler(&stubScheduleService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/schedule/options?nailTechId=abc", "")

	err := handler.Options(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
