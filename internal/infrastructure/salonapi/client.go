// Package salonapi implements ports.SalonRepository against the remote
// persistence REST API that owns all salon data.
package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/getnaildla/salon-frontdesk/internal/api/metrics"
	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// Ping issues a HEAD request against the services collection: reachability
// only, no body transferred.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodHead, "/api/services", nil, nil)
}

func (c *Client) ListTechnicians(ctx context.Context) ([]domain.Technician, error) {
	var techs []domain.Technician
	if err := c.do(ctx, "list_technicians", http.MethodGet, "/api/nailtechs", nil, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (c *Client) ListServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := c.do(ctx, "list_services", http.MethodGet, "/api/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := c.do(ctx, "list_appointments", http.MethodGet, "/api/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) CreateAppointment(ctx context.Context, p ports.AppointmentPayload) (*domain.Appointment, error) {
	var created domain.Appointment
	if err := c.do(ctx, "create_appointment", http.MethodPost, "/api/appointments", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id int64, p ports.AppointmentPayload) (*domain.Appointment, error) {
	var updated domain.Appointment
	path := fmt.Sprintf("/api/appointments/%d", id)
	if err := c.do(ctx, "update_appointment", http.MethodPut, path, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/appointments/%d", id)
	return c.do(ctx, "delete_appointment", http.MethodDelete, path, nil, nil)
}

func (c *Client) SetCompleted(ctx context.Context, id int64, completed bool) (*domain.Appointment, error) {
	path := fmt.Sprintf("/api/appointments/%d/complete", id)
	body := map[string]bool{"completed": completed}

	// The response body is optional here: some deployments answer 204.
	// A nil result tells the caller to fall back to the requested flag.
	var updated *domain.Appointment
	if err := c.do(ctx, "set_completed", http.MethodPut, path, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// do performs one remote call. Every request carries an X-Request-ID for
// correlation with the upstream's logs. Decoding into out is skipped when
// the response body is empty.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("salonapi: encode %s: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("salonapi: build %s: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(operation).Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrAppointmentNotFound
	}
	if resp.StatusCode >= 400 {
		metrics.UpstreamErrorsTotal.WithLabelValues(operation).Inc()
		c.log.Error().Str("operation", operation).Int("status", resp.StatusCode).Msg("remote API rejected request")
		return fmt.Errorf("%w: %s: status %d", domain.ErrUpstream, operation, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(operation).Inc()
		return fmt.Errorf("%w: %s: read body: %v", domain.ErrUpstream, operation, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues(operation).Inc()
		return fmt.Errorf("%w: %s: decode body: %v", domain.ErrUpstream, operation, err)
	}
	return nil
}
