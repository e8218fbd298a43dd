// Package metrics defines and registers all custom Prometheus metrics for
// the salon front-desk API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "frontdesk"

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentsSavedTotal counts successful create/update submissions.
// Label:
//   - action: "create" or "update"
var AppointmentsSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_saved_total",
		Help:      "Total number of appointments successfully created or updated.",
	},
	[]string{"action"},
)

// AppointmentsDeletedTotal counts confirmed, successful deletions.
var AppointmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_deleted_total",
		Help:      "Total number of appointments deleted.",
	},
)

// CompletionTogglesTotal counts completion-flag changes applied remotely.
// Label:
//   - completed: "true" or "false" (the requested flag)
var CompletionTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "completion_toggles_total",
		Help:      "Total number of completion flag changes, by requested value.",
	},
	[]string{"completed"},
)

// ConfirmationGateTotal counts decisions of the short-appointment soft
// guard (duration <= 60 minutes with more than 3 services).
// Label:
//   - result: "blocked" (submission held for confirmation) or "overridden"
//     (resubmitted with confirm=true)
var ConfirmationGateTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirmation_gate_total",
		Help:      "Total number of confirmation-gate decisions, by result.",
	},
	[]string{"result"},
)

// ── Roster metrics ────────────────────────────────────────────────────────────

// RosterCacheTotal counts roster cache lookups.
// Label:
//   - result: "hit" or "miss"
var RosterCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_cache_total",
		Help:      "Total number of roster cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamErrorsTotal counts failed calls to the remote persistence API.
// Label:
//   - operation: logical remote operation (e.g. "list_appointments")
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of failed remote persistence API calls, by operation.",
	},
	[]string{"operation"},
)
