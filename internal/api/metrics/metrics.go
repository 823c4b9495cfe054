// Package metrics defines and registers all custom Prometheus metrics for
// the GearGuard maintenance API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the router
// exposes them on /metrics via echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gearguard"

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsCreatedTotal counts newly created maintenance requests.
// Label:
//   - maintenance_type: "Corrective" or "Preventive"
var RequestsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of maintenance requests created, by maintenance type.",
	},
	[]string{"maintenance_type"},
)

// StatusTransitionsTotal counts applied status transitions.
// Labels:
//   - from_status, to_status: the edge that was taken (e.g. "New" → "In Progress")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of request status transitions applied.",
	},
	[]string{"from_status", "to_status"},
)

// AuthzDenialsTotal counts permission denials surfaced to callers.
// Label:
//   - action: the denied action (e.g. "update", "self_assign", "delete")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by attempted action.",
	},
	[]string{"action"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsSentTotal counts notifications delivered by the dispatcher.
// Label:
//   - kind: "assigned", "completed", or "overdue"
var NotificationsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications successfully delivered.",
	},
	[]string{"kind"},
)

// NotificationsFailedTotal counts notification deliveries that failed.
// Failures are logged and swallowed; they never fail the triggering mutation.
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification deliveries that failed.",
	},
	[]string{"kind"},
)

// NotificationQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Equipment metrics ─────────────────────────────────────────────────────────

// EquipmentScrappedTotal counts equipment retired via the scrap flow.
var EquipmentScrappedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "equipment_scrapped_total",
		Help:      "Total number of equipment units marked as scrapped.",
	},
)
