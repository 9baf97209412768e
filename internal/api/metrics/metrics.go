// Package metrics defines and registers all custom Prometheus metrics for the
// incident reporting API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventsapp"

// SignInsTotal counts sign-in attempts.
// Labels:
//   - result: "ok" or "failed"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// NotifysCreatedTotal counts incident reports filed.
// Label:
//   - event: catalog event name (e.g. "Storm")
var NotifysCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifys_created_total",
		Help:      "Total number of incident reports created, by catalog event.",
	},
	[]string{"event"},
)

// StatusUpdatesTotal counts report status transitions applied.
// Label:
//   - status: the terminal status applied ("confirmed" or "cancelled")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of report status updates applied, by target status.",
	},
	[]string{"status"},
)
