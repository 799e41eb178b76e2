// Package metrics defines and registers all custom Prometheus metrics for
// the products service. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "products"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "validation_failed", "username_taken", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// AuthAttemptsTotal counts per-request credential verifications performed by
// the Basic-auth middleware.
// Label:
//   - result: "ok", "invalid", or "throttled"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of credential verifications, by result.",
	},
	[]string{"result"},
)

// ProductWritesTotal counts product mutations.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "ok", "not_found", "conflict", or "error"
var ProductWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_writes_total",
		Help:      "Total number of product create/update/delete operations, by result.",
	},
	[]string{"op", "result"},
)

// RegistrationDuration measures the registration use case end to end. The
// time is dominated by bcrypt hashing, so it is the signal for tuning the
// cost factor.
var RegistrationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "registration_duration_seconds",
		Help:      "Duration of the registration use case.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
