// Package metrics defines and registers the custom Prometheus metrics of the
// accounts API. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsCreatedTotal counts newly created accounts.
// Label:
//   - role: the resolved role name (e.g. "Player")
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// AccountOperationErrorsTotal counts failed account store operations.
// Labels:
//   - operation: create, get, list, update, delete
//   - reason: missing_fields, invalid_role, duplicate_email, no_updatable_fields,
//     not_found, idempotency_in_progress, idempotency_key_reused, timeout,
//     cancelled, hash_failure, store_failure
var AccountOperationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operation_errors_total",
		Help:      "Total number of account operations that failed, by operation and reason.",
	},
	[]string{"operation", "reason"},
)

// PasswordHashDuration measures how long a single bcrypt hash takes,
// including time spent waiting for a hashing slot.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing including queueing for a hashing slot.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "written", "failed" (store error) or "dropped" (queue full)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of account audit events, labelled by outcome.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each audit worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Idempotency metrics ───────────────────────────────────────────────────────

// IdempotencyClaimsTotal counts Idempotency-Key claims on account creation.
// Label:
//   - result: "hit" (replayed), "miss" (key reserved), "in_progress",
//     "key_reused" or "error" (store unavailable)
var IdempotencyClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_claims_total",
		Help:      "Total number of idempotency key claims on account creation, by result.",
	},
	[]string{"result"},
)
