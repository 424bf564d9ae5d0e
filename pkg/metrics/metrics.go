package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GeneratorRequests counts calls to the task generator by outcome
// (ok | error).
var GeneratorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "studyplan_generator_requests_total",
	Help: "Task generator calls by outcome.",
}, []string{"outcome"})

// SyncFallbacks counts mutations that fell back to the local cache after
// a remote store failure, by operation (create | update | delete | toggle).
var SyncFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "studyplan_sync_fallback_total",
	Help: "Mutations applied to the local cache after a remote failure.",
}, []string{"op"})

// ReconcileRuns counts local/remote reconciliation passes.
var ReconcileRuns = promauto.NewCounter(prometheus.CounterOpts{
	Name: "studyplan_reconcile_runs_total",
	Help: "Local/remote planner reconciliation passes.",
})
