package observability

import (
	"context"
	"sync"
	"time"
)

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// HealthCheck is a function that checks the health of a component.
type HealthCheck func(ctx context.Context) HealthResult

// HealthResult is the outcome of a health check.
type HealthResult struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
	Latency string       `json:"latency,omitempty"`
}

// HealthRegistry holds named health checks for the service.
type HealthRegistry struct {
	mu     sync.RWMutex
	checks map[string]HealthCheck
}

// NewHealthRegistry creates a new health registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{
		checks: make(map[string]HealthCheck),
	}
}

// Register adds a named health check.
func (r *HealthRegistry) Register(name string, check HealthCheck) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = check
}

// RunAll executes all registered checks and returns their results.
// The overall status is down if any check is down, degraded if any
// check is degraded, and up otherwise.
func (r *HealthRegistry) RunAll(ctx context.Context) (HealthStatus, map[string]HealthResult) {
	r.mu.RLock()
	checks := make(map[string]HealthCheck, len(r.checks))
	for name, check := range r.checks {
		checks[name] = check
	}
	r.mu.RUnlock()

	results := make(map[string]HealthResult, len(checks))
	overall := HealthStatusUp

	for name, check := range checks {
		start := time.Now()
		result := check(ctx)
		result.Latency = time.Since(start).String()
		results[name] = result

		switch result.Status {
		case HealthStatusDown:
			overall = HealthStatusDown
		case HealthStatusDegraded:
			if overall == HealthStatusUp {
				overall = HealthStatusDegraded
			}
		}
	}

	return overall, results
}

// PingCheck wraps anything with a Ping(ctx) error method as a HealthCheck.
func PingCheck(pinger interface {
	Ping(ctx context.Context) error
}) HealthCheck {
	return func(ctx context.Context) HealthResult {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := pinger.Ping(checkCtx); err != nil {
			return HealthResult{
				Status:  HealthStatusDown,
				Message: err.Error(),
			}
		}
		return HealthResult{Status: HealthStatusUp}
	}
}
