package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// HealthCheck reports whether a dependency of the resolver is usable
type HealthCheck func(ctx context.Context) error

type namedCheck struct {
	name  string
	check HealthCheck
}

func newHealthHandler(checks []namedCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := &model.HealthStatus{
			Status:  "healthy",
			Service: "shipnote",
			Version: types.Version,
		}

		code := http.StatusOK
		for _, c := range checks {
			result := model.HealthCheck{Name: c.name, OK: true}
			if err := c.check(ctx); err != nil {
				ctxlog.From(ctx).Warn("health check failed", "check", c.name, "error", err)
				result.OK = false
				result.Error = err.Error()
				status.Status = "degraded"
				code = http.StatusServiceUnavailable
			}
			status.Checks = append(status.Checks, result)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			ctxlog.From(ctx).Error("Failed to encode health response", "error", err)
		}
	}
}
