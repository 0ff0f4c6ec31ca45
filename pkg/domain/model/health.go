package model

// HealthStatus is the body of the health endpoint. Status is "degraded"
// when any readiness check fails.
type HealthStatus struct {
	Status  string        `json:"status"`
	Service string        `json:"service"`
	Version string        `json:"version"`
	Checks  []HealthCheck `json:"checks,omitempty"`
}

// HealthCheck is the result of one named readiness check
type HealthCheck struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
