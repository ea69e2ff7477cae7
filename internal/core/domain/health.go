package domain

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// HealthStatus reports service liveness together with the backing store state.
type HealthStatus struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Error  string `json:"error,omitempty"`
}

func (h *HealthStatus) Healthy() bool {
	return h.Status == HealthStatusOK
}
