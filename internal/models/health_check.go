package models

type HealthCheck struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Timestamp float64 `json:"timestamp"`
}
