package health

import "time"

// Status captures the state of the service at a moment in time.
type Status struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Revision      string    `json:"revision"`
	Version       string    `json:"version"`
	UptimeSeconds int64     `json:"uptime_seconds"`
}
