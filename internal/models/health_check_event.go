package models

// HealthCheckCreated is the operation name of a newly appended record.
const HealthCheckCreated = "health_check.created"

// HealthCheckEvent is published to Kafka after a health check is stored.
type HealthCheckEvent struct {
	EventID       string `json:"event_id"`        // Unique event id, also the message key
	HealthCheckID int64  `json:"health_check_id"` // Stored record id
	UserID        int64  `json:"user_id"`         // Owner of the record
	Operation     string `json:"operation"`       // Always HealthCheckCreated for now
	Timestamp     int64  `json:"timestamp"`       // Unix seconds
}
