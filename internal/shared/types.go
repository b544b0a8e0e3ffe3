package shared

// Asynq queue names; priorities are set in cmd/worker/server.go
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)
