package dto

// SchedulerResponse is returned by the reminder job trigger.
type SchedulerResponse struct {
	Success       bool   `json:"success"`
	RemindersSent int    `json:"reminders_sent"`
	Error         string `json:"error,omitempty"`
}

// RetentionResponse is returned by the retention job trigger.
type RetentionResponse struct {
	Success bool   `json:"success"`
	Deleted int64  `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// DispatchResponse is returned by the dispatch endpoint.
type DispatchResponse struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notification_id"`
	Error          string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
