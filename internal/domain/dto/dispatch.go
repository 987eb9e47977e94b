package dto

// DispatchRequest carries everything the dispatcher needs to render and
// deliver one notification email. Event fields are optional; when EventTitle
// is empty the rendered email has no event summary card.
type DispatchRequest struct {
	NotificationID   string `json:"notification_id" binding:"required"`
	UserEmail        string `json:"user_email" binding:"required,email"`
	UserName         string `json:"user_name"`
	NotificationType string `json:"notification_type" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Message          string `json:"message" binding:"required"`
	EventTitle       string `json:"event_title"`
	EventDate        string `json:"event_date"`
	EventTime        string `json:"event_time"`
	EventLocation    string `json:"event_location"`
}
