package dto

import "time"

type CreateEventRequest struct {
	OrganizerID string    `json:"organizer_id" binding:"required,uuid"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	Categories  []string  `json:"categories"`
}

type UpdateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	Categories  []string   `json:"categories"`
}

type RegisterAttendeeRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type UpdatePreferencesRequest struct {
	RemindersEnabled     *bool   `json:"reminders_enabled"`
	ConfirmationsEnabled *bool   `json:"confirmations_enabled"`
	UpdatesEnabled       *bool   `json:"updates_enabled"`
	ReminderLeadTimes    []int64 `json:"reminder_lead_times"`
}
