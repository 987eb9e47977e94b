package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/eventfindr/notifier/internal/domain/entity"
)

// Rendered is a fully rendered email. HTML and Text carry equivalent
// content; the recipient's client picks whichever it can display.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Content is the input to Render. Event fields are optional; the event
// summary card is only included when EventTitle is set.
type Content struct {
	Type          entity.NotificationType
	Title         string
	Message       string
	UserName      string
	EventTitle    string
	EventDate     string
	EventTime     string
	EventLocation string
}

type visual struct {
	icon  string
	color string
}

var visuals = map[entity.NotificationType]visual{
	entity.NotificationTypeReminder:     {"🔔", "#4F46E5"},
	entity.NotificationTypeConfirmation: {"✅", "#059669"},
	entity.NotificationTypeUpdate:       {"📝", "#D97706"},
	entity.NotificationTypeCancellation: {"❌", "#DC2626"},
}

var defaultVisual = visual{"📣", "#6B7280"}

// Render builds the subject, HTML body and plain-text body for a
// notification email. Unrecognized notification types get the default
// visual treatment.
func Render(c Content) Rendered {
	v, ok := visuals[c.Type]
	if !ok {
		v = defaultVisual
	}

	greeting := "Hi there,"
	if c.UserName != "" {
		greeting = fmt.Sprintf("Hi %s,", c.UserName)
	}

	var eventCard string
	if c.EventTitle != "" {
		eventCard = fmt.Sprintf(`
			<div style="margin: 20px 0; padding: 16px; border-left: 4px solid %s; background-color: #f9fafb; border-radius: 4px;">
				<p style="margin: 0 0 8px; font-weight: bold; color: #111827;">%s</p>
				<p style="margin: 0; color: #4b5563;">📅 %s at %s</p>
				<p style="margin: 4px 0 0; color: #4b5563;">📍 %s</p>
			</div>`,
			v.color,
			html.EscapeString(c.EventTitle),
			html.EscapeString(c.EventDate),
			html.EscapeString(c.EventTime),
			html.EscapeString(c.EventLocation),
		)
	}

	htmlBody := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #ffffff;">
			<h2 style="color: %s; text-align: center;">%s %s</h2>
			<p style="color: #374151;">%s</p>
			<p style="color: #374151;">%s</p>%s
			<p style="color: #9ca3af; font-size: 12px; margin-top: 24px;">You are receiving this email because of your notification preferences. You can change them in your account settings.</p>
		</div>`,
		v.color,
		v.icon,
		html.EscapeString(c.Title),
		html.EscapeString(greeting),
		html.EscapeString(c.Message),
		eventCard,
	)

	var text strings.Builder
	text.WriteString(fmt.Sprintf("%s %s\n\n", v.icon, c.Title))
	text.WriteString(greeting + "\n\n")
	text.WriteString(c.Message + "\n")
	if c.EventTitle != "" {
		text.WriteString(fmt.Sprintf("\n%s\n%s at %s\n%s\n", c.EventTitle, c.EventDate, c.EventTime, c.EventLocation))
	}
	text.WriteString("\nYou are receiving this email because of your notification preferences.\n")

	return Rendered{
		Subject: fmt.Sprintf("%s %s", v.icon, c.Title),
		HTML:    htmlBody,
		Text:    text.String(),
	}
}
