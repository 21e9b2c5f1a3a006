package services

import "context"

// NotificationTemplate names a canned status email.
type NotificationTemplate string

const (
	TemplateRequestApproved   NotificationTemplate = "request_approved"
	TemplateRequestShipped    NotificationTemplate = "request_shipped"
	TemplateRequestRejected   NotificationTemplate = "request_rejected"
	TemplateDonationReceived  NotificationTemplate = "donation_received"
	TemplateDonationProcessed NotificationTemplate = "donation_processed"
	TemplateDonationCancelled NotificationTemplate = "donation_cancelled"
)

// Notification is one outbound status email.
type Notification struct {
	To          string
	Name        string
	ReferenceID string
	Template    NotificationTemplate
}

// Notifier sends status notifications. Services call it fire-and-forget:
// delivery failures are logged, never surfaced to the API caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
