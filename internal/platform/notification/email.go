package notification

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	gomail "gopkg.in/gomail.v2"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/pkg/config"
)

// templateData is what every status email body can interpolate.
type templateData struct {
	Name        string
	ReferenceID string
	LookupURL   string
}

type emailContent struct {
	subject string
	body    *template.Template
}

func mustBody(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

var emailTemplates = map[portssvc.NotificationTemplate]emailContent{
	portssvc.TemplateRequestApproved: {
		subject: "Your shoe request was approved",
		body: mustBody("request_approved", `Hi {{.Name}},

Good news! Your shoe request {{.ReferenceID}} has been approved and is being prepared for shipment.

You can check its status any time at {{.LookupURL}}.

New Steps Project`),
	},
	portssvc.TemplateRequestShipped: {
		subject: "Your shoes are on the way",
		body: mustBody("request_shipped", `Hi {{.Name}},

Your shoe request {{.ReferenceID}} has shipped.

You can check its status any time at {{.LookupURL}}.

New Steps Project`),
	},
	portssvc.TemplateRequestRejected: {
		subject: "Update on your shoe request",
		body: mustBody("request_rejected", `Hi {{.Name}},

Unfortunately we were unable to fulfill your shoe request {{.ReferenceID}} at this time. Please feel free to submit a new request later; our inventory changes often.

New Steps Project`),
	},
	portssvc.TemplateDonationReceived: {
		subject: "We received your donation",
		body: mustBody("donation_received", `Hi {{.Name}},

Your donation {{.ReferenceID}} has arrived. Thank you for supporting young athletes!

You can check its status any time at {{.LookupURL}}.

New Steps Project`),
	},
	portssvc.TemplateDonationProcessed: {
		subject: "Your donation has been processed",
		body: mustBody("donation_processed", `Hi {{.Name}},

Your donation {{.ReferenceID}} has been processed and is now helping athletes in need. Thank you!

New Steps Project`),
	},
	portssvc.TemplateDonationCancelled: {
		subject: "Your donation was cancelled",
		body: mustBody("donation_cancelled", `Hi {{.Name}},

Your donation {{.ReferenceID}} has been cancelled. If this is unexpected, just reply to this email and we will sort it out.

New Steps Project`),
	},
}

// EmailNotifier delivers status emails over SMTP.
type EmailNotifier struct {
	dialer          *gomail.Dialer
	from            string
	frontendBaseURL string
}

var _ portssvc.Notifier = (*EmailNotifier)(nil)

// NewEmailNotifier creates an SMTP-backed notifier from config.
func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{
		dialer:          gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:            cfg.EmailFrom,
		frontendBaseURL: cfg.FrontendBaseURL,
	}
}

// Notify renders and sends one status email.
func (n *EmailNotifier) Notify(ctx context.Context, notification portssvc.Notification) error {
	content, ok := emailTemplates[notification.Template]
	if !ok {
		return fmt.Errorf("no email template registered for %q", notification.Template)
	}

	data := templateData{
		Name:        notification.Name,
		ReferenceID: notification.ReferenceID,
		LookupURL:   fmt.Sprintf("%s/status/%s", n.frontendBaseURL, notification.ReferenceID),
	}
	var body bytes.Buffer
	if err := content.body.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering email body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", notification.To)
	msg.SetHeader("Subject", content.subject)
	msg.SetBody("text/plain", body.String())

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

// NoopNotifier drops notifications on the floor. Used when SMTP is not
// configured, e.g. local development.
type NoopNotifier struct{}

var _ portssvc.Notifier = (*NoopNotifier)(nil)

// Notify logs the would-be email and succeeds.
func (NoopNotifier) Notify(ctx context.Context, notification portssvc.Notification) error {
	slog.Default().Debug("email notifications disabled, dropping notification",
		slog.String("template", string(notification.Template)),
		slog.String("reference_id", notification.ReferenceID))
	return nil
}
