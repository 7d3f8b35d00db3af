package mail

import (
	"fmt"
	"html"

	"dealhub.backend/internal/domain/repositories"
)

func renderTemplate(kind repositories.NotificationKind, p repositories.NotificationPayload, cfg Config) (subject, body string, err error) {
	name := html.EscapeString(p.Name)
	business := html.EscapeString(p.BusinessName)

	dashboardURL := p.DashboardURL
	if dashboardURL == "" {
		dashboardURL = cfg.DashboardURL
	}
	resubmissionURL := p.ResubmissionURL
	if resubmissionURL == "" {
		resubmissionURL = cfg.ResubmissionURL
	}

	switch kind {
	case repositories.NotificationWelcome:
		subject = "Welcome to DealHub"
		body = fmt.Sprintf(
			`<p>Hi %s,</p>
<p>Thanks for registering <strong>%s</strong> on DealHub. Your application is
now under review. We will email you as soon as a decision is made.</p>`,
			name, business,
		)

	case repositories.NotificationApproved:
		subject = "Your DealHub merchant account is approved"
		body = fmt.Sprintf(
			`<p>Hi %s,</p>
<p>Good news: <strong>%s</strong> has been approved. You can now sign in to
your dashboard and start publishing deals.</p>
<p><a href="%s">Open your dashboard</a></p>`,
			name, business, dashboardURL,
		)

	case repositories.NotificationRejected:
		subject = "Your DealHub merchant application"
		body = fmt.Sprintf(
			`<p>Hi %s,</p>
<p>We could not approve your application for <strong>%s</strong>:</p>
<blockquote>%s</blockquote>
<p>You can update your details and <a href="%s">resubmit your application</a>.</p>`,
			name, business, html.EscapeString(p.RejectionReason), resubmissionURL,
		)

	case repositories.NotificationCredentials:
		subject = "Your DealHub merchant account"
		body = fmt.Sprintf(
			`<p>Hi %s,</p>
<p>An account for <strong>%s</strong> has been created for you on DealHub.</p>
<p>Temporary password: <code>%s</code></p>
<p>Please sign in and change it: <a href="%s">Open your dashboard</a></p>`,
			name, business, html.EscapeString(p.TemporaryPassword), dashboardURL,
		)

	default:
		return "", "", fmt.Errorf("unknown notification kind: %s", kind)
	}

	return subject, body, nil
}
