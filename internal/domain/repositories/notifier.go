package repositories

import "context"

// NotificationKind identifies a lifecycle email template
type NotificationKind string

const (
	NotificationWelcome     NotificationKind = "welcome"
	NotificationApproved    NotificationKind = "approved"
	NotificationRejected    NotificationKind = "rejected"
	NotificationCredentials NotificationKind = "credentials"
)

// NotificationPayload carries template fields for a lifecycle email
type NotificationPayload struct {
	Name              string
	BusinessName      string
	RejectionReason   string
	DashboardURL      string
	ResubmissionURL   string
	TemporaryPassword string
}

// Notifier sends lifecycle emails to merchants. Implementations are
// best-effort: the orchestrator treats a send failure as a warning, never
// as a failure of the state transition that preceded it.
type Notifier interface {
	Send(ctx context.Context, kind NotificationKind, recipient string, payload NotificationPayload) error
}
