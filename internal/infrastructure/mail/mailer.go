package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	domainerrors "dealhub.backend/internal/domain/errors"
	"dealhub.backend/internal/domain/repositories"
	"dealhub.backend/pkg/logger"
)

// Config holds mail provider settings
type Config struct {
	BaseURL         string
	APIKey          string
	FromAddress     string
	DashboardURL    string
	ResubmissionURL string
}

// Mailer sends lifecycle emails through an HTTP mail provider
type Mailer struct {
	cfg    Config
	client *http.Client
}

// NewMailer creates a new provider-backed mailer
func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send renders the template for the kind and posts it to the provider.
// Callers treat failures as warnings; committed state transitions are never
// rolled back because an email did not go out.
func (m *Mailer) Send(ctx context.Context, kind repositories.NotificationKind, recipient string, payload repositories.NotificationPayload) error {
	subject, html, err := renderTemplate(kind, payload, m.cfg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendRequest{
		From:    m.cfg.FromAddress,
		To:      recipient,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return domainerrors.DependencyError("mail provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domainerrors.DependencyError(
			fmt.Sprintf("mail provider returned %d", resp.StatusCode),
			fmt.Errorf("%s", raw),
		)
	}

	var sr sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err == nil && sr.ID != "" {
		logger.Debug(ctx, "Mail accepted by provider",
			zap.String("kind", string(kind)),
			zap.String("messageId", sr.ID),
		)
	}
	return nil
}

// LogMailer is a no-send Notifier used when no provider key is configured.
// It logs each would-be email so local and test environments stay quiet.
type LogMailer struct{}

// NewLogMailer creates a log-only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send logs the notification instead of delivering it
func (m *LogMailer) Send(ctx context.Context, kind repositories.NotificationKind, recipient string, payload repositories.NotificationPayload) error {
	logger.Info(ctx, "Mail suppressed (no provider configured)",
		zap.String("kind", string(kind)),
		zap.String("recipient", recipient),
	)
	return nil
}
