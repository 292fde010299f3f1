// Package mail relays contact-form submissions to a transactional email
// provider over its HTTP API. A missing configuration is a soft condition:
// the site keeps accepting submissions and logs them instead of failing the
// form during partial deployments.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Submission is one structured contact-form entry.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	Company string
}

// SendResult classifies the outcome of a relay attempt.
type SendResult int

const (
	// Delivered means the provider accepted the message.
	Delivered SendResult = iota
	// NotConfigured means no provider credentials are set. Treated as a
	// soft success by callers: the submission is accepted and logged.
	NotConfigured
	// Failed means the provider rejected the request or was unreachable.
	Failed
)

func (r SendResult) String() string {
	switch r {
	case Delivered:
		return "delivered"
	case NotConfigured:
		return "not_configured"
	default:
		return "failed"
	}
}

// RelayConfig holds the provider endpoint and message envelope.
type RelayConfig struct {
	Endpoint string // provider send URL; empty disables the relay
	APIKey   string // bearer token; empty disables the relay
	From     string
	To       string
}

// Relay sends submissions through the configured provider.
type Relay struct {
	cfg  RelayConfig
	http *http.Client
	log  *zap.Logger
}

// Option configures a Relay.
type Option func(*Relay)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(r *Relay) { r.http = h }
}

// WithLogger sets the logger for delivery outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(r *Relay) { r.log = l }
}

// NewRelay creates a Relay. An empty endpoint or API key yields a relay that
// reports NotConfigured for every send.
func NewRelay(cfg RelayConfig, opts ...Option) *Relay {
	r := &Relay{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// payload is the provider wire format.
type payload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// Send relays one submission. It never returns an error: the outcome is the
// SendResult, and failures are logged here.
func (r *Relay) Send(ctx context.Context, s Submission) SendResult {
	if r.cfg.Endpoint == "" || r.cfg.APIKey == "" {
		r.log.Info("mail relay not configured, accepting submission without delivery",
			zap.String("email", s.Email))
		return NotConfigured
	}

	subject := s.Subject
	if subject == "" {
		subject = "Website contact from " + s.Name
	}
	body, err := json.Marshal(payload{
		From:    r.cfg.From,
		To:      r.cfg.To,
		Subject: subject,
		Text:    renderText(s),
		ReplyTo: s.Email,
	})
	if err != nil {
		r.log.Error("mail payload encode failed", zap.Error(err))
		return Failed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		r.log.Error("mail request build failed", zap.Error(err))
		return Failed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.http.Do(req)
	if err != nil {
		r.log.Error("mail relay unreachable", zap.Error(err))
		return Failed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.log.Error("mail relay rejected message", zap.Int("status", resp.StatusCode))
		return Failed
	}
	r.log.Info("contact message delivered", zap.String("email", s.Email))
	return Delivered
}

func renderText(s Submission) string {
	text := fmt.Sprintf("Name: %s\nEmail: %s\n", s.Name, s.Email)
	if s.Phone != "" {
		text += fmt.Sprintf("Phone: %s\n", s.Phone)
	}
	if s.Company != "" {
		text += fmt.Sprintf("Company: %s\n", s.Company)
	}
	return text + "\n" + s.Message + "\n"
}
