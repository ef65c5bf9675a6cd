package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects for chat telemetry events.
const (
	SubjectAnswered = "campus.chat.answered"
	SubjectFailed   = "campus.chat.failed"
)

// ChatEvent describes the outcome of one chat request for downstream
// analytics. No message content is included; raw conversation logs are not
// persisted anywhere.
type ChatEvent struct {
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
	Lang      string `json:"lang"`
	Mode      string `json:"mode"`
	Snippets  int    `json:"snippets"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

// Publish sends a chat event. A nil publisher is a no-op so the service runs
// without NATS configured.
func (p *Publisher) Publish(subject string, evt ChatEvent) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
