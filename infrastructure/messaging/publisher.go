package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"shop-backend/pkg/logger"
)

const (
	SubjectOrderCreated       = "orders.created"
	SubjectOrderStatusChanged = "orders.status_changed"
	SubjectCallbackCreated    = "callbacks.created"
)

// EventPublisher pushes back-office notification events to NATS. Publishing is
// fire-and-forget: a broker outage must never fail the request that produced
// the event. A nil publisher is a valid no-op.
type EventPublisher struct {
	conn *nats.Conn
}

func NewEventPublisher(url string) (*EventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Timeout(5*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("NATS connected", "url", url)
	return &EventPublisher{conn: conn}, nil
}

// Publish marshals the payload and sends it; failures are logged, not returned.
func (p *EventPublisher) Publish(ctx context.Context, subject string, payload any) {
	if p == nil || p.conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorContext(ctx, "Event marshal failed", "subject", subject, "error", err)
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Event publish failed", "subject", subject, "error", err)
	}
}

func (p *EventPublisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Drain()
	}
}
