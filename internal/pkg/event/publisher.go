package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const SubjectCalculationCompleted = "vikor.calculation.completed"

// CalculationCompleted is published after every successful calculation.
type CalculationCompleted struct {
	CalculationID string   `json:"calculation_id"`
	Alternatives  int      `json:"alternatives"`
	Criteria      int      `json:"criteria"`
	Experts       int      `json:"experts"`
	CompromiseSet []string `json:"compromise_set"`
	CacheHit      bool     `json:"cache_hit"`
}

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
	Close()
}

type conn interface {
	Publish(subject string, data []byte) error
	Close()
}

type NATSPublisher struct {
	conn conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("fuzzy-vikor-service"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &NATSPublisher{conn: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, _ any) error {
	slog.DebugContext(ctx, "event dropped, no broker configured", slog.String("subject", subject))
	return nil
}

func (NoopPublisher) Close() {}
