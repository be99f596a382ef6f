package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"

	"github.com/babylonlabs-io/nft-staker/internal/config"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// Publisher is what the staking service needs to announce committed changesets
//
//go:generate mockery --name=Publisher --output=../../tests/mocks --outpkg=mocks --filename=mock_publisher.go
type Publisher interface {
	PushLedgerEvent(ctx context.Context, cs *types.Changeset) error
}

// LedgerEvent is the message body sent for every committed changeset
type LedgerEvent struct {
	EventID   string           `json:"event_id"`
	Sequence  uint64           `json:"sequence"`
	Operation string           `json:"operation"`
	Caller    string           `json:"caller"`
	Timestamp int64            `json:"timestamp"`
	Changeset *types.Changeset `json:"changeset"`
}

type QueueManager struct {
	cfg *config.QueueConfig

	mu      deadlock.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ Publisher = (*QueueManager)(nil)

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	qm := &QueueManager{cfg: cfg}
	if err := qm.connect(); err != nil {
		return nil, err
	}
	return qm, nil
}

func (qm *QueueManager) connect() error {
	amqpURL, err := qm.dialURL()
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		qm.cfg.QueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		amqp.Table{"x-queue-type": "quorum"},
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", qm.cfg.QueueName, err)
	}

	qm.conn = conn
	qm.channel = ch
	return nil
}

func (qm *QueueManager) dialURL() (string, error) {
	u, err := url.Parse(qm.cfg.Url)
	if err != nil {
		return "", fmt.Errorf("invalid queue url: %w", err)
	}
	if qm.cfg.User != "" {
		u.User = url.UserPassword(qm.cfg.User, qm.cfg.Password)
	}
	return u.String(), nil
}

func NewLedgerEvent(cs *types.Changeset) *LedgerEvent {
	return &LedgerEvent{
		EventID:   uuid.NewString(),
		Sequence:  cs.Sequence,
		Operation: cs.Operation.String(),
		Caller:    cs.Caller.Hex(),
		Timestamp: cs.Timestamp.Unix(),
		Changeset: cs,
	}
}

// PushLedgerEvent publishes cs to the configured queue. A closed channel is
// reopened once before giving up.
func (qm *QueueManager) PushLedgerEvent(ctx context.Context, cs *types.Changeset) error {
	event := NewLedgerEvent(cs)
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.channel == nil || qm.channel.IsClosed() {
		log.Ctx(ctx).Warn().Msg("queue channel closed, reconnecting")
		if qm.conn != nil {
			_ = qm.conn.Close()
		}
		if err := qm.connect(); err != nil {
			return err
		}
	}

	err = qm.channel.PublishWithContext(ctx,
		"", // default exchange
		qm.cfg.QueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish ledger event %d: %w", cs.Sequence, err)
	}

	log.Ctx(ctx).Debug().
		Uint64("sequence", cs.Sequence).
		Str("event_id", event.EventID).
		Msg("ledger event published")
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	log.Info().Msg("Shutting down queue manager")

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue channel")
		}
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close queue connection")
		}
	}
}

// NoopPublisher drops every event. Used when no queue is configured.
type NoopPublisher struct{}

func (NoopPublisher) PushLedgerEvent(context.Context, *types.Changeset) error {
	return nil
}
