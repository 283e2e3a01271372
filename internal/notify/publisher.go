// README: Booking event publisher over RabbitMQ.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const exchangeName = "travelsmart.events"

// Notifier emits booking lifecycle events. Implementations must be
// best-effort: a notification failure never fails the booking itself.
type Notifier interface {
	BookingConfirmed(ctx context.Context, bookingID string, confirmation map[string]any)
	BookingUpdated(ctx context.Context, bookingID, status string)
}

// Publisher sends events to a topic exchange. The channel is reopened on
// demand since RabbitMQ closes it after certain errors.
type Publisher struct {
	conn *amqp.Connection
	log  *zap.Logger

	mu      sync.Mutex
	channel *amqp.Channel
}

func NewPublisher(conn *amqp.Connection, log *zap.Logger) (*Publisher, error) {
	p := &Publisher{conn: conn, log: log}
	if _, err := p.getChannel(); err != nil {
		return nil, fmt.Errorf("open publish channel: %w", err)
	}
	return p, nil
}

func (p *Publisher) getChannel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, err
	}
	p.channel = ch
	return ch, nil
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event map[string]any) {
	ch, err := p.getChannel()
	if err != nil {
		p.log.Warn("notification channel unavailable", zap.String("event", routingKey), zap.Error(err))
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("notification encode failed", zap.String("event", routingKey), zap.Error(err))
		return
	}

	err = ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.log.Warn("notification publish failed", zap.String("event", routingKey), zap.Error(err))
		return
	}
	p.log.Debug("notification published", zap.String("event", routingKey))
}

func (p *Publisher) BookingConfirmed(ctx context.Context, bookingID string, confirmation map[string]any) {
	p.publish(ctx, "booking.confirmed", map[string]any{
		"event":        "booking.confirmed",
		"booking_id":   bookingID,
		"confirmation": confirmation,
		"emitted_at":   time.Now().Format(time.RFC3339),
	})
}

func (p *Publisher) BookingUpdated(ctx context.Context, bookingID, status string) {
	p.publish(ctx, "booking.updated", map[string]any{
		"event":      "booking.updated",
		"booking_id": bookingID,
		"status":     status,
		"emitted_at": time.Now().Format(time.RFC3339),
	})
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) BookingConfirmed(context.Context, string, map[string]any) {}
func (Nop) BookingUpdated(context.Context, string, string)           {}
