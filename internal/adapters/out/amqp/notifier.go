// Package amqp publishes restaurant lifecycle notifications to RabbitMQ.
// Downstream consumers (mailers, dashboards) pick them up from a fanout
// exchange; the core never waits on them.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"frontdash/internal/core/ports"
)

// Exchange is the fanout exchange notifications are published to.
const Exchange = "restaurant_notifications"

const publishTimeout = 10 * time.Second

// Notifier implements ports.Notifier on top of a RabbitMQ channel.
type Notifier struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *zap.Logger
}

// NewNotifier dials RabbitMQ and declares the notification exchange.
func NewNotifier(url string, logger *zap.Logger) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		Exchange, // name
		"fanout", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", Exchange, err)
	}

	return &Notifier{conn: conn, channel: channel, logger: logger}, nil
}

// Send publishes the notification as a JSON message.
func (n *Notifier) Send(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		Exchange,
		"",    // routing key is ignored for fanout
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debug("notification published",
		zap.String("kind", string(notification.Kind)),
		zap.String("recipient", notification.Recipient))
	return nil
}

// Close releases the channel and connection.
func (n *Notifier) Close() error {
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
