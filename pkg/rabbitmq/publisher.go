package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the durable topic exchange events go to.
const DefaultExchange = "synapse.topic"

// ErrMissingURL is returned by NewPublisher when no broker url is given.
var ErrMissingURL = errors.New("rabbitmq: url is required")

// IPublisher publishes JSON events to a topic exchange.
type IPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

type publisher struct {
	conn     *amqp.Connection
	exchange string
}

// NewPublisher connects to url and makes sure the exchange exists.
func NewPublisher(url, exchange string) (IPublisher, error) {
	if url == "" {
		return nil, ErrMissingURL
	}
	exchange = exchangeOrDefault(exchange)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &publisher{conn: conn, exchange: exchange}, nil
}

func exchangeOrDefault(name string) string {
	if name == "" {
		return DefaultExchange
	}
	return name
}

// Publish marshals event and sends it as a persistent message.
func (p *publisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

// Close closes the connection.
func (p *publisher) Close() error {
	return p.conn.Close()
}
