package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes status events to a topic exchange for other
// consumers (SMS, e-mail, analytics). Routing key: booking.<status>.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

type statusMessage struct {
	BookingID   uint   `json:"bookingId"`
	ProviderID  uint   `json:"providerId"`
	CustomerID  uint   `json:"customerId"`
	Status      string `json:"status"`
	EstimatedAt string `json:"estimatedAt"`
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func RoutingKey(status string) string {
	return "booking." + strings.ToLower(status)
}

func (n *AMQPNotifier) Notify(ctx context.Context, ev Event) error {
	b, err := json.Marshal(statusMessage{
		BookingID:   ev.BookingID,
		ProviderID:  ev.ProviderID,
		CustomerID:  ev.CustomerID,
		Status:      ev.Status,
		EstimatedAt: ev.EstimatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx, n.exchange, RoutingKey(ev.Status), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
	})
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
