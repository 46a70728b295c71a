// Package notify delivers booking status changes to customers. Delivery is
// best effort: failures are logged and never reach the booking flow.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Event is emitted when a customer's booking enters a notified status.
type Event struct {
	BookingID    uint
	ProviderID   uint
	CustomerID   uint
	DeviceToken  string
	Status       string
	ProviderName string
	ServiceName  string
	EstimatedAt  time.Time
}

type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// Message renders the push title and body of ev (pt-BR, like the apps).
func Message(ev Event) (title, body string) {
	switch ev.Status {
	case "IN_PROGRESS":
		return "Sua vez chegou!", fmt.Sprintf("%s: seu atendimento (%s) começou.", ev.ProviderName, ev.ServiceName)
	case "DONE":
		return "Atendimento concluído", fmt.Sprintf("Obrigado por visitar %s!", ev.ProviderName)
	default:
		return "Agendamento atualizado", fmt.Sprintf("Seu agendamento em %s foi atualizado.", ev.ProviderName)
	}
}

// LogNotifier only writes the event to the log. Used when no channel is
// configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, ev Event) error {
	title, body := Message(ev)
	n.log.Info("notification",
		"booking_id", ev.BookingID,
		"customer_id", ev.CustomerID,
		"status", ev.Status,
		"title", title,
		"body", body,
	)
	return nil
}

// Multi fans an event out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, ev Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
