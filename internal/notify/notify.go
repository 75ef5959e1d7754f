// Package notify delivers transactional booking emails. Delivery is
// best-effort: a failed send is logged and never surfaced to the caller,
// and a successful status transition is never rolled back over it.
package notify

import (
	"context"
	"time"

	"care-booking/internal/data/entity"

	"go.uber.org/zap"
)

// Notifier sends booking emails to the booking owner.
type Notifier interface {
	SendStatusUpdate(ctx context.Context, booking *entity.Booking, newStatus entity.BookingStatus) error
	SendInvoice(ctx context.Context, booking *entity.Booking) error
}

// dispatchTimeout bounds a single background send.
const dispatchTimeout = 15 * time.Second

// DispatchStatusUpdate runs the status email in the background. Errors are
// logged, never returned.
func DispatchStatusUpdate(notifier Notifier, log *zap.Logger, booking *entity.Booking, newStatus entity.BookingStatus) {
	snapshot := *booking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := notifier.SendStatusUpdate(ctx, &snapshot, newStatus); err != nil {
			log.Error("Failed to send status update email",
				zap.Error(err),
				zap.String("booking_id", snapshot.ID.String()),
				zap.String("recipient", snapshot.UserEmail),
				zap.String("status", string(newStatus)),
			)
		}
	}()
}

// DispatchInvoice runs the invoice email in the background. Errors are
// logged, never returned.
func DispatchInvoice(notifier Notifier, log *zap.Logger, booking *entity.Booking) {
	snapshot := *booking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := notifier.SendInvoice(ctx, &snapshot); err != nil {
			log.Error("Failed to send invoice email",
				zap.Error(err),
				zap.String("booking_id", snapshot.ID.String()),
				zap.String("recipient", snapshot.UserEmail),
			)
		}
	}()
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct {
	log *zap.Logger
}

func NewNoopNotifier(log *zap.Logger) *NoopNotifier {
	return &NoopNotifier{log: log.With(zap.String("notifier", "noop"))}
}

func (n *NoopNotifier) SendStatusUpdate(_ context.Context, booking *entity.Booking, newStatus entity.BookingStatus) error {
	n.log.Info("Email disabled, skipping status update notification",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(newStatus)),
	)
	return nil
}

func (n *NoopNotifier) SendInvoice(_ context.Context, booking *entity.Booking) error {
	n.log.Info("Email disabled, skipping invoice",
		zap.String("booking_id", booking.ID.String()),
	)
	return nil
}
