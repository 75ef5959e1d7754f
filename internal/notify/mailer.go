package notify

import (
	"context"
	"fmt"

	"care-booking/internal/data/entity"
	"care-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends booking emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

// NewNotifier returns the SMTP mailer when the email config is complete,
// otherwise the no-op notifier.
func NewNotifier(config utils.EmailConfig, log *zap.Logger) Notifier {
	if config.Host == "" || config.From == "" {
		return NewNoopNotifier(log)
	}
	return NewMailer(config, log)
}

func NewMailer(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("notifier", "smtp")),
	}
}

func (m *Mailer) SendStatusUpdate(ctx context.Context, booking *entity.Booking, newStatus entity.BookingStatus) error {
	subject := fmt.Sprintf("Booking %s - %s | Care.xyz", newStatus, booking.ServiceName)
	body := renderStatusUpdateEmail(booking, newStatus)

	if err := m.send(ctx, booking.UserEmail, subject, body); err != nil {
		return fmt.Errorf("send status update email: %w", err)
	}

	m.log.Info("Status update email sent",
		zap.String("booking_id", booking.ID.String()),
		zap.String("recipient", booking.UserEmail),
		zap.String("status", string(newStatus)),
	)
	return nil
}

func (m *Mailer) SendInvoice(ctx context.Context, booking *entity.Booking) error {
	subject := fmt.Sprintf("Booking Invoice - %s | Care.xyz", booking.ServiceName)
	body := renderInvoiceEmail(booking)

	if err := m.send(ctx, booking.UserEmail, subject, body); err != nil {
		return fmt.Errorf("send invoice email: %w", err)
	}

	m.log.Info("Invoice email sent",
		zap.String("booking_id", booking.ID.String()),
		zap.String("recipient", booking.UserEmail),
	)
	return nil
}

// send honors the context deadline even though gomail dials synchronously.
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("Care.xyz <%s>", m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
