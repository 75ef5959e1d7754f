package repository

import (
	"context"
	"fmt"
	"time"

	"care-booking/internal/data/entity"
	"care-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)

	// UpdateStatusFrom is a conditional compare-and-set: the status column
	// is only written when it still holds the expected prior value. It
	// reports whether a row was claimed, so two racing transitions cannot
	// both succeed off a stale read.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, updatedAt time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, service_id, service_name, duration, duration_unit,
		division, district, city, area, address,
		total_cost, status, user_id, user_email, user_name, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ServiceID,
		booking.ServiceName,
		booking.Duration,
		booking.DurationUnit,
		booking.Location.Division,
		booking.Location.District,
		booking.Location.City,
		booking.Location.Area,
		booking.Location.Address,
		booking.TotalCost,
		booking.Status,
		booking.UserID,
		booking.UserEmail,
		booking.UserName,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("service_id", booking.ServiceID),
			zap.String("user_email", booking.UserEmail),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by user email",
			zap.Error(err),
			zap.String("user_email", email),
		)
		return nil, fmt.Errorf("find bookings by user email %s: %w", email, err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return r.collectBookings(rows)
}

func (r *bookingRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_email = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, email).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user email",
			zap.Error(err),
			zap.String("user_email", email),
		)
		return 0, fmt.Errorf("count bookings by user email %s: %w", email, err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, updatedAt)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", id.String(), string(to), err)
	}

	return result.RowsAffected() == 1, nil
}

// ==================== HELPERS ====================

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.Duration,
		&booking.DurationUnit,
		&booking.Location.Division,
		&booking.Location.District,
		&booking.Location.City,
		&booking.Location.Area,
		&booking.Location.Address,
		&booking.TotalCost,
		&booking.Status,
		&booking.UserID,
		&booking.UserEmail,
		&booking.UserName,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}
