// README: Booking store backed by PostgreSQL.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

// Booking is a persisted booking record. Details keeps the raw confirmation
// payload from the booking backend.
type Booking struct {
	BookingID          string         `json:"booking_id"`
	UserID             string         `json:"user_id,omitempty"`
	Status             string         `json:"status"`
	ConfirmationNumber string         `json:"confirmation_number"`
	TotalCost          float64        `json:"total_cost"`
	Details            map[string]any `json:"details,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type BookingStore struct {
	db *pgxpool.Pool
}

func NewBookingStore(db *pgxpool.Pool) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) Save(ctx context.Context, b *Booking) error {
	details, err := json.Marshal(b.Details)
	if err != nil {
		return fmt.Errorf("encode booking details: %w", err)
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	_, err = s.db.Exec(ctx, `
        INSERT INTO bookings (
            booking_id, user_id, status, confirmation_number,
            total_cost, details, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (booking_id) DO UPDATE SET
            status = EXCLUDED.status,
            details = EXCLUDED.details,
            updated_at = EXCLUDED.updated_at`,
		b.BookingID, b.UserID, b.Status, b.ConfirmationNumber,
		b.TotalCost, details, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (s *BookingStore) Get(ctx context.Context, bookingID string) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT booking_id, user_id, status, confirmation_number,
               total_cost, details, created_at, updated_at
        FROM bookings
        WHERE booking_id = $1`, bookingID,
	)
	return scanBooking(row)
}

func (s *BookingStore) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, `
        SELECT booking_id, user_id, status, confirmation_number,
               total_cost, details, created_at, updated_at
        FROM bookings
        WHERE user_id = $1
        ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *BookingStore) UpdateStatus(ctx context.Context, bookingID, status string) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE bookings SET status = $2, updated_at = now()
        WHERE booking_id = $1`, bookingID, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var details []byte

	err := row.Scan(
		&b.BookingID, &b.UserID, &b.Status, &b.ConfirmationNumber,
		&b.TotalCost, &details, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(details) > 0 {
		if err := json.Unmarshal(details, &b.Details); err != nil {
			return nil, fmt.Errorf("decode booking details: %w", err)
		}
	}
	return &b, nil
}
