// Package repo contains all database access logic for the travel assistant.
// It reads the hotel, flight and activity booking tables.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BookingRepo is the booking repository the itinerary service reads from.
type BookingRepo interface {
	// FetchActiveBookings returns the user's active hotel, flight and
	// activity bookings, each list ordered by start date and time.
	// Returns domain.ErrNotFound if the user has no bookings of any status.
	FetchActiveBookings(ctx context.Context, userID int64) (domain.BookingSet, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const (
	userExistsQuery = `
		SELECT EXISTS (SELECT 1 FROM hotel_bookings    WHERE user_id = @user_id)
		    OR EXISTS (SELECT 1 FROM flight_bookings   WHERE user_id = @user_id)
		    OR EXISTS (SELECT 1 FROM activity_bookings WHERE user_id = @user_id)`

	activeHotelsQuery = `
		SELECT id, booking_id, hotel_name, location,
		       check_in_date, check_in_time, check_out_date, check_out_time, status
		FROM hotel_bookings
		WHERE user_id = @user_id AND status = 'active'
		ORDER BY check_in_date, check_in_time, id`

	activeFlightsQuery = `
		SELECT id, booking_id, departure_city, arrival_city,
		       departure_date, departure_time, arrival_date, arrival_time,
		       flight_duration_minutes, status
		FROM flight_bookings
		WHERE user_id = @user_id AND status = 'active'
		ORDER BY departure_date, departure_time, id`

	activeActivitiesQuery = `
		SELECT id, booking_id, activity_name, location,
		       activity_date, start_time, end_time, duration_minutes, status
		FROM activity_bookings
		WHERE user_id = @user_id AND status = 'active'
		ORDER BY activity_date, start_time, id`
)

// FetchActiveBookings sends the existence check and the three active-booking
// selects as one batch, so the snapshot costs a single round trip.
func (r *pgBookingRepo) FetchActiveBookings(ctx context.Context, userID int64) (domain.BookingSet, error) {
	args := pgx.NamedArgs{"user_id": userID}

	b := &pgx.Batch{}
	b.Queue(userExistsQuery, args)
	b.Queue(activeHotelsQuery, args)
	b.Queue(activeFlightsQuery, args)
	b.Queue(activeActivitiesQuery, args)

	br := r.db.SendBatch(ctx, b)
	defer func() { _ = br.Close() }()

	var exists bool
	if err := br.QueryRow().Scan(&exists); err != nil {
		return domain.BookingSet{}, fmt.Errorf("repo.BookingRepo.FetchActiveBookings: exists: %w", err)
	}
	if !exists {
		return domain.BookingSet{}, fmt.Errorf("repo.BookingRepo.FetchActiveBookings: user %d: %w", userID, domain.ErrNotFound)
	}

	var (
		set domain.BookingSet
		err error
	)
	if set.Hotels, err = collect(br, scanHotel); err != nil {
		return domain.BookingSet{}, fmt.Errorf("repo.BookingRepo.FetchActiveBookings: hotels: %w", err)
	}
	if set.Flights, err = collect(br, scanFlight); err != nil {
		return domain.BookingSet{}, fmt.Errorf("repo.BookingRepo.FetchActiveBookings: flights: %w", err)
	}
	if set.Activities, err = collect(br, scanActivity); err != nil {
		return domain.BookingSet{}, fmt.Errorf("repo.BookingRepo.FetchActiveBookings: activities: %w", err)
	}
	return set, nil
}

// collect reads the next batch result with scan. pgx.CollectRows closes the
// rows, which must happen before the next result can be read.
func collect[T any](br pgx.BatchResults, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := br.Query()
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (T, error) {
		return scan(row)
	})
}

// scanner is satisfied by pgx.Row, pgx.Rows and pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}

func scanHotel(s scanner) (domain.HotelBooking, error) {
	var (
		h                 domain.HotelBooking
		checkIn, checkOut pgtype.Date
		inTime, outTime   pgtype.Time
	)
	err := s.Scan(&h.ID, &h.BookingRef, &h.HotelName, &h.Location,
		&checkIn, &inTime, &checkOut, &outTime, &h.Status)
	if err != nil {
		return domain.HotelBooking{}, err
	}
	h.CheckInDate, h.CheckInTime = datePtr(checkIn), timePtr(inTime)
	h.CheckOutDate, h.CheckOutTime = datePtr(checkOut), timePtr(outTime)
	return h, nil
}

func scanFlight(s scanner) (domain.FlightBooking, error) {
	var (
		f                domain.FlightBooking
		depDate, arrDate pgtype.Date
		depTime, arrTime pgtype.Time
		duration         pgtype.Int4
	)
	err := s.Scan(&f.ID, &f.BookingRef, &f.DepartureCity, &f.ArrivalCity,
		&depDate, &depTime, &arrDate, &arrTime, &duration, &f.Status)
	if err != nil {
		return domain.FlightBooking{}, err
	}
	f.DepartureDate, f.DepartureTime = datePtr(depDate), timePtr(depTime)
	f.ArrivalDate, f.ArrivalTime = datePtr(arrDate), timePtr(arrTime)
	if duration.Valid {
		f.DurationMinutes = int(duration.Int32)
	}
	return f, nil
}

func scanActivity(s scanner) (domain.ActivityBooking, error) {
	var (
		a                  domain.ActivityBooking
		date               pgtype.Date
		startTime, endTime pgtype.Time
		duration           pgtype.Int4
	)
	err := s.Scan(&a.ID, &a.BookingRef, &a.ActivityName, &a.Location,
		&date, &startTime, &endTime, &duration, &a.Status)
	if err != nil {
		return domain.ActivityBooking{}, err
	}
	a.ActivityDate = datePtr(date)
	a.StartTime, a.EndTime = timePtr(startTime), timePtr(endTime)
	if duration.Valid {
		a.DurationMinutes = int(duration.Int32)
	}
	return a, nil
}

// datePtr maps a nullable DATE to a *time.Time (midnight UTC of that date).
func datePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// timePtr maps a nullable TIME to a *domain.TimeOfDay.
func timePtr(t pgtype.Time) *domain.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := domain.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
	return &tod
}
