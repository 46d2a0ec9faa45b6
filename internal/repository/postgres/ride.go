package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/domain/ride"
)

// RideRepository is a PostgreSQL implementation of ride.Repository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

const rideColumns = `
	id, customer_id, driver_id, customer_name, driver_name,
	pickup_location, destination_location, status, ride_class,
	estimated_fare, actual_fare, distance, estimated_duration,
	actual_duration, driver_rating, customer_rating,
	pickup_time, completion_time, created_at, updated_at`

// Create persists a new ride.
func (r *RideRepository) Create(ctx context.Context, rd *ride.Ride) error {
	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.q.ExecContext(ctx, query,
		rd.ID,
		rd.CustomerID,
		nullUUID(rd.DriverID),
		rd.CustomerName,
		rd.DriverName,
		rd.PickupLocation,
		rd.DestinationLocation,
		rd.Status,
		rd.Class,
		rd.EstimatedFare,
		nullDecimal(rd.ActualFare),
		rd.Distance,
		rd.EstimatedDuration,
		nullInt(rd.ActualDuration),
		nullInt(rd.DriverRating),
		nullInt(rd.CustomerRating),
		nullTime(rd.PickupTime),
		nullTime(rd.CompletionTime),
		rd.CreatedAt,
		rd.UpdatedAt,
	)

	return err
}

// GetByID retrieves a ride by ID.
func (r *RideRepository) GetByID(ctx context.Context, id uuid.UUID) (*ride.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	rd, err := scanRide(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ride.ErrRideNotFound
		}
		return nil, err
	}

	return rd, nil
}

// Update replaces an existing ride row.
func (r *RideRepository) Update(ctx context.Context, rd *ride.Ride) error {
	query := `
		UPDATE rides SET
			status = $2, driver_id = $3, actual_fare = $4,
			actual_duration = $5, driver_rating = $6, customer_rating = $7,
			pickup_time = $8, completion_time = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		rd.ID,
		rd.Status,
		nullUUID(rd.DriverID),
		nullDecimal(rd.ActualFare),
		nullInt(rd.ActualDuration),
		nullInt(rd.DriverRating),
		nullInt(rd.CustomerRating),
		nullTime(rd.PickupTime),
		nullTime(rd.CompletionTime),
		rd.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ride.ErrRideNotFound
	}

	return nil
}

// ListByCustomer retrieves a customer's rides, newest first.
func (r *RideRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ride.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

// ListByDriver retrieves a driver's rides, newest first.
func (r *RideRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*ride.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, driverID)
}

// ListAll retrieves every ride, newest first.
func (r *RideRepository) ListAll(ctx context.Context) ([]*ride.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *RideRepository) list(ctx context.Context, query string, args ...any) ([]*ride.Ride, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []*ride.Ride
	for rows.Next() {
		rd, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, rd)
	}

	return rides, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRide(s scanner) (*ride.Ride, error) {
	var rd ride.Ride
	var driverID uuid.NullUUID
	var actualFare decimal.NullDecimal
	var actualDuration, driverRating, customerRating sql.NullInt64
	var pickupTime, completionTime sql.NullTime

	err := s.Scan(
		&rd.ID,
		&rd.CustomerID,
		&driverID,
		&rd.CustomerName,
		&rd.DriverName,
		&rd.PickupLocation,
		&rd.DestinationLocation,
		&rd.Status,
		&rd.Class,
		&rd.EstimatedFare,
		&actualFare,
		&rd.Distance,
		&rd.EstimatedDuration,
		&actualDuration,
		&driverRating,
		&customerRating,
		&pickupTime,
		&completionTime,
		&rd.CreatedAt,
		&rd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		rd.DriverID = &driverID.UUID
	}
	if actualFare.Valid {
		rd.ActualFare = &actualFare.Decimal
	}
	if actualDuration.Valid {
		v := int(actualDuration.Int64)
		rd.ActualDuration = &v
	}
	if driverRating.Valid {
		v := int(driverRating.Int64)
		rd.DriverRating = &v
	}
	if customerRating.Valid {
		v := int(customerRating.Int64)
		rd.CustomerRating = &v
	}
	if pickupTime.Valid {
		rd.PickupTime = &pickupTime.Time
	}
	if completionTime.Valid {
		rd.CompletionTime = &completionTime.Time
	}

	return &rd, nil
}
