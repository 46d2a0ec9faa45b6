package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/service/rating"
)

var (
	_ IdentityClient = (*SimulatedIdentityService)(nil)
	_ DriverClient   = (*SimulatedDriverDirectory)(nil)
)

// SimulatedIdentityService is an in-process IdentityClient for running the
// service without a live identity deployment. Every unknown customer resolves
// as an active account.
type SimulatedIdentityService struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]Customer
}

// NewSimulatedIdentityService creates an empty simulated identity service.
func NewSimulatedIdentityService() *SimulatedIdentityService {
	return &SimulatedIdentityService{accounts: make(map[uuid.UUID]Customer)}
}

// AddCustomer registers a customer account.
func (s *SimulatedIdentityService) AddCustomer(c Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[c.ID] = c
}

// GetCustomer resolves a customer. Unregistered IDs resolve as active accounts
// so local booking flows work without seeding.
func (s *SimulatedIdentityService) GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.accounts[id]; ok {
		cp := c
		return &cp, nil
	}
	return &Customer{ID: id, Name: "Guest Customer", Status: CustomerActive}, nil
}

// driverRecord pairs a driver profile with its rating aggregate.
type driverRecord struct {
	driver      Driver
	ratingCount int
}

// SimulatedDriverDirectory is an in-process DriverClient. It owns the driver
// rating aggregates the way the real directory does: UpdateRating folds the
// score into the driver's running average and increments the completed-ride
// count atomically under the directory's lock.
type SimulatedDriverDirectory struct {
	mu      sync.Mutex
	drivers map[uuid.UUID]*driverRecord
}

// NewSimulatedDriverDirectory creates a directory seeded with the given
// drivers, all immediately available.
func NewSimulatedDriverDirectory(drivers []Driver) *SimulatedDriverDirectory {
	d := &SimulatedDriverDirectory{drivers: make(map[uuid.UUID]*driverRecord, len(drivers))}
	for _, drv := range drivers {
		count := 0
		if !drv.Rating.IsZero() {
			count = 1
		}
		d.drivers[drv.ID] = &driverRecord{driver: drv, ratingCount: count}
	}
	return d
}

// ListAvailable returns every driver in the directory.
func (d *SimulatedDriverDirectory) ListAvailable(ctx context.Context) ([]Driver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Driver, 0, len(d.drivers))
	for _, rec := range d.drivers {
		out = append(out, rec.driver)
	}
	return out, nil
}

// UpdateRating folds the score into the driver's aggregate.
func (d *SimulatedDriverDirectory) UpdateRating(ctx context.Context, driverID uuid.UUID, update RatingUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.drivers[driverID]
	if !ok {
		return ErrDriverNotFound
	}

	rec.driver.Rating = rating.Aggregate(rec.driver.Rating, rec.ratingCount, update.Score)
	rec.ratingCount++
	return nil
}

// Rating returns a driver's current aggregate, for inspection.
func (d *SimulatedDriverDirectory) Rating(driverID uuid.UUID) (decimal.Decimal, int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.drivers[driverID]
	if !ok {
		return decimal.Decimal{}, 0, ErrDriverNotFound
	}
	return rec.driver.Rating, rec.ratingCount, nil
}

// DefaultSimulatedDrivers is the seed fleet used when the service runs with
// simulated collaborators.
func DefaultSimulatedDrivers() []Driver {
	return []Driver{
		{
			ID:     uuid.New(),
			Name:   "Ravi Kumar",
			Phone:  "+91-9876543210",
			Rating: decimal.RequireFromString("4.50"),
			Vehicle: Vehicle{
				Model:       "Toyota Etios",
				PlateNumber: "KA-01-AB-1234",
				Color:       "White",
			},
		},
		{
			ID:     uuid.New(),
			Name:   "Meera Nair",
			Phone:  "+91-9876501234",
			Rating: decimal.RequireFromString("4.80"),
			Vehicle: Vehicle{
				Model:       "Honda City",
				PlateNumber: "KA-05-CD-5678",
				Color:       "Silver",
			},
		},
		{
			ID:     uuid.New(),
			Name:   "Arjun Singh",
			Phone:  "+91-9876598765",
			Rating: decimal.RequireFromString("4.20"),
			Vehicle: Vehicle{
				Model:       "Maruti Dzire",
				PlateNumber: "KA-03-EF-9012",
				Color:       "Blue",
			},
		},
	}
}
