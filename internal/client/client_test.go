package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbango/ride-booking/pkg/logger"
)

func TestGetCustomer(t *testing.T) {
	customerID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, fmt.Sprintf("/v1/customers/%s", customerID), r.URL.Path)

		json.NewEncoder(w).Encode(Customer{
			ID:     customerID,
			Name:   "Asha Verma",
			Status: CustomerActive,
		})
	}))
	defer server.Close()

	c := NewHTTPIdentityClient(server.URL, time.Second, logger.NewNop())

	customer, err := c.GetCustomer(context.Background(), customerID)
	require.NoError(t, err)

	assert.Equal(t, customerID, customer.ID)
	assert.Equal(t, "Asha Verma", customer.Name)
	assert.True(t, customer.IsActive())
}

func TestGetCustomer_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewHTTPIdentityClient(server.URL, time.Second, logger.NewNop())

	_, err := c.GetCustomer(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetCustomer_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewHTTPIdentityClient(server.URL, time.Second, logger.NewNop())

	_, err := c.GetCustomer(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetCustomer_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := NewHTTPIdentityClient(server.URL, time.Second, logger.NewNop())

	_, err := c.GetCustomer(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestListAvailable(t *testing.T) {
	drivers := []Driver{
		{ID: uuid.New(), Name: "Ravi Kumar", Vehicle: Vehicle{Model: "Toyota Etios", PlateNumber: "KA-01-AB-1234", Color: "White"}},
		{ID: uuid.New(), Name: "Meera Nair"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/drivers/available", r.URL.Path)
		json.NewEncoder(w).Encode(drivers)
	}))
	defer server.Close()

	c := NewHTTPDriverClient(server.URL, time.Second, logger.NewNop())

	got, err := c.ListAvailable(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, drivers[0].ID, got[0].ID)
	assert.Equal(t, "Toyota Etios", got[0].Vehicle.Model)
}

func TestListAvailable_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := NewHTTPDriverClient(server.URL, time.Second, logger.NewNop())

	got, err := c.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateRating(t *testing.T) {
	driverID := uuid.New()
	rideID := uuid.New()

	var received RatingUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, fmt.Sprintf("/v1/drivers/%s/rating", driverID), r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	c := NewHTTPDriverClient(server.URL, time.Second, logger.NewNop())

	err := c.UpdateRating(context.Background(), driverID, RatingUpdate{Score: 5, RideID: rideID})
	require.NoError(t, err)

	assert.Equal(t, 5, received.Score)
	assert.Equal(t, rideID, received.RideID)
}

func TestUpdateRating_DriverNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewHTTPDriverClient(server.URL, time.Second, logger.NewNop())

	err := c.UpdateRating(context.Background(), uuid.New(), RatingUpdate{Score: 4, RideID: uuid.New()})

	assert.ErrorIs(t, err, ErrDriverNotFound)
}
