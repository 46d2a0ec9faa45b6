package selection

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbango/ride-booking/internal/client"
)

type fixedRand struct {
	n int
}

func (f fixedRand) Intn(n int) int { return f.n % n }

func makeDrivers(n int) []client.Driver {
	drivers := make([]client.Driver, n)
	for i := range drivers {
		drivers[i] = client.Driver{ID: uuid.New(), Name: "Driver"}
	}
	return drivers
}

func TestPick_Empty(t *testing.T) {
	selector := NewSelector(fixedRand{})

	_, err := selector.Pick(nil)

	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPick_SingleCandidate(t *testing.T) {
	drivers := makeDrivers(1)
	selector := NewSelector(fixedRand{n: 7})

	picked, err := selector.Pick(drivers)
	require.NoError(t, err)

	assert.Equal(t, drivers[0].ID, picked.ID)
}

func TestPick_ReturnsMemberOfCandidates(t *testing.T) {
	drivers := makeDrivers(5)

	for i := 0; i < 5; i++ {
		selector := NewSelector(fixedRand{n: i})

		picked, err := selector.Pick(drivers)
		require.NoError(t, err)

		assert.Equal(t, drivers[i].ID, picked.ID)
	}
}
