package selection

import (
	"errors"

	"github.com/urbango/ride-booking/internal/client"
)

// ErrNoCandidates is returned when Pick is called with an empty candidate set.
var ErrNoCandidates = errors.New("no driver candidates to select from")

// Rand is the randomness source for the uniform selection policy
type Rand interface {
	Intn(n int) int
}

// Selector chooses one driver from a candidate set. The baseline policy is a
// uniform random pick; callers must treat the choice as opaque and rely only
// on the selected driver being a member of the input.
//
// TODO: rank by proximity to pickup once the driver directory exposes live
// locations.
type Selector struct {
	rand Rand
}

// NewSelector creates a selector with the given randomness source
func NewSelector(rand Rand) *Selector {
	return &Selector{rand: rand}
}

// Pick returns one driver from the candidates, or ErrNoCandidates when the
// set is empty.
func (s *Selector) Pick(candidates []client.Driver) (client.Driver, error) {
	if len(candidates) == 0 {
		return client.Driver{}, ErrNoCandidates
	}
	return candidates[s.rand.Intn(len(candidates))], nil
}
