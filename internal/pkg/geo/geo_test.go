package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_IdenticalPoints(t *testing.T) {
	assert.Zero(t, DistanceMeters(-8.5069, 115.2625, -8.5069, 115.2625))
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	// One degree of latitude is about 111.2 km everywhere.
	d := DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 200)

	// One degree of longitude at the equator is about the same.
	d = DistanceMeters(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 200)

	// Short hop: 0.001 degrees of longitude at the equator, roughly 111 m.
	d = DistanceMeters(0, 0, 0, 0.001)
	assert.InDelta(t, 111.2, d, 1)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := DistanceMeters(-8.5069, 115.2625, -8.6500, 115.2167)
	b := DistanceMeters(-8.6500, 115.2167, -8.5069, 115.2625)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceMeters_NonFiniteInput(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceMeters(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(DistanceMeters(0, math.Inf(1), 0, 0)))
}
