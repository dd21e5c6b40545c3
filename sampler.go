package starwake

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Sampler is the source of uniform draws used by generation and respawn.
type Sampler interface {
	// Uniform01 returns a value in [0, 1).
	Uniform01() float64
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() float64

// Uniform01 calls f.
func (f SamplerFunc) Uniform01() float64 { return f() }

// RandSampler draws from a math/rand/v2 generator it owns.
type RandSampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler seeded with seed. Two samplers created with the
// same seed produce the same sequence.
func NewSampler(seed uint64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform01 returns a value in [0, 1).
func (s *RandSampler) Uniform01() float64 {
	return s.rng.Float64()
}

// DefaultSampler returns a sampler backed by the process-wide generator. It is
// not reproducible across runs.
func DefaultSampler() Sampler {
	return SamplerFunc(rand.Float64)
}

// UniformRange returns lo + u*(hi-lo) for one draw u.
func UniformRange(s Sampler, lo, hi float64) float64 {
	return lo + s.Uniform01()*(hi-lo)
}

// UniformOnSphere samples a point whose direction is uniform over the unit
// sphere and whose radius is uniform in [rMin, rMax]. Draws are taken in the
// order theta, phi, radius.
func UniformOnSphere(s Sampler, rMin, rMax float64) mgl64.Vec3 {
	theta := s.Uniform01() * 2 * math.Pi
	phi := math.Acos(2*s.Uniform01() - 1)
	r := UniformRange(s, rMin, rMax)

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return mgl64.Vec3{
		r * sinPhi * cosTheta,
		r * sinPhi * sinTheta,
		r * cosPhi,
	}
}

// samplePhase returns a phase offset in [0, 2π).
func samplePhase(s Sampler) float64 {
	return s.Uniform01() * 2 * math.Pi
}
