package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniformly distributed floats in [0, 1).
// Every random decision in the draw path goes through one so tests can seed it.
type RandomSource interface {
	Float64() float64
}

type cryptoSource struct{}

// Float64 reads 53 random bits from crypto/rand
func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return rand.Float64() //nolint:gosec // fallback only when the OS source fails
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultSource returns the production random source backed by crypto/rand.
func DefaultSource() RandomSource {
	return cryptoSource{}
}

// SeededSource is a reproducible PCG-backed source. Safe for concurrent use.
type SeededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource creates a reproducible source for simulations and tests
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, 0))} //nolint:gosec // reproducibility is the point
}

// Float64 returns the next value in [0, 1)
func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// SourceFunc adapts a plain function into a RandomSource.
type SourceFunc func() float64

// Float64 calls f
func (f SourceFunc) Float64() float64 {
	return f()
}

// RandomIndex maps one draw from src onto [0, n). Returns 0 when n <= 1.
func RandomIndex(src RandomSource, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(src.Float64() * float64(n))
	// Guards against sources that return exactly 1.0
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
