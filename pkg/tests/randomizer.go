package tests

import (
	"math"
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Rates returns n premiums in cents precision drawn from a small pool, so
// duplicates are frequent.
func (r Randomizer) Rates(n int) []float64 {
	pool := 1 + r.Intn(n+1)
	base := make([]float64, pool)
	for i := range base {
		base[i] = math.Round((100+r.Float64()*400)*100) / 100 //nolint:mnd // skip
	}

	rates := make([]float64, n)
	for i := range rates {
		rates[i] = base[r.Intn(pool)]
	}

	return rates
}
