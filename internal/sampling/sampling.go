// Package sampling provides the bounded pseudo-random draws used by the
// generators. The source is explicitly seeded so distribution and
// idempotence tests are reproducible; nothing here touches the process
// global random state.
package sampling

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Sampler wraps a seeded random source.
type Sampler struct {
	rng *rand.Rand
}

// New creates a Sampler from an explicit seed.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a Sampler seeded from the wall clock.
func NewRandom() *Sampler {
	return New(time.Now().UnixNano())
}

// Chance returns true with the given probability, expressed in percent.
func (s *Sampler) Chance(percent int) bool {
	return s.rng.Intn(100) < percent
}

// IntN returns a uniform int in [0, n).
func (s *Sampler) IntN(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Price returns a uniform positive price in [1.00, 500.00), two decimals.
func (s *Sampler) Price() decimal.Decimal {
	cents := 100 + int64(s.rng.Intn(49900))
	return decimal.New(cents, -2)
}

// SignedAmount returns a uniform amount in [-500.00, 500.00), two decimals.
func (s *Sampler) SignedAmount() decimal.Decimal {
	cents := int64(s.rng.Intn(100000)) - 50000
	return decimal.New(cents, -2)
}

// Quantity returns an item quantity: 1 with 70% probability, 2 with 20%,
// 3 with 10%.
func (s *Sampler) Quantity() int {
	switch n := s.rng.Intn(10); {
	case n < 7:
		return 1
	case n < 9:
		return 2
	default:
		return 3
	}
}

// ItemCount returns how many items a purchase contains. Skewed so most
// purchases hold a single item while a few hold large baskets:
// 70% exactly 1, 10% in 2..6, 15% in 5..14, 5% in 10..59.
func (s *Sampler) ItemCount() int {
	switch n := s.rng.Intn(100); {
	case n < 70:
		return 1
	case n < 80:
		return 2 + s.rng.Intn(5)
	case n < 95:
		return 5 + s.rng.Intn(10)
	default:
		return 10 + s.rng.Intn(50)
	}
}

// InstantBetween returns a uniform instant in [from, to].
func (s *Sampler) InstantBetween(from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	span := to.Sub(from)
	return from.Add(time.Duration(s.rng.Int63n(int64(span) + 1)))
}

// Jitter scales amount by a uniform factor in [1-ratio, 1+ratio], rounded
// to two decimals. The sign of amount is preserved for ratio < 1.
func (s *Sampler) Jitter(amount decimal.Decimal, ratio float64) decimal.Decimal {
	factor := 1 - ratio + s.rng.Float64()*2*ratio
	return amount.Mul(decimal.NewFromFloat(factor)).Round(2)
}
