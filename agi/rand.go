package agi

import (
	"math/rand"
	"time"
)

// mathRandSource is the default randSource, backing random() and Wander
// direction picks with math/rand, seeded from the wall clock. The package
// tests construct their object tables with this source too; none of them
// exercise random() or Wander.
type mathRandSource struct {
	r *rand.Rand
}

func newMathRandSource() *mathRandSource {
	return &mathRandSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *mathRandSource) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}
