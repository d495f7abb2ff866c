package diffcheck

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/msto63/sso/pkg/sso"
)

// DefaultMaxLength is used when Options.MaxLength is not positive
const DefaultMaxLength = 96

// boundaries are lengths around the inline threshold that random lengths
// rarely hit on their own
var boundaries = []int{0, 1, sso.InlineCap - 1, sso.InlineCap, sso.InlineCap + 1, 2 * sso.InlineCap}

// Gen produces the random inputs of a single case. The same seed always
// yields the same sequence.
type Gen struct {
	rng       *rand.Rand
	seed      uint64
	maxLength int
}

// NewGen creates a generator for one case
func NewGen(seed uint64, maxLength int) *Gen {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Gen{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed:      seed,
		maxLength: maxLength,
	}
}

// Seed returns the case seed
func (g *Gen) Seed() uint64 {
	return g.seed
}

// Length returns a content length, biased toward the inline boundary
func (g *Gen) Length() int {
	if g.rng.IntN(5) < 2 {
		if n := boundaries[g.rng.IntN(len(boundaries))]; n <= g.maxLength {
			return n
		}
	}
	return g.rng.IntN(g.maxLength + 1)
}

// Bytes returns random content of Length() bytes. NUL bytes are included.
func (g *Gen) Bytes() []byte {
	b := make([]byte, g.Length())
	for i := range b {
		b[i] = g.Byte()
	}
	return b
}

// Byte returns a random byte. Half of the draws come from a small alphabet
// so prefix and equality checks see matches.
func (g *Gen) Byte() byte {
	if g.rng.IntN(2) == 0 {
		return "ab\x00"[g.rng.IntN(3)]
	}
	return byte(g.rng.UintN(256))
}

// Pos returns a position in [0, n]
func (g *Gen) Pos(n int) int {
	return g.rng.IntN(n + 1)
}

// Beyond returns a position strictly greater than n
func (g *Gen) Beyond(n int) int {
	return n + 1 + g.rng.IntN(g.maxLength+1)
}

// Count returns a count, sometimes larger than any content and sometimes Npos
func (g *Gen) Count() int {
	switch g.rng.IntN(8) {
	case 0:
		return sso.Npos
	case 1:
		return 0
	default:
		return g.rng.IntN(g.maxLength + 1)
	}
}

// IntN returns a value in [0, n)
func (g *Gen) IntN(n int) int {
	return g.rng.IntN(n)
}

// Bool returns a random bool
func (g *Gen) Bool() bool {
	return g.rng.IntN(2) == 0
}

// caseSeed derives the seed of case i of a property from the run seed
func caseSeed(runSeed uint64, property string, i int) uint64 {
	h := fnv.New64a()
	h.Write([]byte(property))
	return splitmix64(runSeed ^ h.Sum64() + uint64(i))
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
