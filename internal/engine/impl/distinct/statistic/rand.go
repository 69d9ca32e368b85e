package statistic

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies the random draws the estimator consumes: uniform floats in
// [0,1) and fair coin flips. It is injected at construction so tests can run
// against a seeded generator and reproduce every decision the estimator makes.
type Source interface {
	Float64() float64
	Bool() bool
}

type pcgSource struct {
	r *rand.Rand
}

// NewPCGSource returns a deterministic Source seeded with the given pair.
func NewPCGSource(seed1, seed2 uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewCryptoSeededSource returns a Source whose seed is drawn from the OS
// entropy pool. This is the default for production paths.
func NewCryptoSeededSource() Source {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &pcgSource{
		r: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(b[:8]),
			binary.LittleEndian.Uint64(b[8:]),
		)),
	}
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

func (s *pcgSource) Bool() bool {
	return s.r.Uint64()&1 == 1
}
