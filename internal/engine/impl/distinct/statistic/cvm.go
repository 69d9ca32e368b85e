package statistic

import (
	"errors"
	"fmt"
	"math"
)

// ErrThinningFailed reports that a thinning pass left the retained set exactly
// at the threshold. With sane epsilon/delta and an unbiased Source this is not
// expected to happen; it indicates a parameterization or randomness defect.
// The estimator is unusable afterwards, every later Update returns this error.
var ErrThinningFailed = errors.New("thinning failed to reduce retained set below threshold")

// CVM is a single-pass distinct-count estimator over a stream of opaque byte
// keys. It keeps a sampled subset of the elements seen so far and a sampling
// rate p that is halved whenever the subset hits a threshold derived from
// epsilon, delta and the running stream length. The estimate is within a
// relative error of epsilon with probability at least 1-delta.
//
// A CVM instance is not safe for concurrent use; callers that ingest from
// multiple goroutines shard the stream and run one instance per shard.
type CVM struct {
	retained map[string]struct{}
	src      Source

	// sampling rate, always 1/2^k, halved at every thinning
	p float64
	// elements processed so far, seeded by the size hint at construction
	n uint64

	eps   float64
	delta float64

	failed error
}

// NewCVM creates an estimator for the given accuracy epsilon and failure
// probability delta, both in (0,1). sizeHint advises the initial value of the
// running stream length used by the threshold formula; it is not a capacity
// bound and zero is fine. A nil src selects a crypto-seeded generator.
func NewCVM(sizeHint uint64, eps, delta float64, src Source) (*CVM, error) {
	if !(eps > 0 && eps < 1) {
		return nil, fmt.Errorf("epsilon must be in (0,1), got %v", eps)
	}
	if !(delta > 0 && delta < 1) {
		return nil, fmt.Errorf("delta must be in (0,1), got %v", delta)
	}
	// eps*eps can underflow to zero for a tiny epsilon, blowing the threshold
	// formula up to +Inf so thinning never fires and the retained set grows
	// without bound. Checked against the largest possible stream length so the
	// threshold stays finite for the estimator's whole life.
	if math.IsInf(12/(eps*eps)*math.Log(8*float64(math.MaxUint64)/delta), 1) {
		return nil, fmt.Errorf("epsilon %v is too small, threshold is not finite", eps)
	}
	if src == nil {
		src = NewCryptoSeededSource()
	}
	return &CVM{
		retained: make(map[string]struct{}),
		src:      src,
		p:        1.0,
		n:        sizeHint,
		eps:      eps,
		delta:    delta,
	}, nil
}

// Threshold evaluates the retained-set bound ceil((12/eps^2)*ln(8n/delta)).
// n below 1 is clamped to 1 so the logarithm argument stays positive.
func Threshold(eps, delta float64, n uint64) int {
	if n < 1 {
		n = 1
	}
	return int(math.Ceil(12 / (eps * eps) * math.Log(8*float64(n)/delta)))
}

// Update feeds one stream element into the estimator.
//
// The element is removed from the retained set if present and re-admitted by a
// fresh Bernoulli trial at the current rate, so retention always reflects the
// rate in effect at the element's latest occurrence. When the retained set
// reaches the threshold exactly, each element is kept on an independent fair
// coin flip and the rate is halved. The equality check is deliberate: the set
// grows by at most one per call, so the crossing transition is the only one
// that matters even though the threshold itself moves with the stream length.
func (c *CVM) Update(elem []byte) error {
	if c.failed != nil {
		return c.failed
	}

	c.n++

	key := string(elem)
	delete(c.retained, key)
	if c.src.Float64() <= c.p {
		c.retained[key] = struct{}{}
	}

	t := Threshold(c.eps, c.delta, c.n)
	if len(c.retained) == t {
		for k := range c.retained {
			if !c.src.Bool() {
				delete(c.retained, k)
			}
		}
		c.p /= 2
		if len(c.retained) == t {
			c.failed = ErrThinningFailed
			return c.failed
		}
	}

	return nil
}

// Estimate returns the current distinct-count approximation, the retained-set
// size scaled up by the inverse sampling rate. The call does not mutate state.
func (c *CVM) Estimate() float64 {
	return float64(len(c.retained)) / c.p
}

// SamplingRate returns the current sampling probability.
func (c *CVM) SamplingRate() float64 {
	return c.p
}

// Processed returns the number of elements seen, including the size hint.
func (c *CVM) Processed() uint64 {
	return c.n
}

// Retained returns the current size of the retained set.
func (c *CVM) Retained() int {
	return len(c.retained)
}

// Epsilon returns the configured relative-error bound.
func (c *CVM) Epsilon() float64 {
	return c.eps
}

// Delta returns the configured failure probability.
func (c *CVM) Delta() float64 {
	return c.delta
}
