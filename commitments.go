package kzg

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Commitment is a KZG commitment to a polynomial: a single G1 point
type Commitment struct {
	curve Curve
	point Point
}

// NewCommitment wraps a G1 point as a commitment, e.g. one received from a peer
func NewCommitment(curve Curve, point Point) (*Commitment, error) {
	if curve == nil {
		return nil, fmt.Errorf("curve cannot be nil")
	}
	if point == nil {
		return nil, ErrInvalidCommitment.WithDetails("point cannot be nil")
	}
	if !pointOnCurve(curve, point) {
		return nil, ErrInvalidCommitment.WithCause(ErrCurveMismatch)
	}
	if point.Group() != GroupG1 {
		return nil, ErrInvalidCommitment.WithCause(ErrWrongGroup)
	}

	return &Commitment{
		curve: curve,
		point: point,
	}, nil
}

// Point returns the commitment point
func (c *Commitment) Point() Point {
	return c.point
}

// Bytes returns the serialized commitment
func (c *Commitment) Bytes() []byte {
	if c == nil || c.point == nil {
		return nil
	}
	return c.point.Bytes()
}

// Equal checks if two commitments are equal
func (c *Commitment) Equal(other *Commitment) bool {
	if c == nil || other == nil {
		return false
	}
	if c.point == nil || other.point == nil {
		return false
	}
	return c.point.Equal(other.point)
}

// Add returns the commitment to the sum of the two committed polynomials
func (c *Commitment) Add(other *Commitment) (*Commitment, error) {
	if c == nil || other == nil || c.point == nil || other.point == nil {
		return nil, ErrInvalidCommitment.WithDetails("cannot add nil commitments")
	}
	if c.point.CurveName() != other.point.CurveName() {
		return nil, ErrInvalidCommitment.WithCause(ErrCurveMismatch)
	}
	return &Commitment{curve: c.curve, point: c.point.Add(other.point)}, nil
}

func (c *Commitment) String() string {
	if c == nil || c.point == nil {
		return "Commitment{}"
	}
	return fmt.Sprintf("Commitment{%s}", c.point.String())
}

// chunk is a half-open index range [start, end)
type chunk struct {
	start, end int
}

// partition splits [0, n) into at most parts contiguous chunks of near-equal size
func partition(n, parts int) []chunk {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	chunks := make([]chunk, 0, parts)
	size, extra := n/parts, n%parts
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < extra {
			end++
		}
		chunks = append(chunks, chunk{start: start, end: end})
		start = end
	}
	return chunks
}

// workerCount clamps the configured worker count to [1, n]
func workerCount(workers, n int) int {
	if workers < 1 {
		workers = defaultWorkers()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// msm computes sum(scalars[i]·points[i]) over the common prefix of the two
// slices, starting from identity. Each worker reduces its own chunk and the
// partial sums are added in chunk order.
func msm(identity Point, points []Point, scalars []Scalar, workers int) (Point, error) {
	n := min(len(points), len(scalars))
	if n == 0 {
		return identity, nil
	}

	chunks := partition(n, workerCount(workers, n))
	partials := make([]Point, len(chunks))

	var g errgroup.Group
	g.SetLimit(len(chunks))
	for idx, r := range chunks {
		g.Go(func() error {
			acc := identity
			for i := r.start; i < r.end; i++ {
				if points[i].Group() != identity.Group() {
					return ErrInvalidParameters.WithCause(ErrWrongGroup).WithContext("index", i)
				}
				if scalars[i].IsZero() {
					continue
				}
				acc = acc.Add(points[i].Mul(scalars[i]))
			}
			partials[idx] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := identity
	for _, p := range partials {
		result = result.Add(p)
	}
	return result, nil
}
