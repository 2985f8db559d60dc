package mosaic

import "strconv"

// IDSource supplies identifiers for nodes the engine creates itself,
// such as the branch introduced by a split drop. Injecting the source
// keeps layouts deterministic and testable; wall-clock ids would not be.
type IDSource interface {
	NextID() string
}

// counterSource issues prefix-N ids from a monotonic counter.
type counterSource struct {
	prefix string
	next   int
}

// NewCounterSource returns a deterministic IDSource issuing "prefix-1",
// "prefix-2", ... It is not safe for concurrent use, matching the
// single-owner-thread discipline of the controller that holds it.
func NewCounterSource(prefix string) IDSource {
	return &counterSource{prefix: prefix}
}

func (s *counterSource) NextID() string {
	s.next++
	return s.prefix + "-" + strconv.Itoa(s.next)
}
