package regexlib

import "go.uber.org/zap"

// MergePolicy decides when a candidate goto set reuses an existing state.
type MergePolicy int

const (
	// MergeExact reuses a state only when both position sets are equal.
	MergeExact MergePolicy = iota
	// MergeSubset reuses the first state whose set contains the candidate.
	// An empty candidate only merges with an empty state.
	MergeSubset
)

func (m MergePolicy) String() string {
	switch m {
	case MergeExact:
		return "exact"
	case MergeSubset:
		return "subset"
	}
	return "unknown"
}

type config struct {
	logger *zap.Logger
	merge  MergePolicy
	strict bool
}

type Option func(*config)

func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithMergePolicy(m MergePolicy) Option {
	return func(c *config) { c.merge = m }
}

// WithStrictSemantics restores the classic construction rules: Plus is never
// nullable, Repeat always loops back and is nullable only when its minimum
// is 0, and a transition's symbol comes from the last accepting leaf whose
// interval equals the swept sub-interval exactly, so later patterns win ties.
func WithStrictSemantics() Option {
	return func(c *config) { c.strict = true }
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop(), merge: MergeExact}
	for _, o := range opts {
		o(&c)
	}
	return c
}
