package regexlib

import (
	"fmt"

	"go.uber.org/zap"
)

// Recognizer is a compiled state graph. It is immutable once built and safe
// for concurrent use.
type Recognizer struct {
	states   []State
	patterns []string
}

// Builder feeds patterns into one analyzer so that a single recognizer can
// classify several of them. The first pattern gets symbol 0, the next 1, and
// so on.
type Builder struct {
	cfg      config
	an       analyzer
	patterns []string
}

func NewBuilder(opts ...Option) *Builder {
	cfg := newConfig(opts)
	return &Builder{cfg: cfg, an: analyzer{strict: cfg.strict}}
}

// Add parses pattern and returns the symbol it will be accepted as.
func (b *Builder) Add(pattern string) (int, error) {
	root, err := parse(pattern)
	if err != nil {
		return NoMatch, err
	}
	sym := b.an.feed(root)
	b.patterns = append(b.patterns, pattern)
	b.cfg.logger.Debug("pattern added",
		zap.Int("symbol", sym),
		zap.String("pattern", pattern),
		zap.Stringer("ast", root),
		zap.Int("leaves", len(b.an.leaves)))
	return sym, nil
}

// Build constructs a recognizer from everything added so far. It may be
// called again after further Add calls.
func (b *Builder) Build() *Recognizer {
	c := newConstructor(b.an.leaves, b.cfg.merge, b.cfg.strict)
	states := c.build(b.an.firstpos)
	b.cfg.logger.Debug("recognizer built",
		zap.Int("patterns", len(b.patterns)),
		zap.Int("leaves", len(b.an.leaves)),
		zap.Int("states", len(states)),
		zap.Stringer("merge", b.cfg.merge),
		zap.Bool("strict", b.cfg.strict))
	return &Recognizer{
		states:   states,
		patterns: append([]string(nil), b.patterns...),
	}
}

func Compile(pattern string, opts ...Option) (*Recognizer, error) {
	b := NewBuilder(opts...)
	if _, err := b.Add(pattern); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func MustCompile(pattern string) *Recognizer {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

/* ----------- accessors ----------- */

func (r *Recognizer) Len() int { return len(r.states) }

// Patterns returns the source patterns in symbol order.
func (r *Recognizer) Patterns() []string { return append([]string(nil), r.patterns...) }

// States returns a copy of the state table.
func (r *Recognizer) States() []State {
	out := make([]State, len(r.states))
	for i, s := range r.states {
		out[i] = State{
			Symbol:      s.Symbol,
			Transitions: append([]Transition(nil), s.Transitions...),
		}
	}
	return out
}

// Accepting returns the symbol of state, or NoMatch.
func (r *Recognizer) Accepting(state int) int { return r.states[state].Symbol }

// HasStart reports whether the initial state has any transition. A
// recognizer without one never consumes input.
func (r *Recognizer) HasStart() bool { return len(r.states[Start].Transitions) > 0 }

// Validate checks that every state has sorted, pairwise disjoint intervals
// inside the byte range, at most one default transition, and in-range targets.
func (r *Recognizer) Validate() error {
	for i, s := range r.states {
		prev := Any - 1
		defaults := 0
		for _, t := range s.Transitions {
			if t.Target < 0 || t.Target >= len(r.states) {
				return fmt.Errorf("state %d: transition %v: target out of range", i, t)
			}
			if t.Symbol != r.states[t.Target].Symbol {
				return fmt.Errorf("state %d: transition %v: symbol %d, target has %d", i, t, t.Symbol, r.states[t.Target].Symbol)
			}
			if t.IsDefault() {
				if t.Hi != Any {
					return fmt.Errorf("state %d: malformed default transition %v", i, t)
				}
				defaults++
				prev = Any
				continue
			}
			if t.Lo < 0 || t.Hi > 0xff || t.Lo > t.Hi {
				return fmt.Errorf("state %d: bad interval %v", i, t)
			}
			if t.Lo <= prev {
				return fmt.Errorf("state %d: transition %v overlaps or is out of order", i, t)
			}
			prev = t.Hi
		}
		if defaults > 1 {
			return fmt.Errorf("state %d: %d default transitions", i, defaults)
		}
	}
	return nil
}
