package regexlib

import (
	"fmt"
	"sort"
	"strconv"
)

// Transition moves to Target on any byte in [Lo,Hi]. A transition with
// Lo == Hi == Any is the default, taken when no interval matches.
type Transition struct {
	Lo, Hi int
	Target int
	Symbol int // Target's accepting symbol
}

func (t Transition) IsDefault() bool { return t.Lo == Any }

func (t Transition) String() string {
	switch {
	case t.IsDefault():
		return fmt.Sprintf(". -> %d", t.Target)
	case t.Lo == t.Hi:
		return fmt.Sprintf("%s -> %d", quoteByte(t.Lo), t.Target)
	default:
		return fmt.Sprintf("%s-%s -> %d", quoteByte(t.Lo), quoteByte(t.Hi), t.Target)
	}
}

// State is one node of a compiled recognizer. Transitions are sorted by Lo,
// so a default transition, if present, comes first.
type State struct {
	Symbol      int
	Transitions []Transition

	gotoSet posSet
}

type constructor struct {
	leaves []*astNode
	merge  MergePolicy
	strict bool
	states []State
	index  map[string]int
}

func newConstructor(leaves []*astNode, merge MergePolicy, strict bool) *constructor {
	return &constructor{leaves: leaves, merge: merge, strict: strict, index: make(map[string]int)}
}

// build registers the initial state and expands states in the order they
// were created until every state has its transitions.
func (c *constructor) build(first posSet) []State {
	c.stateFor(first, NoMatch)
	for i := 0; i < len(c.states); i++ {
		c.expand(i)
	}
	return c.states
}

func (c *constructor) stateFor(set posSet, sym int) int {
	switch c.merge {
	case MergeSubset:
		for i := range c.states {
			s := &c.states[i]
			if s.Symbol != sym || (len(set) == 0 && len(s.gotoSet) != 0) {
				continue
			}
			if s.gotoSet.contains(set) {
				return i
			}
		}
	default:
		k := strconv.Itoa(sym) + ":" + set.key()
		if i, ok := c.index[k]; ok {
			return i
		}
		c.index[k] = len(c.states)
	}
	c.states = append(c.states, State{Symbol: sym, gotoSet: set})
	return len(c.states) - 1
}

// expand sweeps the interval bounds of the leaves in state i and adds one
// transition per maximal sub-interval with a constant covering leaf set.
func (c *constructor) expand(i int) {
	set := c.states[i].gotoSet
	bounds := make([]int, 0, 2*len(set))
	for _, p := range set {
		l := c.leaves[p]
		bounds = append(bounds, l.lo, l.hi+1)
	}
	sort.Ints(bounds)
	bounds = uniqInts(bounds)

	var trans []Transition
	for k := 0; k+1 < len(bounds); k++ {
		lo, hi := bounds[k], bounds[k+1]-1
		var follow posSet
		sym, covered := NoMatch, false
		for _, p := range set {
			l := c.leaves[p]
			if !l.covers(lo, hi) {
				continue
			}
			covered = true
			follow = follow.union(l.followpos)
			if l.symbol == NoMatch {
				continue
			}
			if c.strict {
				// exact interval only, last in set order wins
				if l.lo == lo && l.hi == hi {
					sym = l.symbol
				}
			} else if sym == NoMatch || l.symbol < sym {
				// the earliest fed pattern wins
				sym = l.symbol
			}
		}
		if !covered {
			continue
		}
		target := c.stateFor(follow, sym)
		trans = append(trans, Transition{Lo: lo, Hi: hi, Target: target, Symbol: sym})
	}
	// c.states may have grown; index again
	c.states[i].Transitions = trans
}

func uniqInts(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
