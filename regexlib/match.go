package regexlib

import "sort"

// Start is the index of the initial state.
const Start = 0

// Next returns the state reached from state on c, or -1 if there is no
// transition. An interval match wins over the default transition.
func (r *Recognizer) Next(state int, c byte) int {
	ts := r.states[state].Transitions
	ch := int(c)
	i := sort.Search(len(ts), func(k int) bool { return ts[k].Hi >= ch })
	if i < len(ts) && ts[i].Lo <= ch {
		return ts[i].Target
	}
	if len(ts) > 0 && ts[0].IsDefault() {
		return ts[0].Target
	}
	return -1
}

// Walk follows transitions from the initial state for as long as input
// allows and returns the symbol of the state it stopped in together with
// the number of bytes consumed. It never backs up to an earlier accepting
// state.
func (r *Recognizer) Walk(input string) (symbol, n int) {
	state := Start
	for ; n < len(input); n++ {
		next := r.Next(state, input[n])
		if next < 0 {
			break
		}
		state = next
	}
	return r.states[state].Symbol, n
}

// Match returns the symbol reached by walking input, or NoMatch.
func (r *Recognizer) Match(input string) int {
	sym, _ := r.Walk(input)
	return sym
}

func Match(r *Recognizer, input string) int { return r.Match(input) }
