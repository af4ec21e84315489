package regexlib

import (
	"sort"
	"strconv"
	"strings"
)

// posSet is a sorted set of leaf positions.
type posSet []int

func (s posSet) has(p int) bool {
	i := sort.SearchInts(s, p)
	return i < len(s) && s[i] == p
}

// union returns s ∪ o as a new set; neither input is modified.
func (s posSet) union(o posSet) posSet {
	out := make(posSet, 0, len(s)+len(o))
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		switch {
		case s[i] < o[j]:
			out = append(out, s[i])
			i++
		case s[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	return append(out, o[j:]...)
}

func (s posSet) contains(o posSet) bool {
	for _, p := range o {
		if !s.has(p) {
			return false
		}
	}
	return true
}

func (s posSet) equal(o posSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s posSet) key() string {
	var b strings.Builder
	for i, p := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}
