package regexlib

import (
	"strconv"
	"strings"
)

type nodeType int

const (
	nConcat   nodeType = iota // ordered sequence
	nBracket                  // character class [...]
	nAlt                      // a|b, always two children
	nRange                    // leaf: [lo,hi] or Any
	nStar                     // *
	nPlus                     // +
	nQuestion                 // ?
	nRepeat                   // {m,n}
)

// Any is the sentinel interval bound of the "." leaf and of default transitions.
const Any = -1

type astNode struct {
	typ      nodeType
	children []*astNode

	lo, hi   int // for nRange
	min, max int // for nRepeat, max < 0 means unbounded

	// filled in by the analyzer
	nullable  bool
	pos       int
	symbol    int
	firstpos  posSet
	lastpos   posSet
	followpos posSet // leaves only
}

func rangeNode(lo, hi int) *astNode {
	return &astNode{typ: nRange, lo: lo, hi: hi, symbol: NoMatch}
}

func anyNode() *astNode { return rangeNode(Any, Any) }

func unaryNode(typ nodeType, child *astNode) *astNode {
	return &astNode{typ: typ, children: []*astNode{child}}
}

func (n *astNode) isAny() bool { return n.lo == Any }

// covers reports whether the leaf interval contains [lo,hi].
func (n *astNode) covers(lo, hi int) bool { return n.lo <= lo && hi <= n.hi }

// String renders the tree in pattern syntax; used by tests and debug logging.
func (n *astNode) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *astNode) write(b *strings.Builder) {
	switch n.typ {
	case nConcat:
		b.WriteByte('(')
		for _, c := range n.children {
			c.write(b)
		}
		b.WriteByte(')')
	case nBracket:
		b.WriteByte('[')
		for _, c := range n.children {
			c.write(b)
		}
		b.WriteByte(']')
	case nAlt:
		n.children[0].write(b)
		b.WriteByte('|')
		n.children[1].write(b)
	case nRange:
		switch {
		case n.isAny():
			b.WriteByte('.')
		case n.lo == n.hi:
			b.WriteString(quoteByte(n.lo))
		default:
			b.WriteString(quoteByte(n.lo))
			b.WriteByte('-')
			b.WriteString(quoteByte(n.hi))
		}
	case nStar:
		n.children[0].write(b)
		b.WriteByte('*')
	case nPlus:
		n.children[0].write(b)
		b.WriteByte('+')
	case nQuestion:
		n.children[0].write(b)
		b.WriteByte('?')
	case nRepeat:
		n.children[0].write(b)
		b.WriteByte('{')
		b.WriteString(strconv.Itoa(n.min))
		if n.max != n.min {
			b.WriteByte(',')
			if n.max >= 0 {
				b.WriteString(strconv.Itoa(n.max))
			}
		}
		b.WriteByte('}')
	default:
		panic("regexlib: unknown ast node")
	}
}

func quoteByte(c int) string {
	switch {
	case c == '\\':
		return `\\`
	case strings.IndexByte(`()[]|*+?{}.-`, byte(c)) >= 0:
		return `\` + string(rune(c))
	case c < 0x20 || c >= 0x7f:
		return `\x` + strconv.FormatInt(int64(c)|0x100, 16)[1:]
	default:
		return string(rune(c))
	}
}
