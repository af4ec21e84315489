package regexlib

// analyzer numbers leaves and computes firstpos/lastpos/followpos over every
// pattern fed into one build.
type analyzer struct {
	leaves   []*astNode // indexed by position
	symbols  int
	firstpos posSet // union over all fed roots
	strict   bool
}

// feed annotates root and stamps the next symbol id onto its lastpos leaves.
func (a *analyzer) feed(root *astNode) int {
	a.visit(root)
	a.firstpos = a.firstpos.union(root.firstpos)
	sym := a.symbols
	for _, p := range root.lastpos {
		a.leaves[p].symbol = sym
	}
	a.symbols++
	return sym
}

func (a *analyzer) addFollow(from, to posSet) {
	if len(to) == 0 {
		return
	}
	for _, p := range from {
		leaf := a.leaves[p]
		leaf.followpos = leaf.followpos.union(to)
	}
}

func (a *analyzer) visit(n *astNode) {
	switch n.typ {
	case nRange:
		n.pos = len(a.leaves)
		n.firstpos = posSet{n.pos}
		n.lastpos = posSet{n.pos}
		n.nullable = false
		a.leaves = append(a.leaves, n)

	case nConcat:
		n.nullable = true
		for _, c := range n.children {
			a.visit(c)
			n.nullable = n.nullable && c.nullable
		}
		for _, c := range n.children {
			n.firstpos = n.firstpos.union(c.firstpos)
			if !c.nullable {
				break
			}
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			n.lastpos = n.lastpos.union(c.lastpos)
			if !c.nullable {
				break
			}
		}
		// lastpos(i) -> firstpos(j) for every j reachable over nullable children
		for i := 0; i+1 < len(n.children); i++ {
			for j := i + 1; j < len(n.children); j++ {
				a.addFollow(n.children[i].lastpos, n.children[j].firstpos)
				if !n.children[j].nullable {
					break
				}
			}
		}

	case nBracket:
		for _, c := range n.children {
			a.visit(c)
			n.firstpos = n.firstpos.union(c.firstpos)
			n.lastpos = n.lastpos.union(c.lastpos)
		}
		n.nullable = false

	case nAlt:
		lhs, rhs := n.children[0], n.children[1]
		a.visit(lhs)
		a.visit(rhs)
		n.firstpos = lhs.firstpos.union(rhs.firstpos)
		n.lastpos = lhs.lastpos.union(rhs.lastpos)
		n.nullable = lhs.nullable || rhs.nullable

	case nStar, nPlus, nRepeat:
		c := n.children[0]
		a.visit(c)
		n.firstpos = c.firstpos
		n.lastpos = c.lastpos
		// {m,1} can never loop back
		if a.strict || n.typ != nRepeat || n.max != 1 {
			a.addFollow(c.lastpos, c.firstpos)
		}
		switch {
		case n.typ == nStar:
			n.nullable = true
		case a.strict && n.typ == nPlus:
			n.nullable = false
		case a.strict:
			n.nullable = n.min == 0
		case n.typ == nPlus:
			n.nullable = c.nullable
		default:
			n.nullable = n.min == 0 || c.nullable
		}

	case nQuestion:
		c := n.children[0]
		a.visit(c)
		n.firstpos = c.firstpos
		n.lastpos = c.lastpos
		n.nullable = true

	default:
		panic("regexlib: unknown ast node")
	}
}
