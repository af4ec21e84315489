package regexlib

// maxRepeat bounds the numbers accepted inside {m,n}.
const maxRepeat = 1 << 16

type parser struct {
	lex   *lexer
	look  token
	depth int // open groups
}

func parse(pattern string) (*astNode, error) {
	p := &parser{lex: newLexer(pattern)}
	if err := p.scan(); err != nil {
		return nil, err
	}
	return p.parseConcat()
}

func (p *parser) scan() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

func (p *parser) errorf(off int, msg string) error {
	return &PatternError{Pattern: p.lex.input, Offset: off, Msg: msg, Err: ErrMalformedPattern}
}

// concat := item* ('|' concat)?
//
// A nested concat consumes the ')' of its group, so "(a|b)" closes in the
// right-hand side of the alternation.
func (p *parser) parseConcat() (*astNode, error) {
	concat := &astNode{typ: nConcat}
	for {
		switch p.look.typ {
		case tEOF:
			if p.depth > 0 {
				return nil, p.errorf(p.look.off, "missing )")
			}
			return concat, nil
		case tRParen:
			if p.depth == 0 {
				return nil, p.errorf(p.look.off, "unbalanced )")
			}
			p.depth--
			if err := p.scan(); err != nil {
				return nil, err
			}
			return concat, nil
		case tUnion:
			if err := p.scan(); err != nil {
				return nil, err
			}
			rhs, err := p.parseConcat()
			if err != nil {
				return nil, err
			}
			return &astNode{typ: nAlt, children: []*astNode{concat, rhs}}, nil
		default:
			item, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			concat.children = append(concat.children, item)
		}
	}
}

// item := postfix(atom)
// atom := '(' concat ')' | '[' class ']' | char | '.'
func (p *parser) parseItem() (*astNode, error) {
	var node *astNode
	tok := p.look
	switch tok.typ {
	case tLParen:
		if err := p.scan(); err != nil {
			return nil, err
		}
		p.depth++
		inner, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		node = inner
	case tLBracket:
		if err := p.scan(); err != nil {
			return nil, err
		}
		class, err := p.parseClass(tok.off)
		if err != nil {
			return nil, err
		}
		node = class
	case tDot:
		if err := p.scan(); err != nil {
			return nil, err
		}
		node = anyNode()
	case tStar, tPlus, tQMark, tLBrace:
		return nil, p.errorf(tok.off, "missing operand for repetition operator")
	default:
		// '}', ',', ']' and '-' are ordinary characters outside a class
		if err := p.scan(); err != nil {
			return nil, err
		}
		node = rangeNode(tok.ch, tok.ch)
	}
	return p.parsePostfix(node)
}

var postfixNodes = map[tokenType]nodeType{tStar: nStar, tPlus: nPlus, tQMark: nQuestion}

// At most one postfix operator follows an atom; "a**" and "a+?" are malformed.
func (p *parser) parsePostfix(node *astNode) (*astNode, error) {
	switch p.look.typ {
	case tStar, tPlus, tQMark:
		node = unaryNode(postfixNodes[p.look.typ], node)
		if err := p.scan(); err != nil {
			return nil, err
		}
	case tLBrace:
		min, max, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		node = &astNode{typ: nRepeat, children: []*astNode{node}, min: min, max: max}
	default:
		return node, nil
	}
	switch p.look.typ {
	case tStar, tPlus, tQMark, tLBrace:
		return nil, p.errorf(p.look.off, "missing operand for repetition operator")
	}
	return node, nil
}

// class := choice*
// choice := char ('-' char)?
func (p *parser) parseClass(open int) (*astNode, error) {
	class := &astNode{typ: nBracket}
	add := func(lo, hi int) { class.children = append(class.children, rangeNode(lo, hi)) }
	for {
		switch p.look.typ {
		case tEOF:
			return nil, p.errorf(open, "missing ]")
		case tRBracket:
			if len(class.children) == 0 {
				return nil, &PatternError{Pattern: p.lex.input, Offset: open, Msg: "no members", Err: ErrEmptyClass}
			}
			if err := p.scan(); err != nil {
				return nil, err
			}
			return class, nil
		}

		lo := p.look.ch
		if err := p.scan(); err != nil {
			return nil, err
		}
		if p.look.typ != tDash {
			add(lo, lo)
			continue
		}
		dash := p.look.off
		if err := p.scan(); err != nil {
			return nil, err
		}
		switch p.look.typ {
		case tRBracket:
			// trailing '-' is literal
			add(lo, lo)
			add('-', '-')
			continue
		case tEOF:
			return nil, p.errorf(open, "missing ]")
		}
		hi := p.look.ch
		if hi < lo {
			return nil, p.errorf(dash, "reversed range in class")
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		add(lo, hi)
	}
}

// '{' int (',' int?)? '}'
func (p *parser) parseRepeat() (int, int, error) {
	open := p.look.off
	if err := p.scan(); err != nil {
		return 0, 0, err
	}
	min, ok, err := p.parseInt()
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return 0, 0, p.errorf(open, "expected number in repetition")
	}
	max := min
	if p.look.typ == tComma {
		if err := p.scan(); err != nil {
			return 0, 0, err
		}
		n, ok, err := p.parseInt()
		if err != nil {
			return 0, 0, err
		}
		max = -1
		if ok {
			max = n
		}
	}
	if p.look.typ != tRBrace {
		return 0, 0, p.errorf(open, "missing }")
	}
	if max >= 0 && max < min {
		return 0, 0, p.errorf(open, "repetition bounds out of order")
	}
	if err := p.scan(); err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

func (p *parser) parseInt() (int, bool, error) {
	n, seen := 0, false
	for p.look.typ == tChar && p.look.ch >= '0' && p.look.ch <= '9' {
		n = n*10 + p.look.ch - '0'
		if n > maxRepeat {
			return 0, false, p.errorf(p.look.off, "repetition bound too large")
		}
		seen = true
		if err := p.scan(); err != nil {
			return 0, false, err
		}
	}
	return n, seen, nil
}
