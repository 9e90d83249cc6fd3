package parse

import "github.com/mcvoid/pooljson/internal/tables"

// skipWhitespaceAndComments consumes whitespace and, when Comments is
// set, '#'-to-EOL, '//'-to-EOL, and '/*...*/' comments, looping until
// neither is present (spec §4.E: "idempotent - it loops until neither is
// present").
func (p *parser) skipWhitespaceAndComments() {
	for {
		skippedWS := p.skipWhitespace()
		skippedComment := false
		if p.flags.has(Comments) {
			skippedComment = p.skipComment()
		}
		if !skippedWS && !skippedComment {
			return
		}
	}
}

func (p *parser) skipWhitespace() bool {
	skipped := false
	for {
		r, _, err := p.s.peek()
		if err != nil || r >= 256 || !tables.IsWhitespace[byte(r)] {
			return skipped
		}
		p.s.next()
		skipped = true
	}
}

// skipComment consumes at most one comment starting at the current
// position, returning whether one was found.
func (p *parser) skipComment() bool {
	start := p.s.pos
	r, _, err := p.s.peek()
	if err != nil {
		return false
	}
	switch r {
	case '#':
		p.s.next()
		p.skipToEOL()
		return true
	case '/':
		save := p.s.pos
		p.s.next()
		r2, _, err2 := p.s.peek()
		if err2 != nil {
			p.s.pos = save
			return false
		}
		switch r2 {
		case '/':
			p.s.next()
			p.skipToEOL()
			return true
		case '*':
			p.s.next()
			p.skipBlockComment()
			return true
		default:
			p.s.pos = save
			return false
		}
	default:
		p.s.pos = start
		return false
	}
}

func (p *parser) skipToEOL() {
	for {
		r, _, err := p.s.peek()
		if err != nil || r == '\n' {
			return
		}
		p.s.next()
	}
}

// skipBlockComment consumes up to the matching "*/", or to end-of-input
// if unterminated (spec §4.E: no error for an unterminated block
// comment - comments are whitespace, and whitespace may simply run out).
func (p *parser) skipBlockComment() {
	for {
		r, _, err := p.s.peek()
		if err != nil {
			return
		}
		if r == '*' {
			save := p.s.pos
			p.s.next()
			r2, _, err2 := p.s.peek()
			if err2 == nil && r2 == '/' {
				p.s.next()
				return
			}
			p.s.pos = save
			p.s.next()
			continue
		}
		p.s.next()
	}
}
