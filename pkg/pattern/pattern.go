// Package pattern provides a small combinator set for recognizing text
// prefixes. The build.gradle section grammars are all fixed, non-recursive,
// and resolvable by their leading literals, so a handful of combinators is
// enough; there is no backtracking and no capture support.
//
// Matchers are immutable after construction and safe to share across any
// number of concurrent scans.
package pattern

import "unicode/utf8"

// Matcher recognizes whether the text starting at pos begins with the
// pattern. On success it returns the offset just past the recognized prefix.
// A Matcher never consumes input beyond what its pattern describes.
type Matcher interface {
	Match(text string, pos int) (end int, ok bool)
}

// Literal matches the exact string s.
func Literal(s string) Matcher {
	return literal(s)
}

type literal string

func (l literal) Match(text string, pos int) (int, bool) {
	end := pos + len(l)
	if end > len(text) || text[pos:end] != string(l) {
		return 0, false
	}
	return end, true
}

// Rune matches the single rune r.
func Rune(r rune) Matcher {
	return charClass(func(c rune) bool { return c == r })
}

// AnyOf matches any single rune contained in set.
func AnyOf(set string) Matcher {
	return charClass(func(c rune) bool { return contains(set, c) })
}

// NoneOf matches any single rune not contained in set.
func NoneOf(set string) Matcher {
	return charClass(func(c rune) bool { return !contains(set, c) })
}

func contains(set string, c rune) bool {
	for _, r := range set {
		if r == c {
			return true
		}
	}
	return false
}

type charClass func(rune) bool

func (f charClass) Match(text string, pos int) (int, bool) {
	if pos >= len(text) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if !f(r) {
		return 0, false
	}
	return pos + size, true
}

// Seq matches each sub-matcher in order, contiguously. All must succeed.
func Seq(ms ...Matcher) Matcher {
	return sequence(ms)
}

type sequence []Matcher

func (s sequence) Match(text string, pos int) (int, bool) {
	p := pos
	for _, m := range s {
		end, ok := m.Match(text, p)
		if !ok {
			return 0, false
		}
		p = end
	}
	return p, true
}

// Alt tries each alternative in order; the first success wins.
func Alt(ms ...Matcher) Matcher {
	return choice(ms)
}

type choice []Matcher

func (c choice) Match(text string, pos int) (int, bool) {
	for _, m := range c {
		if end, ok := m.Match(text, pos); ok {
			return end, true
		}
	}
	return 0, false
}

// Star matches m zero or more times, greedily.
func Star(m Matcher) Matcher {
	return repetition{m: m, min: 0}
}

// Plus matches m one or more times, greedily.
func Plus(m Matcher) Matcher {
	return repetition{m: m, min: 1}
}

type repetition struct {
	m   Matcher
	min int
}

func (r repetition) Match(text string, pos int) (int, bool) {
	p := pos
	count := 0
	for {
		end, ok := r.m.Match(text, p)
		if !ok || end == p {
			break
		}
		p = end
		count++
	}
	if count < r.min {
		return 0, false
	}
	return p, true
}

// Optional matches m zero or one time.
func Optional(m Matcher) Matcher {
	return optional{m}
}

type optional struct {
	m Matcher
}

func (o optional) Match(text string, pos int) (int, bool) {
	if end, ok := o.m.Match(text, pos); ok {
		return end, true
	}
	return pos, true
}
