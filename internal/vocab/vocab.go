// Package vocab holds the controlled vocabularies (AVS lists) that BWARM fields
// are checked against.
//
// A Set is built once per validation run and never modified afterwards, so it
// can be shared by every entity task without locking.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Domain identifies one controlled-vocabulary list.
type Domain int

const (
	Territories Domain = iota
	TitleTypes
	UseTypes
	PartyRoles
	RightShareTypes
	RightTypes
)

var domainNames = [...]struct {
	name  string
	label string
}{
	Territories:     {"Territories", "Territory"},
	TitleTypes:      {"TitleTypes", "TitleType"},
	UseTypes:        {"UseTypes", "UseType"},
	PartyRoles:      {"PartyRoles", "PartyRole"},
	RightShareTypes: {"RightShareTypes", "RightShareType"},
	RightTypes:      {"RightTypes", "RightType"},
}

// Domains returns every known domain in declaration order.
func Domains() []Domain {
	return []Domain{Territories, TitleTypes, UseTypes, PartyRoles, RightShareTypes, RightTypes}
}

func (d Domain) valid() bool {
	return d >= 0 && int(d) < len(domainNames)
}

// String returns the plural list name, e.g. "Territories".
func (d Domain) String() string {
	if !d.valid() {
		return fmt.Sprintf("Domain(%d)", int(d))
	}
	return domainNames[d].name
}

// Label returns the singular name used in error messages, e.g. "Territory".
func (d Domain) Label() string {
	if !d.valid() {
		return d.String()
	}
	return domainNames[d].label
}

// FileName returns the token list file name for the domain.
func (d Domain) FileName() string {
	return d.String() + ".tsv"
}

// Set is an immutable set of valid tokens for one domain.
type Set struct {
	domain Domain
	tokens map[string]struct{}
}

// NewSet builds a set from the given tokens. Empty tokens are ignored.
func NewSet(d Domain, tokens ...string) *Set {
	s := &Set{domain: d, tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if t != "" {
			s.tokens[t] = struct{}{}
		}
	}
	return s
}

// Parse reads a whitespace-separated token list.
func Parse(d Domain, r io.Reader) (*Set, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", d.FileName(), err)
	}
	return NewSet(d, tokens...), nil
}

// Domain returns the domain the set belongs to.
func (s *Set) Domain() Domain { return s.domain }

// Contains reports whether v is a member. Matching is case sensitive.
func (s *Set) Contains(v string) bool {
	_, ok := s.tokens[v]
	return ok
}

// Len returns the number of distinct tokens.
func (s *Set) Len() int { return len(s.tokens) }

// Tokens returns the members in sorted order.
func (s *Set) Tokens() []string {
	out := make([]string, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
