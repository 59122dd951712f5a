// Package declarations holds the CSS-like rules users attach to tag names and
// class names, and resolves which of them apply to an element.
package declarations

import (
	"regexp"
	"strings"
	"sync"
)

// Type is the kind of selector a declaration was written for.
type Type string

const (
	TypeClass Type = "class"
	TypeTag   Type = "tag"
)

// Declaration is the set of rules collected for one selector.
type Declaration struct {
	Type Type `json:"type" yaml:"type"`
	// Entity is the class name without its leading dot, or the lowercased tag name.
	Entity string `json:"entity" yaml:"entity"`
	// Rules are the declarations like "font-weight: 700", in insertion order.
	Rules []string `json:"rules" yaml:"rules"`
}

var (
	blockPattern    = regexp.MustCompile(`(?s).+?\s\{.+?\}`)
	selectorPattern = regexp.MustCompile(`(.*)\{(.*)\}`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// Store keeps declarations in the order their selectors were first seen.
// At most one declaration exists per (type, entity) pair. A Store is safe
// for concurrent use.
type Store struct {
	mu           sync.RWMutex
	declarations []*Declaration
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add parses css and merges its blocks into the store. Blocks look like
// `selector { rule; rule; }`; a selector starting with a dot targets a
// class, anything else a tag. Blocks with an empty selector or body are
// ignored. Rules are deduplicated within one block only: adding the same
// rule for a selector twice across calls keeps both copies.
func (s *Store) Add(css string) {
	blocks := blockPattern.FindAllString(css, -1)
	if len(blocks) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, block := range blocks {
		block = whitespaceRun.ReplaceAllString(block, " ")
		m := selectorPattern.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		selector, body := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if selector == "" || body == "" {
			continue
		}

		typ, entity := TypeTag, strings.ToLower(selector)
		if strings.HasPrefix(selector, ".") {
			typ, entity = TypeClass, selector[1:]
		}
		rules := splitRules(body)

		if existing := s.find(typ, entity); existing != nil {
			existing.Rules = append(existing.Rules, rules...)
			continue
		}
		s.declarations = append(s.declarations, &Declaration{Type: typ, Entity: entity, Rules: rules})
	}
}

func (s *Store) find(typ Type, entity string) *Declaration {
	for _, d := range s.declarations {
		if d.Type == typ && d.Entity == entity {
			return d
		}
	}
	return nil
}

// splitRules splits a block body on `;`, trimming and dropping empty
// entries and keeping the first occurrence of duplicates.
func splitRules(body string) []string {
	var rules []string
	seen := make(map[string]struct{})
	for _, r := range strings.Split(body, ";") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		rules = append(rules, r)
	}
	return rules
}

// Reset drops every declaration.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.declarations = nil
}

// Len returns the number of declarations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.declarations)
}

// All returns a copy of the declarations in store order.
func (s *Store) All() []Declaration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Declaration, 0, len(s.declarations))
	for _, d := range s.declarations {
		out = append(out, Declaration{
			Type:   d.Type,
			Entity: d.Entity,
			Rules:  append([]string(nil), d.Rules...),
		})
	}
	return out
}

// Resolve returns the rules that apply to an element: rules declared for
// its tag name first, then rules declared for any of its classes, each
// group in store order.
func (s *Store) Resolve(tag string, classes []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.declarations) == 0 {
		return nil
	}

	tag = strings.ToLower(tag)
	var fromTag, fromClasses []string
	for _, d := range s.declarations {
		switch d.Type {
		case TypeTag:
			if d.Entity == tag {
				fromTag = append(fromTag, d.Rules...)
			}
		case TypeClass:
			if contains(classes, d.Entity) {
				fromClasses = append(fromClasses, d.Rules...)
			}
		}
	}
	return append(fromTag, fromClasses...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
