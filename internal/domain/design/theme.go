package design

import (
	"strings"
	"sync/atomic"
)

type Theme string

const (
	Classic    Theme = "classic"
	Modern     Theme = "modern"
	Bold       Theme = "bold"
	Minimal    Theme = "minimal"
	Elegant    Theme = "elegant"
	Industrial Theme = "industrial"
)

const Default = Classic

// All lists the themes in menu order.
func All() []Theme {
	return []Theme{Classic, Modern, Bold, Minimal, Elegant, Industrial}
}

// Parse maps a config value to a theme. Unknown values report ok=false.
func Parse(s string) (Theme, bool) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range All() {
		if t == known {
			return t, true
		}
	}
	return Default, false
}

// Selector holds the process-wide chrome theme. It is read once per request and only
// changes through Reload.
type Selector struct {
	current atomic.Pointer[Theme]
}

func NewSelector(configured string) (*Selector, bool) {
	s := &Selector{}
	t, ok := Parse(configured)
	s.current.Store(&t)
	return s, ok
}

func (s *Selector) Current() Theme {
	if s == nil {
		return Default
	}
	if t := s.current.Load(); t != nil {
		return *t
	}
	return Default
}

// Reload re-reads the theme from configuration. An unknown value keeps the current theme.
func (s *Selector) Reload(configured string) bool {
	t, ok := Parse(configured)
	if !ok {
		return false
	}
	s.current.Store(&t)
	return true
}
