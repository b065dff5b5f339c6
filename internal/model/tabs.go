package model

import "fmt"

// TabSet is a fixed group of mutually exclusive tabs. Exactly one tab is
// active at all times.
type TabSet struct {
	names  []string
	active int
}

// NewTabSet creates a tab set with the first name active.
func NewTabSet(names ...string) (*TabSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("tab set needs at least one tab")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("duplicate tab %q", n)
		}
		seen[n] = true
	}
	return &TabSet{names: append([]string(nil), names...)}, nil
}

// Names returns the tab names in order.
func (t *TabSet) Names() []string {
	return append([]string(nil), t.names...)
}

// Active returns the active tab name.
func (t *TabSet) Active() string {
	return t.names[t.active]
}

// IsActive reports whether name is the active tab.
func (t *TabSet) IsActive(name string) bool {
	return t.Active() == name
}

// Activate makes name the only active tab. Unknown names are rejected and
// the current tab stays active.
func (t *TabSet) Activate(name string) error {
	for i, n := range t.names {
		if n == name {
			t.active = i
			return nil
		}
	}
	return fmt.Errorf("unknown tab %q", name)
}

// States returns the active flag of every tab in order.
func (t *TabSet) States() []bool {
	out := make([]bool, len(t.names))
	out[t.active] = true
	return out
}
