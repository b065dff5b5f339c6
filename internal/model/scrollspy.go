package model

// Navbar offsets used by the documentation view.
const (
	ScrollSpyOffset  float32 = 150
	ScrollJumpOffset float32 = 100
)

// Section is the vertical extent of a documentation section.
type Section struct {
	ID     string
	Top    float32
	Height float32
}

// Contains reports whether y falls inside [Top, Top+Height).
func (s Section) Contains(y float32) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// ScrollSpy tracks which navigation link is highlighted.
type ScrollSpy struct {
	active string
}

// Active returns the highlighted section id, or "" before any match.
func (s *ScrollSpy) Active() string {
	return s.active
}

// Update recomputes the highlighted section for scrollY and reports whether
// it changed. When no section contains the probe position the previous
// highlight is kept.
func (s *ScrollSpy) Update(sections []Section, scrollY float32) bool {
	id, ok := ActiveSection(sections, scrollY)
	if !ok || id == s.active {
		return false
	}
	s.active = id
	return true
}

// ActiveSection returns the section containing scrollY plus the navbar offset.
func ActiveSection(sections []Section, scrollY float32) (string, bool) {
	probe := scrollY + ScrollSpyOffset
	id, found := "", false
	for _, sec := range sections {
		if sec.Contains(probe) {
			id, found = sec.ID, true
		}
	}
	return id, found
}

// ScrollTarget returns the scroll offset that brings sec under the navbar.
func ScrollTarget(sec Section) float32 {
	y := sec.Top - ScrollJumpOffset
	if y < 0 {
		return 0
	}
	return y
}
