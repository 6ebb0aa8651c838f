package utils

// OrderedSet is a set of strings that remembers first-insertion order.
type OrderedSet struct {
	seen  map[string]int
	items []string
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]int)}
}

// Add returns true if s was newly added, false if already present.
func (s *OrderedSet) Add(v string) bool {
	if _, exists := s.seen[v]; exists {
		return false
	}
	s.seen[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Position returns the discovery position of v, or -1.
func (s *OrderedSet) Position(v string) int {
	if i, ok := s.seen[v]; ok {
		return i
	}
	return -1
}

// Items returns the members in discovery order. The slice is a copy.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
