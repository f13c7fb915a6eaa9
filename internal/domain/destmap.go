package domain

// DestinationMap accumulates resolved text per destination. Keys keep their
// first-insertion order, which the distribution sinks rely on.
type DestinationMap struct {
	order []string
	text  map[string]string
}

// NewDestinationMap creates an empty destination map.
func NewDestinationMap() *DestinationMap {
	return &DestinationMap{text: make(map[string]string)}
}

// Destinations returns the destination keys in insertion order.
func (m *DestinationMap) Destinations() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Text returns the accumulated text for dest and whether dest is present.
func (m *DestinationMap) Text(dest string) (string, bool) {
	t, ok := m.text[dest]
	return t, ok
}

// Len returns the number of destinations.
func (m *DestinationMap) Len() int {
	return len(m.order)
}

// Fold applies one contribution to dest using the wrap rule: the new text is
// pre ++ existing ++ raw ++ post. A later contribution to the same
// destination therefore wraps the entire prior accumulation between its own
// pre/post fragments instead of appending after it.
func (m *DestinationMap) Fold(dest, pre, raw, post string) {
	existing, ok := m.text[dest]
	if !ok {
		m.order = append(m.order, dest)
	}
	m.text[dest] = pre + existing + raw + post
}

// Take removes dest from the map and returns its text.
func (m *DestinationMap) Take(dest string) (string, bool) {
	t, ok := m.text[dest]
	if !ok {
		return "", false
	}
	delete(m.text, dest)
	for i, d := range m.order {
		if d == dest {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return t, true
}

// Merge folds every entry of other into m, appending per destination and
// preserving the insertion order of keys new to m.
func (m *DestinationMap) Merge(other *DestinationMap) {
	for _, dest := range other.order {
		m.Fold(dest, "", other.text[dest], "")
	}
}
