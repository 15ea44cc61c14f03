package palette

// LabelColor pairs a label with its assigned hex color.
type LabelColor[K comparable] struct {
	Label K      `json:"label"`
	Hex   string `json:"hex"`
}

// Assignment is an insertion-ordered mapping from label to hex color.
//
// Iteration order is the order in which labels were assigned. Labels are
// unique; an Assignment is never mutated after AssignColors returns it.
type Assignment[K comparable] struct {
	entries []LabelColor[K]
	index   map[K]int
}

func newAssignment[K comparable](capacity int) *Assignment[K] {
	return &Assignment[K]{
		entries: make([]LabelColor[K], 0, capacity),
		index:   make(map[K]int, capacity),
	}
}

func (a *Assignment[K]) add(label K, hex string) {
	a.index[label] = len(a.entries)
	a.entries = append(a.entries, LabelColor[K]{Label: label, Hex: hex})
}

// Len returns the number of labels.
func (a *Assignment[K]) Len() int { return len(a.entries) }

// Get returns the hex color assigned to label.
func (a *Assignment[K]) Get(label K) (string, bool) {
	i, ok := a.index[label]
	if !ok {
		return "", false
	}
	return a.entries[i].Hex, true
}

// Labels returns the labels in assignment order.
func (a *Assignment[K]) Labels() []K {
	labels := make([]K, len(a.entries))
	for i, e := range a.entries {
		labels[i] = e.Label
	}
	return labels
}

// Entries returns a copy of the label/color pairs in assignment order.
func (a *Assignment[K]) Entries() []LabelColor[K] {
	out := make([]LabelColor[K], len(a.entries))
	copy(out, a.entries)
	return out
}
