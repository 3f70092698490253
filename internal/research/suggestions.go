package research

// Expander builds keyword suggestions from a fixed, ordered suffix list.
type Expander struct {
	suffixes []string
}

// NewExpander creates an expander over suffixes. The slice is copied.
func NewExpander(suffixes []string) *Expander {
	s := make([]string, len(suffixes))
	copy(s, suffixes)
	return &Expander{suffixes: s}
}

// Expand returns "{keyword} {suffix}" for every suffix, in suffix order.
// Collisions with the keyword itself are not removed.
func (e *Expander) Expand(keyword string) []string {
	out := make([]string, len(e.suffixes))
	for i, suffix := range e.suffixes {
		out[i] = keyword + " " + suffix
	}
	return out
}

// Size is the number of suggestions every Expand call returns.
func (e *Expander) Size() int {
	return len(e.suffixes)
}
