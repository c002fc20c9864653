package model

// Stats summarizes completion for a set of items.
type Stats struct {
	Completed  int
	Total      int
	IsComplete bool
}

// NewStats builds a Stats value. IsComplete requires at least one item.
func NewStats(completed, total int) Stats {
	return Stats{
		Completed:  completed,
		Total:      total,
		IsComplete: total > 0 && completed == total,
	}
}

// Remaining returns the number of items not yet completed.
func (s Stats) Remaining() int {
	return s.Total - s.Completed
}
