package housing

// CategoryCounts maps observed categories to their counts and remembers the
// order in which each category was first seen. The zero value is empty.
type CategoryCounts struct {
	order  []Category
	counts map[Category]int
}

// CountCategories tallies labels. Only observed categories get a key.
func CountCategories(labels []Category) CategoryCounts {
	var cc CategoryCounts
	for _, l := range labels {
		cc.add(l)
	}
	return cc
}

func (cc *CategoryCounts) add(c Category) {
	if cc.counts == nil {
		cc.counts = make(map[Category]int)
	}
	if _, seen := cc.counts[c]; !seen {
		cc.order = append(cc.order, c)
	}
	cc.counts[c]++
}

// Get returns the count for c and whether c was observed.
func (cc CategoryCounts) Get(c Category) (int, bool) {
	n, ok := cc.counts[c]
	return n, ok
}

// Len returns the number of distinct categories observed.
func (cc CategoryCounts) Len() int { return len(cc.order) }

// Total returns the number of labels counted.
func (cc CategoryCounts) Total() int {
	total := 0
	for _, n := range cc.counts {
		total += n
	}
	return total
}

// Categories returns observed categories in first-seen order.
func (cc CategoryCounts) Categories() []Category {
	out := make([]Category, len(cc.order))
	copy(out, cc.order)
	return out
}

// Map returns a copy of the counts.
func (cc CategoryCounts) Map() map[Category]int {
	m := make(map[Category]int, len(cc.counts))
	for k, v := range cc.counts {
		m[k] = v
	}
	return m
}
