package app

// FilterHistoryCapacity is the size of ApplicationState's filter_history
// ring (spec.md §3).
const FilterHistoryCapacity = 50

// FilterHistory is a bounded, append-only-at-the-tail ring of the most
// recently committed filter texts, oldest first.
type FilterHistory struct {
	entries []string
}

// Push appends text, evicting the oldest entry once at capacity. A
// duplicate of the most recent entry is ignored to avoid cluttering
// history with repeated commits of an unchanged filter.
func (h *FilterHistory) Push(text string) {
	if text == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == text {
		return
	}
	h.entries = append(h.entries, text)
	if len(h.entries) > FilterHistoryCapacity {
		h.entries = h.entries[len(h.entries)-FilterHistoryCapacity:]
	}
}

// Entries returns the history oldest-first. The returned slice must not
// be mutated by the caller.
func (h *FilterHistory) Entries() []string { return h.entries }
