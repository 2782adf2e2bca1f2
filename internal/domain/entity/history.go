package entity

// MaxHistory is the number of colours kept in the pick history.
const MaxHistory = 8

// History is an ordered list of distinct colours, most recent first.
type History struct {
	colors []Color
}

func NewHistory(colors ...Color) History {
	h := History{}
	for i := len(colors) - 1; i >= 0; i-- {
		h = h.Push(colors[i])
	}
	return h
}

// HistoryFromHex restores a stored history. Malformed entries are skipped.
func HistoryFromHex(values []string) History {
	colors := make([]Color, 0, len(values))
	for _, v := range values {
		c, err := ParseHex(v)
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}
	return NewHistory(colors...)
}

// Push moves c to the front, dropping any earlier copy and trimming to MaxHistory.
func (h History) Push(c Color) History {
	next := make([]Color, 0, MaxHistory)
	next = append(next, c)
	for _, existing := range h.colors {
		if existing == c {
			continue
		}
		if len(next) == MaxHistory {
			break
		}
		next = append(next, existing)
	}
	return History{colors: next}
}

func (h History) Colors() []Color {
	out := make([]Color, len(h.colors))
	copy(out, h.colors)
	return out
}

func (h History) Hex() []string {
	out := make([]string, len(h.colors))
	for i, c := range h.colors {
		out[i] = c.ToHex()
	}
	return out
}

func (h History) Len() int {
	return len(h.colors)
}
