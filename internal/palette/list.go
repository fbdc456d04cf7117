package palette

import "fmt"

// MaxPairs is the number of background/foreground pairs a List retains.
const MaxPairs = 10

// Entry is a single stored color. The JSON form matches the persisted
// record layout {"colors": [{"value": "..."}]}.
type Entry struct {
	Value Color `json:"value"`
}

// Pair is a background color and the foreground derived from it.
type Pair struct {
	Background Color
	Foreground Color
}

// List is an ordered sequence of entries. Index 2i holds a background and
// 2i+1 its complement. A List never holds more than 2*MaxPairs entries.
type List []Entry

// Len returns the number of entries.
func (l List) Len() int { return len(l) }

// PairCount returns the number of complete pairs.
func (l List) PairCount() int { return len(l) / 2 }

// Full reports whether AppendPair would be a no-op.
func (l List) Full() bool { return len(l) >= 2*MaxPairs }

// Pairs returns the list grouped into pairs, oldest first. An orphan
// trailing entry is ignored.
func (l List) Pairs() []Pair {
	pairs := make([]Pair, 0, len(l)/2)
	for i := 0; i+1 < len(l); i += 2 {
		pairs = append(pairs, Pair{Background: l[i].Value, Foreground: l[i+1].Value})
	}
	return pairs
}

// Pair returns the pair at 0-based index i.
func (l List) Pair(i int) (Pair, bool) {
	if i < 0 || 2*i+1 >= len(l) {
		return Pair{}, false
	}
	return Pair{Background: l[2*i].Value, Foreground: l[2*i+1].Value}, true
}

// Values returns the raw colors in order.
func (l List) Values() []Color {
	values := make([]Color, len(l))
	for i, e := range l {
		values[i] = e.Value
	}
	return values
}

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// AppendPair generates a color with gen, derives its complement, and returns
// a new list with both appended (background first). A full list is returned
// unchanged; the cap is soft and not an error.
func AppendPair(l List, gen *Generator) List {
	if l.Full() {
		return l
	}
	bg := gen.Color()
	// Generator output is always valid, so Complement cannot fail here.
	fg, _ := Complement(bg)

	out := make(List, len(l), len(l)+2)
	copy(out, l)
	return append(out, Entry{Value: bg}, Entry{Value: fg})
}

// Clear returns an empty list.
func Clear(List) List {
	return List{}
}

// Restore rebuilds a List from persisted values. Any invalid value fails with
// ErrInvalidColorFormat. An orphan trailing background and anything beyond
// 2*MaxPairs entries are dropped so the result satisfies the List invariants.
func Restore(values []Color) (List, error) {
	n := len(values)
	if n > 2*MaxPairs {
		n = 2 * MaxPairs
	}
	n -= n % 2

	out := make(List, 0, n)
	for i := 0; i < n; i++ {
		if err := values[i].Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, Entry{Value: values[i]})
	}
	return out, nil
}
