package equity

// OmahaRange is a sparse list of (hand, weight) entries, every hand
// sharing the same arity — 4, 5, or 6 — fixed at construction. Entries
// may collide on cards with each other; the engine does not deduplicate.
// Entries colliding with the hero hand or board at query time are
// silently skipped (see holdem's card-removal semantics, generalized to
// Omaha in omaha.go). Iteration order is insertion order: callers that
// insert the same hand twice get it counted twice, by design — ranges
// never deduplicate their own entries.
type OmahaRange struct {
	arity   int
	hands   [][]Card
	weights []float64
}

// NewOmahaRange creates an empty range with the given hand arity, which
// must be 4, 5, or 6.
func NewOmahaRange(arity int) (*OmahaRange, error) {
	if arity != 4 && arity != 5 && arity != 6 {
		return nil, ErrInvalidHandArity
	}
	return &OmahaRange{arity: arity}, nil
}

// Arity returns the fixed hand size of this range.
func (r *OmahaRange) Arity() int {
	return r.arity
}

// Len returns the number of entries (including any duplicates).
func (r *OmahaRange) Len() int {
	return len(r.hands)
}

// AddHand appends a weighted hand. hand must have exactly Arity() cards,
// all distinct. AddHand offers no removal, matching the source's
// append-only semantics.
func (r *OmahaRange) AddHand(hand []Card, weight float64) error {
	if len(hand) != r.arity {
		return ErrInvalidHandArity
	}
	if err := validateDistinct(hand); err != nil {
		return err
	}
	cp := make([]Card, r.arity)
	copy(cp, hand)
	r.hands = append(r.hands, cp)
	r.weights = append(r.weights, weight)
	return nil
}

// ForEach calls fn for every (hand, weight) entry in insertion order.
func (r *OmahaRange) ForEach(fn func(hand []Card, weight float64)) {
	for i, h := range r.hands {
		fn(h, r.weights[i])
	}
}
