package equity

// HoldemRange is a dense vector of 1326 weights, one per Hold'em combo,
// each a nonnegative real interpreted as probability mass rather than a
// normalized probability. A weight of 0 means "combo absent". A range is
// constructed empty (all zero) and mutated via SetIndex/SetHand.
type HoldemRange struct {
	weights [NumHoldemCombos]float64
}

// NewHoldemRange returns an empty (all-zero) range.
func NewHoldemRange() *HoldemRange {
	return &HoldemRange{}
}

// Weight returns the weight at combo index idx.
func (r *HoldemRange) Weight(idx int) float64 {
	return r.weights[idx]
}

// SetIndex sets the weight of combo idx directly.
func (r *HoldemRange) SetIndex(idx int, weight float64) {
	r.weights[idx] = weight
}

// SetHand sets the weight of the combo {a,b} via the triangular index
// formula in combin.go.
func (r *HoldemRange) SetHand(a, b Card, weight float64) {
	r.weights[comboIndex(a, b)] = weight
}

// SetUniform sets every combo not overlapping dead (e.g. the hero's own
// hand, or the board) to weight, and every overlapping combo to 0. It is
// the fastest way to build a flat, unweighted range.
func (r *HoldemRange) SetUniform(weight float64, dead CardMask) {
	for idx := 0; idx < NumHoldemCombos; idx++ {
		a, b := handFromIndex(idx)
		if dead.Has(a) || dead.Has(b) {
			r.weights[idx] = 0
			continue
		}
		r.weights[idx] = weight
	}
}

// ForEach calls fn for every combo with nonzero weight, in index order.
func (r *HoldemRange) ForEach(fn func(idx int, a, b Card, weight float64)) {
	for idx := 0; idx < NumHoldemCombos; idx++ {
		if w := r.weights[idx]; w != 0 {
			a, b := handFromIndex(idx)
			fn(idx, a, b, w)
		}
	}
}
