package equity

import "sort"

// comboInfo is one gathered combo's bookkeeping for the leaf-equity sort
// and prefix-sum pass: its rank on the fixed board, its 1326-index, its
// hero and villain weights, and its two cards.
type comboInfo struct {
	p     HandRank
	idx   int
	heroW float64
	villW float64
	a, b  Card
}

// gatherCombos builds allCombos: every combo with no board overlap and
// nonzero hero or villain weight, per spec step A. be must already be
// bound to the fixed 5-card board.
func gatherCombos(be comboScorer, hero, villain *HoldemRange, boardMask CardMask) []comboInfo {
	var out []comboInfo
	for idx := 0; idx < NumHoldemCombos; idx++ {
		a, b := handFromIndex(idx)
		if boardMask.Has(a) || boardMask.Has(b) {
			continue
		}
		heroW, villW := hero.Weight(idx), villain.Weight(idx)
		if heroW == 0 && villW == 0 {
			continue
		}
		out = append(out, comboInfo{
			p:     be.eval([]Card{a, b}),
			idx:   idx,
			heroW: heroW,
			villW: villW,
			a:     a,
			b:     b,
		})
	}
	return out
}

// leafEquity is the hardest part of the engine: a sort-plus-prefix-sum
// algorithm that computes, for every hero combo with nonzero weight, its
// win/tie/lose decomposition against a weighted villain range on a
// fixed board, accounting for per-combo card removal in O(N log N +
// N*52) instead of the naive O(N^2) pairwise comparison.
func leafEquity(be comboScorer, hero, villain *HoldemRange, boardMask CardMask) []EquityResult {
	all := gatherCombos(be, hero, villain, boardMask)
	n := len(all)
	if n == 0 {
		return nil
	}

	// Step B: sort by rank ascending. Stability doesn't matter — ties at
	// equal rank form contiguous blocks handled as groups below.
	sort.Slice(all, func(i, j int) bool { return all[i].p < all[j].p })

	// Step C: rank-block index. blockStart[i]/blockEnd[i] give the
	// inclusive [s,e] range of combo i's tie-rank block.
	blockStart := make([]int, n)
	blockEnd := make([]int, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && all[j+1].p == all[i].p {
			j++
		}
		for k := i; k <= j; k++ {
			blockStart[k] = i
			blockEnd[k] = j
		}
		i = j + 1
	}

	// Step D: villain weight prefix sums. W[i] is the scalar prefix
	// through index i; B[i][c] is the per-card cumulative prefix, built
	// incrementally from B[i-1] by crediting combo i's two cards.
	w := make([]float64, n)
	b := make([][NumCards]float64, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			w[i] = w[i-1]
			b[i] = b[i-1]
		}
		w[i] += all[i].villW
		b[i][all[i].a] += all[i].villW
		b[i][all[i].b] += all[i].villW
	}
	total := w[n-1]

	prefixW := func(i int) float64 {
		if i < 0 {
			return 0
		}
		return w[i]
	}
	prefixB := func(i int, c Card) float64 {
		if i < 0 {
			return 0
		}
		return b[i][c]
	}

	// Step E: per-hero scoring.
	var results []EquityResult
	for i := 0; i < n; i++ {
		h := all[i]
		if h.heroW == 0 {
			continue
		}
		s, e := blockStart[i], blockEnd[i]

		beatRaw := prefixW(s - 1)
		tieRaw := w[e] - prefixW(s-1)

		c1, c2 := h.a, h.b
		blockedTotal1, blockedTotal2 := b[n-1][c1], b[n-1][c2]
		blockedBeat1, blockedBeat2 := prefixB(s-1, c1), prefixB(s-1, c2)
		blockedTie1 := prefixB(e, c1) - prefixB(s-1, c1)
		blockedTie2 := prefixB(e, c2) - prefixB(s-1, c2)

		// A villain combo containing BOTH c1 and c2 was subtracted
		// twice above; the only such combo is h itself (no two
		// distinct Hold'em combos share two specific cards). Add its
		// villain weight back once to tie and to the total.
		win := beatRaw - blockedBeat1 - blockedBeat2
		tie := tieRaw - blockedTie1 - blockedTie2 + h.villW
		tot := total - blockedTotal1 - blockedTotal2 + h.villW
		lose := tot - win - tie

		results = append(results, EquityResult{
			Combo:   [2]Card{c1, c2},
			HandIdx: h.idx,
			Equity:  Equity{Win: win, Tie: tie, Lose: lose},
		})
	}
	return results
}

// unseenCards returns the 52 cards not present in mask, in ascending
// order.
func unseenCards(mask CardMask) []Card {
	out := make([]Card, 0, NumCards)
	for c := Card(0); c < NumCards; c++ {
		if !mask.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// holdemRunoutAggregate enumerates every legal completion of a partial
// board (3 or 4 cards), invokes leafEquity on each full 5-card board, and
// sums (win,tie,lose) into a per-combo accumulator. No combinatorial
// weighting is applied beyond uniform runout enumeration. workers<=1
// runs single-threaded; workers>1 shards the runout list across an
// errgroup.Group (parallel.go) and merges per-shard accumulators, which
// changes only floating-point summation order, never the result.
func (t *RankTable) holdemRunoutAggregate(hero, villain *HoldemRange, board []Card, workers int) []EquityResult {
	boardMask := NewCardMask(board)
	unseen := unseenCards(boardMask)

	var runouts [][]Card
	switch len(board) {
	case 4:
		for _, river := range unseen {
			runouts = append(runouts, append(append([]Card{}, board...), river))
		}
	case 3:
		for i := 0; i < len(unseen); i++ {
			for j := i + 1; j < len(unseen); j++ {
				runouts = append(runouts, append(append([]Card{}, board...), unseen[i], unseen[j]))
			}
		}
	}

	accumulate := func(lo, hi int) [NumHoldemCombos]Equity {
		var acc [NumHoldemCombos]Equity
		for _, full := range runouts[lo:hi] {
			fullMask := NewCardMask(full)
			be := t.genBoardEval(full)
			for _, r := range leafEquity(be, hero, villain, fullMask) {
				acc[r.HandIdx] = acc[r.HandIdx].Add(r.Equity)
			}
		}
		return acc
	}

	var total [NumHoldemCombos]Equity
	if workers <= 1 || len(runouts) <= 1 {
		total = accumulate(0, len(runouts))
	} else {
		if workers > len(runouts) {
			workers = len(runouts)
		}
		partials, err := shardRunouts(len(runouts), workers, func(lo, hi int) [][NumHoldemCombos]Equity {
			return [][NumHoldemCombos]Equity{accumulate(lo, hi)}
		})
		if err != nil {
			// fall back to sequential on shard failure
			total = accumulate(0, len(runouts))
		} else {
			for _, p := range partials {
				for idx := range p {
					total[idx] = total[idx].Add(p[idx])
				}
			}
		}
	}

	var out []EquityResult
	hero.ForEach(func(idx int, a, b Card, weight float64) {
		eq := total[idx]
		if eq.Total() == 0 {
			return
		}
		out = append(out, EquityResult{
			Combo:   [2]Card{a, b},
			HandIdx: idx,
			Equity:  eq,
		})
	})
	return out
}
