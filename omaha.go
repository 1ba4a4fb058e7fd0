package equity

// evalOmahaHand scores an Omaha hero hand (4, 5, or 6 hole cards) against
// a fixed 5-card board under the defining Omaha constraint: a hand must
// use exactly 2 hole cards and exactly 3 board cards. It enumerates every
// 3-of-5 board triple, amortizing a gen_board_eval fold across that
// triple's 6/10/15 hole pairs (2-of-4/5/6), and returns the maximum score
// over all 60/100/150 sub-hands for PLO4/5/6.
func (t *RankTable) evalOmahaHand(hole, board []Card) HandRank {
	return evalOmahaHandWith(t, hole, board)
}

// evalOmahaHandWith is the evaluator-agnostic form of evalOmahaHand,
// parameterized over boardScorerFactory so the 2-hole+3-board constraint
// can be verified against a reference evaluator without the real
// rank-table asset. The 2+3 rule is enforced by the enumeration shape
// itself (boardCombos3 x holeCombos2), not by the evaluator: for each
// board triple, genBoardEval binds a comboScorer once and every hole
// pair is scored against that fixed triple through it, matching the
// original source's gen_board_eval-per-triple amortization instead of
// re-deriving the whole 5-card hand from scratch per sub-hand.
func evalOmahaHandWith(bsf boardScorerFactory, hole, board []Card) HandRank {
	best := HandRank(0)
	for _, boardTriple := range boardCombos3(board) {
		be := bsf.genBoardEval(boardTriple[:])
		for _, holePair := range holeCombos2(hole) {
			if r := be.eval(holePair[:]); r > best {
				best = r
			}
		}
	}
	return best
}

// omahaLeafEquity evaluates hero's best Omaha sub-hand against every
// entry in villain, on a fixed 5-card board. Villain entries overlapping
// hero's hole cards or the board are skipped entirely (both the combo
// and its weight are excluded), generalizing Hold'em's card-removal rule
// to Omaha arity.
func (t *RankTable) omahaLeafEquity(hero []Card, villain *OmahaRange, board []Card) RunoutEquity {
	return omahaLeafEquityWith(t, hero, villain, board)
}

// omahaLeafEquityWith is the evaluator-agnostic form of omahaLeafEquity.
func omahaLeafEquityWith(bsf boardScorerFactory, hero []Card, villain *OmahaRange, board []Card) RunoutEquity {
	deadMask := NewCardMask(hero) | NewCardMask(board)
	heroRank := evalOmahaHandWith(bsf, hero, board)

	var eq Equity
	villain.ForEach(func(hand []Card, weight float64) {
		if NewCardMask(hand).Overlaps(deadMask) {
			return
		}
		villRank := evalOmahaHandWith(bsf, hand, board)
		switch {
		case heroRank > villRank:
			eq.Win += weight
		case heroRank == villRank:
			eq.Tie += weight
		default:
			eq.Lose += weight
		}
	})

	var fullBoard [5]Card
	copy(fullBoard[:], board)
	return RunoutEquity{Board: fullBoard, Equity: eq}
}

// omahaRunoutFromTurn enumerates every unseen river from a 4-card board
// and returns the per-runout leaf equity for each. The number of rivers
// is 52 minus the board and hero's hole cards: 44 for PLO4, 43 for PLO5,
// 42 for PLO6.
func (t *RankTable) omahaRunoutFromTurn(hero []Card, villain *OmahaRange, board []Card) []RunoutEquity {
	mask := NewCardMask(hero) | NewCardMask(board)
	unseen := unseenCards(mask)
	out := make([]RunoutEquity, 0, len(unseen))
	for _, river := range unseen {
		full := append(append([]Card{}, board...), river)
		out = append(out, t.omahaLeafEquity(hero, villain, full))
	}
	return out
}

// omahaRunoutFromFlop enumerates all unordered (turn, river) pairs from
// a 3-card board and returns the per-runout leaf equity for each. The
// number of pairs is C(unseen,2) where unseen = 52 minus the board and
// hero's hole cards: 990 for PLO4, 946 for PLO5, 903 for PLO6.
func (t *RankTable) omahaRunoutFromFlop(hero []Card, villain *OmahaRange, board []Card) []RunoutEquity {
	mask := NewCardMask(hero) | NewCardMask(board)
	unseen := unseenCards(mask)
	var out []RunoutEquity
	for i := 0; i < len(unseen); i++ {
		for j := i + 1; j < len(unseen); j++ {
			full := append(append([]Card{}, board...), unseen[i], unseen[j])
			out = append(out, t.omahaLeafEquity(hero, villain, full))
		}
	}
	return out
}

// omahaMonteCarloFlop samples numRunouts (turn, river) pairs uniformly
// without replacement from the unseen deck, invoking omahaLeafEquity for
// each. No deduplication is performed across samples — each iteration is
// independent and callers reduce or average the results themselves.
func (t *RankTable) omahaMonteCarloFlop(hero []Card, villain *OmahaRange, flop []Card, numRunouts int, src Source) []RunoutEquity {
	mask := NewCardMask(hero) | NewCardMask(flop)
	unseen := unseenCards(mask)
	out := make([]RunoutEquity, 0, numRunouts)
	for i := 0; i < numRunouts; i++ {
		turn, river := sampleTwoUnseen(unseen, src)
		full := append(append([]Card{}, flop...), turn, river)
		out = append(out, t.omahaLeafEquity(hero, villain, full))
	}
	return out
}
