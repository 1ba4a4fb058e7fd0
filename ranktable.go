package equity

import "encoding/binary"

// HandRank is a total-ordering poker hand strength. Higher is stronger.
// Ties at equal rank mean a chopped pot.
type HandRank uint32

// entryPoint is the documented entry index into a rank table: the state
// from which evaluation of a fresh hand begins.
const entryPoint = 53

// RankTable wraps an externally supplied flat byte buffer — typically a
// ~32 MiB file conventionally named HandRanks.dat — interpreted as an
// array of 32-bit little-endian unsigned integers, and exposes the
// chain-lookup state machine described by the rank oracle: from state p,
// consuming card c transitions to next_p(p+c+1) = table[p+c+1].
//
// The table is produced offline by a two-plus-two style generator; this
// type only reads it. Loading the file itself is out of scope — callers
// supply the bytes.
type RankTable struct {
	words []uint32
}

// NewRankTable interprets buf as a little-endian uint32 array. It
// returns ErrEmptyRankTable for an empty buf; trailing bytes past the
// last whole 4-byte word are ignored, and no other validation is
// performed, matching the rank oracle's contract that the table is an opaque,
// externally-produced asset.
func NewRankTable(buf []byte) (*RankTable, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyRankTable
	}
	n := len(buf) / 4
	words := make([]uint32, n)
	for i := 0; i < n; i++ {
		words[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return &RankTable{words: words}, nil
}

// finalP fetches the 32-bit word at state p. Returns 0 if out of bounds;
// this is defensive degradation per the rank-table under-read error
// category, not an error return — real inputs never reach this path.
func (t *RankTable) finalP(p uint32) uint32 {
	if int(p) >= len(t.words) {
		return 0
	}
	return t.words[p]
}

// fastEval folds p <- table[p+card+1] across cards, starting from
// initialP. The returned value is a chain state, not necessarily a
// terminal hand rank.
func (t *RankTable) fastEval(cards []Card, initialP uint32) uint32 {
	p := initialP
	for _, c := range cards {
		p = t.finalP(p + uint32(c) + 1)
	}
	return p
}

// handEvaluator turns a multiset of cards into a total-ordering rank.
// RankTable satisfies it via the chain-walk; reference_eval_test.go
// provides a table-free implementation so the equity algorithms below
// can be tested without the real rank-table asset.
type handEvaluator interface {
	evalHand(cards []Card) HandRank
}

// comboScorer scores hole cards against a board that has already been
// fixed. *boardEval is the production implementation (amortizing the
// board fold across every combo on that board); tests supply a
// table-free equivalent.
type comboScorer interface {
	eval(hole []Card) HandRank
}

// boardScorerFactory binds a handEvaluator to a fixed board, amortizing
// any per-board setup cost across every combo subsequently scored
// against it. RankTable satisfies it via genBoardEval;
// reference_eval_test.go supplies a table-free equivalent so Omaha's
// 2-hole+3-board enumeration can reuse the same amortized-per-triple
// shape under test.
type boardScorerFactory interface {
	genBoardEval(board []Card) comboScorer
}

// boardEval is the closure gen_board_eval returns: given a board it has
// already folded once from the entry point, it scores any hole cards
// against that fixed board_p. It carries no mutable state — rebuilding it
// per board is the documented cost of amortizing the board fold across
// every hero/villain combo on that board.
type boardEval struct {
	table    *RankTable
	boardP   uint32
	boardLen int
}

// genBoardEval precomputes board_p = fast_eval(board, entryPoint) once.
func (t *RankTable) genBoardEval(board []Card) comboScorer {
	return &boardEval{
		table:    t,
		boardP:   t.fastEval(board, entryPoint),
		boardLen: len(board),
	}
}

// eval scores hole against the closure's fixed board. The distinction
// between returning combinedP directly and dereferencing finalP once more
// exists because the two-plus-two table's terminal rank is reached at
// different chain depths depending on total card count: a 5-card board
// plus hole cards reaches a 7-card (or more) terminal slot directly,
// while a 3- or 4-card board needs one extra final_p dereference.
func (b *boardEval) eval(hole []Card) HandRank {
	combinedP := b.table.fastEval(hole, b.boardP)
	if b.boardLen == 5 {
		return HandRank(combinedP)
	}
	return HandRank(b.table.finalP(combinedP))
}

// evalHand scores a full hand (hole+board already merged) from the entry
// point in one pass. Used where no per-board closure amortization is
// worthwhile (e.g. scoring a single fixed hand once).
func (t *RankTable) evalHand(cards []Card) HandRank {
	p := t.fastEval(cards, entryPoint)
	if len(cards) < 7 {
		p = t.finalP(p)
	}
	return HandRank(p)
}
