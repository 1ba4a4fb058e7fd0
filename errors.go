// Package equity computes Texas Hold'em and Omaha poker equity: the
// weighted win/tie/lose decomposition of a hero hand or range against a
// villain range, on a partially or fully revealed board.
package equity

// Error is a sentinel error value.
type Error string

// Error satisfies the [error] interface.
func (err Error) Error() string {
	return string(err)
}

// Error values.
const (
	// ErrInvalidBoardLength is returned when a board's length is not one the
	// operation accepts: 3, 4, or 5 cards for the aggregating methods,
	// exactly 5 for the leaf methods, exactly 3 for the Monte Carlo sampler.
	ErrInvalidBoardLength Error = "invalid board length"
	// ErrInvalidHandArity is returned when an Omaha hand is not 4, 5, or 6 cards.
	ErrInvalidHandArity Error = "invalid hand arity"
	// ErrArityMismatch is returned when a hero hand and a range disagree on arity.
	ErrArityMismatch Error = "hero and range arity mismatch"
	// ErrInvalidCard is the invalid card error, for a card index outside
	// [0,52) or a malformed card string.
	ErrInvalidCard Error = "invalid card"
	// ErrInvalidRangeLength names a Hold'em range that is not exactly 1326
	// slots. No function in this package returns it: HoldemRange is a
	// fixed-size array.
	ErrInvalidRangeLength Error = "invalid range length"
	// ErrCardOverlap is returned when a hand or a board repeats a card. A
	// hero hand that shares a card with the board is not checked for.
	ErrCardOverlap Error = "overlapping cards"
	// ErrEmptyRankTable is returned when a calculator is constructed with a
	// nil or empty rank table.
	ErrEmptyRankTable Error = "empty rank table"
	// ErrInvalidSampleCount is returned when the Monte Carlo sampler is
	// asked for zero or fewer runouts.
	ErrInvalidSampleCount Error = "invalid sample count"
)
