package equity

import (
	"fmt"

	"golang.org/x/text/message"
)

// Equity is a (win, tie, lose) triple of nonnegative weight sums, not
// normalized probabilities. Callers wanting percentages divide by
// win+tie+lose.
type Equity struct {
	Win  float64
	Tie  float64
	Lose float64
}

// Total returns Win+Tie+Lose.
func (e Equity) Total() float64 {
	return e.Win + e.Tie + e.Lose
}

// Percentages normalizes the triple by its total. Returns all zero if
// the total is zero.
func (e Equity) Percentages() (win, tie, lose float64) {
	t := e.Total()
	if t == 0 {
		return 0, 0, 0
	}
	return e.Win / t, e.Tie / t, e.Lose / t
}

// Add returns the element-wise sum of e and o, used by the runout
// aggregators to accumulate equity across many board completions.
func (e Equity) Add(o Equity) Equity {
	return Equity{Win: e.Win + o.Win, Tie: e.Tie + o.Tie, Lose: e.Lose + o.Lose}
}

// String formats the triple as localized percentages using
// golang.org/x/text/message, e.g. "62.50% / 4.17% / 33.33%". Falls back
// to raw weights if the triple's total is zero.
func (e Equity) String() string {
	win, tie, lose := e.Percentages()
	if e.Total() == 0 {
		return fmt.Sprintf("win=%s tie=%s lose=%s", fmtWeight(e.Win), fmtWeight(e.Tie), fmtWeight(e.Lose))
	}
	p := message.NewPrinter(message.MatchLanguage("en"))
	return p.Sprintf("%.2f%% / %.2f%% / %.2f%%", win*100, tie*100, lose*100)
}

// EquityResult is a per-hero-combo output: the combo's cards, its
// 1326-index, and its equity decomposition.
type EquityResult struct {
	Combo   [2]Card
	HandIdx int
	Equity  Equity
}

// RunoutEquity is a per-runout Omaha output: the full 5-card board that
// produced it, and the resulting equity. A query may return one
// (5-card board input), up to 48 (turn input), or up to 1176 (flop
// input) of these; aggregation across them is the caller's job for
// OmahaEquity/OmahaMonteCarloFlop, and internal for the Hold'em
// aggregator in holdem.go.
type RunoutEquity struct {
	Board  [5]Card
	Equity Equity
}
