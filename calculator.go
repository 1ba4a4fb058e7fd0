package equity

// Calculator is the facade over the core engine: it holds the rank table
// and dispatches to the Hold'em or Omaha leaf/aggregator implementations
// by variant and board length.
type Calculator struct {
	table   *RankTable
	logger  Logger
	workers int
	src     Source
}

// CalcOption configures a Calculator at construction time using the
// functional-options pattern.
type CalcOption func(*Calculator)

// WithLogger overrides the default discard logger.
func WithLogger(l Logger) CalcOption {
	return func(c *Calculator) { c.logger = l }
}

// WithWorkers enables sharded runout aggregation across n goroutines in
// HoldemEquity; the Omaha methods always run single-threaded. n<=1 (the
// default) preserves single-threaded, bit-identical determinism.
func WithWorkers(n int) CalcOption {
	return func(c *Calculator) { c.workers = n }
}

// WithSeed seeds the Monte Carlo sampler deterministically, for
// reproducible convergence tests against the enumerated aggregator.
func WithSeed(seed int64) CalcOption {
	return func(c *Calculator) { c.src = defaultSource(seed) }
}

// WithSource injects a custom RNG source, bypassing WithSeed.
func WithSource(src Source) CalcOption {
	return func(c *Calculator) { c.src = src }
}

// NewCalculator constructs a Calculator over rankTable, applying opts in
// order.
func NewCalculator(rankTable []byte, opts ...CalcOption) (*Calculator, error) {
	t, err := NewRankTable(rankTable)
	if err != nil {
		return nil, err
	}
	c := &Calculator{
		table:   t,
		logger:  discardLogger{},
		workers: 1,
		src:     defaultSource(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Debug("calculator constructed", "workers", c.workers)
	return c, nil
}

// validateBoard checks board length against the allowed set.
func validateBoard(board []Card, allowed ...int) error {
	for _, n := range allowed {
		if len(board) == n {
			return validateDistinct(board)
		}
	}
	return ErrInvalidBoardLength
}

// validateOmahaHand checks hero's hole-card arity and distinctness, and
// that it matches villain's arity.
func validateOmahaHand(hero []Card, villain *OmahaRange) error {
	if len(hero) != 4 && len(hero) != 5 && len(hero) != 6 {
		return ErrInvalidHandArity
	}
	if err := validateDistinct(hero); err != nil {
		return err
	}
	if villain != nil && villain.Arity() != len(hero) {
		return ErrArityMismatch
	}
	return nil
}

// HoldemLeafEquity computes per-combo equity on a fully-dealt 5-card
// board. Fails if board length != 5.
func (c *Calculator) HoldemLeafEquity(hero, villain *HoldemRange, board []Card) ([]EquityResult, error) {
	if err := validateBoard(board, 5); err != nil {
		c.logger.Warn("rejected holdem leaf equity request", "err", err)
		return nil, err
	}
	be := c.table.genBoardEval(board)
	return leafEquity(be, hero, villain, NewCardMask(board)), nil
}

// HoldemEquity computes per-combo equity aggregated over all legal
// runouts of a partial board. Fails if board length is not in {3,4,5}.
func (c *Calculator) HoldemEquity(hero, villain *HoldemRange, board []Card) ([]EquityResult, error) {
	if err := validateBoard(board, 3, 4, 5); err != nil {
		c.logger.Warn("rejected holdem equity request", "err", err)
		return nil, err
	}
	if len(board) == 5 {
		return c.HoldemLeafEquity(hero, villain, board)
	}
	return c.table.holdemRunoutAggregate(hero, villain, board, c.workers), nil
}

// OmahaLeafEquity computes hero's equity against villain on a fully
// dealt 5-card board. Fails on arity mismatch or wrong board length.
func (c *Calculator) OmahaLeafEquity(hero []Card, villain *OmahaRange, board []Card) (RunoutEquity, error) {
	if err := validateOmahaHand(hero, villain); err != nil {
		c.logger.Warn("rejected omaha leaf equity request", "err", err)
		return RunoutEquity{}, err
	}
	if err := validateBoard(board, 5); err != nil {
		c.logger.Warn("rejected omaha leaf equity request", "err", err)
		return RunoutEquity{}, err
	}
	return c.table.omahaLeafEquity(hero, villain, board), nil
}

// OmahaEquity computes per-runout equity aggregated over all legal
// completions of a partial board.
func (c *Calculator) OmahaEquity(hero []Card, villain *OmahaRange, board []Card) ([]RunoutEquity, error) {
	if err := validateOmahaHand(hero, villain); err != nil {
		c.logger.Warn("rejected omaha equity request", "err", err)
		return nil, err
	}
	if err := validateBoard(board, 3, 4, 5); err != nil {
		c.logger.Warn("rejected omaha equity request", "err", err)
		return nil, err
	}
	switch len(board) {
	case 5:
		return []RunoutEquity{c.table.omahaLeafEquity(hero, villain, board)}, nil
	case 4:
		return c.table.omahaRunoutFromTurn(hero, villain, board), nil
	default:
		return c.table.omahaRunoutFromFlop(hero, villain, board), nil
	}
}

// OmahaMonteCarloFlop samples numRunouts turn/river completions of flop
// and returns the per-runout equity for each sample.
func (c *Calculator) OmahaMonteCarloFlop(hero []Card, villain *OmahaRange, flop []Card, numRunouts int) ([]RunoutEquity, error) {
	if err := validateOmahaHand(hero, villain); err != nil {
		c.logger.Warn("rejected omaha monte carlo request", "err", err)
		return nil, err
	}
	if err := validateBoard(flop, 3); err != nil {
		c.logger.Warn("rejected omaha monte carlo request", "err", err)
		return nil, err
	}
	if numRunouts <= 0 {
		return nil, ErrInvalidSampleCount
	}
	return c.table.omahaMonteCarloFlop(hero, villain, flop, numRunouts, c.src), nil
}
