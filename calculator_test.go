package equity

import "testing"

func tinyRankTableBytes() []byte {
	return buildSyntheticTable(4096, nil)
}

func TestNewCalculatorAppliesOptions(t *testing.T) {
	logger := discardLogger{}
	src := defaultSource(42)
	c, err := NewCalculator(tinyRankTableBytes(), WithLogger(logger), WithWorkers(4), WithSource(src))
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	if c.workers != 4 {
		t.Errorf("workers = %d, want 4", c.workers)
	}
	if c.src != src {
		t.Errorf("src not applied via WithSource")
	}
}

func TestNewCalculatorDefaults(t *testing.T) {
	c, err := NewCalculator(tinyRankTableBytes())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	if c.workers != 1 {
		t.Errorf("default workers = %d, want 1", c.workers)
	}
	if _, ok := c.logger.(discardLogger); !ok {
		t.Errorf("default logger = %T, want discardLogger", c.logger)
	}
}

func TestNewCalculatorRejectsEmptyTable(t *testing.T) {
	if _, err := NewCalculator(nil); err != ErrEmptyRankTable {
		t.Errorf("NewCalculator(nil) = %v, want ErrEmptyRankTable", err)
	}
}

func TestHoldemEquityRejectsBadBoardLength(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, villain := NewHoldemRange(), NewHoldemRange()
	board, _ := ParseCards("2c 7d")
	if _, err := c.HoldemEquity(hero, villain, board); err != ErrInvalidBoardLength {
		t.Errorf("HoldemEquity(2-card board) = %v, want ErrInvalidBoardLength", err)
	}
}

func TestHoldemLeafEquityRejectsPartialBoard(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, villain := NewHoldemRange(), NewHoldemRange()
	board, _ := ParseCards("2c 7d Ts")
	if _, err := c.HoldemLeafEquity(hero, villain, board); err != ErrInvalidBoardLength {
		t.Errorf("HoldemLeafEquity(3-card board) = %v, want ErrInvalidBoardLength", err)
	}
}

func TestHoldemEquityDispatchesByBoardLength(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, villain := NewHoldemRange(), NewHoldemRange()
	as, ah := Card(51), Card(50)
	ks, kh := Card(47), Card(46)
	hero.SetHand(as, ah, 1.0)
	villain.SetHand(ks, kh, 1.0)

	full, _ := ParseCards("2c 7d Ts 3h 9c")
	resFull, err := c.HoldemEquity(hero, villain, full)
	if err != nil {
		t.Fatalf("HoldemEquity(full board): %v", err)
	}
	if len(resFull) != 1 {
		t.Errorf("full-board results = %d, want 1", len(resFull))
	}

	flop, _ := ParseCards("2c 7d Ts")
	resFlop, err := c.HoldemEquity(hero, villain, flop)
	if err != nil {
		t.Fatalf("HoldemEquity(flop): %v", err)
	}
	if len(resFlop) != 1 {
		t.Errorf("flop-aggregate results = %d, want 1", len(resFlop))
	}
	if resFlop[0].Equity.Total() != 1176 {
		t.Errorf("flop-aggregate total mass = %v, want 1176", resFlop[0].Equity.Total())
	}
}

func TestOmahaValidationArityMismatch(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, _ := ParseCards("As Ah Ks Kh")
	villain, _ := NewOmahaRange(5)
	board, _ := ParseCards("2c 7d Ts 3h 9c")
	if _, err := c.OmahaLeafEquity(hero, villain, board); err != ErrArityMismatch {
		t.Errorf("OmahaLeafEquity(arity mismatch) = %v, want ErrArityMismatch", err)
	}
}

func TestOmahaValidationBadHandArity(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, _ := ParseCards("As Ah Ks")
	villain, _ := NewOmahaRange(4)
	board, _ := ParseCards("2c 7d Ts 3h 9c")
	if _, err := c.OmahaLeafEquity(hero, villain, board); err != ErrInvalidHandArity {
		t.Errorf("OmahaLeafEquity(3-card hero) = %v, want ErrInvalidHandArity", err)
	}
}

func TestOmahaMonteCarloRejectsNonPositiveSampleCount(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, _ := ParseCards("As Ah Ks Kh")
	villain, _ := NewOmahaRange(4)
	flop, _ := ParseCards("2c 7d Ts")
	if _, err := c.OmahaMonteCarloFlop(hero, villain, flop, 0); err != ErrInvalidSampleCount {
		t.Errorf("OmahaMonteCarloFlop(0 samples) = %v, want ErrInvalidSampleCount", err)
	}
	if _, err := c.OmahaMonteCarloFlop(hero, villain, flop, -5); err != ErrInvalidSampleCount {
		t.Errorf("OmahaMonteCarloFlop(-5 samples) = %v, want ErrInvalidSampleCount", err)
	}
}

func TestOmahaMonteCarloRejectsNonFlopBoard(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, _ := ParseCards("As Ah Ks Kh")
	villain, _ := NewOmahaRange(4)
	turn, _ := ParseCards("2c 7d Ts 3h")
	if _, err := c.OmahaMonteCarloFlop(hero, villain, turn, 10); err != ErrInvalidBoardLength {
		t.Errorf("OmahaMonteCarloFlop(4-card board) = %v, want ErrInvalidBoardLength", err)
	}
}

func TestOmahaEquityDispatchesByBoardLength(t *testing.T) {
	c, _ := NewCalculator(tinyRankTableBytes())
	hero, _ := ParseCards("As Ah Ks Kh")
	villain, _ := NewOmahaRange(4)
	villHand, _ := ParseCards("2d 2h 3c 3d")
	villain.AddHand(villHand, 1.0)

	full, _ := ParseCards("2c 7d Ts 3h 9c")
	resFull, err := c.OmahaEquity(hero, villain, full)
	if err != nil {
		t.Fatalf("OmahaEquity(full board): %v", err)
	}
	if len(resFull) != 1 {
		t.Errorf("full-board results = %d, want 1", len(resFull))
	}

	turn, _ := ParseCards("2c 7d Ts 3h")
	resTurn, err := c.OmahaEquity(hero, villain, turn)
	if err != nil {
		t.Fatalf("OmahaEquity(turn board): %v", err)
	}
	// 52 - len(turn) - len(hero) = 52 - 4 - 4 = 44 unseen rivers.
	if len(resTurn) != 44 {
		t.Errorf("turn-board results = %d, want 44", len(resTurn))
	}

	flop, _ := ParseCards("2c 7d Ts")
	resFlop, err := c.OmahaEquity(hero, villain, flop)
	if err != nil {
		t.Fatalf("OmahaEquity(flop board): %v", err)
	}
	// 52 - len(flop) - len(hero) = 45 unseen, C(45,2) = 990 runouts.
	if len(resFlop) != 990 {
		t.Errorf("flop-board results = %d, want 990", len(resFlop))
	}
}

func TestHoldemEquityWithWorkersMatchesSingleThreaded(t *testing.T) {
	c1, _ := NewCalculator(tinyRankTableBytes(), WithWorkers(1))
	c4, _ := NewCalculator(tinyRankTableBytes(), WithWorkers(4))
	hero, villain := NewHoldemRange(), NewHoldemRange()
	as, ah := Card(51), Card(50)
	ks, kh := Card(47), Card(46)
	hero.SetHand(as, ah, 1.0)
	villain.SetHand(ks, kh, 1.0)
	flop, _ := ParseCards("2c 7d Ts")

	res1, err := c1.HoldemEquity(hero, villain, flop)
	if err != nil {
		t.Fatalf("HoldemEquity(workers=1): %v", err)
	}
	res4, err := c4.HoldemEquity(hero, villain, flop)
	if err != nil {
		t.Fatalf("HoldemEquity(workers=4): %v", err)
	}
	if len(res1) != len(res4) {
		t.Fatalf("result counts differ: %d vs %d", len(res1), len(res4))
	}
	if res1[0].Equity != res4[0].Equity {
		t.Errorf("sharded aggregation changed the result: %+v vs %+v", res1[0].Equity, res4[0].Equity)
	}
}
