package equity

// Deck is a set of playing cards that can be shuffled and drawn from,
// e.g. to build random board/hand fixtures. It is unrelated to Monte Carlo runout sampling,
// which draws directly from the unseen-card set via Source instead.
type Deck struct {
	i int
	v []Card
}

// NewDeck creates a deck from an unshuffled 52-card set.
func NewDeck() *Deck {
	v := make([]Card, NumCards)
	for c := range v {
		v[c] = Card(c)
	}
	return &Deck{v: v}
}

// Shuffle shuffles the deck's cards using f (same interface as
// math/rand.Shuffle).
func (d *Deck) Shuffle(f func(int, func(i, j int))) {
	f(len(d.v), func(i, j int) {
		d.v[i], d.v[j] = d.v[j], d.v[i]
	})
}

// Draw draws the next n cards from the top of the deck.
func (d *Deck) Draw(n int) []Card {
	hand := make([]Card, 0, n)
	for l := min(d.i+n, len(d.v)); d.i < l; d.i++ {
		hand = append(hand, d.v[d.i])
	}
	return hand
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return len(d.v) - d.i
}
