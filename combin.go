package equity

// NumHoldemCombos is the number of unordered 2-card combos over a 52-card
// deck: C(52,2) = 1326.
const NumHoldemCombos = 1326

// idx2Hand is the reverse lookup from a Hold'em combo index to its two
// cards, idx2Hand[idx] = [a,b] with a<b. Built once at init time rather
// than as a 1326-entry literal.
var idx2Hand [NumHoldemCombos][2]Card

func init() {
	for b := 1; b < NumCards; b++ {
		for a := 0; a < b; a++ {
			idx2Hand[comboIndex(Card(a), Card(b))] = [2]Card{Card(a), Card(b)}
		}
	}
}

// comboIndex returns the canonical index of the unordered pair {a,b} in
// [0,1326). Cards are reordered so a<b before applying the triangular
// number formula b*(b-1)/2+a.
func comboIndex(a, b Card) int {
	if a > b {
		a, b = b, a
	}
	bi, ai := int(b), int(a)
	return bi*(bi-1)/2 + ai
}

// handFromIndex returns the two cards making up combo idx.
func handFromIndex(idx int) (Card, Card) {
	h := idx2Hand[idx]
	return h[0], h[1]
}

// BinGen generates all k-combinations of a slice of items, in
// lexicographic order of index, without allocating the full C(n,k) set
// up front. Generic over the item type; combinations instantiates it
// over int indices, from which holeCombos2 and boardCombos3 build hole
// pairs and board triples.
type BinGen[T any] struct {
	items []T
	k     int
	idx   []int
	first bool
}

// NewBinGen creates a generator over items choose k.
func NewBinGen[T any](items []T, k int) *BinGen[T] {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return &BinGen[T]{items: items, k: k, idx: idx, first: true}
}

// Next advances the generator and returns the next combination, or nil,
// false when exhausted.
func (g *BinGen[T]) Next() ([]T, bool) {
	n := len(g.items)
	k := g.k
	if k == 0 || k > n {
		return nil, false
	}
	if g.first {
		g.first = false
		return g.cpy(), true
	}
	i := k - 1
	for i >= 0 && g.idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return nil, false
	}
	g.idx[i]++
	for j := i + 1; j < k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}
	return g.cpy(), true
}

// cpy materializes the current index set into a fresh slice of items.
func (g *BinGen[T]) cpy() []T {
	out := make([]T, g.k)
	for i, ix := range g.idx {
		out[i] = g.items[ix]
	}
	return out
}

// combinations returns all k-combinations of indices [0,n).
func combinations(n, k int) [][]int {
	if k == 0 || k > n {
		return nil
	}
	idxs := make([]int, n)
	for i := range idxs {
		idxs[i] = i
	}
	g := NewBinGen(idxs, k)
	var out [][]int
	for {
		c, ok := g.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out
}

// holeCombos2 returns every 2-card combination of an Omaha hero's hole
// cards, for hole slices of length 4, 5, or 6 (C(4,2)=6, C(5,2)=10,
// C(6,2)=15).
func holeCombos2(hole []Card) [][2]Card {
	idxs := combinations(len(hole), 2)
	out := make([][2]Card, len(idxs))
	for i, ix := range idxs {
		out[i] = [2]Card{hole[ix[0]], hole[ix[1]]}
	}
	return out
}

// boardCombos3 returns every 3-card combination of a 5-card board
// (C(5,3)=10).
func boardCombos3(board []Card) [][3]Card {
	idxs := combinations(len(board), 3)
	out := make([][3]Card, len(idxs))
	for i, ix := range idxs {
		out[i] = [3]Card{board[ix[0]], board[ix[1]], board[ix[2]]}
	}
	return out
}
