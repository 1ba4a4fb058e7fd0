package equity

import (
	"fmt"
	"strings"
)

// Card is a single playing card, encoded as an integer in [0,52).
//
// The encoding is rank-major: card = rank*4 + suit, with rank order
// 23456789TJQKA (low to high) and suit order cdhs. This ordering is
// load-bearing for the Hold'em combo index bijection in combin.go.
type Card uint8

// Rank and suit counts.
const (
	NumRanks = 13
	NumSuits = 4
	NumCards = NumRanks * NumSuits
)

// rankRunes and suitRunes give the canonical string form of each rank and
// suit index, in encoding order.
const (
	rankRunes = "23456789TJQKA"
	suitRunes = "cdhs"
)

// Rank returns the card's rank index, in [0,13).
func (c Card) Rank() int {
	return int(c) / NumSuits
}

// Suit returns the card's suit index, in [0,4).
func (c Card) Suit() int {
	return int(c) % NumSuits
}

// Valid reports whether c is in [0,52).
func (c Card) Valid() bool {
	return int(c) < NumCards
}

// String formats the card as two characters, e.g. "2c", "Ah", "As".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankRunes[c.Rank()], suitRunes[c.Suit()]})
}

// ParseCard parses a two-character card string such as "Ah" or "Tc".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, ErrInvalidCard
	}
	ri := strings.IndexByte(rankRunes, upperT(s[0]))
	if ri < 0 {
		return 0, ErrInvalidCard
	}
	si := strings.IndexByte(suitRunes, lower(s[1]))
	if si < 0 {
		return 0, ErrInvalidCard
	}
	return Card(ri*NumSuits + si), nil
}

// upperT normalizes the rank byte: ranks are matched case-sensitively
// against "23456789TJQKA" except that lowercase letters are folded up.
func upperT(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// lower folds a suit byte to lowercase.
func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// ParseCards parses a whitespace-separated list of card strings, e.g.
// "2c 7d Ts 3h 9c".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// FormatCards formats a slice of cards space-separated.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// CardMask is a 52-bit set of cards, one bit per card index.
type CardMask uint64

// NewCardMask builds a mask from a slice of cards.
func NewCardMask(cards []Card) CardMask {
	var m CardMask
	for _, c := range cards {
		m |= 1 << uint(c)
	}
	return m
}

// Has reports whether c is a member of the mask.
func (m CardMask) Has(c Card) bool {
	return m&(1<<uint(c)) != 0
}

// Overlaps reports whether m and other share any card.
func (m CardMask) Overlaps(other CardMask) bool {
	return m&other != 0
}

// Add returns m with c added.
func (m CardMask) Add(c Card) CardMask {
	return m | (1 << uint(c))
}

// validateDistinct returns ErrInvalidCard if any card is outside [0,52)
// and ErrCardOverlap if any card repeats; otherwise nil.
func validateDistinct(cards []Card) error {
	var seen CardMask
	for _, c := range cards {
		if !c.Valid() {
			return ErrInvalidCard
		}
		if seen.Has(c) {
			return ErrCardOverlap
		}
		seen = seen.Add(c)
	}
	return nil
}

// fmtWeight formats a weight to four decimal places; Equity's Stringer
// uses it for its zero-total fallback.
func fmtWeight(w float64) string {
	return fmt.Sprintf("%.4f", w)
}
