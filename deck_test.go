package equity

import (
	"math/rand"
	"testing"
)

func TestDeckDrawExhaustsAllCards(t *testing.T) {
	d := NewDeck()
	if d.Remaining() != NumCards {
		t.Fatalf("Remaining() = %d, want %d", d.Remaining(), NumCards)
	}
	seen := map[Card]bool{}
	for d.Remaining() > 0 {
		for _, c := range d.Draw(5) {
			if seen[c] {
				t.Fatalf("card %v drawn twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != NumCards {
		t.Errorf("drew %d distinct cards, want %d", len(seen), NumCards)
	}
}

func TestDeckShuffleIsAPermutation(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(1)).Shuffle)
	if d.Remaining() != NumCards {
		t.Fatalf("Remaining() after shuffle = %d, want %d", d.Remaining(), NumCards)
	}
	seen := map[Card]bool{}
	for _, c := range d.Draw(NumCards) {
		seen[c] = true
	}
	if len(seen) != NumCards {
		t.Errorf("shuffled deck has %d distinct cards, want %d", len(seen), NumCards)
	}
}
