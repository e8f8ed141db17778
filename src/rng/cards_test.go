package rng_test

import (
	"testing"

	"github.com/lost-woods/uniform/src/rng"
)

func TestDeck_UniqueSingleDeck(t *testing.T) {
	deck := rng.AddDeck(1, false)
	seen := map[string]bool{}

	for _, card := range deck {
		key := card.Value + "_" + card.Suit
		if seen[key] {
			t.Fatalf("duplicate card: %s", key)
		}
		seen[key] = true
	}

	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeck_MultipleDecksMultiplicity(t *testing.T) {
	decks := 3
	deck := rng.AddDeck(decks, false)
	counts := map[string]int{}

	for _, c := range deck {
		key := c.Value + "_" + c.Suit
		counts[key]++
	}

	for k, v := range counts {
		if v != decks {
			t.Fatalf("card %s appears %d times, want %d", k, v, decks)
		}
	}
}

func TestDrawCards_WithoutReplacement(t *testing.T) {
	deck := rng.AddDeck(1, false)
	r := &xorshift32{x: 0xDEADBEEF}

	picked, err := rng.DrawCards(r, nil, deck, 52)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picked) != 52 {
		t.Fatalf("picked %d cards, want 52", len(picked))
	}

	seen := map[string]bool{}
	for _, c := range picked {
		key := c.Value + "_" + c.Suit
		if seen[key] {
			t.Fatalf("card %s drawn twice", key)
		}
		seen[key] = true
	}
}

func TestDrawCards_ErrorPropagates(t *testing.T) {
	deck := rng.AddDeck(1, false)
	if _, err := rng.DrawCards(failReader{}, nil, deck, 1); err == nil {
		t.Fatalf("expected error from failing source")
	}
}
