package rng

import "io"

type Card struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

func AddDeck(numDecks int, jokers bool) []Card {
	perDeck := 52
	if jokers {
		perDeck += 2
	}
	deck := make([]Card, 0, numDecks*perDeck)

	suits := []string{"Hearts", "Diamonds", "Clubs", "Spades"}
	values := []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

	for d := 0; d < numDecks; d++ {
		for _, suit := range suits {
			for _, v := range values {
				deck = append(deck, Card{Value: v, Suit: suit})
			}
		}
		if jokers {
			deck = append(deck, Card{Value: "Joker", Suit: "Red"})
			deck = append(deck, Card{Value: "Joker", Suit: "Black"})
		}
	}
	return deck
}

func RemoveCard(deck []Card, index int) []Card {
	return append(deck[:index], deck[index+1:]...)
}

// DrawCards picks numCards cards from deck without replacement, consuming
// the deck. Each pick indexes the remaining deck through the unbiased
// bounded sampler.
func DrawCards(r io.Reader, h *Health, deck []Card, numCards int) ([]Card, error) {
	picked := make([]Card, 0, numCards)
	for i := 0; i < numCards; i++ {
		index, err := Uint32n(r, h, uint32(len(deck)))
		if err != nil {
			return nil, err
		}
		picked = append(picked, deck[int(index)])
		deck = RemoveCard(deck, int(index))
	}
	return picked, nil
}
