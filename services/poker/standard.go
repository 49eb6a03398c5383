package poker

import (
	"fmt"

	stdpoker "github.com/paulhankin/poker"
)

var standardSuits = map[Suit]stdpoker.Suit{
	Spades:   stdpoker.Spade,
	Hearts:   stdpoker.Heart,
	Clubs:    stdpoker.Club,
	Diamonds: stdpoker.Diamond,
}

// Standard converts the card to a plain 52-card deck card. Enhancements and editions are dropped.
func (c Card) Standard() (stdpoker.Card, error) {
	suit, ok := standardSuits[c.Suit]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownSuit, c.Suit)
	}
	rank := stdpoker.Rank(c.Rank)
	if c.Rank == Ace {
		rank = stdpoker.Rank(1) // the standard deck numbers the ace 1
	}
	return stdpoker.MakeCard(suit, rank)
}

func standardHand(cards []Card) ([5]stdpoker.Card, error) {
	var hand [5]stdpoker.Card
	if len(cards) != 5 {
		return hand, fmt.Errorf("standard poker needs 5 cards, got %d", len(cards))
	}
	seen := make(map[stdpoker.Card]bool, len(cards))
	for i, c := range cards {
		sc, err := c.Standard()
		if err != nil {
			return hand, err
		}
		if seen[sc] {
			return hand, fmt.Errorf("standard poker has one %s per deck", c.Rank.String()+c.Suit.String())
		}
		seen[sc] = true
		hand[i] = sc
	}
	return hand, nil
}

// DescribeStandard names the five cards as a regular poker hand, e.g. "pair of kings".
// It is only meaningful without jokers or wild cards.
func DescribeStandard(cards []Card) (string, error) {
	hand, err := standardHand(cards)
	if err != nil {
		return "", err
	}
	return stdpoker.Describe(hand[:])
}

// EvalStandard ranks five cards as a regular poker hand; higher is better.
func EvalStandard(cards []Card) (int16, error) {
	hand, err := standardHand(cards)
	if err != nil {
		return 0, err
	}
	return stdpoker.Eval5(&hand), nil
}
