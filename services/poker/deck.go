package poker

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// Deck is a draw pile plus the cards already played from it.
type Deck struct {
	TotalCards  []Card `yaml:"total_cards"`
	PlayedCards []Card `yaml:"played_cards"`
}

// NewStandardDeck returns the 52 plain cards in suit, then rank order.
func NewStandardDeck() *Deck {
	total := make([]Card, 0, 52)
	for _, suit := range AllSuits {
		for rank := Two; rank <= Ace; rank++ {
			total = append(total, NewCard(rank, suit))
		}
	}

	return &Deck{
		TotalCards:  total,
		PlayedCards: make([]Card, 0),
	}
}

func (d *Deck) MarkAsPlayed(cards []Card) {
	d.PlayedCards = append(d.PlayedCards, cards...)
}

// Draw takes up to n cards from the top. Played cards go back under the pile when it runs short.
func (d *Deck) Draw(rng *rand.Rand, n int) []Card {
	if len(d.TotalCards) < n {
		d.reshufflePlayed(rng)
	}

	if n > len(d.TotalCards) {
		n = len(d.TotalCards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.TotalCards[:n])
	d.TotalCards = d.TotalCards[n:]

	return drawn
}

// Shuffle puts the played cards back and randomizes the pile (Fisher-Yates).
func (d *Deck) Shuffle(rng *rand.Rand) {
	if len(d.PlayedCards) > 0 {
		d.TotalCards = append(d.TotalCards, d.PlayedCards...)
		d.PlayedCards = []Card{}
	}

	for i := len(d.TotalCards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.TotalCards[i], d.TotalCards[j] = d.TotalCards[j], d.TotalCards[i]
	}
}

func (d *Deck) reshufflePlayed(rng *rand.Rand) {
	rng.Shuffle(len(d.PlayedCards), func(i, j int) {
		d.PlayedCards[i], d.PlayedCards[j] = d.PlayedCards[j], d.PlayedCards[i]
	})

	d.TotalCards = append(d.TotalCards, d.PlayedCards...)
	d.PlayedCards = make([]Card, 0)
}

// combinations calls visit with every k-subset of 0..n-1 in lexicographic order.
// idx is reused between calls.
func combinations(n, k int, visit func(idx []int)) {
	idx := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			visit(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// BestPlay scores every way of playing size of the cards while holding the
// rest, and returns the highest-scoring round. Ties keep the first play found.
func BestPlay(cards []Card, jokers []JokerCard, size int) (Round, Result, error) {
	if size > len(cards) {
		return Round{}, Result{}, fmt.Errorf("cannot play %d of %d cards", size, len(cards))
	}

	var (
		best       Round
		bestResult Result
		found      bool
		err        error
		tried      int
	)
	combinations(len(cards), size, func(idx []int) {
		if err != nil {
			return
		}
		round := splitCards(cards, idx)
		round.Jokers = jokers

		result, scoreErr := Score(round)
		if scoreErr != nil {
			err = scoreErr
			return
		}
		tried++
		if !found || result.Total() > bestResult.Total() {
			best, bestResult, found = round, result, true
		}
	})
	if err != nil {
		return Round{}, Result{}, err
	}

	zap.L().Debug("best play",
		zap.Int("candidates", tried),
		zap.Stringer("hand", bestResult.Hand),
		zap.Float64("total", bestResult.Total()),
	)
	return best, bestResult, nil
}

// splitCards plays the cards at idx, which must be ascending, and holds the rest in order.
func splitCards(cards []Card, idx []int) Round {
	round := Round{
		CardsPlayed:     make([]Card, 0, len(idx)),
		CardsHeldInHand: make([]Card, 0, len(cards)-len(idx)),
	}
	next := 0
	for i, card := range cards {
		if next < len(idx) && idx[next] == i {
			round.CardsPlayed = append(round.CardsPlayed, card)
			next++
			continue
		}
		round.CardsHeldInHand = append(round.CardsHeldInHand, card)
	}
	return round
}
