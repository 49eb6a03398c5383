package poker

import (
	game_constants "Jokerscore/constants/game"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNoCardsPlayed = errors.New("no cards played")
	ErrTooManyCards  = errors.New("too many cards played")
)

type PokerHand int

// Ordered from weakest to strongest
const (
	HighCard PokerHand = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// AllHands in strength order, weakest first.
var AllHands = [...]PokerHand{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush,
	FullHouse, FourOfAKind, StraightFlush, FiveOfAKind, FlushHouse, FlushFive,
}

var handNames = map[PokerHand]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	FiveOfAKind:   "Five of a Kind",
	FlushHouse:    "Flush House",
	FlushFive:     "Flush Five",
}

func (h PokerHand) String() string {
	if name, ok := handNames[h]; ok {
		return name
	}
	return fmt.Sprintf("PokerHand(%d)", int(h))
}

// Base chips and mult of every hand
var TypeMap = map[PokerHand]ScoreState{
	HighCard:      {Chips: 5, Mult: 1},
	Pair:          {Chips: 10, Mult: 2},
	TwoPair:       {Chips: 20, Mult: 2},
	ThreeOfAKind:  {Chips: 30, Mult: 3},
	Straight:      {Chips: 30, Mult: 4},
	Flush:         {Chips: 35, Mult: 4},
	FullHouse:     {Chips: 40, Mult: 4},
	FourOfAKind:   {Chips: 60, Mult: 7},
	StraightFlush: {Chips: 100, Mult: 8},
	FiveOfAKind:   {Chips: 120, Mult: 12},
	FlushHouse:    {Chips: 140, Mult: 14},
	FlushFive:     {Chips: 160, Mult: 16},
}

func BaseValue(h PokerHand) ScoreState {
	return TypeMap[h]
}

// rankRun is a block of equal-ranked cards inside the sorted hand.
type rankRun struct {
	start  int
	length int
}

// handShape is the played hand as the detectors see it.
// Detectors return indices into sorted, or nil when the shape is absent.
type handShape struct {
	played []Card
	sorted []Card
	runs   []rankRun
	caps   Capabilities
}

type handDetector struct {
	hand   PokerHand
	detect func(handShape) []int
}

// Strongest first; the first detector that matches wins.
var detectors = []handDetector{
	{FlushFive, handShape.flushFive},
	{FlushHouse, handShape.flushHouse},
	{FiveOfAKind, handShape.fiveOfAKind},
	{StraightFlush, handShape.straightFlush},
	{FourOfAKind, handShape.fourOfAKind},
	{FullHouse, handShape.fullHouse},
	{Flush, handShape.flush},
	{Straight, handShape.straight},
	{ThreeOfAKind, handShape.threeOfAKind},
	{TwoPair, handShape.twoPair},
	{Pair, handShape.pair},
	{HighCard, handShape.highCard},
}

func SortCards(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return sorted
}

func newHandShape(played []Card, caps Capabilities) handShape {
	sorted := SortCards(played)

	var runs []rankRun
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Rank == sorted[i].Rank {
			j++
		}
		runs = append(runs, rankRun{start: i, length: j - i})
		i = j
	}

	return handShape{played: played, sorted: sorted, runs: runs, caps: caps}
}

// need is how many cards a straight or flush requires.
func (h handShape) need() int {
	if h.caps.FourFingers {
		return game_constants.FOUR_FINGERS_HAND_SIZE
	}
	return game_constants.FULL_HAND_SIZE
}

func (h handShape) all() []int {
	idx := make([]int, len(h.sorted))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func (h handShape) runIndices(r rankRun, n int) []int {
	idx := make([]int, 0, n)
	for i := r.start; i < r.start+n; i++ {
		idx = append(idx, i)
	}
	return idx
}

func (h handShape) suitedInRun(r rankRun, s Suit) int {
	count := 0
	for _, c := range h.sorted[r.start : r.start+r.length] {
		if c.MatchesSuit(s, false) {
			count++
		}
	}
	return count
}

func (h handShape) flushFive() []int {
	for _, r := range h.runs {
		if r.length < h.need() {
			continue
		}
		for _, s := range AllSuits {
			if h.suitedInRun(r, s) >= h.need() {
				return h.all()
			}
		}
	}
	return nil
}

func (h handShape) flushHouse() []int {
	for _, s := range AllSuits {
		for i, three := range h.runs {
			if h.suitedInRun(three, s) < 3 {
				continue
			}
			for j, two := range h.runs {
				if i != j && h.suitedInRun(two, s) >= 2 {
					return h.all()
				}
			}
		}
	}
	return nil
}

func (h handShape) fiveOfAKind() []int {
	for _, r := range h.runs {
		if r.length >= 5 {
			return h.all()
		}
	}
	return nil
}

// flushSuit is the suit printed on the most cards, wild cards included at
// their printed suit. Ties go to AllSuits order. Wild cards join the flush
// only after the suit is chosen.
func (h handShape) flushSuit() Suit {
	best, bestCount := AllSuits[0], -1
	for _, s := range AllSuits {
		count := 0
		for _, c := range h.sorted {
			if c.Suit == s {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = s, count
		}
	}
	return best
}

func (h handShape) flushCards() []int {
	suit := h.flushSuit()
	var idx []int
	for i, c := range h.sorted {
		if c.MatchesSuit(suit, false) {
			idx = append(idx, i)
		}
	}
	return idx
}

// straightCards returns the longest run of consecutive ranks, one card per rank.
// Aces also sit below Two.
func (h handShape) straightCards() []int {
	type point struct {
		value float64
		index int
	}

	var points []point
	for _, r := range h.runs {
		c := h.sorted[r.start]
		points = append(points, point{value: c.Order(), index: r.start})
		if c.Rank == Ace {
			points = append(points, point{value: 1, index: r.start})
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].value < points[j].value })

	var best, current []point
	for i, p := range points {
		if i > 0 && p.value-points[i-1].value != 1 {
			current = nil
		}
		current = append(current, p)
		if len(current) >= len(best) {
			best = append([]point(nil), current...)
		}
	}

	if len(best) < h.need() {
		return nil
	}
	idx := make([]int, 0, len(best))
	for _, p := range best {
		idx = append(idx, p.index)
	}
	sort.Ints(idx)
	return idx
}

func (h handShape) straightFlush() []int {
	flush, straight := h.flushCards(), h.straightCards()
	if len(flush) < h.need() || len(straight) < h.need() {
		return nil
	}

	member := make(map[int]bool, len(flush)+len(straight))
	for _, i := range flush {
		member[i] = true
	}
	for _, i := range straight {
		member[i] = true
	}

	// Identical cards collapse into one
	seen := make(map[Card]bool)
	var idx []int
	for i, c := range h.sorted {
		if member[i] && !seen[c] {
			seen[c] = true
			idx = append(idx, i)
		}
	}
	return idx
}

func (h handShape) firstRuns(minLength int) []rankRun {
	var runs []rankRun
	for _, r := range h.runs {
		if r.length >= minLength {
			runs = append(runs, r)
		}
	}
	return runs
}

func (h handShape) fourOfAKind() []int {
	if runs := h.firstRuns(4); len(runs) > 0 {
		return h.runIndices(runs[0], 4)
	}
	return nil
}

func (h handShape) fullHouse() []int {
	for i, three := range h.runs {
		if three.length < 3 {
			continue
		}
		for j, two := range h.runs {
			if i != j && two.length >= 2 {
				return h.all()
			}
		}
	}
	return nil
}

func (h handShape) flush() []int {
	if idx := h.flushCards(); len(idx) >= h.need() {
		return idx
	}
	return nil
}

func (h handShape) straight() []int {
	return h.straightCards()
}

func (h handShape) threeOfAKind() []int {
	if runs := h.firstRuns(3); len(runs) > 0 {
		return h.runIndices(runs[0], 3)
	}
	return nil
}

func (h handShape) twoPair() []int {
	runs := h.firstRuns(2)
	if len(runs) < 2 {
		return nil
	}
	return append(h.runIndices(runs[0], 2), h.runIndices(runs[1], 2)...)
}

func (h handShape) pair() []int {
	if runs := h.firstRuns(2); len(runs) > 0 {
		return h.runIndices(runs[0], 2)
	}
	return nil
}

// The highest card; among equal ranks the one sorted last.
func (h handShape) highCard() []int {
	return []int{len(h.sorted) - 1}
}

func checkPlayed(played []Card) error {
	if len(played) == 0 {
		return ErrNoCardsPlayed
	}
	if len(played) > game_constants.MAX_PLAYED_CARDS {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyCards, len(played), game_constants.MAX_PLAYED_CARDS)
	}
	return nil
}

// Classify finds the strongest hand in played and the cards that score for it.
// Shapes that use every played card return them in played order; partial
// shapes return their cards in ascending rank order.
func Classify(played []Card, caps Capabilities) (PokerHand, []Card, error) {
	if err := checkPlayed(played); err != nil {
		return HighCard, nil, err
	}

	shape := newHandShape(played, caps)
	for _, d := range detectors {
		idx := d.detect(shape)
		if idx == nil {
			continue
		}
		if len(idx) == len(played) {
			scored := make([]Card, len(played))
			copy(scored, played)
			return d.hand, scored, nil
		}
		scored := make([]Card, 0, len(idx))
		for _, i := range idx {
			scored = append(scored, shape.sorted[i])
		}
		return d.hand, scored, nil
	}

	// highCard always matches
	return HighCard, nil, nil
}

// BestHand classifies played with the capabilities granted by jokers.
func BestHand(played []Card, jokers []JokerCard) (PokerHand, []Card, error) {
	return Classify(played, NewCapabilities(jokers))
}
