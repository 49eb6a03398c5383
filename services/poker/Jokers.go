package poker

import (
	game_constants "Jokerscore/constants/game"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownJoker = errors.New("unknown joker")

type Joker int

const (
	BaseJoker Joker = iota + 1
	JollyJoker
	ZanyJoker
	MadJoker
	CrazyJoker
	DrollJoker
	SlyJoker
	WilyJoker
	CleverJoker
	DeviousJoker
	CraftyJoker
	AbstractJoker
	RaisedFist
	Blackboard
	Baron
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	Fibonacci
	ScaryFace
	EvenSteven
	OddTodd
	Photograph
	SmileyFace
	FlowerPot
	FourFingers
	Shortcut
	Mime
	Pareidolia
	Splash
	SockAndBuskin
	SmearedJoker
	Blueprint
)

var jokerNames = map[Joker]string{
	BaseJoker:       "Joker",
	JollyJoker:      "Jolly Joker",
	ZanyJoker:       "Zany Joker",
	MadJoker:        "Mad Joker",
	CrazyJoker:      "Crazy Joker",
	DrollJoker:      "Droll Joker",
	SlyJoker:        "Sly Joker",
	WilyJoker:       "Wily Joker",
	CleverJoker:     "Clever Joker",
	DeviousJoker:    "Devious Joker",
	CraftyJoker:     "Crafty Joker",
	AbstractJoker:   "Abstract Joker",
	RaisedFist:      "Raised Fist",
	Blackboard:      "Blackboard",
	Baron:           "Baron",
	GreedyJoker:     "Greedy Joker",
	LustyJoker:      "Lusty Joker",
	WrathfulJoker:   "Wrathful Joker",
	GluttonousJoker: "Gluttonous Joker",
	Fibonacci:       "Fibonacci",
	ScaryFace:       "Scary Face",
	EvenSteven:      "Even Steven",
	OddTodd:         "Odd Todd",
	Photograph:      "Photograph",
	SmileyFace:      "Smiley Face",
	FlowerPot:       "Flower Pot",
	FourFingers:     "Four Fingers",
	Shortcut:        "Shortcut",
	Mime:            "Mime",
	Pareidolia:      "Pareidolia",
	Splash:          "Splash",
	SockAndBuskin:   "Sock And Buskin",
	SmearedJoker:    "Smeared Joker",
	Blueprint:       "Blueprint",
}

func (j Joker) String() string {
	if name, ok := jokerNames[j]; ok {
		return name
	}
	return fmt.Sprintf("Joker(%d)", int(j))
}

func normalizeName(s string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
}

// ParseJoker accepts display names in any case, with or without separators ("Jolly Joker", "jolly_joker", "JollyJoker").
func ParseJoker(s string) (Joker, error) {
	key := normalizeName(s)
	for j, name := range jokerNames {
		if normalizeName(name) == key {
			return j, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJoker, s)
}

type JokerCard struct {
	Joker   Joker
	Edition Edition
}

func (j JokerCard) String() string {
	if j.Edition == NoEdition {
		return j.Joker.String()
	}
	return j.Joker.String() + " " + j.Edition.String()
}

// ParseJokerCard reads "<joker name> [edition]", e.g. "Jolly Joker Foil".
func ParseJokerCard(s string) (JokerCard, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return JokerCard{}, fmt.Errorf("%w: empty", ErrUnknownJoker)
	}

	edition := NoEdition
	if ed, err := ParseEdition(fields[len(fields)-1]); err == nil && len(fields) > 1 {
		edition = ed
		fields = fields[:len(fields)-1]
	}
	joker, err := ParseJoker(strings.Join(fields, " "))
	if err != nil {
		return JokerCard{}, err
	}
	return JokerCard{Joker: joker, Edition: edition}, nil
}

// Capabilities are the round-wide rule changes granted by jokers.
// Shortcut, Mime, Sock And Buskin and Blueprint grant none.
type Capabilities struct {
	FourFingers bool // straights and flushes need 4 cards
	Splash      bool // every played card scores
	Pareidolia  bool // every card is a face card
	Smeared     bool // hearts/diamonds and spades/clubs are one suit each
}

func NewCapabilities(jokers []JokerCard) Capabilities {
	var caps Capabilities
	for _, card := range jokers {
		switch card.Joker {
		case FourFingers:
			caps.FourFingers = true
		case Splash:
			caps.Splash = true
		case Pareidolia:
			caps.Pareidolia = true
		case SmearedJoker:
			caps.Smeared = true
		}
	}
	return caps
}

// JokerContext is which cards a joker reads.
type JokerContext int

const (
	Independent JokerContext = iota // the hand and the joker line-up
	OnScored
	OnHeld
	Passive // changes rules through Capabilities only
)

// JokerRound is everything a joker may look at.
type JokerRound struct {
	Jokers []JokerCard
	Hand   PokerHand
	Scored []Card
	Held   []Card
	Caps   Capabilities
}

func NewJokerRound(jokers []JokerCard, held, scored []Card, hand PokerHand) JokerRound {
	return JokerRound{
		Jokers: jokers,
		Hand:   hand,
		Scored: scored,
		Held:   held,
		Caps:   NewCapabilities(jokers),
	}
}

type JokerFunc func(r JokerRound, s ScoreState) ScoreState

type JokerRule struct {
	Context JokerContext
	Apply   JokerFunc
}

func handSet(hands ...PokerHand) map[PokerHand]bool {
	set := make(map[PokerHand]bool, len(hands))
	for _, h := range hands {
		set[h] = true
	}
	return set
}

var (
	pairHands     = handSet(Pair, TwoPair, FullHouse, ThreeOfAKind, FourOfAKind, FiveOfAKind, FlushHouse, FlushFive)
	threeHands    = handSet(ThreeOfAKind, FullHouse, FlushHouse, FourOfAKind, FiveOfAKind, FlushFive)
	twoPairHands  = handSet(TwoPair, FullHouse, FlushHouse)
	straightHands = handSet(Straight, StraightFlush)
	flushHands    = handSet(Flush, FlushFive, FlushHouse, FourOfAKind)
)

var jokerTable = map[Joker]JokerRule{
	BaseJoker:     {Independent, handBonus(nil, 0, 4)},
	JollyJoker:    {Independent, handBonus(pairHands, 0, 8)},
	SlyJoker:      {Independent, handBonus(pairHands, 50, 0)},
	ZanyJoker:     {Independent, handBonus(threeHands, 0, 12)},
	WilyJoker:     {Independent, handBonus(threeHands, 100, 0)},
	MadJoker:      {Independent, handBonus(twoPairHands, 0, 10)},
	CleverJoker:   {Independent, handBonus(twoPairHands, 80, 0)},
	CrazyJoker:    {Independent, handBonus(straightHands, 0, 12)},
	DeviousJoker:  {Independent, handBonus(straightHands, 100, 0)},
	DrollJoker:    {Independent, handBonus(flushHands, 0, 10)},
	CraftyJoker:   {Independent, handBonus(flushHands, 80, 0)},
	AbstractJoker: {Independent, abstractJoker},
	Blackboard:    {Independent, blackboard},
	FlowerPot:     {Independent, flowerPot},

	GreedyJoker:     {OnScored, suitJoker(Diamonds)},
	LustyJoker:      {OnScored, suitJoker(Hearts)},
	WrathfulJoker:   {OnScored, suitJoker(Spades)},
	GluttonousJoker: {OnScored, suitJoker(Clubs)},
	Fibonacci:       {OnScored, perScoredCard(isFibonacci, addMult(8))},
	ScaryFace:       {OnScored, perScoredCard(isFace, addChips(30))},
	EvenSteven:      {OnScored, perScoredCard(isEven, addMult(4))},
	OddTodd:         {OnScored, perScoredCard(isOdd, addChips(31))},
	Photograph:      {OnScored, photograph},
	SmileyFace:      {OnScored, perScoredCard(isFace, addMult(5))},
	SockAndBuskin:   {OnScored, noJoker},

	RaisedFist: {OnHeld, raisedFist},
	Baron:      {OnHeld, baron},
	Mime:       {OnHeld, noJoker},

	FourFingers:  {Passive, noJoker},
	Shortcut:     {Passive, noJoker},
	Pareidolia:   {Passive, noJoker},
	Splash:       {Passive, noJoker},
	SmearedJoker: {Passive, noJoker},
	Blueprint:    {Passive, noJoker},
}

func noJoker(r JokerRound, s ScoreState) ScoreState {
	return s
}

func addMult(x float64) func(ScoreState) ScoreState {
	return func(s ScoreState) ScoreState { return s.AddMult(x) }
}

func addChips(x float64) func(ScoreState) ScoreState {
	return func(s ScoreState) ScoreState { return s.AddChips(x) }
}

// handBonus adds chips and mult when the hand is one of hands. A nil set always matches.
func handBonus(hands map[PokerHand]bool, chips, mult float64) JokerFunc {
	return func(r JokerRound, s ScoreState) ScoreState {
		if hands != nil && !hands[r.Hand] {
			return s
		}
		return s.AddChips(chips).AddMult(mult)
	}
}

// perScoredCard applies effect once for every scored card that matches.
func perScoredCard(match func(Card, Capabilities) bool, effect func(ScoreState) ScoreState) JokerFunc {
	return func(r JokerRound, s ScoreState) ScoreState {
		for _, card := range r.Scored {
			if match(card, r.Caps) {
				s = effect(s)
			}
		}
		return s
	}
}

func suitJoker(suit Suit) JokerFunc {
	match := func(c Card, caps Capabilities) bool {
		return c.MatchesSuit(suit, caps.Smeared)
	}
	return perScoredCard(match, addMult(game_constants.SUIT_JOKER_MULT))
}

func isFibonacci(c Card, _ Capabilities) bool {
	switch c.Rank {
	case Ace, Two, Three, Five, Eight:
		return true
	}
	return false
}

func isFace(c Card, caps Capabilities) bool {
	return c.IsFace(caps)
}

func isEven(c Card, _ Capabilities) bool {
	order := c.Order()
	return order <= 10 && math.Mod(order, 2) == 0
}

func isOdd(c Card, _ Capabilities) bool {
	order := c.Order()
	return order == 14 || (order < 10 && math.Mod(order, 2) != 0)
}

func abstractJoker(r JokerRound, s ScoreState) ScoreState {
	return s.AddMult(game_constants.ABSTRACT_MULT_PER_JOKER * float64(len(r.Jokers)))
}

// x3 when every held card is black or wild, including when nothing is held
func blackboard(r JokerRound, s ScoreState) ScoreState {
	for _, card := range r.Held {
		if !card.IsBlack() && !card.IsWild() {
			return s
		}
	}
	return s.TimesMult(3)
}

// x3 when the scored cards show all four suits, or both colours with Smeared Joker
func flowerPot(r JokerRound, s ScoreState) ScoreState {
	if len(r.Scored) < 4 {
		return s
	}

	present := func(match func(Card) bool) bool {
		for _, card := range r.Scored {
			if card.IsWild() || match(card) {
				return true
			}
		}
		return false
	}

	allSuits := true
	for _, suit := range AllSuits {
		suit := suit
		if !present(func(c Card) bool { return c.Suit == suit }) {
			allSuits = false
			break
		}
	}

	bothColours := r.Caps.Smeared &&
		present(func(c Card) bool { return c.Suit.Color() == Red }) &&
		present(func(c Card) bool { return c.Suit.Color() == Black })

	if allSuits || bothColours {
		return s.TimesMult(3)
	}
	return s
}

// x2 for the first face card only
func photograph(r JokerRound, s ScoreState) ScoreState {
	for _, card := range r.Scored {
		if card.IsFace(r.Caps) {
			return s.TimesMult(2)
		}
	}
	return s
}

// Adds twice the rank of the lowest held card. Ties go to the last such card.
func raisedFist(r JokerRound, s ScoreState) ScoreState {
	lowest := -1
	for i, card := range r.Held {
		if lowest < 0 || card.Order() <= r.Held[lowest].Order() {
			lowest = i
		}
	}
	if lowest < 0 {
		return s
	}

	return s.AddMult(game_constants.RAISED_FIST_FACTOR * r.Held[lowest].Order())
}

// x1.5 per held King
func baron(r JokerRound, s ScoreState) ScoreState {
	for _, card := range r.Held {
		if card.Rank == King {
			s = s.TimesMult(game_constants.BARON_XMULT)
		}
	}
	return s
}

// ApplyJokers runs every joker against the round: jokers reading scored cards
// first, then those reading held cards, then hand-only jokers, and finally the
// editions of the joker cards themselves.
func ApplyJokers(jokers []JokerCard, held, scored []Card, hand PokerHand, s ScoreState) ScoreState {
	return applyJokers(NewJokerRound(jokers, held, scored, hand), s, nil)
}

func applyJokers(r JokerRound, s ScoreState, ledger *Ledger) ScoreState {
	for _, context := range []JokerContext{OnScored, OnHeld, Independent} {
		for _, card := range r.Jokers {
			rule, exists := jokerTable[card.Joker]
			if !exists || rule.Context != context {
				continue
			}
			before := s
			s = rule.Apply(r, s)
			ledger.Record(StageJoker, card.Joker.String(), card.Joker.String(), before, s)
		}
	}

	for _, card := range r.Jokers {
		before := s
		s = ApplyEdition(card.Edition, s, false)
		ledger.Record(StageJokerEdition, card.Joker.String(), card.Edition.String(), before, s)
	}

	return s
}
