package poker

import (
	"math"

	"go.uber.org/zap"
)

// ScoreState is the running (chips, mult) pair. Every stage returns a new value.
type ScoreState struct {
	Chips float64
	Mult  float64
}

func (s ScoreState) AddChips(x float64) ScoreState {
	s.Chips += x
	return s
}

func (s ScoreState) AddMult(x float64) ScoreState {
	s.Mult += x
	return s
}

func (s ScoreState) TimesMult(x float64) ScoreState {
	s.Mult *= x
	return s
}

// Total is the final score of the round.
func (s ScoreState) Total() float64 {
	return math.Floor(s.Chips * s.Mult)
}

// Round is one scoring request. It is never modified.
type Round struct {
	CardsPlayed     []Card      `yaml:"cards_played"`
	CardsHeldInHand []Card      `yaml:"cards_held_in_hand"`
	Jokers          []JokerCard `yaml:"jokers"`
}

func (r Round) Validate() error {
	return checkPlayed(r.CardsPlayed)
}

type Result struct {
	Hand   PokerHand
	Scored []Card // the cards that counted, after Splash
	State  ScoreState
	Ledger *Ledger
}

func (r Result) Total() float64 {
	return r.State.Total()
}

// AddChipsPerCard adds every card's rank order to the chips.
func AddChipsPerCard(cards []Card, s ScoreState, ledger *Ledger) ScoreState {
	for _, card := range cards {
		before := s
		s = s.AddChips(card.Order())
		ledger.Record(StageRank, card.String(), card.Rank.String(), before, s)
	}
	return s
}

// Score runs the whole pipeline for one round:
// classify, base value, rank chips, scored card modifiers, held card modifiers, jokers.
func Score(round Round) (Result, error) {
	if err := round.Validate(); err != nil {
		return Result{}, err
	}

	caps := NewCapabilities(round.Jokers)
	hand, scored, err := Classify(round.CardsPlayed, caps)
	if err != nil {
		return Result{}, err
	}

	ledger := &Ledger{}
	s := BaseValue(hand)
	ledger.Record(StageBase, hand.String(), "", ScoreState{}, s)

	working := scored
	if caps.Splash {
		working = make([]Card, len(round.CardsPlayed))
		copy(working, round.CardsPlayed)
	}

	s = AddChipsPerCard(working, s, ledger)
	s = applyModifiers(working, s, false, ledger)
	s = applyModifiers(round.CardsHeldInHand, s, true, ledger)
	s = applyJokers(NewJokerRound(round.Jokers, round.CardsHeldInHand, working, hand), s, ledger)

	zap.L().Debug("round scored",
		zap.Stringer("hand", hand),
		zap.Int("scored_cards", len(working)),
		zap.Bool("splash", caps.Splash),
		zap.Float64("chips", s.Chips),
		zap.Float64("mult", s.Mult),
	)

	return Result{Hand: hand, Scored: working, State: s, Ledger: ledger}, nil
}
