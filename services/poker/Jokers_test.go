package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jokers(t *testing.T, names ...string) []JokerCard {
	t.Helper()
	cards := make([]JokerCard, 0, len(names))
	for _, name := range names {
		card, err := ParseJokerCard(name)
		require.NoError(t, err, name)
		cards = append(cards, card)
	}
	return cards
}

func cardList(t *testing.T, text string) []Card {
	t.Helper()
	if text == "" {
		return nil
	}
	return hand(t, text)
}

func TestApplyJokers(t *testing.T) {
	start := ScoreState{Chips: 10, Mult: 2}
	tests := []struct {
		name   string
		jokers []string
		hand   PokerHand
		scored string
		held   string
		want   ScoreState
	}{
		{"joker", []string{"Joker"}, HighCard, "", "", ScoreState{10, 6}},
		{"jolly on pair", []string{"Jolly Joker"}, Pair, "", "", ScoreState{10, 10}},
		{"jolly on full house", []string{"Jolly Joker"}, FullHouse, "", "", ScoreState{10, 10}},
		{"jolly on high card", []string{"Jolly Joker"}, HighCard, "", "", start},
		{"sly", []string{"Sly Joker"}, FlushFive, "", "", ScoreState{60, 2}},
		{"zany", []string{"Zany Joker"}, ThreeOfAKind, "", "", ScoreState{10, 14}},
		{"zany on pair", []string{"Zany Joker"}, Pair, "", "", start},
		{"wily", []string{"Wily Joker"}, FourOfAKind, "", "", ScoreState{110, 2}},
		{"mad", []string{"Mad Joker"}, TwoPair, "", "", ScoreState{10, 12}},
		{"clever", []string{"Clever Joker"}, FlushHouse, "", "", ScoreState{90, 2}},
		{"clever on four", []string{"Clever Joker"}, FourOfAKind, "", "", start},
		{"crazy", []string{"Crazy Joker"}, Straight, "", "", ScoreState{10, 14}},
		{"devious", []string{"Devious Joker"}, StraightFlush, "", "", ScoreState{110, 2}},
		{"droll", []string{"Droll Joker"}, Flush, "", "", ScoreState{10, 12}},
		{"droll on four", []string{"Droll Joker"}, FourOfAKind, "", "", ScoreState{10, 12}},
		{"crafty", []string{"Crafty Joker"}, FlushFive, "", "", ScoreState{90, 2}},
		{"crafty on straight", []string{"Crafty Joker"}, Straight, "", "", start},

		{"abstract counts every joker", []string{"Abstract Joker", "Splash", "Shortcut"}, HighCard, "", "", ScoreState{10, 11}},

		{"blackboard", []string{"Blackboard"}, HighCard, "", "2♠, 3♣", ScoreState{10, 6}},
		{"blackboard with red", []string{"Blackboard"}, HighCard, "", "2♠, 3♥", start},
		{"blackboard with wild", []string{"Blackboard"}, HighCard, "", "2♠, 3♥ Wild", ScoreState{10, 6}},
		{"blackboard empty hand", []string{"Blackboard"}, HighCard, "", "", ScoreState{10, 6}},

		{"flower pot", []string{"Flower Pot"}, Straight, "2♠, 3♥, 4♣, 5♦", "", ScoreState{10, 6}},
		{"flower pot missing suit", []string{"Flower Pot"}, Straight, "2♠, 3♥, 4♣, 5♣", "", start},
		{"flower pot wild", []string{"Flower Pot"}, Straight, "2♠, 3♥, 4♣, 5♣ Wild", "", ScoreState{10, 6}},
		{"flower pot three cards", []string{"Flower Pot"}, HighCard, "2♠, 3♥, 4♦", "", start},
		{"flower pot smeared", []string{"Flower Pot", "Smeared Joker"}, Straight, "2♠, 3♥, 4♣, 5♣", "", ScoreState{10, 6}},
		{"flower pot smeared one colour", []string{"Flower Pot", "Smeared Joker"}, Flush, "2♠, 3♠, 4♣, 5♣", "", start},
		{"flower pot smeared one card per colour", []string{"Flower Pot", "Smeared Joker"}, Straight, "2♠, 3♥, 4♠, 5♠", "", ScoreState{10, 6}},

		{"greedy", []string{"Greedy Joker"}, HighCard, "2♦, 3♥, 4♠ Wild", "", ScoreState{10, 8}},
		{"greedy smeared", []string{"Greedy Joker", "Smeared Joker"}, HighCard, "2♦, 3♥, 4♠ Wild", "", ScoreState{10, 11}},
		{"lusty", []string{"Lusty Joker"}, HighCard, "2♦, 3♥, 4♠", "", ScoreState{10, 5}},
		{"wrathful", []string{"Wrathful Joker"}, HighCard, "2♣, 3♠, 4♠", "", ScoreState{10, 8}},
		{"gluttonous", []string{"Gluttonous Joker"}, HighCard, "2♣, 3♠, 4♠", "", ScoreState{10, 5}},
		{"fibonacci", []string{"Fibonacci"}, HighCard, "A♠, 2♠, 4♠, 8♠", "", ScoreState{10, 26}},
		{"scary face", []string{"Scary Face"}, HighCard, "J♠, 5♠, K♥", "", ScoreState{70, 2}},
		{"scary face pareidolia", []string{"Scary Face", "Pareidolia"}, HighCard, "J♠, 5♠, K♥", "", ScoreState{100, 2}},
		{"even steven", []string{"Even Steven"}, HighCard, "2♠, 10♠, Q♠, 7♠", "", ScoreState{10, 10}},
		{"odd todd", []string{"Odd Todd"}, HighCard, "A♠, 9♠, 10♠, 3♠", "", ScoreState{103, 2}},
		{"photograph first face only", []string{"Photograph"}, HighCard, "5♠, J♠, K♠", "", ScoreState{10, 4}},
		{"photograph no face", []string{"Photograph"}, HighCard, "5♠, 6♠", "", start},
		{"smiley face", []string{"Smiley Face"}, HighCard, "J♠, Q♠, 2♠", "", ScoreState{10, 12}},

		{"raised fist last lowest", []string{"Raised Fist"}, HighCard, "", "9♠, 4♥, 4♣", ScoreState{10, 10}},
		{"raised fist empty hand", []string{"Raised Fist"}, HighCard, "", "", start},
		{"baron compounds", []string{"Baron"}, HighCard, "", "K♠, K♥, 2♣", ScoreState{10, 4.5}},

		{"passive jokers", []string{"Four Fingers", "Shortcut", "Splash", "Pareidolia", "Smeared Joker", "Mime", "Sock And Buskin"}, Pair, "K♠, K♥", "2♣", start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyJokers(jokers(t, tt.jokers...), cardList(t, tt.held), cardList(t, tt.scored), tt.hand, start)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJokerEvaluationOrder(t *testing.T) {
	start := ScoreState{Chips: 10, Mult: 2}
	scored := hand(t, "A♠")
	held := hand(t, "K♥")

	// Fibonacci (scored), then Baron (held), then Joker: (2+8)*1.5+4
	got := ApplyJokers(jokers(t, "Joker", "Baron", "Fibonacci"), held, scored, HighCard, start)
	assert.Equal(t, 19.0, got.Mult)

	// Joker editions come last: (2+8+4)*1.5
	got = ApplyJokers(jokers(t, "Joker Polychrome", "Fibonacci"), nil, scored, HighCard, start)
	assert.Equal(t, 21.0, got.Mult)

	got = ApplyJokers(jokers(t, "Joker Foil", "Joker Holographic"), nil, scored, HighCard, start)
	assert.Equal(t, ScoreState{Chips: 60, Mult: 20}, got)
}

func TestNoEffectJokers(t *testing.T) {
	start := ScoreState{Chips: 10, Mult: 2}
	tests := []struct {
		name   string
		jokers []string
		scored string
		held   string
		want   ScoreState
	}{
		{"blueprint leaves joker alone", []string{"Blueprint", "Joker"}, "A♠", "K♥", ScoreState{10, 6}},
		{"blueprint leaves baron alone", []string{"Blueprint", "Baron"}, "A♠", "K♥", ScoreState{10, 3}},
		{"blueprint leaves abstract alone", []string{"Blueprint", "Abstract Joker"}, "A♠", "", ScoreState{10, 8}},
		{"blueprint keeps own edition", []string{"Blueprint Foil"}, "A♠", "", ScoreState{60, 2}},
		{"sock and buskin with smiley face", []string{"Sock And Buskin", "Smiley Face"}, "J♠, 2♠", "", ScoreState{10, 7}},
		{"sock and buskin with photograph", []string{"Sock And Buskin", "Photograph"}, "Q♠", "", ScoreState{10, 4}},
		{"mime with baron", []string{"Mime", "Baron"}, "", "K♠", ScoreState{10, 3}},
		{"two mimes with raised fist", []string{"Mime", "Mime", "Raised Fist"}, "", "3♠", ScoreState{10, 8}},
		{"shortcut alone", []string{"Shortcut"}, "2♠, 4♠", "", start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyJokers(jokers(t, tt.jokers...), cardList(t, tt.held), cardList(t, tt.scored), HighCard, start)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCapabilities(t *testing.T) {
	tests := []struct {
		name   string
		jokers []string
		want   Capabilities
	}{
		{"none", nil, Capabilities{}},
		{"scoring jokers", []string{"Joker", "Baron"}, Capabilities{}},
		{"every flag", []string{"Four Fingers", "Splash", "Pareidolia", "Smeared Joker"}, Capabilities{FourFingers: true, Splash: true, Pareidolia: true, Smeared: true}},
		{"no-effect jokers", []string{"Shortcut", "Mime", "Sock And Buskin", "Blueprint"}, Capabilities{}},
		{"blueprint grants nothing", []string{"Blueprint", "Splash"}, Capabilities{Splash: true}},
		{"blueprint copies no flag", []string{"Blueprint", "Blueprint", "Joker"}, Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCapabilities(jokers(t, tt.jokers...)))
		})
	}
}
