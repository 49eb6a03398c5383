package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownRank        = errors.New("unknown rank")
	ErrUnknownSuit        = errors.New("unknown suit")
	ErrUnknownEnhancement = errors.New("unknown enhancement")
	ErrUnknownEdition     = errors.New("unknown edition")
	ErrEmptyCard          = errors.New("empty card")
)

// Rank of a playing card. The zero value is not a valid rank.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

// Order is the numeric position of the rank: Two=2 ... Ten=10, J=11, Q=12, K=13, A=14.
// It is also the amount of chips the card adds when it scores.
func (r Rank) Order() float64 {
	return float64(r)
}

func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T", "TEN":
		return Ten, nil
	case "J", "JACK":
		return Jack, nil
	case "Q", "QUEEN":
		return Queen, nil
	case "K", "KING":
		return King, nil
	case "A", "ACE":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, s)
}

type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// AllSuits in the order used for tie breaks.
var AllSuits = [...]Suit{Spades, Hearts, Clubs, Diamonds}

func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

// Partner is the other suit of the same colour. Smeared Joker merges a suit with its partner.
func (s Suit) Partner() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	default:
		return Hearts
	}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "♠", "s", "spade", "spades":
		return Spades, nil
	case "♥", "h", "heart", "hearts":
		return Hearts, nil
	case "♣", "c", "club", "clubs":
		return Clubs, nil
	case "♦", "d", "diamond", "diamonds":
		return Diamonds, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSuit, s)
}

type Enhancement int

const (
	NoEnhancement Enhancement = iota
	Bonus
	Mult
	Wild
	Glass
	Steel
)

var enhancementNames = map[Enhancement]string{
	Bonus: "Bonus", Mult: "Mult", Wild: "Wild", Glass: "Glass", Steel: "Steel",
}

func (e Enhancement) String() string {
	if name, ok := enhancementNames[e]; ok {
		return name
	}
	return ""
}

func ParseEnhancement(s string) (Enhancement, error) {
	for e, name := range enhancementNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return e, nil
		}
	}
	return NoEnhancement, fmt.Errorf("%w: %q", ErrUnknownEnhancement, s)
}

type Edition int

const (
	NoEdition Edition = iota
	Foil
	Holographic
	Polychrome
)

var editionNames = map[Edition]string{
	Foil: "Foil", Holographic: "Holographic", Polychrome: "Polychrome",
}

func (e Edition) String() string {
	if name, ok := editionNames[e]; ok {
		return name
	}
	return ""
}

func ParseEdition(s string) (Edition, error) {
	for e, name := range editionNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return e, nil
		}
	}
	return NoEdition, fmt.Errorf("%w: %q", ErrUnknownEdition, s)
}

// Card is a plain value: two cards with the same fields are the same card.
type Card struct {
	Rank        Rank
	Suit        Suit
	Enhancement Enhancement
	Edition     Edition
}

func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) WithEnhancement(e Enhancement) Card {
	c.Enhancement = e
	return c
}

func (c Card) WithEdition(e Edition) Card {
	c.Edition = e
	return c
}

func (c Card) Order() float64 {
	return c.Rank.Order()
}

func (c Card) IsWild() bool {
	return c.Enhancement == Wild
}

// IsFace honours Pareidolia, which turns every card into a face card.
func (c Card) IsFace(caps Capabilities) bool {
	return caps.Pareidolia || c.Rank.IsFace()
}

// MatchesSuit reports whether the card counts as suit s. Wild cards match every suit.
func (c Card) MatchesSuit(s Suit, smeared bool) bool {
	if c.Suit == s || c.IsWild() {
		return true
	}
	return smeared && c.Suit.Color() == s.Color()
}

func (c Card) IsBlack() bool {
	return c.Suit.Color() == Black
}

// String renders the card the way round documents write it, e.g. "10♥ Glass Foil".
func (c Card) String() string {
	parts := []string{c.Rank.String() + c.Suit.String()}
	if c.Enhancement != NoEnhancement {
		parts = append(parts, c.Enhancement.String())
	}
	if c.Edition != NoEdition {
		parts = append(parts, c.Edition.String())
	}
	return strings.Join(parts, " ")
}

// ParseCard reads "<rank><suit> [enhancement] [edition]", e.g. "K♠", "10h Bonus", "A♦ Wild Polychrome".
func ParseCard(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Card{}, ErrEmptyCard
	}

	head := []rune(fields[0])
	if len(head) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownSuit, fields[0])
	}
	rank, err := ParseRank(string(head[:len(head)-1]))
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(string(head[len(head)-1]))
	if err != nil {
		return Card{}, err
	}
	card := NewCard(rank, suit)

	for _, field := range fields[1:] {
		if e, err := ParseEnhancement(field); err == nil {
			if card.Enhancement != NoEnhancement {
				return Card{}, fmt.Errorf("card %q: %w: second enhancement %q", s, ErrUnknownEnhancement, field)
			}
			card.Enhancement = e
			continue
		}
		ed, err := ParseEdition(field)
		if err != nil {
			return Card{}, fmt.Errorf("card %q: %w", s, err)
		}
		if card.Edition != NoEdition {
			return Card{}, fmt.Errorf("card %q: %w: second edition %q", s, ErrUnknownEdition, field)
		}
		card.Edition = ed
	}
	return card, nil
}
