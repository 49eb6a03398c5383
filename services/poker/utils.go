package poker

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// roundDocument keeps the raw entries so every bad card can be reported, not just the first.
type roundDocument struct {
	CardsPlayed     []yaml.Node `yaml:"cards_played"`
	CardsHeldInHand []yaml.Node `yaml:"cards_held_in_hand"`
	Jokers          []yaml.Node `yaml:"jokers"`
}

type cardFields struct {
	Rank        string `yaml:"rank"`
	Suit        string `yaml:"suit"`
	Enhancement string `yaml:"enhancement"`
	Edition     string `yaml:"edition"`
}

type jokerFields struct {
	Joker   string `yaml:"joker"`
	Edition string `yaml:"edition"`
}

// cardFromNode accepts "K♠ Glass" or {rank: K, suit: Spades, enhancement: Glass}.
func cardFromNode(n *yaml.Node) (Card, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseCard(n.Value)
	case yaml.MappingNode:
		var f cardFields
		if err := n.Decode(&f); err != nil {
			return Card{}, err
		}
		rank, err := ParseRank(f.Rank)
		if err != nil {
			return Card{}, err
		}
		suit, err := ParseSuit(f.Suit)
		if err != nil {
			return Card{}, err
		}
		card := NewCard(rank, suit)
		if f.Enhancement != "" {
			if card.Enhancement, err = ParseEnhancement(f.Enhancement); err != nil {
				return Card{}, err
			}
		}
		if f.Edition != "" {
			if card.Edition, err = ParseEdition(f.Edition); err != nil {
				return Card{}, err
			}
		}
		return card, nil
	}
	return Card{}, fmt.Errorf("card must be a string or a mapping, got %q", n.Tag)
}

// jokerFromNode accepts "Jolly Joker Foil" or {joker: Jolly Joker, edition: Foil}.
func jokerFromNode(n *yaml.Node) (JokerCard, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseJokerCard(n.Value)
	case yaml.MappingNode:
		var f jokerFields
		if err := n.Decode(&f); err != nil {
			return JokerCard{}, err
		}
		joker, err := ParseJoker(f.Joker)
		if err != nil {
			return JokerCard{}, err
		}
		card := JokerCard{Joker: joker}
		if f.Edition != "" {
			if card.Edition, err = ParseEdition(f.Edition); err != nil {
				return JokerCard{}, err
			}
		}
		return card, nil
	}
	return JokerCard{}, fmt.Errorf("joker must be a string or a mapping, got %q", n.Tag)
}

func (c *Card) UnmarshalYAML(value *yaml.Node) error {
	card, err := cardFromNode(value)
	if err != nil {
		return err
	}
	*c = card
	return nil
}

func (c Card) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (j *JokerCard) UnmarshalYAML(value *yaml.Node) error {
	card, err := jokerFromNode(value)
	if err != nil {
		return err
	}
	*j = card
	return nil
}

func (j JokerCard) MarshalYAML() (interface{}, error) {
	return j.String(), nil
}

func decodeCards(field string, nodes []yaml.Node) ([]Card, error) {
	var errs error
	cards := make([]Card, 0, len(nodes))
	for i := range nodes {
		card, err := cardFromNode(&nodes[i])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s[%d] (line %d): %w", field, i, nodes[i].Line, err))
			continue
		}
		cards = append(cards, card)
	}
	return cards, errs
}

// ParseRound decodes a round document. All malformed entries are reported together.
func ParseRound(data []byte) (Round, error) {
	var doc roundDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Round{}, fmt.Errorf("invalid round document: %w", err)
	}

	var errs error
	played, err := decodeCards("cards_played", doc.CardsPlayed)
	errs = multierr.Append(errs, err)
	held, err := decodeCards("cards_held_in_hand", doc.CardsHeldInHand)
	errs = multierr.Append(errs, err)

	jokers := make([]JokerCard, 0, len(doc.Jokers))
	for i := range doc.Jokers {
		joker, err := jokerFromNode(&doc.Jokers[i])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("jokers[%d] (line %d): %w", i, doc.Jokers[i].Line, err))
			continue
		}
		jokers = append(jokers, joker)
	}

	if errs != nil {
		return Round{}, errs
	}
	return Round{CardsPlayed: played, CardsHeldInHand: held, Jokers: jokers}, nil
}

// ToYAML renders the round back into a document ParseRound accepts.
func (r Round) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
