package poker

import (
	game_constants "Jokerscore/constants/game"
)

// ModifierFunc applies one enhancement or edition. inHand is true for cards held, not played.
type ModifierFunc func(s ScoreState, inHand bool) ScoreState

var enhancementTable = map[Enhancement]ModifierFunc{
	NoEnhancement: noModifier,
	Bonus:         BonusCard,
	Mult:          MultCard,
	Wild:          noModifier, // only changes suit matching
	Glass:         GlassCard,
	Steel:         SteelCard,
}

var editionTable = map[Edition]ModifierFunc{
	NoEdition:   noModifier,
	Foil:        FoilEdition,
	Holographic: HolographicEdition,
	Polychrome:  PolychromeEdition,
}

func noModifier(s ScoreState, inHand bool) ScoreState {
	return s
}

// +30 chips when scored
func BonusCard(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.AddChips(game_constants.BONUS_CHIPS)
}

// +4 mult when scored
func MultCard(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.AddMult(game_constants.MULT_MULT)
}

// x2 mult when scored
func GlassCard(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.TimesMult(game_constants.GLASS_XMULT)
}

// x1.5 mult, but only while held
func SteelCard(s ScoreState, inHand bool) ScoreState {
	if !inHand {
		return s
	}
	return s.TimesMult(game_constants.STEEL_XMULT)
}

func FoilEdition(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.AddChips(game_constants.FOIL_CHIPS)
}

func HolographicEdition(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.AddMult(game_constants.HOLOGRAPHIC_MULT)
}

func PolychromeEdition(s ScoreState, inHand bool) ScoreState {
	if inHand {
		return s
	}
	return s.TimesMult(game_constants.POLYCHROME_XMULT)
}

func ApplyEnhancement(e Enhancement, s ScoreState, inHand bool) ScoreState {
	if modifierFunc, exists := enhancementTable[e]; exists {
		return modifierFunc(s, inHand)
	}
	return s
}

// ApplyEdition is shared by playing cards and joker cards (jokers always use inHand=false).
func ApplyEdition(e Edition, s ScoreState, inHand bool) ScoreState {
	if modifierFunc, exists := editionTable[e]; exists {
		return modifierFunc(s, inHand)
	}
	return s
}

// ApplyCardModifiers applies the card's enhancement, then its edition.
func ApplyCardModifiers(card Card, s ScoreState, inHand bool) ScoreState {
	s = ApplyEnhancement(card.Enhancement, s, inHand)
	return ApplyEdition(card.Edition, s, inHand)
}

// ApplyModifiers folds every card's modifiers left to right, so
// multiplicative effects compound in card order.
func ApplyModifiers(cards []Card, s ScoreState, inHand bool) ScoreState {
	return applyModifiers(cards, s, inHand, nil)
}

func applyModifiers(cards []Card, s ScoreState, inHand bool, ledger *Ledger) ScoreState {
	stage := StageScoredCard
	if inHand {
		stage = StageHeldCard
	}

	for _, card := range cards {
		before := s
		s = ApplyEnhancement(card.Enhancement, s, inHand)
		ledger.Record(stage, card.String(), card.Enhancement.String(), before, s)

		before = s
		s = ApplyEdition(card.Edition, s, inHand)
		ledger.Record(stage, card.String(), card.Edition.String(), before, s)
	}
	return s
}
