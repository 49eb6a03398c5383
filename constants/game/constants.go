package game_constants

// Hand shape limits
const MAX_PLAYED_CARDS = 5
const FULL_HAND_SIZE = 5
const FOUR_FINGERS_HAND_SIZE = 4 // NOTE: Four Fingers lowers straights and flushes to this

// Card enhancement effects (scored cards)
const (
	BONUS_CHIPS = 30.0
	MULT_MULT   = 4.0
	GLASS_XMULT = 2.0
)

// Steel only fires while the card stays in hand
const STEEL_XMULT = 1.5

// Edition effects, shared by playing cards and joker cards
const (
	FOIL_CHIPS       = 50.0
	HOLOGRAPHIC_MULT = 10.0
	POLYCHROME_XMULT = 1.5
)

// Jokers
const ABSTRACT_MULT_PER_JOKER = 3.0
const RAISED_FIST_FACTOR = 2.0
const BARON_XMULT = 1.5
const SUIT_JOKER_MULT = 3.0
