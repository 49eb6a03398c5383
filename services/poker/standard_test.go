package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeStandard(t *testing.T) {
	desc, err := DescribeStandard(hand(t, "K♥, K♠, 3♣, 7♦, 9♥"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	_, err = DescribeStandard(hand(t, "K♥, K♠"))
	assert.Error(t, err)

	_, err = DescribeStandard(hand(t, "8♦, 8♦, 8♦, 8♦, 8♦"))
	assert.Error(t, err)
}

func TestEvalStandardOrdersHands(t *testing.T) {
	pair, err := EvalStandard(hand(t, "K♥, K♠, 3♣, 7♦, 9♥"))
	require.NoError(t, err)
	flush, err := EvalStandard(hand(t, "A♥, 10♥, 4♥, 7♥, 2♥"))
	require.NoError(t, err)
	wheel, err := EvalStandard(hand(t, "A♠, 2♥, 3♣, 4♦, 5♠"))
	require.NoError(t, err)

	assert.Greater(t, flush, wheel)
	assert.Greater(t, wheel, pair)
}

func TestStandardIgnoresModifiers(t *testing.T) {
	plain, err := NewCard(Ace, Spades).Standard()
	require.NoError(t, err)
	fancy, err := NewCard(Ace, Spades).WithEnhancement(Glass).WithEdition(Foil).Standard()
	require.NoError(t, err)
	assert.Equal(t, plain, fancy)
}
