package poker

import (
	"errors"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katas-server/internal/rng"
	"katas-server/pkg/deck"
)

func TestCompare(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		a, b     []string
		expected int
	}{
		{[]string{"2♥", "2♠", "2♦", "7♥", "A♥"}, []string{"2♠", "3♥", "4♥", "5♥", "6♥"}, -1},
		{[]string{"4♥", "5♥", "6♥", "7♥", "8♥"}, []string{"4♣", "4♦", "4♥", "4♠", "10♥"}, 1},
		// same category, the kicker decides
		{[]string{"A♥", "A♠", "3♦", "7♥", "9♣"}, []string{"K♥", "K♠", "3♣", "7♦", "9♦"}, 1},
		{[]string{"A♥", "A♠", "3♦", "7♥", "9♣"}, []string{"A♦", "A♣", "3♣", "7♦", "10♦"}, -1},
		// the wheel is the lowest straight
		{[]string{"A♥", "2♠", "3♦", "4♥", "5♣"}, []string{"2♥", "3♠", "4♦", "5♥", "6♣"}, -1},
		// broadway is the highest straight
		{[]string{"A♥", "K♠", "Q♦", "J♥", "10♣"}, []string{"9♥", "K♦", "Q♣", "J♦", "10♦"}, 1},
		// suits never break a tie
		{[]string{"A♥", "K♥", "Q♥", "2♦", "3♠"}, []string{"A♣", "K♣", "Q♣", "2♥", "3♦"}, 0},
	}

	for _, test := range tests {
		result, err := Compare(test.a, test.b)
		if a.NoError(err) {
			a.Equal(test.expected, result, "%v vs %v", test.a, test.b)
		}

		result, err = Compare(test.b, test.a)
		if a.NoError(err) {
			a.Equal(-test.expected, result, "%v vs %v", test.b, test.a)
		}
	}

	_, err := Compare([]string{"A♥"}, []string{"A♣", "K♣", "Q♣", "2♥", "3♦"})
	a.True(errors.Is(err, ErrHandSize))

	_, err = Compare([]string{"A♣", "K♣", "Q♣", "2♥", "3♦"}, []string{"A♣", "A♣", "Q♣", "2♥", "3♦"})
	a.True(errors.Is(err, ErrDuplicateCard))
}

// category ordering must agree with an independent five-card evaluator
func TestEvaluate_agreesWithReferenceEvaluator(t *testing.T) {
	d := deck.New()
	gen := rng.Seeded(99)

	draw := func() (deck.Hand, Rank, int16) {
		d.Shuffle(gen)
		cards, err := d.Draw(HandSize)
		require.NoError(t, err)

		rank, err := EvaluateCards(cards)
		require.NoError(t, err)

		s, err := score(cards)
		require.NoError(t, err)

		return cards, rank, s
	}

	for i := 0; i < 5000; i++ {
		cardsA, rankA, scoreA := draw()
		cardsB, rankB, scoreB := draw()

		if rankA > rankB {
			assert.Greater(t, scoreA, scoreB, "%s (%s) vs %s (%s)", cardsA, rankA, cardsB, rankB)
		} else if rankA < rankB {
			assert.Less(t, scoreA, scoreB, "%s (%s) vs %s (%s)", cardsA, rankA, cardsB, rankB)
		}
	}
}

func Test_score(t *testing.T) {
	var hand [HandSize]ph.Card
	for i, token := range []string{"As", "Ks", "Qs", "Js", "10s"} {
		card, err := deck.ParseCard(token)
		require.NoError(t, err)
		hand[i], err = ph.MakeCard(ph.Suit(card.Suit.Index()), ph.Rank(card.Rank))
		require.NoError(t, err)
	}

	s, err := score(deck.CardsFromString("As,Ks,Qs,Js,10s"))
	assert.NoError(t, err)
	assert.Equal(t, ph.Eval5(&hand), s)
}
