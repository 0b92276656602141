package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"katas-server/pkg/deck"
)

// Compare ranks two hands against each other and returns -1 if a is weaker,
// 1 if a is stronger and 0 on a split. Categories decide first; hands of the
// same category are separated by their kickers
func Compare(a, b []string) (int, error) {
	rankA, err := Evaluate(a)
	if err != nil {
		return 0, err
	}

	rankB, err := Evaluate(b)
	if err != nil {
		return 0, err
	}

	if rankA != rankB {
		return sign(int(rankA) - int(rankB)), nil
	}

	// both hands were validated by Evaluate, so parsing cannot fail here
	cardsA, _ := deck.ParseCards(a)
	cardsB, _ := deck.ParseCards(b)

	scoreA, err := score(cardsA)
	if err != nil {
		return 0, err
	}

	scoreB, err := score(cardsB)
	if err != nil {
		return 0, err
	}

	return sign(int(scoreA) - int(scoreB)), nil
}

// score returns the kicker-aware strength of a validated five-card hand; higher is better
func score(cards deck.Hand) (int16, error) {
	var hand [HandSize]ph.Card
	for i, card := range cards {
		c, err := ph.MakeCard(ph.Suit(card.Suit.Index()), ph.Rank(card.Rank))
		if err != nil {
			return 0, fmt.Errorf("could not convert %s: %w", card, err)
		}

		hand[i] = c
	}

	return ph.Eval5(&hand), nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
