package poker

import (
	"sort"

	"katas-server/internal/rng"
	"katas-server/pkg/deck"
)

// Deal shuffles a fresh deck and draws one hand from the top, sorted by suit then rank
func Deal(gen rng.Generator) (deck.Hand, error) {
	d := deck.New()
	d.Shuffle(gen)

	cards, err := d.Draw(HandSize)
	if err != nil {
		return nil, err
	}

	sort.Sort(cards)
	return cards, nil
}
