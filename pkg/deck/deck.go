package deck

import (
	"errors"

	"katas-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards in deck-index order (A♣ … K♠).
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for rank := LowAce; rank <= King; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the deck and shuffles it with the generator
func (d *Deck) Shuffle(gen rng.Generator) {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next n cards
// If there are not enough cards, ErrEndOfDeck is returned and the deck is untouched
func (d *Deck) Draw(n int) (Hand, error) {
	if n > len(d.Cards) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
