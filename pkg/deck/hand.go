package deck

import (
	"strings"
)

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if si, sj := h[i].Suit.Index(), h[j].Suit.Index(); si != sj {
		return si < sj
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FirstDuplicate returns the index of the first card that already appeared
// earlier in the hand, or -1 if every card is distinct
func (h Hand) FirstDuplicate() int {
	for i := 1; i < len(h); i++ {
		if h[:i].HasCard(h[i]) {
			return i
		}
	}

	return -1
}

// Strings returns the canonical token of each card
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, card := range h {
		s[i] = card.String()
	}

	return s
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), ",")
}
