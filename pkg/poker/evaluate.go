package poker

import (
	"errors"
	"fmt"
	"sort"

	"katas-server/pkg/deck"
)

// Evaluate returns the rank of a five-card hand such as ["A♠","4♠","3♠","5♠","2♠"].
// Malformed hands return an InputError and no rank
func Evaluate(hand []string) (Rank, error) {
	if len(hand) != HandSize {
		return HighCard, InputError{Hand: hand, Err: fmt.Errorf("%w, got %d", ErrHandSize, len(hand))}
	}

	cards, err := deck.ParseCards(hand)
	if err != nil {
		var parseErr deck.CardParseError
		if errors.As(err, &parseErr) {
			err = fmt.Errorf("%w %q at position %d", ErrInvalidCard, hand[parseErr.Index], parseErr.Index+1)
		}

		return HighCard, InputError{Hand: hand, Err: err}
	}

	return evaluate(cards, hand)
}

// EvaluateCards returns the rank of five already parsed cards
func EvaluateCards(cards deck.Hand) (Rank, error) {
	return evaluate(cards, tokensOf(cards))
}

// tokensOf renders cards for error messages without panicking on an unknown suit
func tokensOf(cards deck.Hand) []string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		if card.Suit.Index() < 0 {
			tokens[i] = fmt.Sprintf("%d(%s)", card.Rank, card.Suit)
			continue
		}

		tokens[i] = card.String()
	}

	return tokens
}

func evaluate(cards deck.Hand, tokens []string) (Rank, error) {
	if len(cards) != HandSize {
		return HighCard, InputError{Hand: tokens, Err: fmt.Errorf("%w, got %d", ErrHandSize, len(cards))}
	}

	for i, card := range cards {
		if card.Rank < deck.LowAce || card.Rank > deck.King || card.Suit.Index() < 0 {
			return HighCard, InputError{Hand: tokens, Err: fmt.Errorf("%w %q at position %d", ErrInvalidCard, tokens[i], i+1)}
		}
	}

	if i := cards.FirstDuplicate(); i >= 0 {
		return HighCard, InputError{Hand: tokens, Err: fmt.Errorf("%w %s at position %d", ErrDuplicateCard, tokens[i], i+1)}
	}

	return newAnalysis(cards).rank(), nil
}

// analysis holds the sorted indexes of a validated hand
type analysis struct {
	ranks  []int // rank indexes, ascending
	deck   []int // deck indexes (suit offset + rank index), ascending
	groups []int // multiplicity of each distinct rank, descending
}

func newAnalysis(cards deck.Hand) analysis {
	a := analysis{
		ranks: make([]int, len(cards)),
		deck:  make([]int, len(cards)),
	}

	counts := make(map[int]int, len(cards))
	for i, card := range cards {
		a.ranks[i] = card.Index()
		a.deck[i] = card.DeckIndex()
		counts[card.Index()]++
	}

	sort.Ints(a.ranks)
	sort.Ints(a.deck)

	a.groups = make([]int, 0, len(counts))
	for _, n := range counts {
		a.groups = append(a.groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(a.groups)))

	return a
}

func (a analysis) isStraight() bool {
	return isRun(a.ranks)
}

func (a analysis) isFlush() bool {
	return sameSuitBlock(a.deck)
}

func (a analysis) isStraightFlush() bool {
	if !sameSuitBlock(a.deck) {
		return false
	}

	offset := a.deck[0] - a.deck[0]%deck.RanksPerSuit
	relative := make([]int, len(a.deck))
	for i, idx := range a.deck {
		relative[i] = idx - offset
	}

	return isRun(relative)
}

// hasGroups reports whether the rank multiplicities match the pattern exactly, i.e., 3,2
func (a analysis) hasGroups(pattern ...int) bool {
	if len(a.groups) != len(pattern) {
		return false
	}

	for i, n := range pattern {
		if a.groups[i] != n {
			return false
		}
	}

	return true
}

// rank checks each category from strongest to weakest; HighCard is the catch-all
func (a analysis) rank() Rank {
	switch {
	case a.isStraightFlush():
		return StraightFlush
	case a.hasGroups(4, 1):
		return FourOfKind
	case a.hasGroups(3, 2):
		return FullHouse
	case a.isFlush():
		return Flush
	case a.isStraight():
		return Straight
	case a.hasGroups(3, 1, 1):
		return ThreeOfKind
	case a.hasGroups(2, 2, 1):
		return TwoPairs
	case a.hasGroups(2, 1, 1, 1):
		return OnePair
	default:
		return HighCard
	}
}
