package poker

import "fmt"

// Rank is the category of a five-card poker hand, i.e., a flush
// Higher values are stronger hands, so ranks can be compared numerically
type Rank int

// Constants for rank
const (
	HighCard Rank = iota
	OnePair
	TwoPairs
	ThreeOfKind
	Straight
	Flush
	FullHouse
	FourOfKind
	StraightFlush
)

// Ranks returns every rank from weakest to strongest
func Ranks() []Rank {
	return []Rank{HighCard, OnePair, TwoPairs, ThreeOfKind, Straight, Flush, FullHouse, FourOfKind, StraightFlush}
}

// String returns the constant name of the rank
func (r Rank) String() string {
	switch r {
	case HighCard:
		return "HighCard"
	case OnePair:
		return "OnePair"
	case TwoPairs:
		return "TwoPairs"
	case ThreeOfKind:
		return "ThreeOfKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfKind:
		return "FourOfKind"
	case StraightFlush:
		return "StraightFlush"
	default:
		panic(fmt.Sprintf("unknown rank: %d", r))
	}
}

// Label returns the human readable name of the rank
func (r Rank) Label() string {
	switch r {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPairs:
		return "Two pair"
	case ThreeOfKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	default:
		panic(fmt.Sprintf("unknown rank: %d", r))
	}
}
