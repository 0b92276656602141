package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// RanksPerSuit is the number of distinct ranks in a suit
const RanksPerSuit = 13

// Suits returns every suit in index order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Index returns the position of the suit (clubs=0, diamonds=1, hearts=2, spades=3)
// or -1 for an unknown suit
func (s Suit) Index() int {
	switch s {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	default:
		return -1
	}
}

// Offset returns the first deck index of the suit's block
func (s Suit) Offset() int {
	return s.Index() * RanksPerSuit
}

// Symbol returns the suit symbol, i.e., ♠
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		panic(fmt.Sprintf("unknown suit: %q", string(s)))
	}
}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
// Aces are always low; broadway is recognized by rank index, not by a high-ace rank
const (
	LowAce = 1
	Ace    = LowAce
	Jack   = 11
	Queen  = 12
	King   = 13
)

func (c Card) String() string {
	return rankToken(c.Rank) + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Index returns the rank index of the card, from 0 (ace) through 12 (king)
func (c Card) Index() int {
	return c.Rank - 1
}

// DeckIndex combines the rank index and the suit offset into a single
// position within a 52-card deck
func (c Card) DeckIndex() int {
	return c.Suit.Offset() + c.Index()
}

func rankToken(rank int) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(rank)
	}
}

// emojiPresentation is the variation selector pasted suits often carry, i.e., ♠️
const emojiPresentation = "\uFE0F"

var cardRx = regexp.MustCompile(`(?i)^(10|[2-9]|[ajqk])(♣|♦|♢|♥|♡|♠|[cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is one of A,2..10,J,Q,K
// and suit is a suit symbol (♣♦♥♠) or letter (cdhs)
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.ReplaceAll(strings.TrimSpace(s), emojiPresentation, ""))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		// the regexp guarantees 2..10
		rank, _ = strconv.Atoi(match[1])
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "♣", "c":
		suit = Clubs
	case "♦", "♢", "d":
		suit = Diamonds
	case "♥", "♡", "h":
		suit = Hearts
	case "♠", "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardParseError reports which token in a list could not be parsed
type CardParseError struct {
	Index int
	Err   error
}

func (c CardParseError) Error() string {
	return fmt.Sprintf("card %d: %v", c.Index+1, c.Err)
}

func (c CardParseError) Unwrap() error {
	return c.Err
}

// ParseCards parses each token, stopping on the first bad one
func ParseCards(tokens []string) (Hand, error) {
	hand := make(Hand, len(tokens))
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return nil, CardParseError{Index: i, Err: err}
		}

		hand[i] = card
	}

	return hand, nil
}

// CardsFromString will return a slice of cards from a comma-separated list, i.e., "A♠,10♥"
// It panics on malformed input and is meant for fixtures
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	hand, err := ParseCards(strings.Split(s, ","))
	if err != nil {
		panic(fmt.Sprintf("could not parse cards `%s`: %v", s, err))
	}

	return hand
}
