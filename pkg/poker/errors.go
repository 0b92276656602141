package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in an evaluated hand
const HandSize = 5

// ErrHandSize is returned when a hand does not have exactly five cards
var ErrHandSize = fmt.Errorf("a hand must have exactly %d cards", HandSize)

// ErrInvalidCard is returned when a card token is not recognized
var ErrInvalidCard = errors.New("unrecognized card")

// ErrDuplicateCard is returned when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("duplicate card")

// InputError is returned when a hand cannot be evaluated
// Err is one of ErrHandSize, ErrInvalidCard or ErrDuplicateCard
type InputError struct {
	Hand []string
	Err  error
}

func (i InputError) Error() string {
	return fmt.Sprintf("invalid hand [%s]: %v", strings.Join(i.Hand, " "), i.Err)
}

func (i InputError) Unwrap() error {
	return i.Err
}
