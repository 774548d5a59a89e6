package playerhand

import (
	"errors"
	"fmt"
)

// ErrHoleCardCount is returned when the player does not hold exactly two cards
var ErrHoleCardCount = errors.New("expected exactly two hole cards")

// ErrCommunityCardCount is returned when the community cards are not 0, 3, 4, or 5 cards
var ErrCommunityCardCount = errors.New("expected 0, 3, 4, or 5 community cards")

// ErrDuplicateCard is returned when the same card appears more than once
var ErrDuplicateCard = errors.New("duplicate card")

// CardCountError reports the number of cards received
type CardCountError struct {
	Err error
	Got int
}

// Error returns the error message
func (c CardCountError) Error() string {
	return fmt.Sprintf("%s: got %d", c.Err, c.Got)
}

// Unwrap returns the sentinel error
func (c CardCountError) Unwrap() error {
	return c.Err
}
