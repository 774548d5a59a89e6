package handanalyzer

import "fmt"

// Hand is a poker hand category, i.e., royal flush
// The constants are ordered by strength, weakest first
type Hand int

// Constants for hand
const (
	HighCard Hand = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Hands lists every hand, strongest first
var Hands = []Hand{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

var handLabels = map[Hand]string{
	HighCard:      "HIGH_CARD",
	OnePair:       "PAIR",
	TwoPair:       "TWO_PAIR",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
	RoyalFlush:    "ROYAL_FLUSH",
}

// MarshalText encodes the hand as a label, i.e., ROYAL_FLUSH
func (h Hand) MarshalText() ([]byte, error) {
	label, ok := handLabels[h]
	if !ok {
		return nil, fmt.Errorf("unknown hand: %d", h)
	}

	return []byte(label), nil
}

// UnmarshalText decodes a label created by MarshalText
func (h *Hand) UnmarshalText(b []byte) error {
	for hand, label := range handLabels {
		if label == string(b) {
			*h = hand
			return nil
		}
	}

	return fmt.Errorf("unknown hand: %s", b)
}

// coreSize is the number of cards that define the hand, excluding kickers
func (h Hand) coreSize() int {
	switch h {
	case OnePair:
		return 2
	case ThreeOfAKind:
		return 3
	case TwoPair, FourOfAKind:
		return 4
	case HighCard:
		return 1
	default:
		return 5
	}
}
