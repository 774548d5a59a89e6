package playerhand

import (
	"fmt"
)

// Street is the betting round, determined by the number of community cards
type Street int

// Street constants
const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// streetForCommunity maps the community card count to a street
var streetForCommunity = map[int]Street{
	0: Preflop,
	3: Flop,
	4: Turn,
	5: River,
}

// StreetFromCommunity returns the street for the number of community cards
func StreetFromCommunity(n int) (Street, bool) {
	s, ok := streetForCommunity[n]
	return s, ok
}

// ParseStreet parses a street name, i.e., "flop" or "FLOP"
func ParseStreet(s string) (Street, error) {
	var street Street
	if err := street.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}

	return street, nil
}

// String returns the name of the street
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	}

	panic(fmt.Sprintf("unknown street: %d", s))
}

// Remaining returns the number of community cards still to come
func (s Street) Remaining() int {
	switch s {
	case Preflop:
		return 5
	case Flop:
		return 2
	case Turn:
		return 1
	}

	return 0
}

// CommunityCards returns the number of community cards revealed on the street
func (s Street) CommunityCards() int {
	return 5 - s.Remaining()
}

// MarshalText encodes the street as an upper case label, i.e., FLOP
func (s Street) MarshalText() ([]byte, error) {
	switch s {
	case Preflop:
		return []byte("PREFLOP"), nil
	case Flop:
		return []byte("FLOP"), nil
	case Turn:
		return []byte("TURN"), nil
	case River:
		return []byte("RIVER"), nil
	}

	return nil, fmt.Errorf("unknown street: %d", s)
}

// UnmarshalText decodes the street, ignoring case
func (s *Street) UnmarshalText(b []byte) error {
	switch string(b) {
	case "PREFLOP", "preflop":
		*s = Preflop
	case "FLOP", "flop":
		*s = Flop
	case "TURN", "turn":
		*s = Turn
	case "RIVER", "river":
		*s = River
	default:
		return fmt.Errorf("unknown street: %s", b)
	}

	return nil
}
