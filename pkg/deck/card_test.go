package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
	assert.Equal(t, 1, LowAce)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 10,
		Suit: Spades,
	}

	assert.Equal(t, "T♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("As").AceLowRank())
	assert.Equal(t, 13, CardFromString("Ks").AceLowRank())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	for in, expects := range map[string]Card{
		"As":  {Rank: Ace, Suit: Spades},
		"ah":  {Rank: Ace, Suit: Hearts},
		"Td":  {Rank: 10, Suit: Diamonds},
		"10d": {Rank: 10, Suit: Diamonds},
		"14c": {Rank: Ace, Suit: Clubs},
		"2C":  {Rank: 2, Suit: Clubs},
		"Qh":  {Rank: Queen, Suit: Hearts},
	} {
		card, err := ParseCard(in)
		a.NoError(err, in)
		a.Equal(expects, card, in)
	}

	for _, in := range []string{"", "1s", "15s", "Ax", "A", "AsK"} {
		_, err := ParseCard(in)
		a.True(errors.Is(err, ErrInvalidCard), in)
	}
}

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("As Ks, Qs,Js  Ts")
	assert.NoError(t, err)
	assert.Equal(t, "As,Ks,Qs,Js,Ts", CardsToString(cards))

	cards, err = ParseCards("")
	assert.NoError(t, err)
	assert.Len(t, cards, 0)

	_, err = ParseCards("As Kx")
	assert.True(t, errors.Is(err, ErrInvalidCard))
}

func TestCardFromString(t *testing.T) {
	assert.PanicsWithValue(t, `could not parse card: invalid card: "Zz"`, func() {
		CardFromString("Zz")
	})
}

func TestCard_JSON(t *testing.T) {
	b, err := json.Marshal([]Card{CardFromString("As"), CardFromString("9c")})
	assert.NoError(t, err)
	assert.Equal(t, `["As","9c"]`, string(b))

	var cards []Card
	assert.NoError(t, json.Unmarshal([]byte(`["Td","2h"]`), &cards))
	assert.Equal(t, Hand(cards), CardsFromString("Td,2h"))

	assert.Error(t, json.Unmarshal([]byte(`["Tx"]`), &cards))
}
