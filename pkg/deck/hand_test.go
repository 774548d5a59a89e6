package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := CardsFromString("2c,3c,4d")
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("As"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "As,3c", CardsToString(h))
}

func TestHand_FirstLastCard(t *testing.T) {
	h := CardsFromString("As,3c,9d")
	c, ok := h.FirstCard()
	assert.True(t, ok)
	assert.Equal(t, "As", CardToString(c))

	c, ok = h.LastCard()
	assert.True(t, ok)
	assert.Equal(t, "9d", CardToString(c))

	_, ok = Hand{}.FirstCard()
	assert.False(t, ok)
	_, ok = Hand{}.LastCard()
	assert.False(t, ok)
}

func TestHand_Duplicate(t *testing.T) {
	c, ok := CardsFromString("As,3c,9d,3c").Duplicate()
	assert.True(t, ok)
	assert.Equal(t, CardFromString("3c"), c)

	_, ok = CardsFromString("As,3c,9d").Duplicate()
	assert.False(t, ok)
}

func TestHand_SortByRank(t *testing.T) {
	h := CardsFromString("3c,Kd,3h,Ad,Ks")
	sorted := h.SortByRank()
	assert.Equal(t, "Ad,Kd,Ks,3c,3h", sorted.String())

	// the original is untouched
	assert.Equal(t, "3c,Kd,3h,Ad,Ks", h.String())
}

func TestHand_Without(t *testing.T) {
	h := CardsFromString("3c,Kd,3h,Ad")
	assert.Equal(t, "3c,Ad", h.Without(CardFromString("Kd"), CardFromString("3h"), CardFromString("2s")).String())
}
