package vending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoins_MixedValidAndInvalid(t *testing.T) {
	accepted, rejected := ParseCoins("10 20 abc 5000 50")

	assert.True(t, accepted.Equal(d("80")))
	assert.Equal(t, []string{"abc", "5000"}, rejected)
}

func TestParseCoins_AllDenominations(t *testing.T) {
	accepted, rejected := ParseCoins("1 5 10 20 50 100 200 500 1000")

	assert.True(t, accepted.Equal(d("1886")))
	assert.Nil(t, rejected)
}

func TestParseCoins_Empty(t *testing.T) {
	accepted, rejected := ParseCoins("")

	assert.True(t, accepted.IsZero())
	assert.Nil(t, rejected)
}

func TestParseCoins_WhitespaceOnly(t *testing.T) {
	accepted, rejected := ParseCoins("   \t  ")

	assert.True(t, accepted.IsZero())
	assert.Nil(t, rejected)
}

func TestParseCoins_RejectsNegativeAndFractional(t *testing.T) {
	accepted, rejected := ParseCoins("-10 2.5 25 100")

	assert.True(t, accepted.Equal(d("100")))
	assert.Equal(t, []string{"-10", "2.5", "25"}, rejected)
}
