package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankItems(t *testing.T) {
	window := []SaleRecord{
		{Item: "Milk", Quantity: 5},
		{Item: "Bread", Quantity: 2},
		{Item: "Eggs", Quantity: 9},
		{Item: "Milk", Quantity: 4},
		{Item: "Rice", Quantity: 1},
		{Item: "Tea", Quantity: 3},
		{Item: "Sugar", Quantity: 7},
	}
	// Totals: Eggs 9, Milk 9, Sugar 7, Tea 3, Bread 2, Rice 1.

	top, low := rankItems(window)

	// Milk before Eggs on the tie: Milk appeared first in the window.
	assert.Equal(t, []string{"Milk", "Eggs", "Sugar"}, top)
	assert.Equal(t, []string{"Rice", "Bread", "Tea"}, low)
}

func TestRankItemsFewDistinctItemsOverlap(t *testing.T) {
	window := []SaleRecord{
		{Item: "Milk", Quantity: 10},
		{Item: "Bread", Quantity: 2},
	}

	top, low := rankItems(window)

	assert.Equal(t, []string{"Milk", "Bread"}, top)
	assert.Equal(t, []string{"Bread", "Milk"}, low)
}

func TestRankItemsLimitsToThree(t *testing.T) {
	window := []SaleRecord{
		{Item: "A", Quantity: 1},
		{Item: "B", Quantity: 2},
		{Item: "C", Quantity: 3},
		{Item: "D", Quantity: 4},
		{Item: "E", Quantity: 5},
		{Item: "F", Quantity: 6},
		{Item: "G", Quantity: 7},
	}

	top, low := rankItems(window)

	assert.Equal(t, []string{"G", "F", "E"}, top)
	assert.Equal(t, []string{"A", "B", "C"}, low)
}

func TestRankItemsEmptyWindow(t *testing.T) {
	top, low := rankItems(nil)
	assert.Empty(t, top)
	assert.Empty(t, low)
	assert.NotNil(t, top)
	assert.NotNil(t, low)
}

func TestRankItemsExactStringMatch(t *testing.T) {
	// No normalization of case or whitespace.
	window := []SaleRecord{
		{Item: "milk", Quantity: 3},
		{Item: "Milk", Quantity: 5},
	}

	top, _ := rankItems(window)
	assert.Equal(t, []string{"Milk", "milk"}, top)
}
