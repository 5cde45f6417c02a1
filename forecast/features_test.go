package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFeatures(t *testing.T) {
	// History ordered createdAt descending, as the store returns it.
	sales := []SaleRecord{
		{Item: "Milk", Quantity: 8, CreatedAt: daysAgo(1)},
		{Item: "Bread", Quantity: 4, CreatedAt: daysAgo(3)},
		{Item: "Eggs", Quantity: 6, CreatedAt: daysAgo(6)},
		{Item: "Rice", Quantity: 10, CreatedAt: daysAgo(15)},
	}

	f, last7 := computeFeatures(sales, testNow)

	assert.Equal(t, 8.0, f.Lag1)
	// Oldest record inside the 7-day window.
	assert.Equal(t, 6.0, f.Lag7)
	assert.InDelta(t, 6.0, f.R7Mean, 1e-9)  // (8+4+6)/3
	assert.InDelta(t, 7.0, f.R30Mean, 1e-9) // (8+4+6+10)/4
	assert.Len(t, last7, 3)
}

func TestComputeFeaturesNoRecentSales(t *testing.T) {
	sales := []SaleRecord{
		{Item: "Rice", Quantity: 10, CreatedAt: daysAgo(20)},
	}

	f, last7 := computeFeatures(sales, testNow)

	assert.Equal(t, 10.0, f.Lag1)
	assert.Equal(t, 0.0, f.Lag7)
	// Empty window must yield 0, not NaN or a division error.
	assert.Equal(t, 0.0, f.R7Mean)
	assert.InDelta(t, 10.0, f.R30Mean, 1e-9)
	assert.Empty(t, last7)
}

func TestComputeFeaturesEmptyHistory(t *testing.T) {
	f, last7 := computeFeatures(nil, testNow)

	assert.Equal(t, 0.0, f.Lag1)
	assert.Equal(t, 0.0, f.Lag7)
	assert.Equal(t, 0.0, f.R7Mean)
	assert.Equal(t, 0.0, f.R30Mean)
	assert.Empty(t, last7)
}

func TestMeanQuantityEmptyWindow(t *testing.T) {
	assert.Equal(t, 0.0, meanQuantity(nil))
	assert.Equal(t, 0.0, meanQuantity([]SaleRecord{}))
}
