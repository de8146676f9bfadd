package restaurant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenuItem(t *testing.T, name string, price int64) *MenuItem {
	t.Helper()
	item, err := NewMenuItem(name, uuid.New(), decimal.NewFromInt(price), CuisineLocal)
	require.NoError(t, err)
	return item
}

func TestOrder_AddItemAndTotal(t *testing.T) {
	o, err := NewOrder("Ahmad Rahimi", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPlaced, o.Status)
	assert.True(t, o.TotalAmount.IsZero())

	kebab := newTestMenuItem(t, "Kabuli Palaw", 12)
	tea := newTestMenuItem(t, "Green Tea", 2)

	require.NoError(t, o.AddItem(kebab, 2, ""))
	require.NoError(t, o.AddItem(tea, 3, "no sugar"))

	assert.Len(t, o.Items, 2)
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(30)), "got %s", o.TotalAmount)
}

func TestOrder_AddItem_Validation(t *testing.T) {
	o, err := NewOrder("Ahmad Rahimi", uuid.New())
	require.NoError(t, err)

	item := newTestMenuItem(t, "Mantu", 8)

	err = o.AddItem(item, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quantity must be at least 1")

	item.MarkUnavailable()
	err = o.AddItem(item, 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestOrder_Pipeline(t *testing.T) {
	o, err := NewOrder("Ahmad Rahimi", uuid.New())
	require.NoError(t, err)

	want := []OrderStatus{OrderStatusPreparing, OrderStatusReady, OrderStatusServed, OrderStatusBilled}
	for _, s := range want {
		require.NoError(t, o.Advance())
		assert.Equal(t, s, o.Status)
	}

	err = o.Advance()
	require.Error(t, err, "billed is terminal")

	err = o.Cancel()
	require.Error(t, err, "billed orders cannot be cancelled")

	err = o.AddItem(newTestMenuItem(t, "Mantu", 8), 1, "")
	require.Error(t, err, "billed orders cannot be changed")
}

func TestOrder_CancelBeforeBilled(t *testing.T) {
	o, err := NewOrder("Ahmad Rahimi", uuid.New())
	require.NoError(t, err)

	require.NoError(t, o.Advance()) // preparing
	require.NoError(t, o.Cancel())
	assert.Equal(t, OrderStatusCancelled, o.Status)

	err = o.Advance()
	require.Error(t, err)
}

func TestNewMenuItem_Validation(t *testing.T) {
	_, err := NewMenuItem("", uuid.New(), decimal.NewFromInt(5), CuisineLocal)
	require.Error(t, err)

	_, err = NewMenuItem("Mantu", uuid.Nil, decimal.NewFromInt(5), CuisineLocal)
	require.Error(t, err)

	_, err = NewMenuItem("Mantu", uuid.New(), decimal.Zero, CuisineLocal)
	require.Error(t, err)

	item, err := NewMenuItem("Mantu", uuid.New(), decimal.NewFromInt(5), CuisineType("fusion"))
	require.NoError(t, err)
	assert.Equal(t, CuisineLocal, item.CuisineType)
}
