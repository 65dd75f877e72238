package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufaria/storefront-backend/internal/entity"
)

var testItems = []entity.OrderItem{{ProductID: 1, Quantity: 2}}

func TestLedgerCreateAssignsSequentialIDs(t *testing.T) {
	l := NewLedger()

	o1, err := l.Create(testItems, "Ana", "11999999999")
	require.NoError(t, err)
	assert.Equal(t, 1, o1.ID)
	assert.Len(t, o1.Items, 1)

	o2, err := l.Create(testItems, "Bia", "11888888888")
	require.NoError(t, err)
	assert.Equal(t, 2, o2.ID)
}

func TestLedgerCreateStampsCreationTime(t *testing.T) {
	l := NewLedger()
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	o, err := l.Create(testItems, "Ana", "11999999999")
	require.NoError(t, err)
	assert.Equal(t, fixed, o.CreatedAt)
}

func TestLedgerCreateValidation(t *testing.T) {
	l := NewLedger()

	tests := []struct {
		name     string
		items    []entity.OrderItem
		customer string
		phone    string
	}{
		{"no items", nil, "Ana", "11999999999"},
		{"empty items", []entity.OrderItem{}, "Ana", "11999999999"},
		{"no customer", testItems, "", "11999999999"},
		{"no phone", testItems, "Ana", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Create(tt.items, tt.customer, tt.phone)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Rejected submissions must not consume ids.
	o, err := l.Create(testItems, "Ana", "11999999999")
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
}

func TestLedgerCreateCopiesItems(t *testing.T) {
	l := NewLedger()

	items := []entity.OrderItem{{ProductID: 1, Quantity: 2}}
	o, err := l.Create(items, "Ana", "11999999999")
	require.NoError(t, err)

	items[0].Quantity = 99
	got := l.List()
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Items[0].Quantity)
	assert.Equal(t, o.ID, got[0].ID)
}

func TestLedgerListInsertionOrder(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 3; i++ {
		_, err := l.Create(testItems, "Ana", "11999999999")
		require.NoError(t, err)
	}

	got := l.List()
	require.Len(t, got, 3)
	for i, o := range got {
		assert.Equal(t, i+1, o.ID)
	}
}

func TestLedgerDeleteReturnsRemovedOrder(t *testing.T) {
	l := NewLedger()
	o1, _ := l.Create(testItems, "Ana", "11999999999")
	o2, _ := l.Create(testItems, "Bia", "11888888888")

	removed, err := l.Delete(o1.ID)
	require.NoError(t, err)
	assert.Equal(t, o1, removed)

	remaining := l.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, o2.ID, remaining[0].ID)
}

func TestLedgerDeleteUnknownIDLeavesLedgerUnchanged(t *testing.T) {
	l := NewLedger()
	_, err := l.Create(testItems, "Ana", "11999999999")
	require.NoError(t, err)

	_, err = l.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, l.List(), 1)
}

func TestLedgerClearKeepsIDHighWaterMark(t *testing.T) {
	l := NewLedger()
	l.Create(testItems, "Ana", "11999999999")
	l.Create(testItems, "Bia", "11888888888")

	assert.Equal(t, 2, l.Clear())
	assert.Empty(t, l.List())

	// Ids keep increasing after a bulk clear; they are never reused
	// within a process lifetime.
	o, err := l.Create(testItems, "Clara", "11777777777")
	require.NoError(t, err)
	assert.Equal(t, 3, o.ID)

	assert.Equal(t, 1, l.Clear())
	assert.Equal(t, 0, l.Clear())
}

func TestLedgerIDsMonotonicAcrossDeleteAndClear(t *testing.T) {
	l := NewLedger()

	last := 0
	issue := func() int {
		o, err := l.Create(testItems, "Ana", "11999999999")
		require.NoError(t, err)
		assert.Greater(t, o.ID, last)
		last = o.ID
		return o.ID
	}

	first := issue()
	issue()
	_, err := l.Delete(first)
	require.NoError(t, err)
	issue()
	l.Clear()
	issue()
	assert.Equal(t, 4, last)
}
