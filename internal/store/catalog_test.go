package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufaria/storefront-backend/internal/entity"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(DefaultProducts())
	require.NoError(t, err)
	return c
}

func TestCatalogListPreservesInsertionOrder(t *testing.T) {
	c := newTestCatalog(t)

	all := c.List(false)
	require.Len(t, all, 5)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestCatalogListActiveOnlyIsOrderedSubset(t *testing.T) {
	c := newTestCatalog(t)

	all := c.List(false)
	active := c.List(true)

	// The active listing must be exactly the active subset of the full
	// listing, with relative order intact.
	want := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if p.Active {
			want = append(want, p)
		}
	}
	assert.Equal(t, want, active)
	assert.Len(t, active, 3)
}

func TestCatalogListEmpty(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)

	assert.Empty(t, c.List(false))
	assert.Empty(t, c.List(true))
}

func TestCatalogSetActiveExplicit(t *testing.T) {
	c := newTestCatalog(t)

	off := false
	p, err := c.SetActive(1, &off)
	require.NoError(t, err)
	assert.False(t, p.Active)

	// Setting again to the same value is a no-op, not an error.
	p, err = c.SetActive(1, &off)
	require.NoError(t, err)
	assert.False(t, p.Active)

	on := true
	p, err = c.SetActive(1, &on)
	require.NoError(t, err)
	assert.True(t, p.Active)
}

func TestCatalogToggleTwiceRestoresOriginal(t *testing.T) {
	c := newTestCatalog(t)

	before := c.List(false)[3] // id 4, seeded inactive
	require.False(t, before.Active)

	p, err := c.SetActive(4, nil)
	require.NoError(t, err)
	assert.True(t, p.Active)

	p, err = c.SetActive(4, nil)
	require.NoError(t, err)
	assert.Equal(t, before, p)
}

func TestCatalogSetActiveUnknownID(t *testing.T) {
	c := newTestCatalog(t)
	snapshot := c.List(false)

	_, err := c.SetActive(999, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// A failed lookup must not disturb any real product.
	assert.Equal(t, snapshot, c.List(false))
}

func TestCatalogSeedRejectsDuplicateIDs(t *testing.T) {
	seed := DefaultProducts()
	seed[1].ID = seed[0].ID

	_, err := NewCatalog(seed)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalogSeedRejectsNegativePrice(t *testing.T) {
	seed := DefaultProducts()
	seed[0].Price = seed[0].Price.Neg()

	_, err := NewCatalog(seed)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
