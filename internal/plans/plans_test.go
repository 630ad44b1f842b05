package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTiers(t *testing.T) {
	all := All()
	require.Len(t, all, 4)

	free, err := ByID("free")
	require.NoError(t, err)
	require.NotNil(t, free.MaxVisits)
	assert.Equal(t, int64(20), *free.MaxVisits)
	assert.Equal(t, int64(0), free.Price)

	starter, err := ByID("starter")
	require.NoError(t, err)
	assert.Equal(t, int64(50), *starter.MaxVisits)
	assert.True(t, starter.IsPopular)

	pro, err := ByID("pro")
	require.NoError(t, err)
	assert.Equal(t, int64(100), *pro.MaxVisits)

	unlimited, err := ByID("unlimited")
	require.NoError(t, err)
	assert.Nil(t, unlimited.MaxVisits)
	assert.Equal(t, int64(15), unlimited.Price)
}

func TestUnknownPlanFailsClosed(t *testing.T) {
	_, err := ByID("platinum")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	// An unknown plan must never be treated as unlimited.
	ceiling, err := MaxVisits("platinum")
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.Nil(t, ceiling)
}

func TestMaxVisitsReturnsACopy(t *testing.T) {
	a, err := MaxVisits("free")
	require.NoError(t, err)
	b, err := MaxVisits("free")
	require.NoError(t, err)

	*a = 999
	assert.Equal(t, int64(20), *b)

	fresh, err := ByID("free")
	require.NoError(t, err)
	assert.Equal(t, int64(20), *fresh.MaxVisits)
}

func TestMaxVisitsUnlimitedIsNil(t *testing.T) {
	ceiling, err := MaxVisits("unlimited")
	require.NoError(t, err)
	assert.Nil(t, ceiling)
}
