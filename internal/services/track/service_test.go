package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irierun/irierun-go/internal/model"
)

func TestListReturnsFixedCatalog(t *testing.T) {
	service := New()

	tracks := service.List()
	require.Len(t, tracks, 2)

	assert.Equal(t, model.DefaultTrackName, tracks[0].Name)
	assert.Equal(t, "Blue Mountain Trail", tracks[0].DisplayName)
	assert.True(t, tracks[0].IsUnlocked)

	assert.Equal(t, "kingston_city", tracks[1].Name)
	assert.Equal(t, 1000, tracks[1].UnlockRequirement)
	assert.False(t, tracks[1].IsUnlocked)
}

func TestListCopiesCatalog(t *testing.T) {
	service := New()

	tracks := service.List()
	tracks[0].DisplayName = "mutated"

	fresh := service.List()
	assert.Equal(t, "Blue Mountain Trail", fresh[0].DisplayName)
}

func TestGet(t *testing.T) {
	service := New()

	found, ok := service.Get("kingston_city")
	require.True(t, ok)
	assert.Equal(t, "Kingston Street Race", found.DisplayName)

	_, ok = service.Get("nonexistent")
	assert.False(t, ok)
}
