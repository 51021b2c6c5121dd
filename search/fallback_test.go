package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidepost/core"
)

func TestFallback(t *testing.T) {
	a := newTestAssembler(t)

	foodOnly := core.NewCorpus(
		core.Collection{Category: core.CategoryFood, Key: "restaurants", Records: foodRecords(5, "Diner")},
	)
	mixed := core.NewCorpus(
		core.Collection{Category: core.CategoryFood, Key: "restaurants", Records: foodRecords(5, "Diner")},
		core.Collection{Category: core.CategoryPlace, Key: "places", Records: placeRecords(7)},
		core.Collection{Category: core.CategoryEvent, Key: "events", Records: []core.Record{
			core.EventRecord{Name: "A"}, core.EventRecord{Name: "B"}, core.EventRecord{Name: "C"}, core.EventRecord{Name: "D"},
		}},
	)

	t.Run("places asked but none loaded", func(t *testing.T) {
		_, err := a.Fallback("places to visit", foodOnly)
		assert.ErrorIs(t, err, ErrNoPlaceData)
	})

	t.Run("empty corpus", func(t *testing.T) {
		_, err := a.Fallback("anything", core.NewCorpus())
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("nothing to sample", func(t *testing.T) {
		_, err := a.Fallback("events", foodOnly)
		assert.ErrorIs(t, err, ErrNoFallbackData)
	})

	t.Run("places exclude other categories", func(t *testing.T) {
		result, err := a.Fallback("places to visit", mixed)
		require.NoError(t, err)
		assert.Equal(t, FallbackPlaceSample, result.Place.Len())
		assert.Zero(t, result.Food.Len())
		assert.Zero(t, result.Event.Len())
	})

	t.Run("no category samples everything", func(t *testing.T) {
		result, err := a.Fallback("hello there", mixed)
		require.NoError(t, err)
		assert.Equal(t, FallbackFoodSample, result.Food.Len())
		assert.Equal(t, FallbackPlaceSample, result.Place.Len())
		assert.Equal(t, FallbackEventSample, result.Event.Len())
	})

	t.Run("full list", func(t *testing.T) {
		result, err := a.Fallback("give me everything", mixed)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Event.Len())
		assert.Equal(t, 7, result.Place.Len())
	})
}
