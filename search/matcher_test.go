package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidepost/core"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultVocabulary())
	require.NoError(t, err)
	return m
}

func TestSortByCertification_Stable(t *testing.T) {
	records := []core.Record{
		core.FoodRecord{Name: "a", Certification: core.CertificationBronze},
		core.FoodRecord{Name: "b", Certification: core.CertificationNone},
		core.FoodRecord{Name: "c", Certification: core.CertificationGold},
		core.FoodRecord{Name: "d", Certification: core.CertificationSilver},
		core.FoodRecord{Name: "e", Certification: core.CertificationGold},
	}

	sorted := SortedByCertification(records)
	assert.Equal(t, []string{"c", "e", "d", "a", "b"}, titles(sorted))
	assert.Equal(t, "a", records[0].Title(), "input must not be reordered")
}

func TestMatcher_Match(t *testing.T) {
	m := newTestMatcher(t)

	chancho := core.FoodRecord{Name: "Pan Chancho", Location: "44 Princess St", Notes: "Artisan bakery", Certification: core.CertificationSilver}
	piggy := core.FoodRecord{Name: "Chez Piggy", Location: "68 Brock St", Certification: core.CertificationGold}
	records := []core.Record{chancho, piggy}

	t.Run("keyword substring match", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"Bakery"}})
		assert.Equal(t, []string{"Pan Chancho"}, titles(got))
	})

	t.Run("location phrase when keywords miss", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"sushi"}, Locations: []string{"brock st"}})
		assert.Equal(t, []string{"Chez Piggy"}, titles(got))
	})

	t.Run("stop words and short keywords ignored", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"the", "st"}})
		assert.Empty(t, got)
	})

	t.Run("include all when only stop words remain", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"the", "good"}, IncludeAllIfNoKeywords: true})
		assert.Equal(t, []string{"Pan Chancho", "Chez Piggy"}, titles(got))
	})

	t.Run("include all without any filter ranks when asked", func(t *testing.T) {
		got := m.Match(records, MatchOptions{IncludeAllIfNoKeywords: true, RankByCertification: true})
		assert.Equal(t, []string{"Chez Piggy", "Pan Chancho"}, titles(got))
	})

	t.Run("ranking applied to matches", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"chancho", "piggy"}, RankByCertification: true})
		assert.Equal(t, []string{"Chez Piggy", "Pan Chancho"}, titles(got))
	})

	t.Run("record matched once", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"pan", "chancho", "artisan"}, Locations: []string{"princess"}})
		assert.Len(t, got, 1)
	})

	t.Run("no options matches nothing", func(t *testing.T) {
		assert.Empty(t, m.Match(records, MatchOptions{}))
	})
}

func TestMatcher_EventDateFilter(t *testing.T) {
	m := newTestMatcher(t)

	winterfest := core.EventRecord{Name: "Winterfest", StartDate: "February 7, 2026", EndDate: "February 8, 2026", Venue: "Springer Market Square"}
	jazz := core.EventRecord{Name: "Jazz Night", StartDate: "March 3, 2026", EndDate: "March 3, 2026"}
	records := []core.Record{winterfest, jazz}

	feb8 := day(2026, time.February, 8)

	t.Run("date filter excludes before keyword match", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"jazz"}, Date: &feb8})
		assert.Equal(t, []string{"Winterfest"}, titles(got))

		feb20 := day(2026, time.February, 20)
		assert.Empty(t, m.Match(records, MatchOptions{Keywords: []string{"jazz"}, Date: &feb20}))
	})

	t.Run("date filter alone includes events", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Keywords: []string{"concerts"}, Date: &feb8})
		assert.Equal(t, []string{"Winterfest"}, titles(got))
	})

	t.Run("month filter", func(t *testing.T) {
		got := m.Match(records, MatchOptions{Month: time.March})
		assert.Equal(t, []string{"Jazz Night"}, titles(got))
	})

	t.Run("date filter ignored for other kinds", func(t *testing.T) {
		food := []core.Record{core.FoodRecord{Name: "Jazz Cafe"}}
		got := m.Match(food, MatchOptions{Keywords: []string{"jazz"}, Date: &feb8})
		assert.Len(t, got, 1)
	})
}
