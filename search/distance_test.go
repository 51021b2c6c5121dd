package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"same", "same", 0},
		{"café", "cafe", 1},
		{"thrif", "thrift", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, EditDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, EditDistance(tt.b, tt.a))
		})
	}
}

func TestBestFuzzyMatch(t *testing.T) {
	t.Run("closest candidate wins", func(t *testing.T) {
		got, ok := BestFuzzyMatch("bakry", []string{"bake", "bakery"}, MaxEdits)
		assert.True(t, ok)
		assert.Equal(t, "bakery", got)
	})

	t.Run("ties go to first candidate", func(t *testing.T) {
		got, ok := BestFuzzyMatch("abcd", []string{"abcx", "abcy"}, MaxEdits)
		assert.True(t, ok)
		assert.Equal(t, "abcx", got)
	})

	t.Run("exact membership short-circuits", func(t *testing.T) {
		got, ok := BestFuzzyMatch("shop", []string{"shops", "shop"}, MaxEdits)
		assert.True(t, ok)
		assert.Equal(t, "shop", got)
	})

	t.Run("short words never match", func(t *testing.T) {
		_, ok := BestFuzzyMatch("ok", []string{"ok"}, MaxEdits)
		assert.False(t, ok)
	})

	t.Run("too far", func(t *testing.T) {
		_, ok := BestFuzzyMatch("zzzzzz", []string{"bakery"}, MaxEdits)
		assert.False(t, ok)
	})

	t.Run("equal length distant words", func(t *testing.T) {
		pairs := [][2]string{{"places", "bakery"}, {"thrift", "coffee"}, {"events", "dining"}, {"visit", "store"}}
		for _, p := range pairs {
			assert.NotPanics(t, func() {
				_, ok := BestFuzzyMatch(p[0], []string{p[1]}, MaxEdits)
				assert.False(t, ok, p[0])
			})
		}
	})

	t.Run("length difference beyond limit skipped", func(t *testing.T) {
		_, ok := BestFuzzyMatch("brew", []string{"breweries"}, MaxEdits)
		assert.False(t, ok)
	})
}
