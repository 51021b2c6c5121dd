package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poiesic/guidepost/core"
)

func newTestAssembler(t *testing.T, opts ...Option) *Assembler {
	t.Helper()
	a, err := NewAssembler(opts...)
	require.NoError(t, err)
	return a
}

func foodRecords(n int, prefix string) []core.Record {
	out := make([]core.Record, 0, n)
	for i := range n {
		out = append(out, core.FoodRecord{Name: fmt.Sprintf("%s %d", prefix, i+1)})
	}
	return out
}

func placeRecords(n int) []core.Record {
	out := make([]core.Record, 0, n)
	for i := range n {
		out = append(out, core.PlaceRecord{Name: fmt.Sprintf("Landmark %d", i+1)})
	}
	return out
}

func titles(records []core.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title())
	}
	return out
}
