package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRenames_Order(t *testing.T) {
	removed := Member{Name: "getCount", Shape: "s1"}
	added := []Member{
		{Name: "total", Shape: "s1"},
		{Name: "count", Shape: "s2"},
		{Name: "count", Shape: "s1"},
	}

	ranked := RankRenames(removed, added)
	require.Len(t, ranked, 3)

	best := ranked.Best()
	require.NotNil(t, best)
	assert.Equal(t, Member{Name: "count", Shape: "s1"}, best.Added)
	assert.True(t, best.ShapeMatch)
	assert.InDelta(t, 1.0, best.Score, 0.001)

	assert.Equal(t, "count", ranked[1].Added.Name)
	assert.False(t, ranked[1].ShapeMatch)
	assert.InDelta(t, 0.6, ranked[1].Score, 0.001)
}

func TestRankRenames_Empty(t *testing.T) {
	ranked := RankRenames(Member{Name: "x"}, nil)

	assert.Empty(t, ranked)
	assert.Nil(t, ranked.Best())
	assert.Nil(t, ranked.HighConfidence(DefaultMinScore, DefaultMinGap))
}

func TestHighConfidence(t *testing.T) {
	tests := []struct {
		name  string
		list  CandidateList
		found bool
	}{
		{
			name:  "clear winner",
			list:  CandidateList{{ShapeMatch: true, Score: 0.95}, {Score: 0.5}},
			found: true,
		},
		{
			name: "below min score",
			list: CandidateList{{ShapeMatch: true, Score: 0.6}},
		},
		{
			name: "shape differs",
			list: CandidateList{{ShapeMatch: false, Score: 0.95}},
		},
		{
			name: "ambiguous",
			list: CandidateList{{ShapeMatch: true, Score: 0.9}, {ShapeMatch: true, Score: 0.85}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.list.HighConfidence(DefaultMinScore, DefaultMinGap)
			assert.Equal(t, tt.found, got != nil)
		})
	}
}

func TestPairRenames(t *testing.T) {
	removed := []Member{
		{Name: "getName", Shape: "string-getter"},
		{Name: "size", Shape: "int-getter"},
		{Name: "reset", Shape: "void"},
	}
	added := []Member{
		{Name: "name", Shape: "string-getter"},
		{Name: "getSize", Shape: "int-getter"},
		{Name: "clear", Shape: "void"},
	}

	pairs := PairRenames(removed, added, DefaultMinScore, DefaultMinGap)
	require.Len(t, pairs, 2)
	assert.Equal(t, "getName", pairs[0].Removed.Name)
	assert.Equal(t, "name", pairs[0].Added.Name)
	assert.Equal(t, "size", pairs[1].Removed.Name)
	assert.Equal(t, "getSize", pairs[1].Added.Name)
}

func TestPairRenames_AddedUsedOnce(t *testing.T) {
	removed := []Member{
		{Name: "value", Shape: "int"},
		{Name: "getValue", Shape: "int"},
	}
	added := []Member{{Name: "values", Shape: "int"}}

	pairs := PairRenames(removed, added, DefaultMinScore, DefaultMinGap)
	require.Len(t, pairs, 1)
	assert.Equal(t, "value", pairs[0].Removed.Name)
}
