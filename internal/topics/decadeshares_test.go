//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharefixture() *Model {
	return &Model{
		Settings: Settings{Topics: 2},
		Docs: []DocRef{
			{ID: "d001", Year: 1603},
			{ID: "d002", Year: 1609},
			{ID: "d003", Year: 1781},
		},
		DocTopics: [][]float64{
			{0.2, 0.8},
			{0.6, 0.4},
			{1.0, 0.0},
		},
		Labels: []string{"1: alpha", "2: beta"},
	}
}

func TestAggregateByDecade(t *testing.T) {
	shares := AggregateByDecade(sharefixture())

	// two decades with documents, two topics: four rows, no gap-filling
	require.Len(t, shares, 4)

	// decade-ascending, topic-ascending inside each decade
	assert.Equal(t, 1600, shares[0].Decade)
	assert.Equal(t, 0, shares[0].Topic)
	assert.Equal(t, 1600, shares[1].Decade)
	assert.Equal(t, 1, shares[1].Topic)
	assert.Equal(t, 1780, shares[2].Decade)

	// (0.2 + 0.6) / 2
	assert.InDelta(t, 0.4, shares[0].Share, 1e-9)
	assert.InDelta(t, 0.6, shares[1].Share, 1e-9)

	// singleton decade: the mean is the document itself
	assert.InDelta(t, 1.0, shares[2].Share, 1e-9)
	assert.InDelta(t, 0.0, shares[3].Share, 1e-9)

	// labels ride along
	assert.Equal(t, "1: alpha", shares[0].Label)
	assert.Equal(t, "2: beta", shares[1].Label)
}

func TestDecades(t *testing.T) {
	shares := AggregateByDecade(sharefixture())
	assert.Equal(t, []int{1600, 1780}, Decades(shares))
	assert.Empty(t, Decades(nil))
}

func TestTopTermTable(t *testing.T) {
	vocab := []string{"apple", "pear", "plum", "quince"}
	tt := [][]float64{
		{0.1, 0.4, 0.4, 0.1},
		{0.7, 0.1, 0.1, 0.1},
	}

	tops := toptermtable(tt, vocab, 2)
	require.Len(t, tops, 2)

	// tied weights resolve to vocabulary order: pear before plum
	assert.Equal(t, "pear", tops[0][0].Term)
	assert.Equal(t, "plum", tops[0][1].Term)
	assert.Equal(t, "apple", tops[1][0].Term)

	// asking for more terms than the vocabulary holds is clamped, not fatal
	all := toptermtable(tt, vocab, 10)
	assert.Len(t, all[0], 4)
}

func TestBuildLabels(t *testing.T) {
	tops := [][]TermWeight{
		{{Term: "sea", Weight: 0.3}, {Term: "ship", Weight: 0.2}},
		{{Term: "sea", Weight: 0.4}, {Term: "ship", Weight: 0.1}},
	}
	labels := buildlabels(tops)
	assert.Equal(t, "1: sea ship", labels[0])
	assert.Equal(t, "2: sea ship", labels[1])
	assert.NotEqual(t, labels[0], labels[1])
}

func TestDocsPerTopic(t *testing.T) {
	m := sharefixture()
	assert.Equal(t, []int{2, 1}, DocsPerTopic(m))
}

func TestScaledTopicWeights(t *testing.T) {
	m := sharefixture()
	sw := ScaledTopicWeights(m)
	require.Len(t, sw, 2)

	// topic 0 accumulates 1.8, topic 1 accumulates 1.2
	assert.InDelta(t, 1.0, sw[0], 1e-9)
	assert.InDelta(t, 1.2/1.8, sw[1], 1e-9)
}
