//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"github.com/sfeldkamp/TopicRiver/internal/gen"
)

//
// TEMPORAL AGGREGATION
//

// DecadeShare - the mean probability of one topic across one decade's documents
type DecadeShare struct {
	Decade int
	Topic  int
	Label  string
	Share  float64
}

// AggregateByDecade - bucket the fitted documents into decades and average each
// topic's probability inside every bucket; decades with no documents are simply
// absent, so the output always has (distinct decades × K) rows
func AggregateByDecade(m *Model) []DecadeShare {
	k := m.Settings.Topics

	sums := make(map[int][]float64)
	counts := make(map[int]int)

	for i, d := range m.Docs {
		dec := (d.Year / 10) * 10
		if _, ok := sums[dec]; !ok {
			sums[dec] = make([]float64, k)
		}
		for topic := 0; topic < k; topic++ {
			sums[dec][topic] += m.DocTopics[i][topic]
		}
		counts[dec] += 1
	}

	decades := gen.SortedIntKeys(sums)

	shares := make([]DecadeShare, 0, len(decades)*k)
	for _, dec := range decades {
		n := float64(counts[dec])
		for topic := 0; topic < k; topic++ {
			shares = append(shares, DecadeShare{
				Decade: dec,
				Topic:  topic,
				Label:  m.Labels[topic],
				Share:  sums[dec][topic] / n,
			})
		}
	}

	return shares
}

// Decades - the distinct decades present in a share table, ascending
func Decades(shares []DecadeShare) []int {
	seen := make(map[int]struct{})
	for _, s := range shares {
		seen[s.Decade] = struct{}{}
	}
	return gen.SortedIntKeys(seen)
}
