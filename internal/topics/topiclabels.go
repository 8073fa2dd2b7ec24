//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"sort"
	"strings"
)

//
// TOPIC LABELS
//

// toptermtable - the N most significant words for each topic, weight-descending
func toptermtable(topicterms [][]float64, vocab []string, topn int) [][]TermWeight {
	if topn > len(vocab) {
		topn = len(vocab)
	}

	tops := make([][]TermWeight, len(topicterms))
	for topic := 0; topic < len(topicterms); topic++ {
		tss := make([]TermWeight, len(vocab))
		for word := 0; word < len(vocab); word++ {
			tss[word] = TermWeight{
				Term:   vocab[word],
				Weight: topicterms[topic][word],
			}
		}
		// a stable sort keeps ties in vocabulary order: first occurrence wins
		sort.SliceStable(tss, func(i, j int) bool {
			return tss[i].Weight > tss[j].Weight
		})
		tops[topic] = tss[0:topn]
	}
	return tops
}

// buildlabels - one display label per topic from its top terms; the numeric
// prefix keeps labels unique even if two topics share their head words
func buildlabels(tops [][]TermWeight) []string {
	labels := make([]string, len(tops))
	for topic := 0; topic < len(tops); topic++ {
		ww := make([]string, len(tops[topic]))
		for i, tw := range tops[topic] {
			ww[i] = tw.Term
		}
		labels[topic] = fmt.Sprintf("%d: %s", topic+1, strings.Join(ww, " "))
	}
	return labels
}
