//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"

	"github.com/sfeldkamp/TopicRiver/internal/lnch"
)

var msg = lnch.SharedMessageMaker()

// DocsPerTopic - how many documents have topic N as their dominant topic
func DocsPerTopic(m *Model) []int {
	counter := make([]int, m.Settings.Topics)
	for _, probs := range m.DocTopics {
		counter[floats.MaxIdx(probs)] += 1
	}
	return counter
}

// ScaledTopicWeights - each topic's accumulated weight scaled against the heaviest topic
func ScaledTopicWeights(m *Model) []float64 {
	counter := make([]float64, m.Settings.Topics)
	for _, probs := range m.DocTopics {
		floats.Add(counter, probs)
	}

	high := floats.Max(counter)

	scaled := make([]float64, m.Settings.Topics)
	for i := range counter {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// ReportModel - per-topic terminal summary: label, dominant-document count, scaled weight
func ReportModel(m *Model) {
	const (
		HEAD = "topic model of %d documents (%d word vocabulary): %d topics, %d iterations, seed %d"
		ROW  = "  topic %-2d  docs: %-5d (%5.2f%%)  weight: %5.2f%%  %s"
	)

	// the message printer puts the thousands separators into the big counts
	p := message.NewPrinter(language.English)

	dpt := DocsPerTopic(m)
	sw := ScaledTopicWeights(m)
	nd := len(m.Docs)

	msg.NOTE(p.Sprintf(HEAD, nd, len(m.Vocab), m.Settings.Topics, m.Settings.Iterations, m.Settings.Seed))
	for topic := 0; topic < m.Settings.Topics; topic++ {
		pct := float64(dpt[topic]) / float64(nd) * 100
		msg.NOTE(fmt.Sprintf(ROW, topic+1, dpt[topic], pct, sw[topic]*100, m.Labels[topic]))
	}
}
