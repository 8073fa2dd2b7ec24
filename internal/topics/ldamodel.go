//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/sfeldkamp/TopicRiver/internal/bagging"
	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

// the modeling itself belongs to bowman's package: CountVectoriser + LatentDirichletAllocation
// composed in a Pipeline; we only configure it, seed it, and unpack its two matrices

// Settings - the knobs a run hands to the modeler
type Settings struct {
	Topics     int
	Iterations int
	Seed       int
	TopTerms   int
	Workers    int
}

// DefaultSettings - the stock modeling configuration
func DefaultSettings() Settings {
	return Settings{
		Topics:     vv.LDATOPICS,
		Iterations: vv.LDAITER,
		Seed:       vv.LDASEED,
		TopTerms:   vv.TOPTERMSPERTOPIC,
		Workers:    vv.DEFAULTWORKERS,
	}
}

// DocRef - which document sits behind row N of the document-topic table
type DocRef struct {
	ID   string
	Year int
}

// TermWeight - one vocabulary term and its probability within a topic
type TermWeight struct {
	Term   string
	Weight float64
}

// Model - the fitted model, unpacked into plain tables
type Model struct {
	Settings   Settings
	Docs       []DocRef       // one per fitted document, in corpus order
	Vocab      []string       // index-aligned with the columns of TopicTerms
	TopicTerms [][]float64    // K × V; each row sums to 1
	DocTopics  [][]float64    // D × K; each row sums to 1
	TopTerms   [][]TermWeight // K × TopTerms, weight-descending
	Labels     []string       // one stable, unique label per topic
}

// Fit - build the lda model for a collection of bags
func Fit(bags []bagging.DocBag, stops []string, s Settings) (*Model, error) {
	const (
		NODOCS  = "nothing to model: zero non-empty documents"
		TOOMANY = "%d topics requested but only %d documents survive filtering"
		BADK    = "topic count must be a positive integer; got %d"
		BADITER = "iteration count must be a positive integer; got %d"
		NOVOCAB = "empty vocabulary: nothing survived tokenization and stopword removal"
		FITFAIL = "failed to model topics for the documents: %w"
	)

	if s.Topics < 1 {
		return nil, fmt.Errorf(BADK, s.Topics)
	}
	if s.Iterations < 1 {
		return nil, fmt.Errorf(BADITER, s.Iterations)
	}
	if len(bags) == 0 {
		return nil, fmt.Errorf(NODOCS)
	}
	if s.Topics > len(bags) {
		return nil, fmt.Errorf(TOOMANY, s.Topics, len(bags))
	}
	if s.Workers < 1 {
		s.Workers = 1
	}

	corpustexts := make([]string, len(bags))
	for i := 0; i < len(bags); i++ {
		corpustexts[i] = bags[i].Bag
	}

	vectoriser := nlp.NewCountVectoriser(stops...)

	lda := nlp.NewLatentDirichletAllocation(s.Topics)
	lda.Processes = s.Workers
	lda.Iterations = s.Iterations
	lda.TransformationPasses = s.Iterations / 2
	// an explicit seed is the whole reproducibility story: same seed, same input,
	// same settings, same worker count -> byte-identical tables
	lda.Rnd = rand.New(rand.NewSource(uint64(s.Seed)))

	tdm, err := vectoriser.FitTransform(corpustexts...)
	if err != nil {
		return nil, fmt.Errorf(FITFAIL, err)
	}

	if len(vectoriser.Vocabulary) == 0 {
		return nil, fmt.Errorf(NOVOCAB)
	}

	// the vectoriser hands back a sparse matrix that walks its nonzeros in map
	// order, which scrambles the sampler's floating-point update order between
	// runs; a dense copy pins the walk to ascending row order, so a fixed seed
	// really does mean a fixed model
	docsOverTopics, err := lda.FitTransform(mat.DenseCopyOf(tdm))
	if err != nil {
		return nil, fmt.Errorf(FITFAIL, err)
	}

	topicsOverWords := lda.Components()

	m := &Model{Settings: s}

	m.Docs = make([]DocRef, len(bags))
	for i := 0; i < len(bags); i++ {
		m.Docs[i] = DocRef{ID: bags[i].ID, Year: bags[i].Year}
	}

	m.Vocab = make([]string, len(vectoriser.Vocabulary))
	for w, idx := range vectoriser.Vocabulary {
		m.Vocab[idx] = w
	}

	// topicsOverWords: K rows × V columns
	tr, tc := topicsOverWords.Dims()
	m.TopicTerms = make([][]float64, tr)
	for topic := 0; topic < tr; topic++ {
		row := make([]float64, tc)
		for word := 0; word < tc; word++ {
			row[word] = topicsOverWords.At(topic, word)
		}
		m.TopicTerms[topic] = row
	}

	// docsOverTopics: K rows × D columns; flop it into one probability row per document
	dr, dc := docsOverTopics.Dims()
	m.DocTopics = make([][]float64, dc)
	for doc := 0; doc < dc; doc++ {
		row := make([]float64, dr)
		for topic := 0; topic < dr; topic++ {
			row[topic] = docsOverTopics.At(topic, doc)
		}
		m.DocTopics[doc] = row
	}

	m.TopTerms = toptermtable(m.TopicTerms, m.Vocab, s.TopTerms)
	m.Labels = buildlabels(m.TopTerms)

	return m, nil
}
