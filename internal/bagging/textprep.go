//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package bagging

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sfeldkamp/TopicRiver/internal/corpus"
)

//
// TEXT PREP: normalize, tokenize, filter, count
//

// DocBag - a document reduced to its modeling-ready bag of words
type DocBag struct {
	ID   string
	Year int
	Bag  string
}

// TermFreq - count of one word inside one document, post-filtering
type TermFreq struct {
	DocID string
	Word  string
	Count int
}

// catalogue descriptions mix english, french, spanish, dutch and latin;
// the allowlist keeps latin letters with their western european diacritics
const notachar = `[^\sa-zàáâäæçèéêëìíîïñòóôöœùúûüß]`

var (
	markup   = regexp.MustCompile(`<.*?>`)
	numerics = regexp.MustCompile(`[0-9]`)
	badchars = regexp.MustCompile(notachar)
	manyws   = regexp.MustCompile(`\s+`)
)

// NormalizeText - lowercase a description and strip markup, numerals and stray punctuation from it
func NormalizeText(t string) string {
	t = markup.ReplaceAllString(t, " ")
	t = numerics.ReplaceAllString(t, "")
	t = strings.ToLower(t)
	t = badchars.ReplaceAllString(t, " ")
	t = manyws.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Tokenize - normalized text into individual words; order preserved
func Tokenize(t string) []string {
	return strings.Fields(NormalizeText(t))
}

// FilterStopwords - drop every token found in the stop set; keep everything else, in order
func FilterStopwords(tokens []string, stops map[string]struct{}) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := stops[t]; !ok {
			kept = append(kept, t)
		}
	}
	return kept
}

// BuildBags - turn loaded documents into bags of filtered words; documents whose
// bag comes up empty are dropped and their ids reported to the caller
func BuildBags(dd []corpus.Document, stops map[string]struct{}) ([]DocBag, []string) {
	bags := make([]DocBag, 0, len(dd))
	var dropped []string

	for _, d := range dd {
		tokens := FilterStopwords(Tokenize(d.Text), stops)
		if len(tokens) == 0 {
			dropped = append(dropped, d.ID)
			continue
		}
		bags = append(bags, DocBag{ID: d.ID, Year: d.Year, Bag: strings.Join(tokens, " ")})
	}

	return bags, dropped
}

// Frequencies - the (document, word, count) table for a collection of bags
func Frequencies(bags []DocBag) []TermFreq {
	var ff []TermFreq
	for _, b := range bags {
		counts := make(map[string]int)
		for _, w := range strings.Fields(b.Bag) {
			counts[w] += 1
		}

		ww := make([]string, 0, len(counts))
		for w := range counts {
			ww = append(ww, w)
		}
		sort.Strings(ww)

		for _, w := range ww {
			ff = append(ff, TermFreq{DocID: b.ID, Word: w, Count: counts[w]})
		}
	}
	return ff
}

// VocabularySize - distinct words across a frequency table
func VocabularySize(ff []TermFreq) int {
	seen := make(map[string]struct{})
	for _, f := range ff {
		seen[f.Word] = struct{}{}
	}
	return len(seen)
}

// TokenTotal - total (post-filter) word occurrences across a frequency table
func TokenTotal(ff []TermFreq) int {
	n := 0
	for _, f := range ff {
		n += f.Count
	}
	return n
}
