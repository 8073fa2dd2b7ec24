//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sfeldkamp/TopicRiver/internal/bagging"
	"github.com/sfeldkamp/TopicRiver/internal/corpus"
	"github.com/sfeldkamp/TopicRiver/internal/gen"
	"github.com/sfeldkamp/TopicRiver/internal/graphing"
	"github.com/sfeldkamp/TopicRiver/internal/lnch"
	"github.com/sfeldkamp/TopicRiver/internal/results"
	"github.com/sfeldkamp/TopicRiver/internal/topics"
	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

// the pipeline: csv --> documents --> bags of words --> lda model --> decade shares --> html charts
// every stage hands a value to the next one, so each lives in its own package and each can be
// tested without touching the disk

var (
	// Msg - the shared messenger; ConfigAtLaunch rebinds it in place once flags are parsed
	Msg = lnch.SharedMessageMaker()
)

func main() {
	const (
		VERS     = `S1%s C5(v.%s)C0S0`
		LOADED   = `%d documents loaded from "%s"`
		DROPPED  = `%d document(s) had no words left after cleaning and were dropped: %s`
		BAGGED   = `%d bags built; vocabulary is %d words; %d tokens total`
		MODELED  = `%d topics fitted over %d iterations`
		SHARED   = `%d decade/topic share rows across %d decades`
		WROTE    = `wrote C3"%s"C0`
		ARCHIVED = `run archived as %s`
	)

	// [a] configuration: defaults, then the config file, then the command line
	lnch.ConfigAtLaunch(graphing.PaletteNames())

	if !lnch.Config.QuietStart {
		Msg.MAND(Msg.ColStyle(fmt.Sprintf(VERS, vv.MYNAME, vv.VERSION)))
	}

	start := time.Now()
	previous := time.Now()

	// [b] load the corpus
	dd, err := corpus.LoadCorpus(lnch.Config.CorpusFile)
	Msg.EC(err)
	Msg.NOTE(fmt.Sprintf(LOADED, len(dd), lnch.Config.CorpusFile))
	Msg.Timer("A1", "corpus loaded", start, previous)

	// [c] clean, tokenize, and de-stop
	previous = time.Now()
	stopset := bagging.GetStopSet()
	bags, dropped := bagging.BuildBags(dd, stopset)
	if len(dropped) != 0 {
		shown := dropped
		if len(shown) > 10 {
			shown = append(shown[0:10:10], "...")
		}
		Msg.WARN(fmt.Sprintf(DROPPED, len(dropped), strings.Join(shown, ", ")))
	}

	ff := bagging.Frequencies(bags)
	Msg.NOTE(fmt.Sprintf(BAGGED, len(bags), bagging.VocabularySize(ff), bagging.TokenTotal(ff)))
	Msg.Timer("A2", "bags of words built", start, previous)

	// [d] fit the topic model
	previous = time.Now()
	settings := topics.Settings{
		Topics:     lnch.Config.TopicCount,
		Iterations: lnch.Config.Iterations,
		Seed:       lnch.Config.Seed,
		TopTerms:   lnch.Config.TopTerms,
		Workers:    lnch.Config.WorkerCount,
	}

	model, err := topics.Fit(bags, gen.StringMapKeysIntoSlice(stopset), settings)
	Msg.EC(err)
	Msg.NOTE(fmt.Sprintf(MODELED, settings.Topics, settings.Iterations))
	Msg.Timer("B1", "lda model fitted", start, previous)

	topics.ReportModel(model)

	// [e] average the topic mixtures inside each decade
	previous = time.Now()
	shares := topics.AggregateByDecade(model)
	Msg.NOTE(fmt.Sprintf(SHARED, len(shares), len(topics.Decades(shares))))

	// [f] draw the pictures
	cs := graphing.ChartSettings{
		Palette:     lnch.Config.Palette,
		PaletteSize: lnch.Config.PaletteSize,
		Subtitle:    chartsubtitle(settings),
	}

	fn, err := graphing.WriteBarChart(shares, model.Labels, cs, lnch.Config.OutputDir)
	Msg.EC(err)
	Msg.MAND(Msg.Color(fmt.Sprintf(WROTE, fn)))

	fn, err = graphing.WriteStreamgraph(shares, model.Labels, cs, lnch.Config.OutputDir)
	Msg.EC(err)
	Msg.MAND(Msg.Color(fmt.Sprintf(WROTE, fn)))
	Msg.Timer("C1", "charts rendered", start, previous)

	// [g] (optional) archive the run
	if lnch.Config.ResultsDB != "" {
		runid, e := results.ArchiveRun(lnch.Config.ResultsDB, lnch.Config, model, shares)
		Msg.EC(e)
		Msg.NOTE(fmt.Sprintf(ARCHIVED, runid))
	}

	Msg.Timer("Z1", "done", start, start)
}

// chartsubtitle - the model settings as a one-liner under the chart title
func chartsubtitle(s topics.Settings) string {
	const (
		TMPL = `%d topics, %d iterations, seed %d`
	)
	return fmt.Sprintf(TMPL, s.Topics, s.Iterations, s.Seed)
}
