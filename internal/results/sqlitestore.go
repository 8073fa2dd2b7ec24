//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package results

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sfeldkamp/TopicRiver/internal/lnch"
	"github.com/sfeldkamp/TopicRiver/internal/topics"
)

// https://pkg.go.dev/modernc.org/sqlite
// a pure go driver: no cgo, so the binary stays a single file you can hand to someone

var msg = lnch.SharedMessageMaker()

// ArchiveRun - store one full modelling run in a sqlite file so runs can be compared later
func ArchiveRun(dbpath string, cfg lnch.CurrentConfiguration, m *topics.Model, shares []topics.DecadeShare) (string, error) {
	const (
		CREATERUNS = `
			CREATE TABLE IF NOT EXISTS runs (
				runid TEXT PRIMARY KEY,
				ran_at TEXT,
				corpusfile TEXT,
				documents INTEGER,
				vocabulary INTEGER,
				topics INTEGER,
				iterations INTEGER,
				seed INTEGER,
				topterms INTEGER
			);`
		CREATETOPICS = `
			CREATE TABLE IF NOT EXISTS run_topics (
				runid TEXT,
				topic INTEGER,
				label TEXT,
				terms TEXT,
				weights TEXT
			);`
		CREATESHARES = `
			CREATE TABLE IF NOT EXISTS run_decade_shares (
				runid TEXT,
				decade INTEGER,
				topic INTEGER,
				share REAL
			);`
		QRUN = `INSERT INTO runs(runid, ran_at, corpusfile, documents, vocabulary, topics, iterations, seed, topterms)
				VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`
		QTOP = `INSERT INTO run_topics(runid, topic, label, terms, weights) VALUES(?, ?, ?, ?, ?)`
		QSHR = `INSERT INTO run_decade_shares(runid, decade, topic, share) VALUES(?, ?, ?, ?)`

		FAIL1    = `ArchiveRun() could not open "%s": %s`
		FAIL2    = `table creation failed: %s`
		FAIL3    = `insert prepare failed: %s`
		FAIL4    = `insert failed: %s`
		SUCCESS1 = `archived run %s to "%s"`
	)

	runid := uuid.New().String()
	ctx := context.Background()

	db, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return "", fmt.Errorf(FAIL1, dbpath, err.Error())
	}
	defer db.Close()

	// [a] make sure the tables exist
	for _, q := range []string{CREATERUNS, CREATETOPICS, CREATESHARES} {
		if _, err = db.ExecContext(ctx, q); err != nil {
			return "", fmt.Errorf(FAIL2, err.Error())
		}
	}

	// [b] everything lands or nothing does
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	// [c] the run itself
	_, err = tx.ExecContext(ctx, QRUN, runid, time.Now().Format(time.RFC3339), cfg.CorpusFile,
		len(m.Docs), len(m.Vocab), m.Settings.Topics, m.Settings.Iterations, m.Settings.Seed, m.Settings.TopTerms)
	if err != nil {
		return "", fmt.Errorf(FAIL4, err.Error())
	}

	// [d] one row per topic with its defining terms
	tstmt, err := tx.PrepareContext(ctx, QTOP)
	if err != nil {
		return "", fmt.Errorf(FAIL3, err.Error())
	}
	defer tstmt.Close()

	for t, tt := range m.TopTerms {
		terms := make([]string, len(tt))
		weights := make([]string, len(tt))
		for i, tw := range tt {
			terms[i] = tw.Term
			weights[i] = fmt.Sprintf("%.6f", tw.Weight)
		}
		_, err = tstmt.ExecContext(ctx, runid, t, m.Labels[t], strings.Join(terms, " "), strings.Join(weights, " "))
		if err != nil {
			return "", fmt.Errorf(FAIL4, err.Error())
		}
	}

	// [e] the per-decade shares that fed the charts
	sstmt, err := tx.PrepareContext(ctx, QSHR)
	if err != nil {
		return "", fmt.Errorf(FAIL3, err.Error())
	}
	defer sstmt.Close()

	for _, s := range shares {
		if _, err = sstmt.ExecContext(ctx, runid, s.Decade, s.Topic, s.Share); err != nil {
			return "", fmt.Errorf(FAIL4, err.Error())
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}

	msg.PEEK(fmt.Sprintf(SUCCESS1, runid, dbpath))

	return runid, nil
}
