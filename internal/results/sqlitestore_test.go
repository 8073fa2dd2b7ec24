//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package results

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfeldkamp/TopicRiver/internal/lnch"
	"github.com/sfeldkamp/TopicRiver/internal/topics"
)

func archivefixture() (*topics.Model, []topics.DecadeShare) {
	m := &topics.Model{
		Settings: topics.Settings{Topics: 2, Iterations: 100, Seed: 9161, TopTerms: 2},
		Docs: []topics.DocRef{
			{ID: "d001", Year: 1603},
			{ID: "d002", Year: 1781},
		},
		Vocab: []string{"sea", "sermon", "ship"},
		TopTerms: [][]topics.TermWeight{
			{{Term: "sea", Weight: 0.5}, {Term: "ship", Weight: 0.3}},
			{{Term: "sermon", Weight: 0.7}, {Term: "sea", Weight: 0.1}},
		},
		Labels: []string{"1: sea ship", "2: sermon sea"},
	}
	shares := []topics.DecadeShare{
		{Decade: 1600, Topic: 0, Label: m.Labels[0], Share: 0.8},
		{Decade: 1600, Topic: 1, Label: m.Labels[1], Share: 0.2},
		{Decade: 1780, Topic: 0, Label: m.Labels[0], Share: 0.3},
		{Decade: 1780, Topic: 1, Label: m.Labels[1], Share: 0.7},
	}
	return m, shares
}

func TestArchiveRun(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "runs.sqlite")
	m, shares := archivefixture()

	cfg := lnch.BuildDefaultConfig()
	cfg.CorpusFile = "corpus.csv"

	runid, err := ArchiveRun(dbpath, cfg, m, shares)
	require.NoError(t, err)
	require.NotEmpty(t, runid)

	db, err := sql.Open("sqlite", dbpath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM runs WHERE runid = ?`, runid).Scan(&n))
	assert.Equal(t, 1, n)

	var docs, seed int
	var cf string
	require.NoError(t, db.QueryRow(
		`SELECT documents, seed, corpusfile FROM runs WHERE runid = ?`, runid).Scan(&docs, &seed, &cf))
	assert.Equal(t, 2, docs)
	assert.Equal(t, 9161, seed)
	assert.Equal(t, "corpus.csv", cf)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM run_topics WHERE runid = ?`, runid).Scan(&n))
	assert.Equal(t, 2, n)

	var label, terms string
	require.NoError(t, db.QueryRow(
		`SELECT label, terms FROM run_topics WHERE runid = ? AND topic = 0`, runid).Scan(&label, &terms))
	assert.Equal(t, "1: sea ship", label)
	assert.Equal(t, "sea ship", terms)

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM run_decade_shares WHERE runid = ?`, runid).Scan(&n))
	assert.Equal(t, 4, n)

	var share float64
	require.NoError(t, db.QueryRow(
		`SELECT share FROM run_decade_shares WHERE runid = ? AND decade = 1780 AND topic = 1`, runid).Scan(&share))
	assert.InDelta(t, 0.7, share, 1e-9)
}

func TestArchiveRunAccumulates(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "runs.sqlite")
	m, shares := archivefixture()
	cfg := lnch.BuildDefaultConfig()

	a, err := ArchiveRun(dbpath, cfg, m, shares)
	require.NoError(t, err)
	b, err := ArchiveRun(dbpath, cfg, m, shares)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	db, err := sql.Open("sqlite", dbpath)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n))
	assert.Equal(t, 2, n)
}
