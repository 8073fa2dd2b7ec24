//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

// the corpus arrives as a pre-cleaned csv: id, description, date
// the cleaning process upstream already deduplicated and range-filtered the records;
// anything that still fails to parse here is malformed and kills the run

// Document - one catalogue record; immutable once loaded
type Document struct {
	ID   string
	Text string
	Year int
}

// Decade - truncate the publication year to the nearest lower multiple of 10
func (d Document) Decade() int {
	return (d.Year / 10) * 10
}

var yearfinder = regexp.MustCompile(`([0-9]{4})`)

// LoadCorpus - read every document out of a csv file; abort on the first malformed row
func LoadCorpus(fn string) ([]Document, error) {
	const (
		FAIL1 = "LoadCorpus() could not open '%s': %w"
		FAIL2 = "LoadCorpus() choked on '%s': %w"
		FAIL3 = "'%s' contains no documents"
	)

	f, e := os.Open(fn)
	if e != nil {
		return nil, fmt.Errorf(FAIL1, fn, e)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // trailing columns beyond the three we need are tolerated

	var dd []Document
	first := true
	line := 0

	for {
		record, e3 := r.Read()
		line += 1
		if errors.Is(e3, io.EOF) {
			break
		}
		if e3 != nil {
			return nil, fmt.Errorf(FAIL2, fn, e3)
		}

		if first {
			first = false
			if lookslikeheader(record) {
				continue
			}
		}

		d, err := parserecord(record, line)
		if err != nil {
			return nil, err
		}
		dd = append(dd, d)
	}

	if len(dd) == 0 {
		return nil, fmt.Errorf(FAIL3, fn)
	}

	return dd, nil
}

// parserecord - one csv row into one Document
func parserecord(record []string, line int) (Document, error) {
	const (
		SHORT = "row %d has %d columns; need at least 3 (id, description, date)"
		NOID  = "row %d has a blank document id"
	)

	if len(record) < 3 {
		return Document{}, fmt.Errorf(SHORT, line, len(record))
	}

	id := strings.TrimSpace(record[0])
	if id == "" {
		return Document{}, fmt.Errorf(NOID, line)
	}

	y, err := ExtractYear(record[2])
	if err != nil {
		return Document{}, fmt.Errorf("row %d ('%s'): %w", line, id, err)
	}

	return Document{ID: id, Text: strings.TrimSpace(record[1]), Year: y}, nil
}

// ExtractYear - pull a four-digit year out of a date cell and vet its range
func ExtractYear(datefield string) (int, error) {
	const (
		NOYEAR  = "no four-digit year in '%s'"
		BADYEAR = "year %d lies outside the accepted range [%d, %d]"
	)

	m := yearfinder.FindStringSubmatch(datefield)
	if m == nil {
		return 0, fmt.Errorf(NOYEAR, strings.TrimSpace(datefield))
	}

	// the regexp guarantees Atoi can not fail
	y, _ := strconv.Atoi(m[1])

	if y < vv.FIRSTACCEPTABLEYEAR || y > vv.LASTACCEPTABLEYEAR {
		return 0, fmt.Errorf(BADYEAR, y, vv.FIRSTACCEPTABLEYEAR, vv.LASTACCEPTABLEYEAR)
	}

	return y, nil
}

// lookslikeheader - a first row whose date cell has no year at all is column names, not data
func lookslikeheader(record []string) bool {
	if len(record) < 3 {
		return false
	}
	return !yearfinder.MatchString(record[2])
}
