// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmcdm/topsis"
)

// Delimiter separates CSV fields.
const Delimiter = ';'

var (
	// ErrNoAlternatives is returned when there is nothing to export.
	ErrNoAlternatives = errors.New("export: alternatives should not be empty")

	// ErrNilResult is returned by the ranking writers for a nil or empty result.
	ErrNilResult = errors.New("export: result is nil or empty")
)

var (
	alternativesHeader = []string{"Alternative name", "Criteria values"}
	rankingHeader      = []string{"Rank", "Alternative name", "Score", "Distance best", "Distance worst"}
)

// FormatValues renders criteria values as "[Price=250, Storage=16]".
func FormatValues(values []topsis.CriteriaValue) string {
	parts := make([]string, len(values))
	for i, cv := range values {
		parts[i] = cv.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteCSV writes the alternatives table to w.
func WriteCSV(w io.Writer, alternatives []topsis.Alternative) error {
	if len(alternatives) == 0 {
		return ErrNoAlternatives
	}
	cw := newWriter(w)
	if err := cw.Write(alternativesHeader); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, alt := range alternatives {
		if err := cw.Write([]string{alt.Name, FormatValues(alt.Values)}); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}

	return flush(cw, "WriteCSV")
}

// WriteCSVFile creates (or truncates) path and writes the alternatives table.
// Nothing is created when alternatives is empty.
func WriteCSVFile(path string, alternatives []topsis.Alternative) error {
	if len(alternatives) == 0 {
		return ErrNoAlternatives
	}

	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, alternatives) })
}

// WriteRankingCSV writes the ranking table of res to w.
func WriteRankingCSV(w io.Writer, res *topsis.Result) error {
	if res == nil || len(res.Ranking) == 0 {
		return ErrNilResult
	}
	cw := newWriter(w)
	if err := cw.Write(rankingHeader); err != nil {
		return fmt.Errorf("WriteRankingCSV: header: %w", err)
	}
	for _, s := range res.Ranking {
		row := []string{
			strconv.Itoa(s.Rank),
			s.Alternative.Name,
			formatFloat(s.Score),
			formatFloat(s.DistanceBest),
			formatFloat(s.DistanceWorst),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteRankingCSV: rank %d: %w", s.Rank, err)
		}
	}

	return flush(cw, "WriteRankingCSV")
}

// WriteRankingCSVFile creates (or truncates) path and writes the ranking table.
func WriteRankingCSVFile(path string, res *topsis.Result) error {
	if res == nil || len(res.Ranking) == 0 {
		return ErrNilResult
	}

	return writeFile(path, func(w io.Writer) error { return WriteRankingCSV(w, res) })
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	return cw
}

func flush(cw *csv.Writer, op string) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: flush: %w", op, err)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	return write(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
