// SPDX-License-Identifier: MIT

package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses r as a numeric CSV with one sample per row and one component
// per column. Blank lines are skipped; a first row that does not parse as
// numbers is treated as a header.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	var samples [][]float64
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Series{}, fmt.Errorf("ReadCSV: %w", err)
		}
		sample, err := parseRecord(rec)
		if err != nil {
			if row == 0 && len(samples) == 0 {
				continue // header
			}

			return Series{}, fmt.Errorf("ReadCSV: row %d: %w", row+1, err)
		}
		samples = append(samples, sample)
	}

	s, err := NewMultivariate(samples)
	if err != nil {
		return Series{}, fmt.Errorf("ReadCSV: %w", err)
	}

	return s, nil
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
