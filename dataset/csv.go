package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/vecrank/model"
)

// ParseError reports a malformed feature file.
type ParseError struct {
	Line int // 1-based, 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReadCSV parses identifier-first CSV rows. Blank lines are skipped and a
// single empty trailing field (a trailing comma) is ignored.
func ReadCSV(r io.Reader) (model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var ds model.Dataset
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Line: pe.Line, Err: pe.Err}
			}
			return nil, err
		}

		line, _ := cr.FieldPos(0)

		if n := len(record); n > 1 && strings.TrimSpace(record[n-1]) == "" {
			record = record[:n-1]
		}

		id := strings.TrimSpace(record[0])
		if id == "" {
			return nil, &ParseError{Line: line, Err: errEmptyID}
		}
		if len(record) < 2 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("entry %q has no feature values", id)}
		}

		vec := make([]float32, len(record)-1)
		for i, field := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("entry %q, value %d: %w", id, i+1, err)}
			}
			vec[i] = float32(v)
		}

		ds = append(ds, model.Entry{ID: id, Vector: vec})
	}
	return ds, nil
}

// WriteCSV writes ds in the identifier-first CSV format read by ReadCSV.
func WriteCSV(w io.Writer, ds model.Dataset) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	var record []string
	for _, e := range ds {
		record = append(record[:0], e.ID)
		for _, v := range e.Vector {
			record = append(record, strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
