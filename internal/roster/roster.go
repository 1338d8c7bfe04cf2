// Package roster parses camper roster CSV files.
//
// The expected format is a header row of first_name, last_name and
// date_of_birth followed by one row per camper. Rows with a blank
// required field are reported as skipped rather than failing the parse.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one parsed camper row. Name is "first last" joined.
type Row struct {
	Name        string
	DateOfBirth string
}

// Result holds the parsed rows and the count of rows dropped for
// missing fields.
type Result struct {
	Rows           []Row
	SkippedMissing int
}

var requiredHeaders = []string{"first_name", "last_name", "date_of_birth"}

// ParseFile parses a roster CSV from disk.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses a roster CSV from a reader.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("roster file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}

		first := strings.TrimSpace(record[cols["first_name"]])
		last := strings.TrimSpace(record[cols["last_name"]])
		dob := strings.TrimSpace(record[cols["date_of_birth"]])

		if first == "" || last == "" || dob == "" {
			result.SkippedMissing++
			continue
		}

		result.Rows = append(result.Rows, Row{
			Name:        first + " " + last,
			DateOfBirth: dob,
		})
	}

	return result, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, want := range requiredHeaders {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("roster file is missing column %q", want)
		}
	}

	return cols, nil
}
