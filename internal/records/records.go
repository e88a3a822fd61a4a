// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package records loads CRM user records from local files for a sync run.
//
// Two formats are supported and chosen by file extension: a JSON array of
// objects with the keys email, phone and first_name (.json), and CSV with a
// header row naming the same columns (.csv). Column order in CSV files is
// free and unknown columns are ignored.
package records

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/audience-sync/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported records file format")
	ErrMissingColumns    = errors.New("csv header has none of the record columns")
	ErrEmptyPath         = errors.New("records file path is empty")
)

// Load reads all records from the file at path.
func Load(path string) ([]models.UserRecord, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeJSON decodes a JSON array of user records.
func DecodeJSON(r io.Reader) ([]models.UserRecord, error) {
	var records []models.UserRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json records: %w", err)
	}
	if records == nil {
		records = []models.UserRecord{}
	}
	return records, nil
}

// DecodeCSV decodes CSV with a header row. Missing columns leave the
// corresponding field empty.
func DecodeCSV(r io.Reader) ([]models.UserRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))] = i
	}

	emailCol, hasEmail := columns["email"]
	phoneCol, hasPhone := columns["phone"]
	nameCol, hasName := columns["first_name"]
	if !hasEmail && !hasPhone && !hasName {
		return nil, ErrMissingColumns
	}

	cell := func(row []string, idx int, ok bool) string {
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := []models.UserRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(records)+2, err)
		}

		records = append(records, models.UserRecord{
			Email:     cell(row, emailCol, hasEmail),
			Phone:     cell(row, phoneCol, hasPhone),
			FirstName: cell(row, nameCol, hasName),
		})
	}

	return records, nil
}
