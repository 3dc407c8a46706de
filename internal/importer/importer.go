// Package importer decodes publisher and agent lists from CSV, JSON or YAML files.
package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	authProcessor "ops-dashboard/internal/auth/processor"
	publisherProcessor "ops-dashboard/internal/publishers/processor"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown file format, expected .csv, .json, .yaml or .yml")
	ErrMissingHeader = errors.New("csv file has no header row")
)

// Record is one row keyed by lowercase column name
type Record map[string]string

// DetectFormat picks the format from the file extension of a path or s3 key
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Decode reads a list of records. JSON and YAML files hold a list of objects;
// CSV files carry a header row naming the columns.
func Decode(format Format, data []byte) ([]Record, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(data)
	case FormatJSON:
		var rows []map[string]interface{}
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
		return toRecords(rows), nil
	case FormatYAML:
		var rows []map[string]interface{}
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
		return toRecords(rows), nil
	default:
		return nil, ErrUnknownFormat
	}
}

func decodeCSV(data []byte) ([]Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingHeader
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i := range header {
		header[i] = normalizeKey(header[i])
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		record := make(Record, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func toRecords(rows []map[string]interface{}) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, len(row))
		for key, value := range row {
			if value == nil {
				continue
			}
			record[normalizeKey(key)] = strings.TrimSpace(fmt.Sprint(value))
		}
		records = append(records, record)
	}
	return records
}

// normalizeKey lowercases a column name and folds spaces and dashes into underscores
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(key, "\ufeff")))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(key)
}

// Publishers maps records onto publisher rows. Validation is left to the
// publisher processor, which skips rows without a usable email.
func Publishers(records []Record) []publisherProcessor.PublisherInput {
	inputs := make([]publisherProcessor.PublisherInput, 0, len(records))
	for _, r := range records {
		inputs = append(inputs, publisherProcessor.PublisherInput{
			Name:     r["name"],
			Email:    r["email"],
			Category: r["category"],
		})
	}
	return inputs
}

// Users maps records onto agent accounts
func Users(records []Record) []authProcessor.NewUser {
	users := make([]authProcessor.NewUser, 0, len(records))
	for _, r := range records {
		users = append(users, authProcessor.NewUser{
			Username: r["username"],
			FullName: r["full_name"],
			Email:    r["email"],
			Password: r["password"],
		})
	}
	return users
}
