package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"address-catalog/internal/models"
	"address-catalog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// AddressRecord is one CSV row: username,display_name,postal_code
type AddressRecord struct {
	Line        int    `validate:"-"`
	Username    string `validate:"required"`
	DisplayName string `validate:"required"`
	PostalCode  string `validate:"required,containsany=0123456789"`
}

var validate = validator.New()

func parseCSV(filePath string) ([]AddressRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readRecords(file)
}

func readRecords(r io.Reader) ([]AddressRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []AddressRecord
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line++

		if len(row) < 3 {
			return nil, fmt.Errorf("invalid record length on line %d: %d, expected 3 columns", line, len(row))
		}

		record := AddressRecord{
			Line:        line,
			Username:    strings.TrimSpace(row[0]),
			DisplayName: strings.TrimSpace(row[1]),
			PostalCode:  strings.TrimSpace(row[2]),
		}
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}

		records = append(records, record)
	}

	return records, nil
}

type creator interface {
	Create(ctx context.Context, req service.CreateRequest) (models.AddressEntry, error)
}

type importSummary struct {
	Imported int
	Failed   int
}

func importRecords(ctx context.Context, catalog creator, records []AddressRecord) importSummary {
	var summary importSummary
	for _, record := range records {
		entry, err := catalog.Create(ctx, service.CreateRequest{
			Username:    record.Username,
			DisplayName: record.DisplayName,
			PostalCode:  record.PostalCode,
		})
		if err != nil {
			summary.Failed++
			log.Warn().Err(err).Int("line", record.Line).Str("postal_code", record.PostalCode).Msg("record skipped")
			continue
		}
		summary.Imported++
		log.Debug().Int("line", record.Line).Str("id", entry.ID).Msg("record imported")
	}
	return summary
}
