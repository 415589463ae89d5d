package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra"
)

// CSVSource reads an exported sheet (header row + one rate per row) over HTTP.
type CSVSource struct {
	url     string
	fetcher *HTTPFetcher
	logger  *slog.Logger
}

func NewCSVSource(url string, fetcher *HTTPFetcher, logger *slog.Logger) *CSVSource {
	return &CSVSource{url: url, fetcher: fetcher, logger: logger}
}

func (s *CSVSource) Name() string {
	return "csv"
}

func (s *CSVSource) Fetch(ctx context.Context) ([]studio.Record, error) {
	body, err := s.fetcher.Get(ctx, s.url)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindFetchFailed, "failed to fetch catalog csv", err)
	}

	records, err := parseCSV(body)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailed, "failed to parse catalog csv", err)
	}
	return records, nil
}

func parseCSV(body []byte) ([]studio.Record, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return []studio.Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return decodeTable(header, rows)
}
