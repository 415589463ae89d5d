package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra"
)

// JSONSource reads an array of flat record objects from a URL or a local file.
type JSONSource struct {
	url     string
	path    string
	fetcher *HTTPFetcher
	logger  *slog.Logger
}

func NewJSONSource(url, path string, fetcher *HTTPFetcher, logger *slog.Logger) *JSONSource {
	return &JSONSource{url: url, path: path, fetcher: fetcher, logger: logger}
}

func (s *JSONSource) Name() string {
	return "json"
}

func (s *JSONSource) Fetch(ctx context.Context) ([]studio.Record, error) {
	var (
		body []byte
		err  error
	)
	if s.url != "" {
		body, err = s.fetcher.Get(ctx, s.url)
	} else {
		body, err = os.ReadFile(s.path)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindFetchFailed, "failed to read catalog json", err)
	}

	records, err := parseJSON(body)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailed, "failed to parse catalog json", err)
	}
	return records, nil
}

// parseJSON accepts numbers or strings for any column.
func parseJSON(body []byte) ([]studio.Record, error) {
	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}

	records := make([]studio.Record, 0, len(rows))
	for i, row := range rows {
		normalized := make(map[string]string, len(row))
		for k, v := range row {
			normalized[canonicalColumn(k)] = stringify(v)
		}
		rec, err := decodeRecord(func(column string) string { return normalized[column] })
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
