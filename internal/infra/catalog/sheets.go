package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"studio-search/internal/domain/studio"
	"studio-search/internal/infra"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the rate sheet directly through the Sheets API.
// The first row of the range is the header.
type SheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
	logger        *slog.Logger
}

func NewSheetsSource(ctx context.Context, spreadsheetID, readRange string, logger *slog.Logger, opts ...option.ClientOption) (*SheetsSource, error) {
	if spreadsheetID == "" {
		return nil, infra.WrapRepoErr(logger, infra.KindNotConfigured, "spreadsheet id is empty", nil)
	}

	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}, opts...)
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindNotConfigured, "failed to create sheets service", err)
	}

	return &SheetsSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}, nil
}

func (s *SheetsSource) Name() string {
	return "sheets"
}

func (s *SheetsSource) Fetch(ctx context.Context) ([]studio.Record, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindFetchFailed, "failed to read spreadsheet values", err)
	}
	if len(resp.Values) == 0 {
		return []studio.Record{}, nil
	}

	header := toStrings(resp.Values[0], nil)
	clockCols := clockColumns(header)
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, v := range resp.Values[1:] {
		rows = append(rows, toStrings(v, clockCols))
	}

	records, err := decodeTable(header, rows)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDecodeFailed, "failed to decode spreadsheet rows", err)
	}
	return records, nil
}

// clockColumns marks the time-of-day columns, which UNFORMATTED_VALUE returns as day fractions.
func clockColumns(header []string) map[int]bool {
	cols := make(map[int]bool)
	for i, h := range header {
		switch canonicalColumn(h) {
		case "start_time", "end_time":
			cols[i] = true
		}
	}
	return cols
}

func toStrings(cells []interface{}, clockCols map[int]bool) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if f, ok := c.(float64); ok && clockCols[i] {
			out[i] = dayFractionClock(f)
			continue
		}
		out[i] = stringify(c)
	}
	return out
}

// dayFractionClock renders a serial time as HH:MM. 1.0 is 24:00; a full date-time serial keeps only its time part.
func dayFractionClock(f float64) string {
	if f < 0 {
		return stringify(f)
	}
	if f > 1 {
		f -= math.Floor(f)
	}
	minutes := int(math.Round(f * 24 * 60))
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
