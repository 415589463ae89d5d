package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"studio-search/internal/domain/studio"
)

// column aliases seen in exported sheets
var columnAliases = map[string]string{
	"studio_url": "official_url",
}

// fieldGetter returns the raw text of a column for one row.
type fieldGetter func(column string) string

func canonicalColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	if alias, ok := columnAliases[name]; ok {
		return alias
	}
	return name
}

func decodeRecord(get fieldGetter) (studio.Record, error) {
	rec := studio.Record{
		StudioID:    get("studio_id"),
		StudioName:  get("studio_name"),
		OfficialURL: get("official_url"),
		Area:        get("area"),
		RoomID:      get("room_id"),
		RoomName:    get("room_name"),
		Notes:       get("notes"),
		RateName:    get("rate_name"),
		DaysOfWeek:  get("days_of_week"),
		StartTime:   get("start_time"),
		EndTime:     get("end_time"),
	}

	var err error
	if rec.AreaSqm, err = parseOptionalFloat(get("area_sqm")); err != nil {
		return studio.Record{}, fmt.Errorf("area_sqm: %w", err)
	}
	if rec.RecommendedMax, err = parseOptionalInt(get("recommended_max")); err != nil {
		return studio.Record{}, fmt.Errorf("recommended_max: %w", err)
	}
	if rec.MinPrice, err = parseOptionalPrice(get("min_price")); err != nil {
		return studio.Record{}, fmt.Errorf("min_price: %w", err)
	}
	return rec, nil
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	for _, junk := range []string{",", "¥", "￥", "円", "㎡", "m2", "人"} {
		s = strings.ReplaceAll(s, junk, "")
	}
	return strings.TrimSpace(s)
}

func parseOptionalFloat(s string) (*float64, error) {
	s = cleanNumber(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalInt(s string) (*int, error) {
	f, err := parseOptionalFloat(s)
	if err != nil || f == nil {
		return nil, err
	}
	v := int(math.Round(*f))
	return &v, nil
}

func parseOptionalPrice(s string) (*int64, error) {
	f, err := parseOptionalFloat(s)
	if err != nil || f == nil {
		return nil, err
	}
	v := int64(math.Round(*f))
	return &v, nil
}

// decodeTable maps a header row plus data rows into records, skipping blank rows.
// line numbers in errors are 1-based and count the header.
func decodeTable(header []string, rows [][]string) ([]studio.Record, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		col := canonicalColumn(h)
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}

	records := make([]studio.Record, 0, len(rows))
	for n, row := range rows {
		if isBlankRow(row) {
			continue
		}
		get := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		rec, err := decodeRecord(get)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// stringify renders JSON or sheet cell values as column text.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
