//go:build unit || e2e

package testutil

import (
	"net/url"
)

// SearchParams are valid day-mode parameters for GET /api/search (a Monday evening, 5 people).
func SearchParams() map[string]string {
	return map[string]string{
		"date":      "2025-01-06",
		"startTime": "18:00",
		"endTime":   "20:00",
		"people":    "5",
		"mode":      "day",
	}
}

// URL encodes params after applying muts, e.g. URL("/api/search", SearchParams(), Field("price", "3000")).
func URL(path string, params map[string]string, muts ...func(map[string]string)) string {
	for _, f := range muts {
		f(params)
	}
	if len(params) == 0 {
		return path
	}
	v := url.Values{}
	for k, val := range params {
		v.Set(k, val)
	}
	return path + "?" + v.Encode()
}
