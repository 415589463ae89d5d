package request

import (
	"errors"
	"strconv"
	"strings"

	"studio-search/internal/domain/search"
	"studio-search/internal/pkg/errs"
	"studio-search/internal/pkg/patch"
)

var (
	ErrInvalidPrice = errors.New("price must be an integer")
	ErrInvalidUsage = errors.New("usage must be a number")
)

// SearchRequest mirrors the result page URL parameters.
// price and usage stay strings so an empty value means "not set" rather than 0.
type SearchRequest struct {
	Date      string  `form:"date"`
	StartTime string  `form:"startTime"`
	EndTime   string  `form:"endTime"`
	Price     string  `form:"price"`
	People    int     `form:"people" binding:"required,min=1"`
	Mode      *string `form:"mode" binding:"omitempty,oneof=day night"`
	Areas     string  `form:"areas"`
	Usage     string  `form:"usage"`
}

func (r *SearchRequest) ToInput() (search.QueryInput, error) {
	in := search.QueryInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		People:    r.People,
		Mode:      patch.Coalesce(r.Mode, string(search.ModeDay)),
		Areas:     splitAreas(r.Areas),
	}

	if p := strings.TrimSpace(r.Price); p != "" {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return search.QueryInput{}, errs.Wrapf(ErrInvalidPrice, "price=%q", p)
		}
		in.MaxPrice = &v
	}

	if u := strings.TrimSpace(r.Usage); u != "" {
		v, err := strconv.ParseFloat(u, 64)
		if err != nil {
			return search.QueryInput{}, errs.Wrapf(ErrInvalidUsage, "usage=%q", u)
		}
		in.AreaPerPerson = &v
	}

	return in, nil
}

func splitAreas(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
