package studio

import (
	"errors"
	"strings"

	"studio-search/internal/domain/rate"
)

// PlaceholderID marks an id column that was left unfilled in the source sheet.
const PlaceholderID = "-"

var (
	ErrMissingStudio = errors.New("studio_id and studio_name are both empty")
	ErrMissingRoom   = errors.New("room_name is empty")
	ErrMissingPrice  = errors.New("min_price is empty")
)

// Record is one flat catalog row: studio and room attributes repeated next to a single rate rule.
type Record struct {
	StudioID       string   `json:"studio_id,omitempty"`
	StudioName     string   `json:"studio_name"`
	OfficialURL    string   `json:"official_url"`
	Area           string   `json:"area"`
	RoomID         string   `json:"room_id,omitempty"`
	RoomName       string   `json:"room_name"`
	AreaSqm        *float64 `json:"area_sqm"`
	RecommendedMax *int     `json:"recommended_max"`
	Notes          string   `json:"notes"`
	RateName       string   `json:"rate_name"`
	DaysOfWeek     string   `json:"days_of_week"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	MinPrice       *int64   `json:"min_price"`
}

// IdentityKey prefers id unless it is blank or a placeholder.
func IdentityKey(id, name string) string {
	id = strings.TrimSpace(id)
	if id != "" && id != PlaceholderID {
		return id
	}
	return strings.TrimSpace(name)
}

func (r Record) StudioKey() string {
	return IdentityKey(r.StudioID, r.StudioName)
}

func (r Record) RoomKey() string {
	return IdentityKey(r.RoomID, r.RoomName)
}

// GroupKey is the (studio, room) grouping identity.
func (r Record) GroupKey() string {
	return r.StudioKey() + "-" + r.RoomKey()
}

func (r Record) Rule() (rate.Rule, error) {
	if r.StudioKey() == "" {
		return rate.Rule{}, ErrMissingStudio
	}
	if strings.TrimSpace(r.RoomName) == "" {
		return rate.Rule{}, ErrMissingRoom
	}
	if r.MinPrice == nil {
		return rate.Rule{}, ErrMissingPrice
	}
	return rate.NewRule(r.RateName, r.DaysOfWeek, r.StartTime, r.EndTime, *r.MinPrice)
}
