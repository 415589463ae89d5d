package response

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"studio-search/internal/domain/rate"
	"studio-search/internal/domain/search"
	"studio-search/internal/usecase/queries"

	"github.com/dustin/go-humanize"
)

const (
	unlimitedLabel      = "無制限"
	allAreasLabel       = "すべてのエリア"
	noNotesLabel        = "特記事項なし"
	unknownLabel        = "未記載"
	dayModeLabelFormat  = "時間貸し (%d時間利用)"
	nightModeLabel      = "深夜パック"
	unknownWeekdayLabel = "曜日指定なし"
)

type SearchResponse struct {
	CatalogVersion string                `json:"catalogVersion"`
	Summary        SearchSummaryResponse `json:"summary"`
	Results        []*StudioCardResponse `json:"results"`
}

type SearchSummaryResponse struct {
	Count        int      `json:"count"`
	Date         string   `json:"date,omitempty"`
	DayOfWeek    string   `json:"dayOfWeek"`
	Mode         string   `json:"mode"`
	ModeLabel    string   `json:"modeLabel"`
	StartTime    string   `json:"startTime,omitempty"`
	EndTime      string   `json:"endTime,omitempty"`
	Hours        *int     `json:"hours,omitempty"`
	Areas        []string `json:"areas"`
	AreasLabel   string   `json:"areasLabel"`
	People       int      `json:"people"`
	RequiredArea float64  `json:"requiredArea"`
	Budget       *int64   `json:"budget"`
	BudgetLabel  string   `json:"budgetLabel"`
	SkippedRooms int      `json:"skippedRooms"`
	RejectedRows int      `json:"rejectedRows"`
}

type StudioCardResponse struct {
	StudioKey           string                 `json:"studioKey"`
	StudioName          string                 `json:"studioName"`
	OfficialURL         string                 `json:"officialUrl"`
	Area                string                 `json:"area"`
	RoomName            string                 `json:"roomName"`
	AreaSqm             *float64               `json:"areaSqm"`
	AreaFits            bool                   `json:"areaFits"`
	AreaFitLabel        string                 `json:"areaFitLabel"`
	RecommendedMax      *int                   `json:"recommendedMax"`
	RecommendedMaxLabel string                 `json:"recommendedMaxLabel"`
	Notes               string                 `json:"notes"`
	TotalCost           int64                  `json:"totalCost"`
	TotalCostLabel      string                 `json:"totalCostLabel"`
	PerPersonCost       float64                `json:"perPersonCost"`
	PerPersonCostLabel  string                 `json:"perPersonCostLabel"`
	AppliedRates        []*AppliedRateResponse `json:"appliedRates"`
}

type AppliedRateResponse struct {
	Name       string `json:"name"`
	Days       string `json:"days"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Price      int64  `json:"price"`
	NightPack  bool   `json:"nightPack"`
	PriceLabel string `json:"priceLabel"`
}

func FromSearchView(v *queries.SearchView) *SearchResponse {
	q := v.Query
	required := q.RequiredArea()

	cards := make([]*StudioCardResponse, len(v.Results))
	for i, r := range v.Results {
		cards[i] = fromResult(r, q.People(), required)
	}

	return &SearchResponse{
		CatalogVersion: v.CatalogVersion.String(),
		Summary:        fromQuery(q, len(v.Results), v.SkippedRooms, v.RejectedRows),
		Results:        cards,
	}
}

func fromQuery(q search.Query, count, skipped, rejected int) SearchSummaryResponse {
	s := SearchSummaryResponse{
		Count:        count,
		Date:         q.Date(),
		DayOfWeek:    q.Day().String(),
		Mode:         string(q.Mode()),
		StartTime:    q.StartText(),
		EndTime:      q.EndText(),
		Areas:        q.Areas(),
		AreasLabel:   allAreasLabel,
		People:       q.People(),
		RequiredArea: q.RequiredArea(),
		BudgetLabel:  unlimitedLabel,
		SkippedRooms: skipped,
		RejectedRows: rejected,
	}
	if s.DayOfWeek == "" {
		s.DayOfWeek = unknownWeekdayLabel
	}

	if q.Mode() == search.ModeNight {
		s.ModeLabel = nightModeLabel
	} else {
		hours := q.Hours()
		s.Hours = &hours
		s.ModeLabel = fmt.Sprintf(dayModeLabelFormat, hours)
	}

	if len(s.Areas) > 0 {
		s.AreasLabel = strings.Join(s.Areas, ", ")
	}

	if limit, ok := q.Budget().Limit(); ok {
		s.Budget = &limit
		s.BudgetLabel = FormatYen(limit)
	}
	return s
}

func fromResult(r search.Result, people int, required float64) *StudioCardResponse {
	room := r.Room
	card := &StudioCardResponse{
		StudioKey:           r.StudioKey,
		StudioName:          r.StudioName,
		OfficialURL:         r.OfficialURL,
		Area:                r.Area,
		RoomName:            room.Name(),
		AreaSqm:             room.AreaSqm(),
		AreaFits:            r.AreaFits(required),
		RecommendedMax:      room.RecommendedMax(),
		RecommendedMaxLabel: unknownLabel,
		Notes:               room.Notes(),
		TotalCost:           r.TotalCost,
		TotalCostLabel:      FormatYen(r.TotalCost),
		PerPersonCost:       r.PerPersonCost(people),
		AppliedRates:        make([]*AppliedRateResponse, len(r.Applied)),
	}

	card.PerPersonCostLabel = FormatYen(int64(math.Round(card.PerPersonCost)))
	if card.Notes == "" {
		card.Notes = noNotesLabel
	}
	if m := room.RecommendedMax(); m != nil {
		card.RecommendedMaxLabel = strconv.Itoa(*m) + "人"
	}

	sqm := unknownLabel
	if a := room.AreaSqm(); a != nil {
		sqm = strconv.FormatFloat(*a, 'f', -1, 64)
	}
	// the engine drops rooms below the required area, so every card fits
	card.AreaFitLabel = "適合 (" + sqm + "㎡)"

	for i, rule := range r.Applied {
		card.AppliedRates[i] = fromRule(rule)
	}
	return card
}

func fromRule(rule rate.Rule) *AppliedRateResponse {
	label := FormatYen(rule.Price())
	if !rule.IsNightPack() {
		label += "/h"
	}
	return &AppliedRateResponse{
		Name:       rule.Name(),
		Days:       rule.Days().String(),
		StartTime:  rule.StartText(),
		EndTime:    rule.EndText(),
		Price:      rule.Price(),
		NightPack:  rule.IsNightPack(),
		PriceLabel: label,
	}
}

// FormatYen renders ¥ with thousands separators, e.g. ¥12,000.
func FormatYen(v int64) string {
	if v < 0 {
		return "-¥" + humanize.Comma(-v)
	}
	return "¥" + humanize.Comma(v)
}
