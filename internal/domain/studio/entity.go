package studio

import (
	"strings"

	"studio-search/internal/domain/rate"
)

type Room struct {
	name           string
	areaSqm        *float64
	recommendedMax *int
	notes          string
	rates          []rate.Rule
}

func newRoom(rec Record) *Room {
	return &Room{
		name:           strings.TrimSpace(rec.RoomName),
		areaSqm:        rec.AreaSqm,
		recommendedMax: rec.RecommendedMax,
		notes:          strings.TrimSpace(rec.Notes),
	}
}

func (r *Room) Name() string           { return r.name }
func (r *Room) AreaSqm() *float64      { return r.areaSqm }
func (r *Room) RecommendedMax() *int   { return r.recommendedMax }
func (r *Room) Notes() string          { return r.notes }
func (r *Room) Rates() []rate.Rule     { return r.rates }
func (r *Room) HasKnownArea() bool     { return r.areaSqm != nil }
func (r *Room) addRate(rule rate.Rule) { r.rates = append(r.rates, rule) }

// Studio is one grouping bucket. Its rooms are keyed by room_name in first-seen order.
type Studio struct {
	key         string
	name        string
	officialURL string
	area        string
	rooms       []*Room
	roomIndex   map[string]*Room
}

func newStudio(key string, rec Record) *Studio {
	return &Studio{
		key:         key,
		name:        strings.TrimSpace(rec.StudioName),
		officialURL: strings.TrimSpace(rec.OfficialURL),
		area:        strings.TrimSpace(rec.Area),
		roomIndex:   make(map[string]*Room),
	}
}

func (s *Studio) Key() string         { return s.key }
func (s *Studio) Name() string        { return s.name }
func (s *Studio) OfficialURL() string { return s.officialURL }
func (s *Studio) Area() string        { return s.area }
func (s *Studio) Rooms() []*Room      { return s.rooms }

func (s *Studio) roomFor(rec Record) *Room {
	name := strings.TrimSpace(rec.RoomName)
	if room, ok := s.roomIndex[name]; ok {
		return room
	}
	room := newRoom(rec)
	s.roomIndex[name] = room
	s.rooms = append(s.rooms, room)
	return room
}
