package studio

import "strings"

const OtherArea = "その他"

type Listing struct {
	Name string
	URL  string
}

type AreaGroup struct {
	Area     string
	Listings []Listing
}

// AreaDirectory buckets studios into a fixed area order; anything unlisted falls into the other bucket.
type AreaDirectory struct {
	order []string
	rank  map[string]int
	other string
}

func NewAreaDirectory(areas []string, other string) *AreaDirectory {
	if strings.TrimSpace(other) == "" {
		other = OtherArea
	}
	d := &AreaDirectory{other: other, rank: make(map[string]int, len(areas))}
	for _, a := range areas {
		a = strings.TrimSpace(a)
		if a == "" || a == other {
			continue
		}
		if _, dup := d.rank[a]; dup {
			continue
		}
		d.rank[a] = len(d.order)
		d.order = append(d.order, a)
	}
	return d
}

func (d *AreaDirectory) Areas() []string { return d.order }
func (d *AreaDirectory) Other() string   { return d.other }

func (d *AreaDirectory) Normalize(area string) string {
	area = strings.TrimSpace(area)
	if _, ok := d.rank[area]; ok {
		return area
	}
	return d.other
}

// Group lists each studio name once per area, keeping the first URL seen.
func (d *AreaDirectory) Group(records []Record) []AreaGroup {
	buckets := make(map[string]*AreaGroup)
	seen := make(map[string]map[string]struct{})

	for _, rec := range records {
		name := strings.TrimSpace(rec.StudioName)
		if name == "" {
			continue
		}
		area := d.Normalize(rec.Area)
		g, ok := buckets[area]
		if !ok {
			g = &AreaGroup{Area: area}
			buckets[area] = g
			seen[area] = make(map[string]struct{})
		}
		if _, dup := seen[area][name]; dup {
			continue
		}
		seen[area][name] = struct{}{}
		g.Listings = append(g.Listings, Listing{Name: name, URL: strings.TrimSpace(rec.OfficialURL)})
	}

	groups := make([]AreaGroup, 0, len(buckets))
	for _, a := range d.order {
		if g, ok := buckets[a]; ok {
			groups = append(groups, *g)
		}
	}
	if g, ok := buckets[d.other]; ok {
		groups = append(groups, *g)
	}
	return groups
}
