package response

import (
	"studio-search/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AreaDirectoryResponse struct {
	CatalogVersion string               `json:"catalogVersion"`
	Areas          []*AreaGroupResponse `json:"areas"`
}

type AreaGroupResponse struct {
	Area    string             `json:"area"`
	Studios []*ListingResponse `json:"studios"`
}

type ListingResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func FromDirectoryView(v *queries.DirectoryView) (*AreaDirectoryResponse, error) {
	res := &AreaDirectoryResponse{
		CatalogVersion: v.CatalogVersion.String(),
		Areas:          make([]*AreaGroupResponse, len(v.Groups)),
	}
	for i, g := range v.Groups {
		group := &AreaGroupResponse{Area: g.Area}
		if err := copier.Copy(&group.Studios, &g.Listings); err != nil {
			return nil, err
		}
		res.Areas[i] = group
	}
	return res, nil
}

type ConditionsResponse struct {
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Price         *int64   `json:"price"`
	People        int      `json:"people"`
	Mode          string   `json:"mode"`
	Areas         []string `json:"areas"`
	AreaPerPerson float64  `json:"areaPerPerson"`
	Saved         bool     `json:"saved"`
}

func FromConditions(c queries.Conditions, saved bool) (*ConditionsResponse, error) {
	res := &ConditionsResponse{}
	if err := copier.CopyWithOption(res, &c, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Areas == nil {
		res.Areas = []string{}
	}
	res.Saved = saved
	return res, nil
}
