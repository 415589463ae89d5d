package studio

// RecordIssue flags a rejected input row.
type RecordIssue struct {
	Index      int
	StudioName string
	RoomName   string
	Err        error
}

// GroupRecords folds flat records into studios in first-seen order.
// The first record of a room fixes its attributes; later records only append their rule.
func GroupRecords(records []Record) ([]*Studio, []RecordIssue) {
	var (
		studios []*Studio
		issues  []RecordIssue
	)
	index := make(map[string]*Studio)

	for i, rec := range records {
		rule, err := rec.Rule()
		if err != nil {
			issues = append(issues, RecordIssue{
				Index:      i,
				StudioName: rec.StudioName,
				RoomName:   rec.RoomName,
				Err:        err,
			})
			continue
		}

		key := rec.GroupKey()
		s, ok := index[key]
		if !ok {
			s = newStudio(key, rec)
			index[key] = s
			studios = append(studios, s)
		}
		s.roomFor(rec).addRate(rule)
	}

	return studios, issues
}
