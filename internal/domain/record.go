package domain

// Record is one named entity with an age in years. Name is opaque.
type Record struct {
	Name string  `json:"name"`
	Age  float64 `json:"age"`
}

// Dataset is an ordered sequence of records. Order is kept for display only;
// each record is classified independently.
type Dataset struct {
	Name    string
	Records []Record
}

// Ages returns the ages of ds in record order.
func (ds Dataset) Ages() []float64 {
	out := make([]float64, len(ds.Records))
	for i, r := range ds.Records {
		out[i] = r.Age
	}
	return out
}

// Names returns the record names of ds in record order.
func (ds Dataset) Names() []string {
	out := make([]string, len(ds.Records))
	for i, r := range ds.Records {
		out[i] = r.Name
	}
	return out
}

// ClassifiedRecord is a record together with its derived group.
type ClassifiedRecord struct {
	Record
	Group AgeGroup `json:"age_group"`
}

// ClassifyRecords returns a new slice of classified records in input order.
func ClassifyRecords(records []Record) []ClassifiedRecord {
	out := make([]ClassifiedRecord, len(records))
	for i, r := range records {
		out[i] = ClassifiedRecord{Record: r, Group: Classify(r.Age)}
	}
	return out
}

// GroupCount is the number of records that fell into Group.
type GroupCount struct {
	Group AgeGroup `json:"group"`
	Count int      `json:"count"`
}

// Summary counts records per group. Counts follows Groups() order and always
// holds all four groups, including empty ones.
type Summary struct {
	Total  int          `json:"total"`
	Counts []GroupCount `json:"counts"`
}

// Count returns the number of records in g.
func (s Summary) Count(g AgeGroup) int {
	for _, c := range s.Counts {
		if c.Group == g {
			return c.Count
		}
	}
	return 0
}

func Summarize(rows []ClassifiedRecord) Summary {
	byGroup := make(map[AgeGroup]int, 4)
	for _, r := range rows {
		byGroup[r.Group]++
	}

	groups := Groups()
	s := Summary{Total: len(rows), Counts: make([]GroupCount, 0, len(groups))}
	for _, g := range groups {
		s.Counts = append(s.Counts, GroupCount{Group: g, Count: byGroup[g]})
	}
	return s
}

// DatasetRef is a lightweight reference to a dataset file on disk.
type DatasetRef struct {
	Name string
	Path string
}
