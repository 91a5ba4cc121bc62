package model1

import "fmt"

// Tally counts the records sharing a label.
type Tally struct {
	Label        string
	Count        int
	DisplayLabel string
	ColorIndex   int
}

// Tallies represents a collection of tallies.
type Tallies []Tally

// Total returns the sum of all counts.
func (tt Tallies) Total() int {
	var n int
	for _, t := range tt {
		n += t.Count
	}
	return n
}

// Max returns the largest count or 0.
func (tt Tallies) Max() int {
	var n int
	for _, t := range tt {
		n = max(n, t.Count)
	}
	return n
}

// Aggregate groups records by label. Tallies are emitted in the order their
// label was first seen. Records without a label are skipped and reported.
func Aggregate(recs []Labeled) (Tallies, []*MalformedRecordError) {
	var (
		tt      Tallies
		skipped []*MalformedRecordError
		index   = make(map[string]int)
	)
	for _, r := range recs {
		label, ok := r.Label()
		if !ok || IsBlank(label) {
			skipped = append(skipped, &MalformedRecordError{ID: r.ID(), Field: "continent"})
			continue
		}
		if i, ok := index[label]; ok {
			tt[i].Count++
			continue
		}
		index[label] = len(tt)
		tt = append(tt, Tally{Label: label, Count: 1})
	}

	for i := range tt {
		tt[i].DisplayLabel = fmt.Sprintf("%s (%d)", tt[i].Label, tt[i].Count)
		tt[i].ColorIndex = i
	}

	return tt, skipped
}
