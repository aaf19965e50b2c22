package timeline

import (
	"sort"
	"strings"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// Merge sorts intervals and coalesces every overlapping or touching run
// into a single busy block. The input slice is not modified.
//
// Sort order is start ascending, then longer intervals first, then label
// text, so the same bookings always produce the same labels in the same order.
// Merging the output again returns it unchanged.
func Merge(intervals []domain.Interval) []domain.BusyBlock {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]domain.Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessInterval(sorted[i], sorted[j])
	})

	blocks := make([]domain.BusyBlock, 0, len(sorted))
	cur := newBlock(sorted[0])
	for _, iv := range sorted[1:] {
		// Touching counts as overlap: [9,12) and [12,15) become [9,15).
		if !iv.Start.After(cur.End) {
			if iv.End.After(cur.End) {
				cur.End = iv.End
			}
			cur.Labels = append(cur.Labels, iv.Labels...)
			continue
		}
		blocks = append(blocks, cur)
		cur = newBlock(iv)
	}
	return append(blocks, cur)
}

func newBlock(iv domain.Interval) domain.BusyBlock {
	return domain.BusyBlock{
		Start:  iv.Start,
		End:    iv.End,
		Labels: append([]string(nil), iv.Labels...),
	}
}

func lessInterval(a, b domain.Interval) bool {
	if !a.Start.Equal(b.Start) {
		return a.Start.Before(b.Start)
	}
	if da, db := a.Duration(), b.Duration(); da != db {
		return da > db
	}
	return strings.Join(a.Labels, "\n") < strings.Join(b.Labels, "\n")
}
