package timeline

import (
	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// DetectGaps returns every uncovered part of w, in chronological order.
// blocks must be sorted and non-overlapping, as produced by Merge.
//
// Blocks entirely outside w are ignored and the rest are clipped to w, so the
// busy time inside w plus the returned gaps always add up to w.Duration().
// With no blocks inside w the whole window is one free_all_day gap.
func DetectGaps(blocks []domain.BusyBlock, w domain.Window) []domain.Gap {
	inside := WithinWindow(blocks, w)
	if len(inside) == 0 {
		return []domain.Gap{{Start: w.Start, End: w.End, Context: domain.ContextFreeAllDay}}
	}

	var gaps []domain.Gap
	if first := inside[0]; w.Start.Before(first.Start) {
		gaps = append(gaps, domain.Gap{Start: w.Start, End: first.Start, Context: domain.ContextBeforeFirst})
	}
	for i := 0; i+1 < len(inside); i++ {
		if inside[i].End.Before(inside[i+1].Start) {
			gaps = append(gaps, domain.Gap{Start: inside[i].End, End: inside[i+1].Start, Context: domain.ContextBetween})
		}
	}
	if last := inside[len(inside)-1]; last.End.Before(w.End) {
		gaps = append(gaps, domain.Gap{Start: last.End, End: w.End, Context: domain.ContextAfterLast})
	}
	return gaps
}

// WithinWindow drops blocks that start at or after w.End or end at or before
// w.Start, and clips the remainder to w.
func WithinWindow(blocks []domain.BusyBlock, w domain.Window) []domain.BusyBlock {
	out := make([]domain.BusyBlock, 0, len(blocks))
	for _, b := range blocks {
		if !b.Start.Before(w.End) || !b.End.After(w.Start) {
			continue
		}
		if b.Start.Before(w.Start) {
			b.Start = w.Start
		}
		if b.End.After(w.End) {
			b.End = w.End
		}
		out = append(out, b)
	}
	return out
}
