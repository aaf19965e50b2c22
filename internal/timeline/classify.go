package timeline

import (
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// DefaultMinFreeSlotMinutes is the shortest gap worth suggesting something for.
const DefaultMinFreeSlotMinutes = 30

// Classify turns raw gaps into free slots, dropping any shorter than
// minMinutes. A free_all_day gap is always kept. Order is preserved.
func Classify(gaps []domain.Gap, minMinutes int) []domain.FreeSlot {
	slots := make([]domain.FreeSlot, 0, len(gaps))
	for _, g := range gaps {
		mins := int(g.Duration() / time.Minute)
		if g.Context != domain.ContextFreeAllDay && mins < minMinutes {
			continue
		}
		slots = append(slots, domain.FreeSlot{
			Start:           g.Start,
			End:             g.End,
			DurationMinutes: mins,
			Context:         g.Context,
		})
	}
	return slots
}
