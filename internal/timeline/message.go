package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
)

// FullyBookedMessage is rendered when no free slot survived filtering.
const FullyBookedMessage = "Your itinerary is fully booked for this period. Enjoy your plans!"

// SelectSlot picks the longest slot, the earliest one on ties.
// It reports false when slots is empty.
func SelectSlot(slots []domain.FreeSlot) (domain.FreeSlot, bool) {
	if len(slots) == 0 {
		return domain.FreeSlot{}, false
	}
	best := slots[0]
	for _, s := range slots[1:] {
		if s.DurationMinutes > best.DurationMinutes ||
			(s.DurationMinutes == best.DurationMinutes && s.Start.Before(best.Start)) {
			best = s
		}
	}
	return best, true
}

// ComposeMessage renders the suggestion prompt for the selected slot.
// today is the date of the request; slots on a later date are phrased as
// tomorrow or by weekday. The output depends only on slots and today's date.
func ComposeMessage(slots []domain.FreeSlot, today time.Time) string {
	slot, ok := SelectSlot(slots)
	if !ok {
		return FullyBookedMessage
	}

	ahead := daysAhead(today, slot.Start)
	if slot.Context == domain.ContextFreeAllDay {
		return fmt.Sprintf(
			"You have no commitments %sfrom %s to %s, so the whole stretch is yours. What kind of experience are you in the mood for: %s?",
			dayPrefix(ahead, slot.Start), clock(slot.Start), clock(slot.End), categoryList(),
		)
	}
	return fmt.Sprintf(
		"You've got %s %s, from %s to %s. What kind of experience are you in the mood for: %s?",
		durationPhrase(slot.DurationMinutes), period(ahead, slot.Start),
		clock(slot.Start), clock(slot.End), categoryList(),
	)
}

// daysAhead counts calendar days from today to t, in t's zone.
func daysAhead(today, t time.Time) int {
	loc := t.Location()
	ty, tm, td := today.In(loc).Date()
	sy, sm, sd := t.Date()
	from := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	to := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// period renders e.g. "this afternoon", "tomorrow morning", "on Friday evening".
func period(ahead int, t time.Time) string {
	switch {
	case ahead <= 0:
		return "this " + partOfDay(t)
	case ahead == 1:
		return "tomorrow " + partOfDay(t)
	default:
		return "on " + t.Weekday().String() + " " + partOfDay(t)
	}
}

// dayPrefix qualifies a whole-window slot that is not today.
func dayPrefix(ahead int, t time.Time) string {
	switch {
	case ahead <= 0:
		return ""
	case ahead == 1:
		return "tomorrow "
	default:
		return "on " + t.Weekday().String() + " "
	}
}

func durationPhrase(minutes int) string {
	switch {
	case minutes < 60:
		return "a short break"
	case minutes < 180:
		return "a few hours"
	default:
		return "a big chunk of free time"
	}
}

func partOfDay(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "morning"
	case h < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// clock formats t on a 12-hour clock, e.g. "3:00 PM".
func clock(t time.Time) string {
	return t.Format("3:04 PM")
}

// categoryList renders "a, b, c or d".
func categoryList() string {
	n := len(domain.Categories)
	switch n {
	case 0:
		return "anything"
	case 1:
		return domain.Categories[0]
	}
	return strings.Join(domain.Categories[:n-1], ", ") + " or " + domain.Categories[n-1]
}
