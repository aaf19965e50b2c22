package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-assistant/backend/internal/domain"
	"github.com/pkordes/travel-assistant/backend/internal/timeline"
)

func windowConfig(p timeline.WindowPolicy) timeline.WindowConfig {
	return timeline.WindowConfig{
		Policy:   p,
		DayStart: domain.NewTimeOfDay(8, 0, 0),
		DayEnd:   domain.NewTimeOfDay(22, 0, 0),
		Location: time.UTC,
	}
}

func TestWindowConfig_FullDay_IgnoresNow(t *testing.T) {
	got := windowConfig(timeline.PolicyFullDay).Resolve(at(14, 10))

	assert.Equal(t, window(8, 22), got)
}

func TestWindowConfig_RestOfDay_StartsNowTruncated(t *testing.T) {
	now := at(13, 27).Add(45 * time.Second)

	got := windowConfig(timeline.PolicyRestOfDay).Resolve(now)

	assert.True(t, got.Start.Equal(at(13, 27)))
	assert.True(t, got.End.Equal(at(22, 0)))
}

func TestWindowConfig_RestOfDay_BeforeDayStart(t *testing.T) {
	got := windowConfig(timeline.PolicyRestOfDay).Resolve(at(6, 30))

	assert.Equal(t, window(8, 22), got)
}

func TestWindowConfig_RestOfDay_AfterDayEnd_RollsToTomorrow(t *testing.T) {
	got := windowConfig(timeline.PolicyRestOfDay).Resolve(at(22, 0))

	assert.True(t, got.Start.Equal(at(24+8, 0)))
	assert.True(t, got.End.Equal(at(24+22, 0)))
}

func TestWindowConfig_UsesLocation(t *testing.T) {
	cfg := windowConfig(timeline.PolicyFullDay)
	cfg.Location = time.FixedZone("WAT", 60*60)

	// 23:30 UTC on baseDay is already 00:30 on the next day in WAT.
	got := cfg.Resolve(at(23, 30))

	assert.Equal(t, 2, got.Start.Day())
	assert.Equal(t, 8, got.Start.Hour())
}

func TestParseWindowPolicy(t *testing.T) {
	p, err := timeline.ParseWindowPolicy("full_day")
	require.NoError(t, err)
	assert.Equal(t, timeline.PolicyFullDay, p)

	_, err = timeline.ParseWindowPolicy("next_week")
	assert.ErrorContains(t, err, "next_week")
}
