package icsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewscal/ews"
	"ewscal/ewstime"
)

func expandCfg(t *testing.T, from, to ewstime.DateTime) ExpandConfig {
	t.Helper()
	return ExpandConfig{Zone: cphZone(t), RangeStart: from, RangeEnd: to}
}

func Test_Expand_SingleEvent(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)
	item := ews.CalendarItem{
		UID:     "single@example.com",
		Subject: "One-off",
		Start:   start,
		End:     start.Add(time.Hour),
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 1, 0), cphAt(t, 2023, time.November, 1, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)

	require.Len(t, res.Occurrences, 1)
	occ := res.Occurrences[0]
	assert.Equal(t, "single@example.com", occ.UID)
	assert.True(t, occ.Start.Equal(start))
	assert.Equal(t, time.Hour, occ.End.Sub(occ.Start))
	assert.Empty(t, res.TruncatedEvents)
}

func Test_Expand_SingleEvent_OutsideWindow(t *testing.T) {
	start := cphAt(t, 2023, time.December, 1, 10)
	item := ews.CalendarItem{UID: "later@example.com", Subject: "Later", Start: start, End: start.Add(time.Hour)}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 1, 0), cphAt(t, 2023, time.November, 1, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Occurrences)
}

func Test_Expand_WeeklyAcrossDSTBoundary(t *testing.T) {
	// Weekly 10:00 meeting spanning the 2023-10-29 fall-back transition.
	// The rule follows the wall clock, so the meeting stays at 10:00 local
	// while its absolute instant shifts by an hour.
	start := cphAt(t, 2023, time.October, 18, 10)
	item := ews.CalendarItem{
		UID:        "standup@example.com",
		Subject:    "Standup",
		Start:      start,
		End:        start.Add(30 * time.Minute),
		Recurrence: "FREQ=WEEKLY;COUNT=4",
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 17, 0), cphAt(t, 2023, time.November, 15, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)
	require.Len(t, res.Occurrences, 4)

	for _, occ := range res.Occurrences {
		assert.Equal(t, 10, occ.Start.Time().Hour(), "wall clock must hold across the transition")
		assert.Equal(t, 30*time.Minute, occ.End.Sub(occ.Start))
	}

	// Before the transition Copenhagen is UTC+2, after it UTC+1.
	assert.True(t, res.Occurrences[0].Start.Time().Equal(time.Date(2023, time.October, 18, 8, 0, 0, 0, time.UTC)))
	assert.True(t, res.Occurrences[2].Start.Time().Equal(time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC)))
}

func Test_Expand_ExDateRemovesOccurrence(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)
	item := ews.CalendarItem{
		UID:        "standup@example.com",
		Subject:    "Standup",
		Start:      start,
		End:        start.Add(30 * time.Minute),
		Recurrence: "FREQ=WEEKLY;COUNT=4",
		ExDates:    []ewstime.DateTime{cphAt(t, 2023, time.October, 25, 10)},
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 17, 0), cphAt(t, 2023, time.November, 15, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)
	require.Len(t, res.Occurrences, 3)

	excluded := cphAt(t, 2023, time.October, 25, 10)
	for _, occ := range res.Occurrences {
		assert.False(t, occ.Start.Equal(excluded))
	}
}

func Test_Expand_CapTruncates(t *testing.T) {
	start := cphAt(t, 2023, time.October, 1, 9)
	item := ews.CalendarItem{
		UID:        "daily@example.com",
		Subject:    "Daily",
		Start:      start,
		End:        start.Add(15 * time.Minute),
		Recurrence: "FREQ=DAILY;COUNT=50",
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 1, 0), cphAt(t, 2024, time.January, 1, 0))
	cfg.MaxOccurrencesPerEvent = 5
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)

	assert.Len(t, res.Occurrences, 5)
	assert.Equal(t, []string{"daily@example.com"}, res.TruncatedEvents)
}

func Test_Expand_AllDay(t *testing.T) {
	start := cphAt(t, 2023, time.November, 6, 0)
	item := ews.CalendarItem{
		UID:           "offsite@example.com",
		Subject:       "Offsite",
		Start:         start,
		End:           start.Add(24 * time.Hour),
		IsAllDayEvent: true,
		Recurrence:    "FREQ=DAILY;COUNT=3",
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.November, 5, 0), cphAt(t, 2023, time.November, 12, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{item}, cfg)
	require.NoError(t, err)
	require.Len(t, res.Occurrences, 3)

	for _, occ := range res.Occurrences {
		assert.True(t, occ.AllDay)
		assert.Equal(t, 0, occ.Start.Time().Hour())
		assert.Equal(t, 24*time.Hour, occ.End.Sub(occ.Start))
	}
}

func Test_Expand_ConfigErrors(t *testing.T) {
	from := cphAt(t, 2023, time.October, 1, 0)
	to := cphAt(t, 2023, time.November, 1, 0)

	_, err := ExpandOccurrences(nil, ExpandConfig{RangeStart: from, RangeEnd: to})
	assert.Error(t, err, "missing display zone")

	_, err = ExpandOccurrences(nil, expandCfg(t, to, from))
	assert.Error(t, err, "reversed range")

	var naive ewstime.DateTime
	_, err = ExpandOccurrences(nil, ExpandConfig{Zone: cphZone(t), RangeStart: naive, RangeEnd: to})
	assert.Error(t, err, "naive bound")
}

func Test_Expand_InvalidRRuleSkipsItem(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)
	bad := ews.CalendarItem{
		UID:        "bad@example.com",
		Subject:    "Broken rule",
		Start:      start,
		End:        start.Add(time.Hour),
		Recurrence: "FREQ=NEVERLY",
	}
	good := ews.CalendarItem{
		UID:     "good@example.com",
		Subject: "Fine",
		Start:   start,
		End:     start.Add(time.Hour),
	}

	cfg := expandCfg(t, cphAt(t, 2023, time.October, 1, 0), cphAt(t, 2023, time.November, 1, 0))
	res, err := ExpandOccurrences([]ews.CalendarItem{bad, good}, cfg)
	require.NoError(t, err)
	require.Len(t, res.Occurrences, 1)
	assert.Equal(t, "good@example.com", res.Occurrences[0].UID)
}
