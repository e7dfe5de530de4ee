package icsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ewscal/ews"
	"ewscal/ewstime"
)

func cphZone(t *testing.T) ewstime.Zone {
	t.Helper()
	z, err := ewstime.NewZone("Europe/Copenhagen")
	require.NoError(t, err)
	return z
}

func cphAt(t *testing.T, year int, month time.Month, day, hour int) ewstime.DateTime {
	t.Helper()
	dt, err := ewstime.NewDateTime(year, month, day, hour, 0, 0, 0, cphZone(t))
	require.NoError(t, err)
	return dt
}

func Test_Export(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)
	items := []ews.CalendarItem{
		{
			UID:        "standup@example.com",
			Subject:    "Standup",
			Location:   "Room 4",
			Start:      start,
			End:        start.Add(30 * time.Minute),
			Recurrence: "FREQ=WEEKLY;COUNT=4",
			ExDates:    []ewstime.DateTime{cphAt(t, 2023, time.October, 25, 10)},
		},
	}

	out, err := Export(items)
	require.NoError(t, err)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "UID:standup@example.com")
	assert.Contains(t, out, "SUMMARY:Standup")
	assert.Contains(t, out, "LOCATION:Room 4")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;COUNT=4")
	assert.Contains(t, out, "EXDATE:20231025T080000Z")
	assert.Contains(t, out, "TZID:Europe/Copenhagen")
}

func Test_Export_AllDay(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 0)
	items := []ews.CalendarItem{
		{
			UID:           "holiday@example.com",
			Subject:       "Holiday",
			Start:         start,
			End:           start.Add(24 * time.Hour),
			IsAllDayEvent: true,
		},
	}

	out, err := Export(items)
	require.NoError(t, err)
	assert.Contains(t, out, "VALUE=DATE")
	assert.Contains(t, out, "SUMMARY:Holiday")
}

func Test_Export_FallsBackToItemID(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)
	items := []ews.CalendarItem{
		{
			ItemID:  &ews.ItemID{ID: "AAMkItem"},
			Subject: "No UID",
			Start:   start,
			End:     start.Add(time.Hour),
		},
	}

	out, err := Export(items)
	require.NoError(t, err)
	assert.Contains(t, out, "UID:AAMkItem")
}

func Test_Export_Errors(t *testing.T) {
	start := cphAt(t, 2023, time.October, 18, 10)

	// No UID anywhere.
	_, err := Export([]ews.CalendarItem{{Subject: "x", Start: start, End: start.Add(time.Hour)}})
	assert.Error(t, err)

	// Naive bound fails validation.
	var naive ewstime.DateTime
	_, err = Export([]ews.CalendarItem{{UID: "u", Subject: "x", Start: naive, End: start}})
	assert.Error(t, err)
}
