// Package icsexport turns calendar items into iCalendar documents and
// expands their recurrences into concrete occurrences.
package icsexport

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"ewscal/ews"
)

const prodID = "-//ewscal//EWS Calendar Export//EN"

// exDateLayout is the UTC basic format used for EXDATE values.
const exDateLayout = "20060102T150405Z"

// Export serializes calendar items into a single iCalendar document. Items
// are validated first; a naive bound anywhere fails the whole export.
func Export(items []ews.CalendarItem) (string, error) {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ics.MethodPublish)

	for i := range items {
		item := &items[i]
		if err := item.Validate(); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}

		uid := item.UID
		if uid == "" && item.ItemID != nil {
			uid = item.ItemID.ID
		}
		if uid == "" {
			return "", fmt.Errorf("export: calendar item %q has no UID", item.Subject)
		}

		e := cal.AddEvent(uid)
		e.SetDtStampTime(time.Now())
		e.SetSummary(item.Subject)
		if item.Location != "" {
			e.SetLocation(item.Location)
		}

		if item.IsAllDayEvent {
			e.SetAllDayStartAt(item.Start.Time())
			e.SetAllDayEndAt(item.End.Time())
		} else {
			e.SetStartAt(item.Start.Time())
			e.SetEndAt(item.End.Time())
			e.SetProperty(ics.ComponentPropertyTzid, item.Start.Zone().Key())
		}

		if item.Recurrence != "" {
			e.SetProperty(ics.ComponentProperty(ics.PropertyRrule), item.Recurrence)
		}
		for _, ex := range item.ExDates {
			e.AddProperty(ics.ComponentProperty(ics.PropertyExdate), ex.Time().UTC().Format(exDateLayout))
		}
	}

	return cal.Serialize(), nil
}
