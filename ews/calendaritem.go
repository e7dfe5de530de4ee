package ews

import (
	"encoding/xml"
	"errors"
	"fmt"

	"ewscal/ewstime"
)

// CalendarItem is an appointment or meeting. Start and End are full
// DateTimes: the zone rides along so the request can carry the server-facing
// Windows zone name distinct from the instant itself.
type CalendarItem struct {
	ItemID   *ItemID
	UID      string
	Subject  string
	Location string

	Start ewstime.DateTime
	End   ewstime.DateTime

	IsAllDayEvent bool

	// Recurrence is the RRULE text for recurring masters, empty otherwise.
	Recurrence string

	// ExDates are occurrence starts removed from the recurrence.
	ExDates []ewstime.DateTime

	LegacyFreeBusyStatus string // Busy, Free, Tentative, OOF
}

// Validate checks the invariants a calendar item must hold before it can be
// serialized: non-naive bounds and a start not after the end.
func (c *CalendarItem) Validate() error {
	if c.Start.IsNaive() || c.End.IsNaive() {
		return errors.New("calendar item start/end must be timezone-aware")
	}
	if c.Start.After(c.End) {
		return fmt.Errorf("calendar item %q starts after it ends", c.Subject)
	}
	for _, ex := range c.ExDates {
		if ex.IsNaive() {
			return fmt.Errorf("calendar item %q has a naive exception date", c.Subject)
		}
	}
	return nil
}

// calendarItemXML is the wire rendering of a CalendarItem.
type calendarItemXML struct {
	XMLName xml.Name `xml:"t:CalendarItem"`

	ItemID   *ItemID `xml:"t:ItemId,omitempty"`
	UID      string  `xml:"t:UID,omitempty"`
	Subject  string  `xml:"t:Subject,omitempty"`
	Start    Time    `xml:"t:Start"`
	End      Time    `xml:"t:End"`
	IsAllDay bool    `xml:"t:IsAllDayEvent"`
	Status   string  `xml:"t:LegacyFreeBusyStatus,omitempty"`
	Location string  `xml:"t:Location,omitempty"`

	// The server additionally needs the zone names to interpret the civil
	// fields of Start/End when the item recurs.
	StartTimeZoneID string `xml:"t:StartTimeZone,omitempty"`
	EndTimeZoneID   string `xml:"t:EndTimeZone,omitempty"`
}

// Payload renders the calendar item element for embedding in a request.
// Serialization fails on naive bounds; it never guesses a zone.
func (c *CalendarItem) Payload() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	w := calendarItemXML{
		ItemID:          c.ItemID,
		UID:             c.UID,
		Subject:         c.Subject,
		Start:           NewTime(c.Start),
		End:             NewTime(c.End),
		IsAllDay:        c.IsAllDayEvent,
		Status:          c.LegacyFreeBusyStatus,
		Location:        c.Location,
		StartTimeZoneID: c.Start.Zone().WindowsID(),
		EndTimeZoneID:   c.End.Zone().WindowsID(),
	}
	return xml.MarshalIndent(&w, "", "  ")
}
