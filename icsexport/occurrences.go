package icsexport

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"

	"ewscal/ews"
	"ewscal/ewstime"
	appLog "ewscal/internal/log"
)

const defaultMaxOccurrencesPerEvent = 5000

// Occurrence is one concrete instance of a calendar item, rendered in the
// configured display zone.
type Occurrence struct {
	UID      string
	Subject  string
	Location string
	AllDay   bool

	Start ewstime.DateTime
	End   ewstime.DateTime
}

// ExpandConfig controls recurrence expansion.
type ExpandConfig struct {
	// Zone is the display zone all occurrences are converted into.
	Zone ewstime.Zone

	// RangeStart / RangeEnd bound the occurrences by absolute instant,
	// inclusive on both ends.
	RangeStart ewstime.DateTime
	RangeEnd   ewstime.DateTime

	// MaxOccurrencesPerEvent caps expansion per item to avoid runaway
	// rules. Zero means defaultMaxOccurrencesPerEvent.
	MaxOccurrencesPerEvent int
}

// ExpandResult wraps the expanded occurrences plus the UIDs of items whose
// expansion hit the per-event cap.
type ExpandResult struct {
	Occurrences     []Occurrence
	TruncatedEvents []string
}

// ExpandOccurrences expands calendar items into concrete occurrences within
// the configured window. Non-recurring items pass through if they intersect
// the window; recurring items are expanded via their RRULE with EXDATEs
// removed. Occurrence starts follow the rule in the item's own zone, so a
// weekly 10:00 meeting stays at 10:00 wall time across a DST transition.
func ExpandOccurrences(items []ews.CalendarItem, cfg ExpandConfig) (ExpandResult, error) {
	var result ExpandResult

	if cfg.Zone.IsZero() {
		return result, errors.New("expand: display zone is required")
	}
	if cfg.RangeStart.IsNaive() || cfg.RangeEnd.IsNaive() {
		return result, errors.New("expand: range bounds must be timezone-aware")
	}
	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return result, errors.New("expand: RangeEnd is before RangeStart")
	}
	if cfg.MaxOccurrencesPerEvent <= 0 {
		cfg.MaxOccurrencesPerEvent = defaultMaxOccurrencesPerEvent
	}

	for i := range items {
		item := &items[i]
		if err := item.Validate(); err != nil {
			return ExpandResult{}, err
		}
		occ, hitCap, err := expandItem(item, cfg)
		if err != nil {
			return ExpandResult{}, err
		}
		if hitCap {
			result.TruncatedEvents = append(result.TruncatedEvents, item.UID)
			appLog.Error("expand: truncated occurrences due to cap",
				errors.New("max occurrences reached"),
				"uid", item.UID,
				"cap", cfg.MaxOccurrencesPerEvent,
			)
		}
		result.Occurrences = append(result.Occurrences, occ...)
	}

	return result, nil
}

func expandItem(item *ews.CalendarItem, cfg ExpandConfig) ([]Occurrence, bool, error) {
	if item.Recurrence == "" {
		occ, err := expandSingle(item, cfg)
		return occ, false, err
	}
	return expandRecurring(item, cfg)
}

func expandSingle(item *ews.CalendarItem, cfg ExpandConfig) ([]Occurrence, error) {
	if item.End.Before(cfg.RangeStart) || item.Start.After(cfg.RangeEnd) {
		return nil, nil
	}
	occ, err := makeOccurrence(item, item.Start.Time(), item.End.Time(), cfg.Zone)
	if err != nil {
		return nil, err
	}
	return []Occurrence{occ}, nil
}

func expandRecurring(item *ews.CalendarItem, cfg ExpandConfig) ([]Occurrence, bool, error) {
	r, err := rrule.StrToRRule(item.Recurrence)
	if err != nil {
		appLog.Error("expand: failed to parse RRULE", err, "uid", item.UID, "rrule", item.Recurrence)
		return nil, false, nil
	}

	loc := item.Start.Zone().Location()
	start := item.Start.Time()
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range item.ExDates {
		set.ExDate(ex.Time().In(loc))
	}

	rangeStart := cfg.RangeStart.Time().In(loc)
	rangeEnd := cfg.RangeEnd.Time().In(loc)
	occTimes := set.Between(rangeStart, rangeEnd, true)

	hitCap := false
	if len(occTimes) > cfg.MaxOccurrencesPerEvent {
		occTimes = occTimes[:cfg.MaxOccurrencesPerEvent]
		hitCap = true
	}

	dur := item.End.Sub(item.Start)
	out := make([]Occurrence, 0, len(occTimes))
	for _, occStart := range occTimes {
		var occEnd time.Time
		if item.IsAllDayEvent {
			day := time.Date(occStart.Year(), occStart.Month(), occStart.Day(), 0, 0, 0, 0, occStart.Location())
			occStart = day
			occEnd = day.AddDate(0, 0, 1)
		} else {
			occEnd = occStart.Add(dur)
		}
		occ, err := makeOccurrence(item, occStart, occEnd, cfg.Zone)
		if err != nil {
			return nil, false, err
		}
		out = append(out, occ)
	}
	return out, hitCap, nil
}

func makeOccurrence(item *ews.CalendarItem, start, end time.Time, display ewstime.Zone) (Occurrence, error) {
	s, err := display.At(start)
	if err != nil {
		return Occurrence{}, err
	}
	e, err := display.At(end)
	if err != nil {
		return Occurrence{}, err
	}
	return Occurrence{
		UID:      item.UID,
		Subject:  item.Subject,
		Location: item.Location,
		AllDay:   item.IsAllDayEvent,
		Start:    s,
		End:      e,
	}, nil
}
