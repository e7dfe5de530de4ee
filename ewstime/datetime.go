package ewstime

import (
	"fmt"
	"time"
)

// wireLayout is the EWS wire format for datetimes. The fractional element is
// optional on parse; the trailing designator (Z or ±HH:MM) is mandatory and
// enforced separately so its absence gets a distinct error.
const wireLayout = "2006-01-02T15:04:05.999999999Z07:00"

// DateTime is an immutable civil timestamp bound to exactly one
// registry-issued Zone. Comparison is by absolute instant: two DateTimes in
// different zones denoting the same instant are equal. The zero DateTime is
// naive (no zone) and is rejected at serialization.
type DateTime struct {
	t    time.Time
	zone Zone
}

// NewDateTime builds a DateTime from civil fields in the given zone. For
// wall times at a DST transition the underlying provider's resolution is
// used; callers that need explicit disambiguation use Zone.Localize.
func NewDateTime(year int, month time.Month, day, hour, min, sec, nsec int, z Zone) (DateTime, error) {
	if z.IsZero() {
		return DateTime{}, fmt.Errorf("new datetime: %w", ErrInvalidZoneBinding)
	}
	return DateTime{t: time.Date(year, month, day, hour, min, sec, nsec, z.loc), zone: z}, nil
}

// Now returns the current instant in the given zone.
func Now(z Zone) (DateTime, error) {
	if z.IsZero() {
		return DateTime{}, fmt.Errorf("now: %w", ErrInvalidZoneBinding)
	}
	return DateTime{t: time.Now().In(z.loc), zone: z}, nil
}

// NowUTC returns the current instant in UTC.
func NowUTC() DateTime {
	return DateTime{t: time.Now().UTC(), zone: UTC}
}

// FromTime admits a stdlib time.Time, normalizing its location through the
// default registry (see Registry.ZoneFromLocation). This is the only entry
// point for foreign timezone representations; a location that cannot be
// normalized is rejected rather than guessed at.
func FromTime(t time.Time) (DateTime, error) {
	return DefaultRegistry().FromTime(t)
}

// FromTime is the registry-scoped variant of the package-level FromTime.
func (r *Registry) FromTime(t time.Time) (DateTime, error) {
	z, err := r.ZoneFromLocation(t.Location())
	if err != nil {
		return DateTime{}, fmt.Errorf("from time: %w", err)
	}
	return DateTime{t: t.In(z.loc), zone: z}, nil
}

// At binds an absolute instant to this zone. Unlike FromTime the instant's
// own location is ignored; only the instant matters.
func (z Zone) At(t time.Time) (DateTime, error) {
	if z.IsZero() {
		return DateTime{}, fmt.Errorf("at: %w", ErrInvalidZoneBinding)
	}
	return DateTime{t: t.In(z.loc), zone: z}, nil
}

// ParseDateTime parses the wire format
// YYYY-MM-DDTHH:MM:SS[.ffffff](Z|±HH:MM). The designator is mandatory: a
// timestamp without one is rejected with *NaiveDateTimeError, never
// interpreted against a default zone. The parsed instant is normalized to
// UTC; callers that need the original zone must carry it separately.
func ParseDateTime(s string) (DateTime, error) {
	if !hasDesignator(s) {
		return DateTime{}, &NaiveDateTimeError{Value: s}
	}
	t, err := time.Parse(wireLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return DateTime{t: t.UTC(), zone: UTC}, nil
}

// hasDesignator reports whether s ends in Z or an explicit ±HH:MM offset.
func hasDesignator(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[len(s)-1] == 'Z' {
		return true
	}
	if len(s) < 6 {
		return false
	}
	tail := s[len(s)-6:]
	if tail[0] != '+' && tail[0] != '-' {
		return false
	}
	return isDigit(tail[1]) && isDigit(tail[2]) && tail[3] == ':' && isDigit(tail[4]) && isDigit(tail[5])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// EWSFormat renders the wire format. It fails on a naive value: the wire
// format may not carry an implicit zone, and guessing one is forbidden.
// Sub-second precision is microseconds, omitted when zero.
func (dt DateTime) EWSFormat() (string, error) {
	if dt.IsNaive() {
		return "", &NaiveDateTimeError{Value: dt.t.Format("2006-01-02T15:04:05")}
	}
	s := dt.t.Format("2006-01-02T15:04:05")
	if us := dt.t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	if dt.zone.Equal(UTC) {
		return s + "Z", nil
	}
	return s + dt.t.Format("-07:00"), nil
}

// Zone returns the bound timezone value.
func (dt DateTime) Zone() Zone { return dt.zone }

// Time returns the underlying instant, rendered in the bound zone.
func (dt DateTime) Time() time.Time { return dt.t }

// IsNaive reports whether the value carries no timezone.
func (dt DateTime) IsNaive() bool { return dt.zone.IsZero() }

// Equal reports whether both values denote the same absolute instant,
// regardless of the zones they are rendered in.
func (dt DateTime) Equal(o DateTime) bool { return dt.t.Equal(o.t) }

// Before reports whether dt's instant precedes o's.
func (dt DateTime) Before(o DateTime) bool { return dt.t.Before(o.t) }

// After reports whether dt's instant follows o's.
func (dt DateTime) After(o DateTime) bool { return dt.t.After(o.t) }

// Compare orders by absolute instant: -1, 0 or +1.
func (dt DateTime) Compare(o DateTime) int { return dt.t.Compare(o.t) }

// Add returns a new DateTime offset by d in absolute time, re-rendered in
// the same zone. Adding 24h across a DST boundary can change the wall-clock
// hour; that is the point of absolute-instant arithmetic.
func (dt DateTime) Add(d time.Duration) DateTime {
	return DateTime{t: dt.t.Add(d), zone: dt.zone}
}

// Sub returns the absolute-time difference dt - o.
func (dt DateTime) Sub(o DateTime) time.Duration { return dt.t.Sub(o.t) }

// In re-renders the same instant in another registry-issued zone.
func (dt DateTime) In(z Zone) (DateTime, error) {
	if z.IsZero() {
		return DateTime{}, fmt.Errorf("in: %w", ErrInvalidZoneBinding)
	}
	return DateTime{t: dt.t.In(z.loc), zone: z}, nil
}

// Date returns the calendar date of the instant in the bound zone.
func (dt DateTime) Date() Date {
	y, m, d := dt.t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (dt DateTime) String() string {
	if dt.IsNaive() {
		return dt.t.Format("2006-01-02T15:04:05") + " (naive)"
	}
	s, _ := dt.EWSFormat()
	return s
}
