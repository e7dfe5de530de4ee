// Package ewstime provides the timezone-aware temporal values used on the
// EWS wire: zones that carry both their IANA key and the Windows identifier
// the protocol requires, plus date/datetime types with strict wire-format
// rules. All values are immutable and freely shareable across goroutines.
package ewstime

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"ewscal/winzone"
)

// Zone is a registry-issued timezone value: an IANA key, its rule provider
// handle, and the Windows identity resolved from the mapping table at
// construction. The zero Zone means "no timezone" and marks naive values.
// Two Zones are equal iff their IANA keys are equal.
type Zone struct {
	key string
	loc *time.Location
	win winzone.WindowsZone
}

// UTC is the UTC zone value. It is constructed directly rather than through
// a registry so it is usable before (and independent of) table loading.
var UTC = Zone{
	key: "UTC",
	loc: time.UTC,
	win: winzone.WindowsZone{ID: "UTC", Name: "(UTC) Coordinated Universal Time"},
}

// Key returns the IANA key, e.g. "Europe/Copenhagen".
func (z Zone) Key() string { return z.key }

// WindowsID returns the Windows timezone identifier, e.g. "Romance Standard Time".
func (z Zone) WindowsID() string { return z.win.ID }

// WindowsName returns the Windows display name, which may be empty.
func (z Zone) WindowsName() string { return z.win.Name }

// Location returns the IANA rule provider handle for this zone.
func (z Zone) Location() *time.Location { return z.loc }

// IsZero reports whether this is the zero "no timezone" value.
func (z Zone) IsZero() bool { return z.key == "" }

// Equal reports whether both zones have the same IANA key.
func (z Zone) Equal(o Zone) bool { return z.key == o.key }

func (z Zone) String() string { return z.key }

// Registry resolves timezone keys against an injected mapping table. It is
// read-only after construction. Most callers use the package-level helpers,
// which share a default registry over the embedded table; tests that need an
// alternate table construct their own Registry instead of mutating shared
// state.
type Registry struct {
	table *winzone.Table
}

// NewRegistry creates a registry over the given table.
func NewRegistry(table *winzone.Table) *Registry {
	return &Registry{table: table}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(winzone.Default())
})

// DefaultRegistry returns the shared registry over the embedded table.
func DefaultRegistry() *Registry { return defaultRegistry() }

// NewZone resolves an IANA key via the default registry.
func NewZone(key string) (Zone, error) { return DefaultRegistry().Zone(key) }

// ZoneFromWindowsID resolves a Windows ID via the default registry.
func ZoneFromWindowsID(id string) (Zone, error) { return DefaultRegistry().ZoneFromWindowsID(id) }

// ZoneFromLocation normalizes a foreign location via the default registry.
func ZoneFromLocation(loc *time.Location) (Zone, error) {
	return DefaultRegistry().ZoneFromLocation(loc)
}

// LocalZone detects the host's local zone via the default registry.
func LocalZone() (Zone, error) { return DefaultRegistry().LocalZone() }

// Zone resolves an IANA key into a Zone. The key must be known to the IANA
// database and have a Windows mapping; the two failure cases are reported
// with distinct messages.
func (r *Registry) Zone(key string) (Zone, error) {
	loc, err := time.LoadLocation(key)
	if err != nil {
		return Zone{}, &UnknownTimeZoneError{Key: key}
	}
	win, ok := r.table.Lookup(key)
	if !ok {
		return Zone{}, &UnknownTimeZoneError{Key: key, NoWindowsMapping: true}
	}
	return Zone{key: key, loc: loc, win: win}, nil
}

// ZoneFromWindowsID resolves a Windows timezone ID to a Zone via the reverse
// index. Many IANA keys share one Windows ID, so this direction is lossy:
// the result is a representative key with the identical Windows mapping, not
// necessarily the key a value was originally built from.
//
// Some servers put an IANA key in the Windows ID field; those are resolved
// directly as a fallback.
func (r *Registry) ZoneFromWindowsID(id string) (Zone, error) {
	if key, ok := r.table.LookupWindowsID(id); ok {
		return r.Zone(key)
	}
	return r.Zone(id)
}

// ZoneFromLocation is the single admission point for timezones expressed as
// foreign *time.Location values. Named locations resolve by key. Fixed-offset
// locations with no canonical key map to the nearest whole-hour Etc/GMT zone
// rather than failing.
func (r *Registry) ZoneFromLocation(loc *time.Location) (Zone, error) {
	if loc == nil {
		return Zone{}, &UnknownTimeZoneError{Key: "<nil>"}
	}
	if loc == time.UTC {
		return r.Zone("UTC")
	}
	if loc == time.Local {
		return r.LocalZone()
	}
	name := loc.String()
	if z, err := r.Zone(name); err == nil {
		return z, nil
	} else if uerr, ok := err.(*UnknownTimeZoneError); ok && uerr.NoWindowsMapping {
		// IANA knows the key but the table does not; surface that as-is
		// rather than degrading to a fixed offset.
		return Zone{}, err
	}
	// No canonical key. Treat the location as a fixed offset.
	_, off := time.Now().In(loc).Zone()
	return r.fixedOffsetZone(name, off)
}

// LocalZone detects the host's local timezone. Detection order: the TZ
// environment variable, the /etc/localtime symlink target, and finally the
// current fixed offset of time.Local.
func (r *Registry) LocalZone() (Zone, error) {
	if tz := os.Getenv("TZ"); tz != "" && tz != ":" {
		return r.Zone(strings.TrimPrefix(tz, ":"))
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			return r.Zone(target[i+len("zoneinfo/"):])
		}
	}
	_, off := time.Now().Zone()
	return r.fixedOffsetZone("Local", off)
}

// fixedOffsetZone maps a whole-hour UTC offset to the equivalent Etc/GMT
// zone. POSIX Etc/GMT names invert the sign: Etc/GMT-2 is UTC+02:00.
func (r *Registry) fixedOffsetZone(name string, offsetSeconds int) (Zone, error) {
	if offsetSeconds%3600 != 0 {
		return Zone{}, &UnknownTimeZoneError{Key: name}
	}
	hours := offsetSeconds / 3600
	if hours == 0 {
		return r.Zone("UTC")
	}
	return r.Zone(fmt.Sprintf("Etc/GMT%+d", -hours))
}

// DSTHint selects the interpretation of a wall-clock time that is ambiguous
// (occurs twice at a fall-back transition) or non-existent (skipped at a
// spring-forward transition). It has no effect on unambiguous times.
type DSTHint int

const (
	// DSTAuto resolves transition times using the offset that was in
	// effect immediately before the transition.
	DSTAuto DSTHint = iota
	// DSTStandard prefers the standard-time interpretation.
	DSTStandard
	// DSTDaylight prefers the daylight-time interpretation.
	DSTDaylight
)

// bracket is how far Localize samples around a wall time to find the zone
// offsets on either side of a potential transition. Wall times differ from
// the actual instant by at most ~14h and transitions shift offsets by a few
// hours, so 36h safely brackets any single transition.
const bracket = 36 * time.Hour

type zoneSample struct {
	offset time.Duration
	isDST  bool
}

func sampleZone(loc *time.Location, t time.Time) zoneSample {
	tt := t.In(loc)
	_, off := tt.Zone()
	return zoneSample{offset: time.Duration(off) * time.Second, isDST: tt.IsDST()}
}

// Localize composes a DateTime from civil (wall-clock) fields in this zone,
// resolving DST ambiguity per the hint. The resulting DateTime denotes one
// absolute instant; for a non-existent wall time that instant re-renders
// with normalized civil fields, since the requested ones never occurred.
func (z Zone) Localize(year int, month time.Month, day, hour, min, sec, nsec int, hint DSTHint) (DateTime, error) {
	if z.IsZero() {
		return DateTime{}, fmt.Errorf("localize: %w", ErrInvalidZoneBinding)
	}

	// The civil fields re-expressed as a UTC instant; subtracting a zone
	// offset from it yields the instant at which the zone shows exactly
	// these fields under that offset.
	wall := time.Date(year, month, day, hour, min, sec, nsec, time.UTC)

	before := sampleZone(z.loc, wall.Add(-bracket))
	after := sampleZone(z.loc, wall.Add(bracket))

	if before.offset == after.offset {
		return DateTime{t: wall.Add(-before.offset).In(z.loc), zone: z}, nil
	}

	candBefore := wall.Add(-before.offset)
	candAfter := wall.Add(-after.offset)
	validBefore := sameWall(candBefore.In(z.loc), year, month, day, hour, min, sec, nsec)
	validAfter := sameWall(candAfter.In(z.loc), year, month, day, hour, min, sec, nsec)

	var instant time.Time
	switch {
	case validBefore && validAfter:
		// Ambiguous: the wall time occurs twice.
		instant = pickCandidate(hint, before, after, candBefore, candAfter)
	case validBefore:
		instant = candBefore
	case validAfter:
		instant = candAfter
	default:
		// Non-existent: the wall time fell in the spring-forward gap.
		// Interpret the imaginary fields with the hinted offset.
		instant = pickCandidate(hint, before, after, candBefore, candAfter)
	}
	return DateTime{t: instant.In(z.loc), zone: z}, nil
}

// pickCandidate applies the hint to the two interpretations of a wall time.
// DSTAuto keeps the pre-transition offset; explicit hints pick the candidate
// on the requested DST side, falling back to the pre-transition offset when
// neither side matches (offset changes without a DST flag flip).
func pickCandidate(hint DSTHint, before, after zoneSample, candBefore, candAfter time.Time) time.Time {
	switch hint {
	case DSTStandard:
		if !before.isDST {
			return candBefore
		}
		if !after.isDST {
			return candAfter
		}
	case DSTDaylight:
		if before.isDST {
			return candBefore
		}
		if after.isDST {
			return candAfter
		}
	}
	return candBefore
}

func sameWall(t time.Time, year int, month time.Month, day, hour, min, sec, nsec int) bool {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return y == year && mo == month && d == day && h == hour && mi == min && s == sec && t.Nanosecond() == nsec
}
