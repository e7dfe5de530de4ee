package ewstime

import (
	"errors"
	"fmt"
)

// UnknownTimeZoneError reports a timezone key that could not be resolved.
// The two sub-cases carry distinct messages: the key may be unknown to the
// IANA database entirely, or known to IANA but absent from the Windows
// mapping table. Both messages carry the offending key verbatim.
type UnknownTimeZoneError struct {
	Key string

	// NoWindowsMapping is true when the IANA database knows the key but
	// the mapping table has no Windows entry for it.
	NoWindowsMapping bool
}

func (e *UnknownTimeZoneError) Error() string {
	if e.NoWindowsMapping {
		return fmt.Sprintf("no Windows timezone name found for timezone %q", e.Key)
	}
	return fmt.Sprintf("no time zone found with key %s", e.Key)
}

// NaiveDateTimeError reports a wire parse or serialize attempted on a
// timezone-less value. The wire format demands an explicit designator;
// a naive value is never interpreted against a default zone.
type NaiveDateTimeError struct {
	Value string
}

func (e *NaiveDateTimeError) Error() string {
	return fmt.Sprintf("datetime %q is naive: an explicit Z or UTC offset is required", e.Value)
}

// ErrInvalidZoneBinding is returned when a DateTime is constructed with a
// timezone that was not issued by the registry.
var ErrInvalidZoneBinding = errors.New("timezone was not issued by the registry")
