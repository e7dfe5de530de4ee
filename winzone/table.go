// Package winzone translates IANA/Olson timezone keys into the Windows
// timezone identifiers the EWS wire protocol requires.
//
// The translation table is embedded as a build-time snapshot generated from
// the CLDR windowsZones document (see Generator and cmd/tzgen). At runtime
// the table is immutable: it is parsed exactly once and never mutated, so
// any number of goroutines may read it without locking.
package winzone

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// CLDRWinzoneURL is the authoritative upstream source for the mapping.
const CLDRWinzoneURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/supplemental/windowsZones.xml"

// Upstream version tags the embedded snapshot was generated from. A freshly
// generated map whose tags differ is not wrong, just newer; the generator
// surfaces the drift for manual review instead of failing.
const (
	CLDRTypeVersion  = "2021a"
	CLDROtherVersion = "7e11800"
)

//go:embed cldr_winzone.json
var snapshotJSON []byte

// WindowsZone is the Windows-side identity of a timezone: the registry ID
// EWS expects on the wire plus its human-readable display name. The display
// name is optional; EWS accepts requests without it.
type WindowsZone struct {
	ID   string
	Name string
}

// Table is an immutable bidirectional registry mapping IANA keys to Windows
// zones. Many IANA keys collapse onto one Windows ID, so the reverse
// direction resolves to a single representative key and is lossy.
type Table struct {
	typeVersion  string
	otherVersion string
	byKey        map[string]WindowsZone
	byID         map[string]string
}

// snapshot is the persisted artifact shape: a flat table plus the two
// upstream version tags recorded for drift detection.
type snapshot struct {
	TypeVersion  string               `json:"type_version"`
	OtherVersion string               `json:"other_version"`
	Map          map[string][2]string `json:"map"`
}

// NewTable builds an immutable table from the given entries. The reverse
// index picks the CLDR territory-001 zone as the representative key when one
// is known, otherwise the lexicographically first key, so reverse lookups
// are deterministic across runs.
func NewTable(typeVersion, otherVersion string, entries map[string]WindowsZone) *Table {
	byKey := make(map[string]WindowsZone, len(entries))
	byID := make(map[string]string)
	for key, wz := range entries {
		byKey[key] = wz
		cur, ok := byID[wz.ID]
		if !ok || key < cur {
			byID[wz.ID] = key
		}
	}
	for id, golden := range goldenZones {
		if _, ok := byKey[golden]; ok {
			byID[id] = golden
		}
	}
	return &Table{
		typeVersion:  typeVersion,
		otherVersion: otherVersion,
		byKey:        byKey,
		byID:         byID,
	}
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// Default returns the process-wide table loaded from the embedded snapshot.
// It panics on a malformed snapshot; the snapshot is a build artifact, so a
// parse failure means the build itself is broken.
func Default() *Table {
	defaultTableOnce.Do(func() {
		t, err := ParseSnapshot(snapshotJSON)
		if err != nil {
			panic(fmt.Sprintf("winzone: embedded snapshot is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// ParseSnapshot decodes a snapshot document into a Table.
func ParseSnapshot(data []byte) (*Table, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(snap.Map) == 0 {
		return nil, fmt.Errorf("snapshot contains no mappings")
	}
	entries := make(map[string]WindowsZone, len(snap.Map))
	for key, pair := range snap.Map {
		if pair[0] == "" {
			return nil, fmt.Errorf("snapshot entry %q has an empty Windows ID", key)
		}
		entries[key] = WindowsZone{ID: pair[0], Name: pair[1]}
	}
	return NewTable(snap.TypeVersion, snap.OtherVersion, entries), nil
}

// MarshalSnapshot encodes the table back into the snapshot document shape.
func (t *Table) MarshalSnapshot() ([]byte, error) {
	snap := snapshot{
		TypeVersion:  t.typeVersion,
		OtherVersion: t.otherVersion,
		Map:          make(map[string][2]string, len(t.byKey)),
	}
	for key, wz := range t.byKey {
		snap.Map[key] = [2]string{wz.ID, wz.Name}
	}
	return json.MarshalIndent(&snap, "", " ")
}

// Lookup returns the Windows zone for an IANA key.
func (t *Table) Lookup(key string) (WindowsZone, bool) {
	wz, ok := t.byKey[key]
	return wz, ok
}

// LookupWindowsID returns a representative IANA key for a Windows ID. Since
// the mapping is many-to-one, Lookup(LookupWindowsID(id)) yields the same
// Windows ID but not necessarily the key a value was originally built from.
func (t *Table) LookupWindowsID(id string) (string, bool) {
	key, ok := t.byID[id]
	return key, ok
}

// Len reports the number of IANA keys in the table.
func (t *Table) Len() int { return len(t.byKey) }

// TypeVersion returns the upstream zone-type version tag.
func (t *Table) TypeVersion() string { return t.typeVersion }

// OtherVersion returns the upstream legacy-alias version tag.
func (t *Table) OtherVersion() string { return t.otherVersion }

// Keys returns all IANA keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MissingKeys computes which of the given host zone keys have no entry in
// the table, after filtering non-geographic pseudo-entries. An empty result
// means the table fully covers the host's IANA database.
func (t *Table) MissingKeys(hostKeys []string) []string {
	var missing []string
	for _, key := range hostKeys {
		if IsPseudoZone(key) {
			continue
		}
		if _, ok := t.byKey[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// IsPseudoZone reports whether a zoneinfo entry name is a non-geographic
// pseudo-entry (POSIX compatibility trees, metadata files, the localtime
// indirection) rather than a real IANA key.
func IsPseudoZone(name string) bool {
	if strings.HasPrefix(name, "posix/") || strings.HasPrefix(name, "right/") || strings.HasPrefix(name, "SystemV/") {
		return true
	}
	switch name {
	case "localtime", "posixrules", "Factory", "leapseconds", "SECURITY", "tzdata.zi":
		return true
	}
	// Metadata files such as zone.tab, iso3166.tab, leap-seconds.list.
	return strings.Contains(name, ".")
}

// zoneinfoDirs lists the locations the IANA database is installed at,
// mirroring the stdlib time package's search order.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// HostZoneKeys enumerates the IANA keys known to the host's timezone
// database by walking the first zoneinfo directory that exists.
// Pseudo-entries are filtered out. Returns an error when no database is
// installed.
func HostZoneKeys() ([]string, error) {
	for _, dir := range zoneinfoDirs {
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		return walkZoneinfo(dir)
	}
	return nil, fmt.Errorf("no zoneinfo database found in %v", zoneinfoDirs)
}

func walkZoneinfo(root string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			switch rel {
			case "posix", "right", "SystemV":
				return filepath.SkipDir
			}
			return nil
		}
		rel = filepath.ToSlash(rel)
		if IsPseudoZone(rel) {
			return nil
		}
		keys = append(keys, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
