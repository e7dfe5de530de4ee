package winzone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultTable(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)

	assert.Greater(t, tbl.Len(), 300)
	assert.Equal(t, CLDRTypeVersion, tbl.TypeVersion())
	assert.Equal(t, CLDROtherVersion, tbl.OtherVersion())

	for _, key := range tbl.Keys() {
		wz, ok := tbl.Lookup(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, wz.ID, "key %s has empty Windows ID", key)
	}
}

func Test_Lookup_WellKnownZones(t *testing.T) {
	tbl := Default()

	tests := []struct {
		key string
		id  string
	}{
		{"Europe/Copenhagen", "Romance Standard Time"},
		{"Europe/Paris", "Romance Standard Time"},
		{"America/New_York", "Eastern Standard Time"},
		{"Asia/Tokyo", "Tokyo Standard Time"},
		{"Australia/Sydney", "AUS Eastern Standard Time"},
		{"UTC", "UTC"},
		{"GMT", "UTC"},
	}
	for _, tc := range tests {
		wz, ok := tbl.Lookup(tc.key)
		require.True(t, ok, tc.key)
		assert.Equal(t, tc.id, wz.ID, tc.key)
	}

	_, ok := tbl.Lookup("Atlantis/Poseidonis")
	assert.False(t, ok)
}

func Test_LookupWindowsID_GoldenZone(t *testing.T) {
	tbl := Default()

	key, ok := tbl.LookupWindowsID("Romance Standard Time")
	require.True(t, ok)
	assert.Equal(t, "Europe/Paris", key)

	key, ok = tbl.LookupWindowsID("W. Europe Standard Time")
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", key)

	_, ok = tbl.LookupWindowsID("Atlantis Standard Time")
	assert.False(t, ok)
}

func Test_LookupWindowsID_Deterministic(t *testing.T) {
	entries := map[string]WindowsZone{
		"Zz/Later":   {ID: "Fake Standard Time"},
		"Aa/Earlier": {ID: "Fake Standard Time"},
	}
	// No golden zone exists for a made-up ID: the representative key is the
	// lexicographically first one, regardless of map iteration order.
	for i := 0; i < 10; i++ {
		tbl := NewTable("t", "o", entries)
		key, ok := tbl.LookupWindowsID("Fake Standard Time")
		require.True(t, ok)
		assert.Equal(t, "Aa/Earlier", key)
	}
}

func Test_MissingKeys(t *testing.T) {
	tbl := NewTable("t", "o", map[string]WindowsZone{
		"Europe/Copenhagen": {ID: "Romance Standard Time"},
	})

	hostKeys := []string{
		"Europe/Copenhagen",
		"Europe/Oslo",
		"posix/Europe/Oslo",
		"right/Europe/Oslo",
		"zone.tab",
		"localtime",
		"Factory",
	}
	missing := tbl.MissingKeys(hostKeys)
	assert.Equal(t, []string{"Europe/Oslo"}, missing)
}

func Test_DefaultTable_CoversHostZones(t *testing.T) {
	hostKeys, err := HostZoneKeys()
	if err != nil {
		t.Skipf("no host zoneinfo database: %v", err)
	}
	missing := Default().MissingKeys(hostKeys)
	assert.Empty(t, missing)
}

func Test_IsPseudoZone(t *testing.T) {
	tests := []struct {
		name   string
		pseudo bool
	}{
		{"Europe/Copenhagen", false},
		{"Etc/GMT-3", false},
		{"posix/Europe/Oslo", true},
		{"right/UTC", true},
		{"SystemV/EST5", true},
		{"localtime", true},
		{"posixrules", true},
		{"zone.tab", true},
		{"leap-seconds.list", true},
		{"tzdata.zi", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.pseudo, IsPseudoZone(tc.name), tc.name)
	}
}

func Test_Snapshot_RoundTrip(t *testing.T) {
	orig := NewTable("2021a", "7e11800", map[string]WindowsZone{
		"Europe/Copenhagen": {ID: "Romance Standard Time", Name: "(UTC+01:00) Brussels, Copenhagen, Madrid, Paris"},
		"Etc/UTC":           {ID: "UTC", Name: "(UTC) Coordinated Universal Time"},
	})

	data, err := orig.MarshalSnapshot()
	require.NoError(t, err)

	parsed, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, orig.Len(), parsed.Len())
	assert.Equal(t, orig.TypeVersion(), parsed.TypeVersion())
	assert.Equal(t, orig.OtherVersion(), parsed.OtherVersion())

	wz, ok := parsed.Lookup("Europe/Copenhagen")
	require.True(t, ok)
	assert.Equal(t, "Romance Standard Time", wz.ID)
	assert.Equal(t, "(UTC+01:00) Brussels, Copenhagen, Madrid, Paris", wz.Name)
}

func Test_ParseSnapshot_Invalid(t *testing.T) {
	_, err := ParseSnapshot([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseSnapshot([]byte(`{"type_version":"x","other_version":"y","map":{}}`))
	assert.Error(t, err)

	_, err = ParseSnapshot([]byte(`{"type_version":"x","other_version":"y","map":{"Europe/Oslo":["",""]}}`))
	assert.Error(t, err)
}
